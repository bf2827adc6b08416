package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/smash-out/internal/config"
	"github.com/vovakirdan/smash-out/internal/core"
	"github.com/vovakirdan/smash-out/internal/games/smashout"
	"github.com/vovakirdan/smash-out/internal/storage"
)

// fullHelpRows is the height of the expanded help footer.
const fullHelpRows = 5

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures a game session.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig
	Difficulty string

	Cues       smashout.CueSink        // nil plays nothing
	HighScores smashout.HighScoreStore // nil keeps the best score in memory
	Runs       RunRecorder             // nil disables run history
	Logger     *log.Logger             // Debug logger handed to the game
	Renderer   *lipgloss.Renderer      // nil uses the local terminal
	Now        func() time.Time        // Clock, for tests
	ShotDir    string                  // Screenshot directory, default ~/.smashout/screenshots
}

// Model is the Bubble Tea model for a Smash Out session.
type Model struct {
	game       *smashout.Game
	screen     *core.Screen
	styles     Styles
	keys       *KeyMapper
	help       help.Model
	showHelp   bool
	runtime    core.RuntimeConfig
	frame      core.InputFrame
	state      core.GameState
	lastTick   time.Time
	runs       RunRecorder
	logger     *log.Logger
	now        func() time.Time
	shotDir    string
	difficulty string

	runStart    time.Time
	runRecorded bool
	quitting    bool
}

// NewModel creates the model and resets the game into its menu.
func NewModel(opts Options) Model {
	rc := opts.Runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Difficulty == "" {
		opts.Difficulty = string(config.DifficultyNormal)
	}

	game := smashout.New(opts.Config)
	game.SetCueSink(opts.Cues)
	game.SetHighScoreStore(opts.HighScores)
	game.SetLogger(opts.Logger)
	game.Reset(rc)

	m := Model{
		game:       game,
		styles:     NewStyles(opts.Renderer),
		keys:       NewKeyMapper(DefaultKeyMap(), DefaultHoldWindow),
		help:       help.New(),
		runtime:    rc,
		frame:      core.NewInputFrame(),
		state:      game.State(),
		runs:       opts.Runs,
		logger:     opts.Logger,
		now:        opts.Now,
		shotDir:    opts.ShotDir,
		difficulty: opts.Difficulty,
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	m.screen = core.NewScreen(rc.ScreenW, m.fieldHeight(rc.ScreenH))
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.help.Width = rc.ScreenW
	return m
}

// Game returns the underlying game.
func (m Model) Game() *smashout.Game {
	return m.game
}

// fieldHeight leaves the bottom rows to the key help footer.
func (m Model) fieldHeight(h int) int {
	rows := 1
	if m.showHelp {
		rows = fullHelpRows
	}
	return max(1, h-rows)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.frame.Click(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToFrame(msg, &m.frame, m.now()) {
	case CommandExit:
		m.quitting = true
		return m, tea.Quit
	case CommandScreenshot:
		m.saveScreenshot()
	case CommandToggleHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.screen.Resize(m.runtime.ScreenW, m.fieldHeight(m.runtime.ScreenH))
		m.game.Resize(m.screen.Width(), m.screen.Height())
	}
	return m, nil
}

// handleResize adapts the screen. The game keeps running; it scales its
// world to whatever size it is drawn at.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, m.fieldHeight(msg.Height))
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.frame.Delta = t.Sub(m.lastTick)
	}
	m.lastTick = t
	m.keys.ApplyHeld(&m.frame, m.now())

	prev := m.state
	m.state = m.game.Step(m.frame).State
	m.frame.Clear()
	m.trackRun(prev, m.state)

	if m.state.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.state.Mode != "playing" {
		m.keys.Release()
	}

	return m, tickCmd(m.runtime.TickRate)
}

// trackRun notes when a run starts and records it once when it ends.
func (m *Model) trackRun(prev, cur core.GameState) {
	if prev.Mode == "menu" && cur.Mode == "playing" {
		m.runStart = m.now()
		m.runRecorded = false
		return
	}
	if !cur.GameOver || m.runRecorded {
		return
	}
	m.runRecorded = true
	if m.runs == nil {
		return
	}

	outcome := storage.OutcomeGameOver
	if cur.Mode == "win" {
		outcome = storage.OutcomeWin
	}
	run := storage.Run{
		Score:      cur.Score,
		Level:      cur.Level,
		Outcome:    outcome,
		Difficulty: m.difficulty,
	}
	if !m.runStart.IsZero() {
		run.Duration = m.now().Sub(m.runStart)
	}
	if _, err := m.runs.SaveRun(run); err != nil {
		m.logger.Warn("could not record run", "err", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot save screenshot", "err", err)
			return
		}
		dir = filepath.Join(home, ".smashout", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("smashout_%s.txt", m.now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := m.styles.Render(m.screen)
	if m.runtime.ScreenH > m.screen.Height() {
		out += "\n" + m.help.View(m.keys.Keys())
	}
	return out
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
