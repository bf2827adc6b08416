// Package smashout implements the Smash Out brick breaker simulation:
// entity pools, level generation, collision resolution, combo scoring,
// the mode state machine and cosmetic effects.
package smashout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/smash-out/internal/config"
	"github.com/vovakirdan/smash-out/internal/core"
)

// CueSink receives fire-and-forget sound cues.
type CueSink interface {
	Play(core.Cue)
}

// VolumeSetter is implemented by cue sinks whose output level can be
// changed from the settings screen.
type VolumeSetter interface {
	SetVolume(v float64)
}

// HighScoreStore persists the best score as a single integer.
type HighScoreStore interface {
	Load() int
	Save(score int)
}

type nopSink struct{}

func (nopSink) Play(core.Cue) {}

type memoryStore struct{ best int }

func (m *memoryStore) Load() int      { return m.best }
func (m *memoryStore) Save(score int) { m.best = score }

// maxFrameDelta bounds the timer step after a stall (window drag, suspend).
const maxFrameDelta = 0.1

// LevelState tracks progress through the current level.
type LevelState struct {
	Number        int
	Pattern       Pattern
	Elapsed       float64 // Seconds spent in Playing on this level
	BricksSmashed int
}

// Summary is the intermission shown after a level is cleared.
type Summary struct {
	CompletionTime float64
	TimeBonus      int
	BricksSmashed  int
	Timer          float64 // Seconds until auto-advance
}

// Game is one play session. It owns score, lives, level progress and
// every entity; nothing is process-global.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig

	rng      *RNG // Gameplay rolls: brick types, power-ups, multiball jitter
	reg      *Registry
	resolver *Resolver
	effects  *Effects
	paddle   Paddle
	combo    Combo

	mode      Mode
	score     int
	lives     int
	highScore int
	level     LevelState
	summary   Summary
	banner    float64 // Seconds the "LEVEL N" banner stays up
	tick      uint64

	menuCursor     int
	settingsCursor int
	volume         float64
	exit           bool

	cues   CueSink
	store  HighScoreStore
	logger *log.Logger
}

// New creates a game using cfg. Call Reset before the first Step.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:    cfg,
		cues:   nopSink{},
		store:  &memoryStore{},
		logger: log.New(io.Discard),
		volume: cfg.Audio.Volume,
	}
}

// SetCueSink sets where sound cues go. nil silences the game.
func (g *Game) SetCueSink(s CueSink) {
	if s == nil {
		s = nopSink{}
	}
	g.cues = s
	if vs, ok := s.(VolumeSetter); ok {
		vs.SetVolume(g.volume)
	}
}

// SetHighScoreStore sets the high-score persistence. nil keeps the best
// score in memory only.
func (g *Game) SetHighScoreStore(s HighScoreStore) {
	if s == nil {
		s = &memoryStore{}
	}
	g.store = s
}

// SetLogger sets the debug logger.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Reset initializes the session and returns to the menu. The high score
// is loaded from the store here, once.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = NewRNG(runtime.Seed)
	g.reg = NewRegistry()
	g.resolver = NewResolver(g.cfg.World, g.cfg.Physics)
	g.effects = NewEffects(g.cfg.Effects, g.cfg.World, runtime.Seed^0x5eed)
	g.combo = NewCombo(g.cfg.Combo)
	g.resetPaddle()

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = LevelState{}
	g.summary = Summary{}
	g.banner = 0
	g.tick = 0
	g.menuCursor = 0
	g.settingsCursor = 0
	g.exit = false
	g.mode = ModeMenu

	g.highScore = max(0, g.store.Load())
	g.logger.Debug("session reset", "seed", runtime.Seed, "highscore", g.highScore)
}

// Resize updates the screen size used for layout and mouse hit-testing.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	dt := in.Delta.Seconds()
	if dt <= 0 {
		dt = g.runtime.TickInterval().Seconds()
	}
	dt = min(dt, maxFrameDelta)
	g.tick++

	switch g.mode {
	case ModeMenu:
		g.updateMenu(in, dt)
	case ModePlaying:
		g.updatePlaying(in, dt)
	case ModePaused:
		g.updatePaused(in)
	case ModeLevelSummary:
		g.updateSummary(in, dt)
	case ModeGameOver, ModeWin:
		g.updateRunOver(in, dt)
	case ModeSettings:
		g.updateSettings(in)
	case ModeHowToPlay:
		g.updateHowToPlay(in)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level.Number,
		Mode:     g.mode.String(),
		GameOver: g.mode == ModeGameOver || g.mode == ModeWin,
		Paused:   g.mode == ModePaused,
		Exit:     g.exit,
	}
}

// Mode returns the active mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// HighScore returns the best score known to the session.
func (g *Game) HighScore() int {
	return g.highScore
}

// Registry exposes the entity pools, mainly for tests.
func (g *Game) Registry() *Registry {
	return g.reg
}

func (g *Game) setMode(m Mode) {
	if g.mode == m {
		return
	}
	g.logger.Debug("mode change", "from", g.mode, "to", m, "level", g.level.Number, "score", g.score)
	g.mode = m
}

func (g *Game) play(c core.Cue) {
	g.cues.Play(c)
}

// resetPaddle centres the paddle at its configured size and drops buffs.
func (g *Game) resetPaddle() {
	w := g.cfg.Paddle.Width
	g.paddle = Paddle{
		Rect: core.NewRect(
			(g.cfg.World.Width-w)/2,
			g.cfg.World.Height-g.cfg.Paddle.YOffset,
			w,
			g.cfg.Paddle.Height,
		),
		BaseWidth: w,
	}
}

// recordHighScore raises the high score and persists it. The store is
// re-read first since other sessions may share it.
func (g *Game) recordHighScore() {
	g.highScore = max(g.highScore, g.store.Load())
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	g.store.Save(g.highScore)
	g.logger.Info("new high score", "score", g.highScore)
}
