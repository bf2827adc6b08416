package smashout

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/smash-out/internal/core"
)

// Visual characters for rendering
const (
	BallChar         = '●'
	PaddleChar       = '█'
	PaddleSquashChar = '▄'
	BrickChar        = '█'
	HiddenBrickChar  = '░'
	DebrisChar       = '·'
	TrailChar        = '∙'
	DeathChar        = '*'
	StarChar         = '.'
	HeartChar        = '♥'
)

// Minimum terminal size for the playfield.
const (
	MinScreenW = 40
	MinScreenH = 20
)

const (
	hudRows      = 3  // Score line, status line, separator
	buttonWidth  = 17 // Width of a menu button, brackets included
	volumeBarLen = 30

	trailPoints = 2 // Dots behind each ball
	trailStep   = 3 // Ticks of travel between dots
)

// Render draws the current game state to the screen. It only reads state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	snap := g.Snapshot()

	switch snap.Mode {
	case ModeMenu:
		g.renderMenu(dst, &snap)
	case ModeSettings:
		g.renderSettings(dst, &snap)
	case ModeHowToPlay:
		renderHowToPlay(dst)
	default:
		g.renderField(dst, &snap)
		renderHUD(dst, &snap)
		g.renderOverlay(dst, &snap)
	}
}

// toCell maps a world position to a screen cell.
func (g *Game) toCell(dst *core.Screen, p core.Vec2) (int, int) {
	x := p.X * float64(dst.Width()) / g.cfg.World.Width
	y := p.Y * float64(dst.Height()) / g.cfg.World.Height
	return int(math.Floor(x)), int(math.Floor(y))
}

// renderField draws bricks, pickups, paddle, balls and cosmetics, offset
// by the current screen shake.
func (g *Game) renderField(dst *core.Screen, snap *Snapshot) {
	shift := func(p core.Vec2) core.Vec2 { return p.Add(snap.ShakeOffset) }

	for i, b := range snap.Bricks {
		if !b.Active {
			continue
		}
		x0, y := g.toCell(dst, shift(core.Vec2{X: b.Rect.X, Y: b.Rect.Y}))
		x1, _ := g.toCell(dst, shift(core.Vec2{X: b.Rect.Right(), Y: b.Rect.Y}))
		if y < hudRows {
			continue
		}
		glyph, color := brickLook(b, i/GridCols)
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}

	for _, p := range snap.PowerUps {
		x, y := g.toCell(dst, shift(p.Rect.Center()))
		if y >= hudRows {
			dst.SetColored(x, y, p.Type.Glyph(), PowerUpColor(p.Type))
		}
	}

	for _, p := range snap.Particles {
		x, y := g.toCell(dst, shift(p.Pos))
		if y < hudRows {
			continue
		}
		if p.Kind == ParticleDeath {
			dst.SetColored(x, y, DeathChar, p.Color)
		} else {
			dst.SetColored(x, y, DebrisChar, p.Color)
		}
	}

	paddle := snap.Paddle
	x0, y := g.toCell(dst, shift(core.Vec2{X: paddle.Rect.X, Y: paddle.Rect.Y}))
	x1, _ := g.toCell(dst, shift(core.Vec2{X: paddle.Rect.Right(), Y: paddle.Rect.Y}))
	glyph, color := PaddleChar, core.ColorBrightWhite
	if paddle.Squash > 0 {
		glyph = PaddleSquashChar
	}
	if paddle.BuffTimer > 0 {
		color = core.ColorBrightGreen
	}
	for x := x0; x < max(x1, x0+1); x++ {
		dst.SetColored(x, y, glyph, color)
	}

	trailColors := [trailPoints]core.Color{core.ColorWhite, core.ColorGray}
	for _, b := range snap.Balls {
		bx, by := g.toCell(dst, shift(b.Pos))
		for i := range trailPoints {
			p := b.Pos.Add(b.Vel.Scale(-float64((i + 1) * trailStep)))
			x, y := g.toCell(dst, shift(p))
			if y < hudRows || (x == bx && y == by) || dst.Get(x, y) != ' ' {
				continue
			}
			dst.SetColored(x, y, TrailChar, trailColors[i])
		}
	}

	for _, b := range snap.Balls {
		x, y := g.toCell(dst, shift(b.Pos))
		if y >= hudRows {
			dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
		}
	}

	for _, t := range snap.Texts {
		x, y := g.toCell(dst, shift(t.Pos))
		if y >= hudRows {
			dst.DrawTextColored(x-len([]rune(t.Text))/2, y, t.Text, core.ColorOrange)
		}
	}
}

// brickLook returns glyph and color for a brick. Undiscovered invisible
// bricks are drawn as faint outlines; tough bricks fade as they crack.
func brickLook(b Brick, row int) (rune, core.Color) {
	switch {
	case b.Type == BrickInvisible && !b.Discovered:
		return HiddenBrickChar, core.ColorGray
	case b.Type == BrickTough && b.Health >= 3:
		return '▓', core.ColorWhite
	case b.Type == BrickTough && b.Health == 2:
		return '▒', core.ColorWhite
	case b.Type == BrickTough:
		return '░', core.ColorWhite
	}
	return BrickChar, BrickColor(b.Type, row)
}

// renderHUD draws score, level, best, lives and the combo/buff status line.
func renderHUD(dst *core.Screen, snap *Snapshot) {
	w := dst.Width()

	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", snap.Score), core.ColorBrightWhite)
	dst.DrawTextCenteredColored(0, fmt.Sprintf("LEVEL %d", snap.Level.Number), core.ColorBrightYellow)
	hearts := strings.Repeat(string(HeartChar), snap.Lives)
	dst.DrawTextColored(w-len([]rune(hearts))-1, 0, hearts, core.ColorRed)

	dst.DrawTextColored(1, 1, fmt.Sprintf("BEST %d", snap.HighScore), core.ColorOrange)
	if snap.Combo.Visible() {
		dst.DrawTextCenteredColored(1, fmt.Sprintf("COMBO x%.1f", snap.Combo.Multiplier), core.ColorOrange)
	}
	if snap.Paddle.BuffTimer > 0 {
		buff := fmt.Sprintf("BUFF %.0fs", math.Ceil(snap.Paddle.BuffTimer))
		dst.DrawTextColored(w-len(buff)-1, 1, buff, core.ColorBrightGreen)
	}

	dst.DrawHLine(0, 2, w, '─', core.ColorGray)
}

// renderOverlay draws banners and the modal boxes of non-playing modes.
func (g *Game) renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch snap.Mode {
	case ModePlaying:
		if snap.Banner > 0 {
			dst.DrawTextCenteredColored(dst.Height()/2, fmt.Sprintf("LEVEL %d", snap.Level.Number), core.ColorBrightYellow)
		}

	case ModePaused:
		drawCenteredBox(dst, core.ColorBrightWhite, "PAUSED", "", "P or ESC to resume", "Q to quit to menu")

	case ModeLevelSummary:
		next := "SPACE to continue"
		if snap.Summary.Timer > 0 {
			next = fmt.Sprintf("Next level in %.0f... (SPACE)", math.Ceil(snap.Summary.Timer))
		}
		drawCenteredBox(dst, core.ColorBrightGreen,
			fmt.Sprintf("LEVEL %d COMPLETE", snap.Level.Number),
			"",
			fmt.Sprintf("Time: %.1fs", snap.Summary.CompletionTime),
			fmt.Sprintf("Bricks: %d", snap.Summary.BricksSmashed),
			fmt.Sprintf("Time Bonus: +%d", snap.Summary.TimeBonus),
			"",
			next,
		)

	case ModeGameOver, ModeWin:
		title, color := "GAME OVER!", core.ColorBrightRed
		if snap.Mode == ModeWin {
			title, color = "YOU WIN!", core.ColorBrightGreen
		}
		lines := []string{title, "", fmt.Sprintf("Final Score: %d", snap.Score), fmt.Sprintf("High Score: %d", snap.HighScore)}
		if snap.Score > 0 && snap.Score >= snap.HighScore {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "", "SPACE to return to menu")
		drawCenteredBox(dst, color, lines...)
	}
}

// drawCenteredBox draws a centered message box; the first line is the
// title and takes the accent color.
func drawCenteredBox(dst *core.Screen, accent core.Color, lines ...string) {
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = accent
		}
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, boxY+1+i, l, color)
	}
}

// menuTop returns the row of the first menu button.
func menuTop(h int) int {
	return h/2 - 1
}

// MenuItemAt returns the menu button under the given cell, if any.
func (g *Game) MenuItemAt(x, y int) (MenuItem, bool) {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	left := (w - buttonWidth) / 2
	if x < left || x >= left+buttonWidth {
		return 0, false
	}
	for i := range int(menuItemCount) {
		if y == menuTop(h)+2*i {
			return MenuItem(i), true
		}
	}
	return 0, false
}

func (g *Game) renderMenu(dst *core.Screen, snap *Snapshot) {
	w, h := dst.Width(), dst.Height()

	for _, s := range snap.Stars {
		x, y := g.toCell(dst, s)
		dst.SetColored(x, y, StarChar, core.ColorBlue)
	}

	dst.DrawTextCenteredColored(h/5, "S M A S H   O U T !", core.ColorBrightYellow)
	dst.DrawTextCenteredColored(h/5+2, fmt.Sprintf("High Score: %d", snap.HighScore), core.ColorOrange)
	dst.DrawTextCenteredColored(h/5+3, "Click to Play or Press SPACE", core.ColorGray)

	left := (w - buttonWidth) / 2
	for i := range int(menuItemCount) {
		item := MenuItem(i)
		color := core.ColorWhite
		label := item.String()
		if i == snap.MenuCursor {
			color = core.ColorBrightCyan
			label = "> " + label + " <"
		}
		pad := buttonWidth - 2 - len(label)
		text := "[" + strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2) + "]"
		dst.DrawTextColored(left, menuTop(h)+2*i, text, color)
	}

	dst.DrawTextCenteredColored(h-2, "↑/↓ select  Enter confirm  Ctrl+C quit", core.ColorGray)
}

// Settings screen rows, relative to the screen middle.
func volumeRow(h int) int { return h/2 - 1 }
func backRow(h int) int   { return h/2 + 3 }

func volumeBarLeft(w int) int {
	return (w-volumeBarLen)/2 + 1
}

// volumeAt maps a click on the volume bar to a volume level.
func (g *Game) volumeAt(x, y int) (float64, bool) {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	left := volumeBarLeft(w)
	if y != volumeRow(h) || x < left || x >= left+volumeBarLen {
		return 0, false
	}
	return float64(x-left+1) / volumeBarLen, true
}

// settingsBackAt reports whether the click hit the Back button.
func (g *Game) settingsBackAt(x, y int) bool {
	left := (g.runtime.ScreenW - buttonWidth) / 2
	return y == backRow(g.runtime.ScreenH) && x >= left && x < left+buttonWidth
}

func (g *Game) renderSettings(dst *core.Screen, snap *Snapshot) {
	w, h := dst.Width(), dst.Height()

	dst.DrawTextCenteredColored(h/5, "SETTINGS", core.ColorBrightYellow)

	labelColor := core.ColorGray
	if snap.SettingsCursor == settingsVolume {
		labelColor = core.ColorBrightCyan
	}
	dst.DrawTextCenteredColored(volumeRow(h)-2, "Master Volume", labelColor)

	left := volumeBarLeft(w)
	dst.SetColored(left-1, volumeRow(h), '[', core.ColorWhite)
	filled := core.Clamp(int(math.Round(snap.Volume*volumeBarLen)), 0, volumeBarLen)
	dst.DrawHLine(left, volumeRow(h), filled, '█', core.ColorBrightGreen)
	dst.DrawHLine(left+filled, volumeRow(h), volumeBarLen-filled, '░', core.ColorGray)
	dst.SetColored(left+volumeBarLen, volumeRow(h), ']', core.ColorWhite)
	dst.DrawTextCenteredColored(volumeRow(h)+1, fmt.Sprintf("%d%%", int(math.Round(snap.Volume*100))), core.ColorYellow)

	backColor := core.ColorWhite
	if snap.SettingsCursor == settingsBack {
		backColor = core.ColorBrightCyan
	}
	dst.DrawTextCenteredColored(backRow(h), "[     BACK      ]", backColor)

	dst.DrawTextCenteredColored(h-2, "←/→ or click the bar to adjust  ESC back", core.ColorGray)
}

var howToPlay = []struct {
	text  string
	color core.Color
}{
	{"HOW TO PLAY", core.ColorBrightYellow},
	{"", 0},
	{"CONTROLS", core.ColorBrightCyan},
	{"←/→ or A/D  move paddle    P or ESC  pause    SPACE  continue", core.ColorWhite},
	{"", 0},
	{"POWER-UPS", core.ColorBrightCyan},
	{"M Multiball  W Wide Paddle 10s  S Screen Wide 5s  ♥ Extra Life", core.ColorWhite},
	{"", 0},
	{"BRICKS", core.ColorBrightCyan},
	{"Normal 10   Tough 2-3 hits 30   Explosive clears neighbours", core.ColorWhite},
	{"Speed ball +20% 25   Invisible hidden 15", core.ColorWhite},
	{"", 0},
	{"COMBO", core.ColorBrightCyan},
	{"Hit bricks without touching the paddle: x1.0 up to x3.0", core.ColorWhite},
	{"", 0},
	{"TIME BONUS", core.ColorBrightCyan},
	{"Clear a level in under 60s for up to 500 points", core.ColorWhite},
}

func renderHowToPlay(dst *core.Screen) {
	top := max(0, (dst.Height()-len(howToPlay))/2-1)
	for i, l := range howToPlay {
		dst.DrawTextCenteredColored(top+i, l.text, l.color)
	}
	dst.DrawTextCenteredColored(dst.Height()-2, "ESC or SPACE to return", core.ColorGray)
}
