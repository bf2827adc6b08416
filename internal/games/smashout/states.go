package smashout

import "github.com/vovakirdan/smash-out/internal/core"

// Mode is the top-level game state. Exactly one is active per tick.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeLevelSummary
	ModeGameOver
	ModeWin
	ModeSettings
	ModeHowToPlay
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeLevelSummary:
		return "summary"
	case ModeGameOver:
		return "gameover"
	case ModeWin:
		return "win"
	case ModeSettings:
		return "settings"
	case ModeHowToPlay:
		return "howtoplay"
	default:
		return "?"
	}
}

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuSettings
	MenuHowToPlay
	MenuExit
	menuItemCount
)

// String returns the button label.
func (m MenuItem) String() string {
	switch m {
	case MenuStart:
		return "START"
	case MenuSettings:
		return "SETTINGS"
	case MenuHowToPlay:
		return "HOW TO PLAY"
	case MenuExit:
		return "EXIT"
	default:
		return "?"
	}
}

// Settings screen rows.
const (
	settingsVolume = iota
	settingsBack
	settingsRowCount
)

const volumeStep = 0.1

func (g *Game) updateMenu(in core.InputFrame, dt float64) {
	g.effects.UpdateStars(dt)

	if in.Has(core.ActionUp) {
		g.menuCursor = (g.menuCursor + int(menuItemCount) - 1) % int(menuItemCount)
	}
	if in.Has(core.ActionDown) {
		g.menuCursor = (g.menuCursor + 1) % int(menuItemCount)
	}

	switch {
	case in.Has(core.ActionStart):
		g.activateMenuItem(MenuStart)
	case in.Has(core.ActionConfirm):
		g.activateMenuItem(MenuItem(g.menuCursor))
	case in.Pointer.Clicked:
		if item, ok := g.MenuItemAt(in.Pointer.X, in.Pointer.Y); ok {
			g.menuCursor = int(item)
			g.activateMenuItem(item)
		}
	}
}

func (g *Game) activateMenuItem(item MenuItem) {
	switch item {
	case MenuStart:
		g.StartRun()
	case MenuSettings:
		g.settingsCursor = settingsVolume
		g.setMode(ModeSettings)
	case MenuHowToPlay:
		g.setMode(ModeHowToPlay)
	case MenuExit:
		g.exit = true
	}
}

// StartRun begins a new run at level 1 with full lives and zero score.
func (g *Game) StartRun() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.combo = NewCombo(g.cfg.Combo)
	g.reg.Reset()
	g.effects.StopShake()
	g.resetPaddle()
	g.loadLevel(1)
	g.setMode(ModePlaying)
}

// loadLevel generates level n and places its first ball. Power-ups are
// cleared and the paddle returns to its base geometry.
func (g *Game) loadLevel(n int) {
	lvl, err := GenerateLevel(n, g.rng, g.cfg.Bricks, g.cfg.Physics)
	if err != nil {
		g.logger.Error("level generation failed", "level", n, "err", err)
		return
	}

	g.reg.Bricks = lvl.Bricks
	g.reg.Balls.Clear()
	g.reg.PowerUps.Clear()
	g.reg.Balls.Spawn(Ball{
		Pos:    core.Vec2{X: g.cfg.World.Width / 2, Y: g.cfg.World.Height - 100},
		Vel:    lvl.BallVelocity,
		Radius: g.cfg.Physics.BallRadius,
		Active: true,
	})

	g.level = LevelState{Number: n, Pattern: lvl.Pattern}
	g.combo.Reset()
	g.resetPaddle()
	g.banner = g.cfg.Gameplay.BannerDuration

	g.logger.Debug("level loaded", "level", n, "pattern", lvl.Pattern, "bricks", g.reg.ActiveBricks())
}

func (g *Game) updatePlaying(in core.InputFrame, dt float64) {
	if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
		g.setMode(ModePaused)
		return
	}

	g.level.Elapsed += dt
	if g.banner > 0 {
		g.banner = max(0, g.banner-dt)
	}
	g.combo.Tick(dt)
	g.updateBuff(dt)
	g.movePaddle(in)

	for _, ev := range g.resolver.StepBalls(g.reg, &g.paddle) {
		g.handleEvent(ev)
	}

	if g.reg.Balls.ActiveCount() == 0 {
		g.loseLife()
		if g.mode != ModePlaying {
			return
		}
	}

	for _, ev := range g.resolver.StepPowerUps(g.reg, &g.paddle) {
		g.handleEvent(ev)
	}

	g.effects.Update(g.reg, &g.paddle, dt)

	if g.reg.ActiveBricks() == 0 {
		g.enterSummary()
	}
}

// movePaddle moves the paddle a fixed distance per tick while a direction
// is held, clamped to the field.
func (g *Game) movePaddle(in core.InputFrame) {
	speed := g.cfg.Paddle.Speed
	if in.IsHeld(core.ActionLeft) {
		g.paddle.Rect.X -= speed
	}
	if in.IsHeld(core.ActionRight) {
		g.paddle.Rect.X += speed
	}
	g.paddle.Rect.X = core.ClampF(g.paddle.Rect.X, 0, g.cfg.World.Width-g.paddle.Rect.W)
}

// handleEvent applies the gameplay and cosmetic consequences of one event.
func (g *Game) handleEvent(ev Event) {
	switch ev.Kind {
	case EventWallHit:
		g.play(core.CueWallHit)

	case EventPaddleHit:
		g.combo.Reset()
		g.play(core.CuePaddleHit)

	case EventBrickHit:
		g.combo.Hit()
		g.score += g.combo.Scale(ev.Points)
		g.level.BricksSmashed += len(ev.Destroyed)
		g.trySpawnPowerUp(g.reg.Bricks[ev.Brick].Rect.Center())
		g.play(core.CueBrickHit)

	case EventPowerUpCollected:
		g.applyPowerUp(ev.PowerUp)
		g.play(core.CuePowerUp)
	}

	g.effects.React(ev, g.reg, &g.paddle, g.combo)
}

// loseLife is called when the last ball has left the field.
func (g *Game) loseLife() {
	g.lives--
	g.logger.Debug("life lost", "lives", g.lives, "level", g.level.Number)

	if g.lives <= 0 {
		g.lives = 0
		g.play(core.CueGameOver)
		g.recordHighScore()
		g.setMode(ModeGameOver)
		return
	}

	g.play(core.CueLifeLost)
	g.combo.Reset()
	g.reg.Balls.Spawn(Ball{
		Pos:    core.Vec2{X: g.cfg.World.Width / 2, Y: g.cfg.World.Height / 2},
		Vel:    core.Vec2{X: g.cfg.Physics.BallSpeed, Y: -g.cfg.Physics.BallSpeed},
		Radius: g.cfg.Physics.BallRadius,
		Active: true,
	})
}

// enterSummary freezes the level clock and grants the time bonus once.
func (g *Game) enterSummary() {
	gp := g.cfg.Gameplay
	bonus := TimeBonus(g.level.Elapsed, gp.TimeBonusLimit, gp.TimeBonusMax)
	g.score += bonus
	g.summary = Summary{
		CompletionTime: g.level.Elapsed,
		TimeBonus:      bonus,
		BricksSmashed:  g.level.BricksSmashed,
		Timer:          gp.SummaryDuration,
	}
	g.setMode(ModeLevelSummary)
}

func (g *Game) updatePaused(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause) || in.Has(core.ActionBack):
		g.setMode(ModePlaying)
	case in.Has(core.ActionQuit):
		g.abandonRun()
	}
}

// abandonRun returns to the menu, discarding the run in progress.
func (g *Game) abandonRun() {
	g.combo = NewCombo(g.cfg.Combo)
	g.level.Elapsed = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.setMode(ModeMenu)
}

func (g *Game) updateSummary(in core.InputFrame, dt float64) {
	g.effects.Update(g.reg, &g.paddle, dt)
	g.summary.Timer -= dt
	if g.summary.Timer > 0 && !in.Has(core.ActionConfirm) && !in.Has(core.ActionStart) {
		return
	}

	if maxLevel := g.cfg.Gameplay.MaxLevel; maxLevel > 0 && g.level.Number >= maxLevel {
		g.recordHighScore()
		g.setMode(ModeWin)
		return
	}

	g.loadLevel(g.level.Number + 1)
	g.setMode(ModePlaying)
}

func (g *Game) updateRunOver(in core.InputFrame, dt float64) {
	g.effects.Update(g.reg, &g.paddle, dt)
	if in.Has(core.ActionConfirm) || in.Has(core.ActionStart) || in.Has(core.ActionBack) {
		g.recordHighScore()
		g.combo = NewCombo(g.cfg.Combo)
		g.level.Elapsed = 0
		g.setMode(ModeMenu)
	}
}

func (g *Game) updateSettings(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.settingsCursor = (g.settingsCursor + settingsRowCount - 1) % settingsRowCount
	}
	if in.Has(core.ActionDown) {
		g.settingsCursor = (g.settingsCursor + 1) % settingsRowCount
	}

	if g.settingsCursor == settingsVolume {
		if in.Has(core.ActionLeft) {
			g.SetVolume(g.volume - volumeStep)
		}
		if in.Has(core.ActionRight) {
			g.SetVolume(g.volume + volumeStep)
		}
	}

	if in.Pointer.Clicked {
		if v, ok := g.volumeAt(in.Pointer.X, in.Pointer.Y); ok {
			g.SetVolume(v)
		} else if g.settingsBackAt(in.Pointer.X, in.Pointer.Y) {
			g.setMode(ModeMenu)
			return
		}
	}

	if in.Has(core.ActionBack) || (in.Has(core.ActionConfirm) && g.settingsCursor == settingsBack) {
		g.setMode(ModeMenu)
	}
}

// SetVolume sets the master volume, clamped to [0, 1], and forwards it to
// the cue sink when supported.
func (g *Game) SetVolume(v float64) {
	g.volume = core.ClampF(float64(int(v/volumeStep+0.5))*volumeStep, 0, 1)
	if vs, ok := g.cues.(VolumeSetter); ok {
		vs.SetVolume(g.volume)
	}
}

// Volume returns the master volume.
func (g *Game) Volume() float64 {
	return g.volume
}

func (g *Game) updateHowToPlay(in core.InputFrame) {
	if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) || in.Has(core.ActionStart) || in.Pointer.Clicked {
		g.setMode(ModeMenu)
	}
}
