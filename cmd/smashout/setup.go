package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/smash-out/internal/config"
	"github.com/vovakirdan/smash-out/internal/core"
	"github.com/vovakirdan/smash-out/internal/highscore"
)

// stderrLogger reports problems before and after the alt screen.
var stderrLogger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "smashout"})

// loadGameConfig loads the YAML config and applies the difficulty flag.
func loadGameConfig() (config.Config, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Config{}, "", err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	return rc
}

// debugLogger returns the logger handed to the game. It writes to a file
// with --debug and discards everything otherwise; the terminal belongs to
// the game while it runs.
func debugLogger() (*log.Logger, func(), error) {
	if !flagDebug {
		return log.New(io.Discard), func() {}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".smashout")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open debug log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "smashout",
	})
	return logger, func() { f.Close() }, nil
}

// highScoreStore opens the --highscore file. Warnings go to logger, never
// to the terminal the game is drawing on.
func highScoreStore(logger *log.Logger) *highscore.FileStore {
	return highscore.NewFileStore(flagHighScore, logger)
}
