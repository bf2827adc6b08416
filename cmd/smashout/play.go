package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/smash-out/internal/audio"
	"github.com/vovakirdan/smash-out/internal/platform/tui"
	"github.com/vovakirdan/smash-out/internal/storage"
)

var flagMute bool

func init() {
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := debugLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts := tui.Options{
		Config:     cfg,
		Runtime:    runtimeConfig(),
		Difficulty: string(preset),
		HighScores: highScoreStore(logger),
		Logger:     logger,
	}

	// Continue without run history - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		stderrLogger.Warn("could not open run history", "err", err)
	} else {
		defer store.Close()
		opts.Runs = store
	}

	opts.Cues = audio.Silent{}
	if cfg.Audio.Enabled && !flagMute {
		player, err := audio.Open(cfg.Audio.Volume)
		if err != nil {
			stderrLogger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			opts.Cues = player
		}
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
