package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/smash-out/internal/platform/tui"
	"github.com/vovakirdan/smash-out/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Smash Out SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Players share the high score and
the run history of the server. Sessions are silent.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.smashout/host_key

Examples:
  smashout serve                           # Listen on :23234 with auto-generated key
  smashout serve --ssh :2222               # Listen on port 2222
  smashout serve --host-key ./my_host_key  # Use specific host key
  smashout serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	game, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Game = game
	cfg.Difficulty = string(preset)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		stderrLogger.Warn("serving without run history", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, highScoreStore(stderrLogger), store)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting Smash Out SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
