// smashout is a brick-breaker for the terminal.
//
// Usage:
//
//	smashout                 - Play in this terminal
//	smashout scores          - Show the run history
//	smashout serve           - Start SSH server for remote play
//	smashout config          - Print the default game config
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Use a custom game config YAML
//	--difficulty <preset>   - easy, normal or hard
//	--db <path>             - Set run history path (default: ~/.smashout/runs.db)
//	--highscore <path>      - Set high score file (default: ~/.smashout/highscore.txt)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagHighScore  string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "smashout",
	Short: "Smash Out - break bricks in your terminal",
	Long: `Smash Out is a brick-breaker for the terminal: bounce the ball off
your paddle, clear every brick, chase combos and catch power-ups.

Controls:
  Left/Right, A/D  - Move paddle
  Space            - Start / continue
  Enter            - Select menu entry
  P, Esc           - Pause
  Q                - Quit run (while paused)
  Ctrl+S           - Screenshot
  ?                - Toggle help
  Ctrl+C           - Exit

Examples:
  smashout
  smashout --difficulty hard
  smashout --config ./my-smashout.yaml --seed 42
  smashout scores
  smashout serve --ssh :2222`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.smashout/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "~/.smashout/highscore.txt", "Path to high score file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.smashout/debug.log")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
