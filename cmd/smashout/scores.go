package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/smash-out/internal/platform/tui"
	"github.com/vovakirdan/smash-out/internal/storage"
)

var (
	flagScoresPlain bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Browse finished runs: the best scores and the most recent games.

Use Tab to switch between the Top and Recent lists, q or Esc to quit.

Examples:
  smashout scores
  smashout scores --plain --limit 5
  smashout scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print the top runs instead of opening the table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole run history")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs printed with --plain")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run history: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	case flagScoresPlain:
		return printScores(store)
	}

	rc := runtimeConfig()
	return tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
}

func printScores(store *storage.Store) error {
	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println("High Scores - Smash Out")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'smashout' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %-10s  %s\n", "Rank", "Score", "Level", "Result", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %-10s  %s\n", "----", "-----", "-----", "------", "----------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10d  %-5d  %-8s  %-10s  %s\n",
			i+1, r.Score, r.Level, r.Outcome, r.Difficulty, r.PlayedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Wins: %d\n", stats.HighScore, stats.Runs, stats.AvgScore, stats.Wins)
	}
	return nil
}
