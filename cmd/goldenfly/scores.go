package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/golden-fly/internal/config"
	"github.com/vovakirdan/golden-fly/internal/games/runner"
	"github.com/vovakirdan/golden-fly/internal/platform/tui"
	"github.com/vovakirdan/golden-fly/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history and the high score",
	Long: `Display the best runs and the persisted high score.

Examples:
  goldenfly scores
  goldenfly scores --limit 25
  goldenfly scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scrollable table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr, flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadRunnerConfig(logger, flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, runner.GameID, runner.GameTitle, width, height)
	}

	return printScores(cmd.OutOrStdout(), store, cfg, flagLimit)
}

// printScores writes the plain-text score report.
func printScores(w io.Writer, store *storage.Store, cfg config.RunnerConfig, limit int) error {
	runs, err := store.TopRuns(runner.GameID, limit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}
	high, err := store.LoadHighScore(cfg.Storage.HighScoreKey)
	if err != nil {
		return fmt.Errorf("error retrieving high score: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", runner.GameTitle)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'goldenfly play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range runs {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", high)

	if stats, err := store.Stats(runner.GameID); err == nil && stats.RunsCount > 0 {
		fmt.Fprintf(w, "Runs: %d  Average: %.1f\n", stats.RunsCount, stats.AvgScore)
	}
	return nil
}
