package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/golden-fly/internal/games/runner"
	"github.com/vovakirdan/golden-fly/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Golden Fly in the terminal.

Controls:
  Enter          - Start / restart
  Space/Up/W     - Jump
  Mouse click    - Jump ([Pause] in the top bar pauses)
  P              - Pause / resume
  T              - Toggle light/dark theme
  F              - Toggle fullscreen (alternate screen)
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Lower top speed, wider minimum gap
  normal - The default curve
  hard   - Faster start, faster ramp, tighter gaps
  fixed  - No progression: constant speed and gap

Examples:
  goldenfly play
  goldenfly play --difficulty easy
  goldenfly play --seed 42 --log-file /tmp/goldenfly.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard, flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadRunnerConfig(logger, flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := []runner.Option{
		runner.WithConfig(cfg),
		runner.WithHaptics(tui.NewBellHaptics(os.Stderr)),
	}
	hostOpts := tui.Options{Logger: logger}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
		opts = append(opts, runner.WithHighScores(store))
		hostOpts.Runs = store
	}

	game := runner.New(opts...)
	if err := tui.Run(game, runtimeConfig(width, height), hostOpts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
