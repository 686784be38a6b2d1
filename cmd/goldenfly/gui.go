package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/golden-fly/internal/games/runner"
	"github.com/vovakirdan/golden-fly/internal/platform/gui"
)

var flagScale int

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a window",
	Long: `Play Golden Fly in a resizable window. The 480x320 playfield is scaled
to the window and keeps its 3:2 shape.

Controls:
  Enter          - Start / restart
  Space/Up/W     - Jump
  Click/tap      - Jump (starts a run when none is in progress)
  P or [Pause]   - Pause / resume
  T              - Toggle light/dark theme
  F              - Toggle fullscreen
  Q              - Quit

Examples:
  goldenfly gui
  goldenfly gui --scale 3 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runGUI,
}

func init() {
	guiCmd.Flags().IntVar(&flagScale, "scale", 2, "Initial window scale")
}

func runGUI(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr, flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadRunnerConfig(logger, flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	opts := []runner.Option{
		runner.WithConfig(cfg),
		runner.WithHaptics(gui.Vibrator{}),
	}
	hostOpts := gui.Options{Logger: logger, Scale: flagScale, TickRate: flagFPS}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
		opts = append(opts, runner.WithHighScores(store))
		hostOpts.Runs = store
	}

	rc := runtimeConfig(int(cfg.World.Width), int(cfg.World.Height))
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	game := runner.New(opts...)
	game.Reset(rc)

	if err := gui.Run(game, hostOpts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
