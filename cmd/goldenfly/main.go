// goldenfly is a one-button endless runner for the terminal and the desktop.
//
// Usage:
//
//	goldenfly                - Play in the terminal (same as "play")
//	goldenfly play           - Play in the terminal
//	goldenfly gui            - Play in a window
//	goldenfly scores         - Show run history and the high score
//	goldenfly config         - Print the effective runner configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacles
//	--db <path>           - Set database path (default: ~/.goldenfly/scores.db)
//	--config <path>       - Use a custom runner config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/golden-fly/internal/config"
	"github.com/vovakirdan/golden-fly/internal/core"
	"github.com/vovakirdan/golden-fly/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "goldenfly",
	Short: "Golden Fly - jump the obstacles, keep the streak",
	Long: `Golden Fly is a one-button endless runner. The fly runs on its own;
jump over the obstacles that scroll in from the right. Every obstacle that
leaves the screen is worth a point, and the game speeds up as you go.

Available commands:
  play     - Play in the terminal (default)
  gui      - Play in a window
  scores   - View run history
  config   - Print the effective configuration

Examples:
  goldenfly
  goldenfly play --difficulty hard
  goldenfly gui --scale 3
  goldenfly scores -i
  goldenfly config > my-runner.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.goldenfly/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close func is always non-nil.
func newLogger(fallback io.Writer, levelName, path string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", levelName, err)
	}

	out := fallback
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "goldenfly",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadRunnerConfig resolves the runner config from --config and the search
// path, then applies --difficulty.
func loadRunnerConfig(logger *log.Logger, path, difficulty string) (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	cfg, source, err := config.LoadRunnerReporting(path, func(file string, err error) {
		logger.Warn("ignoring config file", "path", file, "error", err)
	})
	if err != nil {
		return config.RunnerConfig{}, err
	}
	logger.Debug("config loaded", "source", source)

	if preset != "" {
		config.ApplyPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			return config.RunnerConfig{}, fmt.Errorf("difficulty %s: %w", preset, err)
		}
	}
	return cfg, nil
}

// openStore opens the scores database. Failure is not fatal: the game
// falls back to an in-memory high score.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
