package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/golden-fly/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runner configuration",
	Long: `Print the runner configuration that would be used, as YAML, after the
search path and --difficulty are applied. Redirect it to a file to start a
custom config.

Search order:
  --config <path>
  ~/.goldenfly/configs/runner.yaml
  ./configs/runner.yaml
  built-in defaults

Examples:
  goldenfly config
  goldenfly config --difficulty hard > ~/.goldenfly/configs/runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr, flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadRunnerConfig(logger, flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
