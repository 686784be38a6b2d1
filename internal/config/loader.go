package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// SkipFunc is called for a config file that exists but could not be used.
type SkipFunc func(path string, err error)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.goldenfly/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded over the built-in defaults, so partial files only override what they name.
func LoadRunner(customPath string) (RunnerConfig, Source, error) {
	return LoadRunnerReporting(customPath, nil)
}

// LoadRunnerReporting is LoadRunner with a callback for unreadable or invalid
// user and local files, which are otherwise skipped.
func LoadRunnerReporting(customPath string, onSkip SkipFunc) (RunnerConfig, Source, error) {
	skip := func(path string, err error) {
		if onSkip != nil {
			onSkip(path, err)
		}
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseRunner(data)
		if err != nil {
			return RunnerConfig{}, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg, err := ParseRunner(data)
			if err == nil {
				return cfg, SourceUser, nil
			}
			skip(userCfgPath, err)
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "runner.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		cfg, err := ParseRunner(data)
		if err == nil {
			return cfg, SourceLocal, nil
		}
		skip(localPath, err)
	}

	// Use embedded default YAML
	cfg, err := ParseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// ParseRunner decodes YAML over the built-in defaults and validates the result.
func ParseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".goldenfly", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Max = 6
		cfg.Gap.Min = 200
	case DifficultyHard:
		cfg.Speed.Initial = 3
		cfg.Speed.Max = 10
		cfg.Speed.Rate = 0.0012
		cfg.Gap.Max = 220
		cfg.Gap.Min = 130
	case DifficultyFixed:
		cfg.Speed.Rate = 0
		cfg.Gap.Step = 0
	}
}
