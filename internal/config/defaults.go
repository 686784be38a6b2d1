package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultMilestoneMessages are cycled through as the score passes milestones.
var DefaultMilestoneMessages = []string{"Great!", "Awesome!", "Keep it up!", "Nice!", "Wow!"}

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:        480,
			Height:       320,
			GroundHeight: 50,
		},
		Physics: PhysicsConfig{
			Gravity:     0.6,
			JumpImpulse: -12,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  30,
			Height: 30,
		},
		Obstacles: ObstacleConfig{
			Width:     25,
			MinHeight: 30,
			MaxHeight: 90,
		},
		Gap: GapConfig{
			Max:   250,
			Min:   150,
			Step:  25,
			Every: 10,
		},
		Speed: SpeedConfig{
			Initial: 2,
			Max:     8,
			Rate:    0.0008,
		},
		Milestone: MilestoneConfig{
			Every:      10,
			DurationMS: 1000,
			Messages:   append([]string(nil), DefaultMilestoneMessages...),
		},
		Haptics: HapticsConfig{
			CrashMS: 500,
		},
		Storage: StorageConfig{
			HighScoreKey: "goldenFlyHighScore",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
