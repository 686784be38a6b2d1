// Package config provides YAML-based runner configuration loading and
// the difficulty curve (obstacle gap and speed ramp).
package config

import (
	"errors"
	"fmt"
	"time"
)

// RunnerConfig contains all configuration for the Golden Fly runner.
type RunnerConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Gap       GapConfig       `yaml:"gap"`
	Speed     SpeedConfig     `yaml:"speed"`
	Milestone MilestoneConfig `yaml:"milestone"`
	Haptics   HapticsConfig   `yaml:"haptics"`
	Storage   StorageConfig   `yaml:"storage"`
}

// WorldConfig defines the logical render surface.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundY returns the y coordinate of the ground line.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundHeight
}

// PhysicsConfig defines per-tick physics constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = up
}

// PlayerConfig defines the player's fixed geometry.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines obstacle geometry. Heights are drawn uniformly
// from [MinHeight, MaxHeight).
type ObstacleConfig struct {
	Width     float64 `yaml:"width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
}

// GapConfig defines how the gap between obstacles shrinks with score.
// The gap starts at Max and loses Step every Every points, never going below Min.
type GapConfig struct {
	Max   float64 `yaml:"max"`
	Min   float64 `yaml:"min"`
	Step  float64 `yaml:"step"`
	Every int     `yaml:"every"`
}

// SpeedConfig defines the exponential-approach speed ramp.
type SpeedConfig struct {
	Initial float64 `yaml:"initial"`
	Max     float64 `yaml:"max"`
	Rate    float64 `yaml:"rate"` // Fraction of remaining headroom gained per tick
}

// MilestoneConfig defines the congratulatory banner.
type MilestoneConfig struct {
	Every      int      `yaml:"every"`
	DurationMS int      `yaml:"duration_ms"`
	Messages   []string `yaml:"messages"`
}

// Duration returns how long a milestone banner stays visible.
func (m MilestoneConfig) Duration() time.Duration {
	return time.Duration(m.DurationMS) * time.Millisecond
}

// HapticsConfig defines tactile feedback.
type HapticsConfig struct {
	CrashMS int `yaml:"crash_ms"`
}

// CrashPulse returns the vibration length used when a run ends.
func (h HapticsConfig) CrashPulse() time.Duration {
	return time.Duration(h.CrashMS) * time.Millisecond
}

// StorageConfig names the persisted values.
type StorageConfig struct {
	HighScoreKey string `yaml:"high_score_key"`
}

// Validate rejects configurations the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world: size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("world: ground_height %g out of range", c.World.GroundHeight))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics: gravity must be positive, got %g", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics: jump_impulse must be negative (upward), got %g", c.Physics.JumpImpulse))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player: size must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.MinHeight <= 0 || c.Obstacles.MaxHeight < c.Obstacles.MinHeight {
		errs = append(errs, errors.New("obstacles: width and heights must be positive with min_height <= max_height"))
	}
	if c.Gap.Min <= 0 || c.Gap.Max < c.Gap.Min || c.Gap.Step < 0 || c.Gap.Every <= 0 {
		errs = append(errs, errors.New("gap: require 0 < min <= max, step >= 0, every > 0"))
	}
	if c.Speed.Initial <= 0 || c.Speed.Max < c.Speed.Initial || c.Speed.Rate < 0 || c.Speed.Rate > 1 {
		errs = append(errs, errors.New("speed: require 0 < initial <= max and 0 <= rate <= 1"))
	}
	if c.Milestone.Every <= 0 {
		errs = append(errs, errors.New("milestone: every must be positive"))
	}
	if c.Storage.HighScoreKey == "" {
		errs = append(errs, errors.New("storage: high_score_key must not be empty"))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
