package config

import (
	"math"

	"github.com/vovakirdan/golden-fly/internal/core"
)

// Difficulty computes the score-dependent obstacle gap and the per-tick
// speed ramp from a RunnerConfig.
type Difficulty struct {
	gap   GapConfig
	speed SpeedConfig
}

// NewDifficulty creates a difficulty curve for the given config.
func NewDifficulty(cfg RunnerConfig) *Difficulty {
	return &Difficulty{
		gap:   cfg.Gap,
		speed: cfg.Speed,
	}
}

// TargetGap returns the gap reserved ahead of the next obstacle.
// It decays linearly per completed block of Every points and is clamped at Min.
func (d *Difficulty) TargetGap(score int) float64 {
	if score < 0 {
		score = 0
	}
	every := d.gap.Every
	if every <= 0 {
		every = 1
	}
	steps := float64(score / every)
	return math.Max(d.gap.Min, d.gap.Max-steps*d.gap.Step)
}

// InitialSpeed returns the scroll speed at the start of a run.
func (d *Difficulty) InitialSpeed() float64 {
	return d.speed.Initial
}

// MaxSpeed returns the speed cap.
func (d *Difficulty) MaxSpeed() float64 {
	return d.speed.Max
}

// NextSpeed advances the speed one tick toward the cap:
// speed += rate * (max - speed). Speed never exceeds the cap.
func (d *Difficulty) NextSpeed(speed float64) float64 {
	if speed >= d.speed.Max {
		return d.speed.Max
	}
	speed += d.speed.Rate * (d.speed.Max - speed)
	return math.Min(speed, d.speed.Max)
}

// Level returns how far the gap has shrunk, from 0.0 (widest) to 1.0 (narrowest).
func (d *Difficulty) Level(score int) float64 {
	span := d.gap.Max - d.gap.Min
	if span <= 0 {
		return 0
	}
	return core.ClampF((d.gap.Max-d.TargetGap(score))/span, 0.0, 1.0)
}
