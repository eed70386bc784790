package config

import "github.com/vovakirdan/tui-shmup/internal/core"

// Progression types.
const (
	ProgressByScore = "score"
	ProgressByTime  = "time"
	ProgressNone    = "none"
)

// DifficultyManager turns score and elapsed ticks into a difficulty level
// and the enemy fire threshold derived from it.
type DifficultyManager struct {
	cfg     DifficultyConfig
	initial float64
}

// NewDifficultyManager creates a manager; the initial level is clamped to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:     cfg,
		initial: core.ClampF(cfg.InitialLevel, 0, 1),
	}
}

// progress reports how far along the progression axis the run is, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))

	switch d.cfg.Progression.Type {
	case ProgressByScore:
		return core.ClampF(float64(score)/maxAt, 0, 1)
	case ProgressByTime:
		return core.ClampF(float64(ticks)/maxAt, 0, 1)
	default:
		return 0
	}
}

// Level interpolates from the initial level to 1 as the run progresses.
// For a fixed score it never decreases as ticks grow.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	return d.initial + d.progress(score, ticks)*(1-d.initial)
}

// FireChance returns the per-frame enemy fire threshold.
// It grows from the base chance to base * (1 + fire_multiplier) at level 1.
func (d *DifficultyManager) FireChance(score, ticks int) float64 {
	return d.cfg.BaseFireChance * (1 + d.Level(score, ticks)*d.cfg.Scaling.FireMultiplier)
}
