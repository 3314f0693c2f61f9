package config

import "math"

// DifficultyManager derives per-level game parameters from the difficulty config.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for a 1-based level number.
func (d *DifficultyManager) Level(level int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 1 {
		return 1.0
	}

	progress := clampF(float64(level-1)/(maxAt-1), 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// TimeLimit returns the clock for a level in seconds. A zero base stays
// zero (no clock); otherwise at least 30 seconds are left.
func (d *DifficultyManager) TimeLimit(base, level int) int {
	if base <= 0 {
		return 0
	}
	reduction := int(d.Level(level) * float64(d.cfg.Scaling.TimeReduction))
	result := base - reduction
	if result < 30 { // Minimum playable clock
		result = 30
	}
	return result
}

// Kinds returns how many tile kinds are dealt on a level.
func (d *DifficultyManager) Kinds(base, level int) int {
	return base + int(d.Level(level)*float64(d.cfg.Scaling.ExtraKinds))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
