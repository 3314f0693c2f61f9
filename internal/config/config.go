// Package config provides YAML-based game configuration loading and
// difficulty management for Onet.
package config

import (
	"errors"
	"fmt"
)

// OnetConfig contains all configuration for the Onet game.
type OnetConfig struct {
	Board      OnetBoard        `yaml:"board"`
	Rules      OnetRules        `yaml:"rules"`
	Scoring    OnetScoring      `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// OnetBoard defines the dealt board.
type OnetBoard struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
	Kinds   int `yaml:"kinds"`
}

// OnetRules defines gameplay rules.
type OnetRules struct {
	Strategy  string `yaml:"strategy"`   // "ray" or "track"
	Shuffles  int    `yaml:"shuffles"`   // per level, -1 for unlimited
	Hints     int    `yaml:"hints"`      // per level, -1 for unlimited
	TimeLimit int    `yaml:"time_limit"` // seconds per level, 0 for none
}

// OnetScoring defines how points are awarded.
type OnetScoring struct {
	PairPoints  int `yaml:"pair_points"`
	ComboWindow int `yaml:"combo_window"` // ticks
	ComboBonus  int `yaml:"combo_bonus"`
	HintPenalty int `yaml:"hint_penalty"`
	TimeBonus   int `yaml:"time_bonus"` // per second left
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TimeReduction int `yaml:"time_reduction"` // Seconds removed from the clock at max difficulty
	ExtraKinds    int `yaml:"extra_kinds"`    // Tile kinds added at max difficulty
}

// Strategy names accepted in rules.strategy.
const (
	StrategyRay   = "ray"
	StrategyTrack = "track"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid onet config")

// Validate checks that the configuration describes a playable game.
func (c OnetConfig) Validate() error {
	switch {
	case c.Board.Columns <= 0 || c.Board.Rows <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Board.Columns, c.Board.Rows)
	case c.Board.Columns*c.Board.Rows < 2:
		return fmt.Errorf("%w: board must hold at least one pair", ErrInvalidConfig)
	case c.Board.Kinds <= 0:
		return fmt.Errorf("%w: kinds must be positive, got %d", ErrInvalidConfig, c.Board.Kinds)
	case c.Rules.Strategy != StrategyRay && c.Rules.Strategy != StrategyTrack:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, c.Rules.Strategy)
	case c.Rules.TimeLimit < 0:
		return fmt.Errorf("%w: time_limit must not be negative", ErrInvalidConfig)
	case c.Scoring.ComboWindow < 0:
		return fmt.Errorf("%w: combo_window must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyZen    DifficultyPreset = "zen"
)

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyZen:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or zen)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
