package config

import (
	_ "embed"
)

//go:embed defaults/onet.yaml
var defaultOnetYAML []byte

// DefaultOnetConfig returns the default Onet configuration.
func DefaultOnetConfig() OnetConfig {
	return OnetConfig{
		Board: OnetBoard{
			Columns: 12,
			Rows:    7,
			Kinds:   18,
		},
		Rules: OnetRules{
			Strategy:  StrategyRay,
			Shuffles:  3,
			Hints:     3,
			TimeLimit: 300,
		},
		Scoring: OnetScoring{
			PairPoints:  10,
			ComboWindow: 90,
			ComboBonus:  5,
			HintPenalty: 20,
			TimeBonus:   1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				TimeReduction: 120,
				ExtraKinds:    8,
			},
		},
	}
}
