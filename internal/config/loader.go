package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOnet loads Onet configuration.
// Search order: customPath -> ~/.onet/configs/onet.yaml -> ./configs/onet.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it sets.
func LoadOnet(customPath string) (OnetConfig, error) {
	cfg := DefaultOnetConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("onet.yaml"), filepath.Join("configs", "onet.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path, cfg); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultOnetYAML, &cfg); err != nil {
		return DefaultOnetConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad decodes path over base. Unreadable, malformed and invalid files
// are skipped so the next location can be tried.
func tryLoad(path string, base OnetConfig) (OnetConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	if err := cfg.Validate(); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".onet", "configs", filename)
}

// ApplyOnetPreset modifies the config based on a difficulty preset.
func ApplyOnetPreset(cfg *OnetConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = preset != DifficultyZen
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Board.Columns, cfg.Board.Rows = 10, 6
		cfg.Board.Kinds = 12
		cfg.Rules.Shuffles = 5
		cfg.Rules.Hints = 5
		cfg.Rules.TimeLimit = 420
	case DifficultyHard:
		cfg.Board.Columns, cfg.Board.Rows = 16, 9
		cfg.Board.Kinds = 28
		cfg.Rules.Shuffles = 1
		cfg.Rules.Hints = 1
		cfg.Rules.TimeLimit = 240
	case DifficultyZen:
		cfg.Rules.Shuffles = -1
		cfg.Rules.Hints = -1
		cfg.Rules.TimeLimit = 0
	}
}
