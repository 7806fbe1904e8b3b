package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const chaseFile = "chase.yaml"

// LoadChase loads the chase configuration.
// Search order: customPath -> ~/.conga/configs/chase.yaml -> ./configs/chase.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadChase(customPath string) (Chase, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Chase{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeChase(data)
		if err != nil {
			return Chase{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(chaseFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeChase(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", chaseFile)); err == nil {
		if cfg, err := decodeChase(data); err == nil {
			return cfg, nil
		}
	}

	var cfg Chase
	if err := yaml.Unmarshal(defaultChaseYAML, &cfg); err != nil {
		return DefaultChase(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeChase unmarshals data on top of the hardcoded defaults.
func decodeChase(data []byte) (Chase, error) {
	cfg := DefaultChase()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Chase{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Chase) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".conga", "configs", filename)
}

// ApplyChasePreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyChasePreset(cfg *Chase, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 7
		cfg.Hazard.Traversal = 4.0
		cfg.Hazard.SpawnInterval = 2.5
	case DifficultyHard:
		cfg.Rules.Lives = 3
		cfg.Rules.WinThreshold = 15
		cfg.Hazard.Traversal = 2.0
		cfg.Hazard.SpawnInterval = 1.5
	}
}
