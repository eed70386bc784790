package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are the file names looked up in the config directories, in order.
var configNames = []string{"shmup.yaml", "shmup.yml", "shmup.toml"}

// Load loads the shmup configuration.
// Search order: customPath -> ~/.shmup/configs/shmup.{yaml,toml} -> ./configs/shmup.{yaml,toml} -> embedded default.
// Values missing from a file keep their defaults. The result is validated.
func Load(customPath string) (ShmupConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (ShmupConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultShmupConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(customPath, data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, dir := range []string{userConfigDir(), "configs"} {
		if dir == "" {
			continue
		}
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if cfg, err := Parse(path, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse("shmup.yaml", defaultShmupYAML)
	if err != nil {
		return DefaultShmupConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes data on top of the defaults. The format is chosen by the
// extension of name: .toml is TOML, anything else is YAML.
func Parse(name string, data []byte) (ShmupConfig, error) {
	cfg := DefaultShmupConfig()
	// Lists replace rather than merge, so clear them when the file sets them.
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		var keys map[string]any
		if _, err := toml.Decode(string(data), &keys); err != nil {
			return cfg, err
		}
		clearListsPresent(&cfg, keys)
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
	default:
		var keys map[string]any
		if err := yaml.Unmarshal(data, &keys); err != nil {
			return cfg, err
		}
		clearListsPresent(&cfg, keys)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// clearListsPresent drops default list entries for the top-level lists the
// decoded document provides.
func clearListsPresent(cfg *ShmupConfig, doc map[string]any) {
	if _, ok := doc["stars"]; ok {
		cfg.Stars = nil
	}
	if _, ok := doc["archetypes"]; ok {
		cfg.Archetypes = nil
	}
	if _, ok := doc["scenarios"]; ok {
		cfg.Scenarios = nil
	}
	if enemies, ok := doc["enemies"].(map[string]any); ok {
		if _, ok := enemies["scatter"]; ok {
			cfg.Enemies.Scatter = nil
		}
	}
}

// EncodeYAML renders the config as YAML.
func (c ShmupConfig) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// EncodeTOML renders the config as TOML.
func (c ShmupConfig) EncodeTOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shmup", "configs")
}

// ApplyShmupPreset modifies the config based on a difficulty preset.
func ApplyShmupPreset(cfg *ShmupConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ParsePreset converts a flag value into a DifficultyPreset.
// ok is false for unknown or empty values.
func ParsePreset(s string) (preset DifficultyPreset, ok bool) {
	switch p := DifficultyPreset(strings.ToLower(s)); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
