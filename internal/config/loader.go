package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Load loads the reflex configuration and applies environment overrides.
// Search order: customPath -> ~/.reflex/configs/reflex.yaml -> ./configs/reflex.yaml -> embedded default
// Fields missing from a file keep their default values.
func Load(customPath string) (ReflexConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return sanitize(cfg), nil
}

func loadFile(customPath string) (ReflexConfig, error) {
	cfg := DefaultReflexConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("reflex.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultReflexConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "reflex.yaml")); err == nil {
		candidate := DefaultReflexConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultReflexYAML, &cfg); err != nil {
		return DefaultReflexConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with REFLEX_* environment variables that are set.
func ApplyEnv(cfg *ReflexConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// sanitize replaces unusable values with defaults.
func sanitize(cfg ReflexConfig) ReflexConfig {
	def := DefaultReflexConfig()
	if cfg.Grid.Rows < MinDimension {
		cfg.Grid.Rows = def.Grid.Rows
	}
	if cfg.Grid.Columns < MinDimension {
		cfg.Grid.Columns = def.Grid.Columns
	}
	if cfg.Grid.Active < 1 {
		cfg.Grid.Active = def.Grid.Active
	}
	if cfg.Display.CellWidth < 1 {
		cfg.Display.CellWidth = def.Display.CellWidth
	}
	if cfg.Display.CellHeight < 1 {
		cfg.Display.CellHeight = def.Display.CellHeight
	}
	if cfg.Display.Gap < 0 {
		cfg.Display.Gap = def.Display.Gap
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = def.Storage.DBPath
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = def.Server.Address
	}
	if cfg.Server.IdleTimeoutMinutes <= 0 {
		cfg.Server.IdleTimeoutMinutes = def.Server.IdleTimeoutMinutes
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reflex", "configs", filename)
}
