package config

import (
	_ "embed"
)

//go:embed defaults/reflex.yaml
var defaultReflexYAML []byte

// DefaultReflexConfig returns the hardcoded default configuration.
func DefaultReflexConfig() ReflexConfig {
	return ReflexConfig{
		Grid: GridDefaults{
			Rows:    3,
			Columns: 3,
			Active:  3,
		},
		Display: DisplayConfig{
			CellWidth:  7,
			CellHeight: 3,
			Gap:        1,
		},
		Storage: StorageConfig{
			DBPath: "~/.reflex/reflex.db",
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}
