// Package config provides YAML-based configuration loading and persisted grid
// settings for the reflex game.
package config

// ReflexConfig contains all configuration for the reflex game.
type ReflexConfig struct {
	Grid    GridDefaults  `yaml:"grid"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
}

// GridDefaults is the grid used when nothing is stored yet.
type GridDefaults struct {
	Rows    int `yaml:"rows"    env:"REFLEX_ROWS"`
	Columns int `yaml:"columns" env:"REFLEX_COLUMNS"`
	Active  int `yaml:"active"  env:"REFLEX_ACTIVE"`
}

// DisplayConfig controls how grid cells are laid out in the terminal.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	Gap        int `yaml:"gap"`
}

// StorageConfig locates the settings and history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"REFLEX_DB_PATH"`
}

// ServerConfig holds defaults for the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"              env:"REFLEX_SSH_ADDR"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes" env:"REFLEX_IDLE_TIMEOUT"`
}
