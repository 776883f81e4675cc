package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reflex.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := writeConfig(t, "grid:\n  rows: 5\ndisplay:\n  gap: 0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Rows != 5 {
		t.Errorf("Grid.Rows = %d, expected 5", cfg.Grid.Rows)
	}
	// Unset fields keep their defaults
	if cfg.Grid.Columns != 3 || cfg.Grid.Active != 3 {
		t.Errorf("Grid = %+v, expected defaults for columns and active", cfg.Grid)
	}
	if cfg.Display.Gap != 0 {
		t.Errorf("Display.Gap = %d, expected 0", cfg.Display.Gap)
	}
	if cfg.Display.CellWidth != 7 {
		t.Errorf("Display.CellWidth = %d, expected 7", cfg.Display.CellWidth)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "grid: [not, a, map")
	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestLoadSanitizesValues(t *testing.T) {
	path := writeConfig(t, "grid:\n  rows: 1\n  columns: -4\n  active: 0\ndisplay:\n  cell_width: 0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	def := DefaultReflexConfig()
	if cfg.Grid != def.Grid {
		t.Errorf("Grid = %+v, expected defaults %+v", cfg.Grid, def.Grid)
	}
	if cfg.Display.CellWidth != def.Display.CellWidth {
		t.Errorf("Display.CellWidth = %d, expected %d", cfg.Display.CellWidth, def.Display.CellWidth)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("REFLEX_ROWS", "4")
	t.Setenv("REFLEX_ACTIVE", "2")
	t.Setenv("REFLEX_DB_PATH", "/tmp/reflex-test.db")
	t.Setenv("REFLEX_SSH_ADDR", ":2222")

	path := writeConfig(t, "grid:\n  rows: 6\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Rows != 4 {
		t.Errorf("Grid.Rows = %d, expected env value 4", cfg.Grid.Rows)
	}
	if cfg.Grid.Active != 2 {
		t.Errorf("Grid.Active = %d, expected env value 2", cfg.Grid.Active)
	}
	if cfg.Storage.DBPath != "/tmp/reflex-test.db" {
		t.Errorf("Storage.DBPath = %q", cfg.Storage.DBPath)
	}
	if cfg.Server.Address != ":2222" {
		t.Errorf("Server.Address = %q", cfg.Server.Address)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("REFLEX_ROWS", "many")

	path := writeConfig(t, "")
	if _, err := Load(path); err == nil {
		t.Error("Load() should report unparsable environment values")
	}
}
