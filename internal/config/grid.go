package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

// Storage keys for the persisted grid settings.
const (
	KeyRows    = "rows"
	KeyColumns = "columns"
	KeyActive  = "active"
)

// MinDimension is the smallest accepted row or column count.
const MinDimension = core.MinDimension

// ErrInvalidDimension is returned for rejected grid edits.
var ErrInvalidDimension = errors.New("config: invalid grid dimension")

// Field names one editable grid setting.
type Field string

const (
	FieldRows    Field = KeyRows
	FieldColumns Field = KeyColumns
	FieldActive  Field = KeyActive
)

// Fields lists the editable settings in display order.
var Fields = []Field{FieldRows, FieldColumns, FieldActive}

// DefaultGrid returns the configured fallback grid.
func (c ReflexConfig) DefaultGrid() core.GridConfig {
	return core.GridConfig{
		Rows:    c.Grid.Rows,
		Columns: c.Grid.Columns,
		Active:  c.Grid.Active,
	}
}

// Overrides carries grid values given explicitly at startup (CLI flags).
// Zero fields are unset.
type Overrides struct {
	Rows    int
	Columns int
	Active  int
}

// Empty reports whether no override is set.
func (o Overrides) Empty() bool {
	return o.Rows == 0 && o.Columns == 0 && o.Active == 0
}

// LoadGrid reads the stored grid settings, falling back to def per field when
// a key is absent or unparsable.
func LoadGrid(kv storage.KV, def core.GridConfig) core.GridConfig {
	return core.GridConfig{
		Rows:    loadInt(kv, KeyRows, def.Rows, MinDimension),
		Columns: loadInt(kv, KeyColumns, def.Columns, MinDimension),
		Active:  loadInt(kv, KeyActive, def.Active, 1),
	}
}

func loadInt(kv storage.KV, key string, def, min int) int {
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < min {
		return def
	}
	return n
}

// SaveGrid persists all three grid settings.
func SaveGrid(kv storage.KV, grid core.GridConfig) error {
	values := []struct {
		key string
		val int
	}{
		{KeyRows, grid.Rows},
		{KeyColumns, grid.Columns},
		{KeyActive, grid.Active},
	}
	for _, v := range values {
		if err := kv.Set(v.key, strconv.Itoa(v.val)); err != nil {
			return fmt.Errorf("config: cannot save %s: %w", v.key, err)
		}
	}
	return nil
}

// Apply returns grid with the valid overrides set, normalized.
// Invalid overrides are ignored field by field.
func (o Overrides) Apply(grid core.GridConfig) core.GridConfig {
	if o.Rows >= MinDimension {
		grid.Rows = o.Rows
	}
	if o.Columns >= MinDimension {
		grid.Columns = o.Columns
	}
	if o.Active >= 1 {
		grid.Active = o.Active
	}
	return grid.Normalize()
}

// ResolveGrid loads the stored grid, applies overrides on top and writes the
// result back so that stored and displayed values stay in sync.
func ResolveGrid(kv storage.KV, def core.GridConfig, o Overrides) (core.GridConfig, error) {
	grid := o.Apply(LoadGrid(kv, def))
	if o.Empty() {
		return grid, nil
	}
	return grid, SaveGrid(kv, grid)
}

// ApplyEdit validates a user edit of one field and returns the updated grid.
// Rejected edits return the unchanged grid and an ErrInvalidDimension error.
// Active values above the grid capacity are clamped rather than rejected.
func ApplyEdit(grid core.GridConfig, field Field, text string) (core.GridConfig, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return grid, fmt.Errorf("%w: %s %q is not a number", ErrInvalidDimension, field, text)
	}

	next := grid
	switch field {
	case FieldRows:
		if n < MinDimension {
			return grid, fmt.Errorf("%w: rows must be at least %d", ErrInvalidDimension, MinDimension)
		}
		next.Rows = n
	case FieldColumns:
		if n < MinDimension {
			return grid, fmt.Errorf("%w: columns must be at least %d", ErrInvalidDimension, MinDimension)
		}
		next.Columns = n
	case FieldActive:
		if n < 1 {
			return grid, fmt.Errorf("%w: active must be at least 1", ErrInvalidDimension)
		}
		next.Active = n
	default:
		return grid, fmt.Errorf("%w: unknown field %q", ErrInvalidDimension, field)
	}

	if err := next.Validate(); err != nil {
		return grid, fmt.Errorf("%w: %v", ErrInvalidDimension, err)
	}
	return next.Normalize(), nil
}

// Value returns the current value of field in grid.
func Value(grid core.GridConfig, field Field) int {
	switch field {
	case FieldRows:
		return grid.Rows
	case FieldColumns:
		return grid.Columns
	case FieldActive:
		return grid.Active
	}
	return 0
}
