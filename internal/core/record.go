package core

import (
	"errors"
	"fmt"
)

// ErrDegenerateGrid is returned for grids that cannot hold at least one
// active cell next to one inactive cell.
var ErrDegenerateGrid = errors.New("core: grid must have more than one cell")

// MinDimension is the smallest row or column count a playable grid may have.
const MinDimension = 2

// GridConfig identifies one game mode: grid shape plus the number of
// simultaneously active cells. It is comparable and keys history buckets.
type GridConfig struct {
	Rows    int
	Columns int
	Active  int
}

// NewGridConfig returns a normalized GridConfig.
func NewGridConfig(rows, columns, active int) GridConfig {
	return GridConfig{Rows: rows, Columns: columns, Active: active}.Normalize()
}

// Cells returns the number of cells in the grid.
func (g GridConfig) Cells() int {
	return g.Rows * g.Columns
}

// MaxActive returns the largest usable active count: one cell always stays
// inactive so that a miss is possible.
func (g GridConfig) MaxActive() int {
	return Max(g.Cells()-1, 0)
}

// EffectiveActive returns Active clamped to [0, MaxActive].
func (g GridConfig) EffectiveActive() int {
	return Clamp(g.Active, 0, g.MaxActive())
}

// Normalize returns the config with Active clamped to the grid size.
func (g GridConfig) Normalize() GridConfig {
	g.Active = g.EffectiveActive()
	return g
}

// Validate reports ErrDegenerateGrid for grids without room for a miss.
func (g GridConfig) Validate() error {
	if g.Rows < 1 || g.Columns < 1 || g.Cells() <= 1 {
		return fmt.Errorf("%w: %dx%d", ErrDegenerateGrid, g.Rows, g.Columns)
	}
	return nil
}

func (g GridConfig) String() string {
	return fmt.Sprintf("%d×%d/%d", g.Rows, g.Columns, g.Active)
}

// Record is an immutable snapshot of one completed run.
type Record struct {
	Position int   // 1-based insertion sequence number within its bucket
	Score    int   // Successful hits
	Millis   int64 // Elapsed time from first to last hit
	Rows     int
	Columns  int
	Active   int
}

// NewRecord builds a record for the given grid, clamping Active.
func NewRecord(position, score int, millis int64, grid GridConfig) Record {
	grid = grid.Normalize()
	return Record{
		Position: position,
		Score:    score,
		Millis:   millis,
		Rows:     grid.Rows,
		Columns:  grid.Columns,
		Active:   grid.Active,
	}
}

// Grid returns the normalized grid configuration the record was played on.
func (r Record) Grid() GridConfig {
	return GridConfig{Rows: r.Rows, Columns: r.Columns, Active: r.Active}.Normalize()
}

// Seconds returns the run duration in seconds.
func (r Record) Seconds() float64 {
	return float64(r.Millis) / 1000
}

// Rate returns hits per second, or 0 for runs without elapsed time.
func (r Record) Rate() float64 {
	if r.Millis <= 0 {
		return 0
	}
	return float64(r.Score) * 1000 / float64(r.Millis)
}

// Beats reports whether r ranks above other: higher score first, then the
// faster run on equal score.
func (r Record) Beats(other Record) bool {
	if r.Score != other.Score {
		return r.Score > other.Score
	}
	return r.Millis < other.Millis
}

// Best returns the top-ranked record among candidates.
// The first candidate wins ties. ok is false for an empty input.
func Best(candidates ...Record) (best Record, ok bool) {
	for i, c := range candidates {
		if i == 0 || c.Beats(best) {
			best = c
			ok = true
		}
	}
	return best, ok
}
