package reflex

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

// ErrNotActive is returned when a hit targets a cell that is not active.
var ErrNotActive = errors.New("reflex: cell is not active")

// ActiveSet is the set of currently activated grid cells.
type ActiveSet struct {
	cells map[core.Position]struct{}
}

// NewActiveSet creates an empty set.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{cells: make(map[core.Position]struct{})}
}

// Len returns the number of active cells.
func (s *ActiveSet) Len() int {
	return len(s.cells)
}

// Contains reports whether p is active.
func (s *ActiveSet) Contains(p core.Position) bool {
	_, ok := s.cells[p]
	return ok
}

// Clear deactivates every cell.
func (s *ActiveSet) Clear() {
	for p := range s.cells {
		delete(s.cells, p)
	}
}

// Positions returns the active cells in row-major order.
func (s *ActiveSet) Positions() []core.Position {
	out := make([]core.Position, 0, len(s.cells))
	for p := range s.cells {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func (s *ActiveSet) add(p core.Position) {
	s.cells[p] = struct{}{}
}

func (s *ActiveSet) remove(p core.Position) {
	delete(s.cells, p)
}

// Generator draws active cells uniformly at random by rejection sampling.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator using rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Resample clears set and fills it with exactly grid.EffectiveActive()
// distinct in-bounds positions.
func (g *Generator) Resample(set *ActiveSet, grid core.GridConfig) error {
	if err := grid.Validate(); err != nil {
		return err
	}

	target := grid.EffectiveActive()
	set.Clear()
	for set.Len() < target {
		p := g.randomPosition(grid)
		if set.Contains(p) {
			continue
		}
		set.add(p)
	}
	return nil
}

// Replace swaps the active cell hit for a freshly sampled one. The new cell
// is drawn while hit is still in the set, so it never lands on the cell that
// was just vacated or on any other active cell.
func (g *Generator) Replace(set *ActiveSet, grid core.GridConfig, hit core.Position) (core.Position, error) {
	if err := grid.Validate(); err != nil {
		return core.Position{}, err
	}
	if !set.Contains(hit) {
		return core.Position{}, ErrNotActive
	}
	if set.Len() >= grid.Cells() {
		return core.Position{}, core.ErrDegenerateGrid
	}

	next := g.randomPosition(grid)
	for set.Contains(next) {
		next = g.randomPosition(grid)
	}
	set.remove(hit)
	set.add(next)
	return next, nil
}

func (g *Generator) randomPosition(grid core.GridConfig) core.Position {
	return core.Pos(g.rng.Intn(grid.Rows), g.rng.Intn(grid.Columns))
}
