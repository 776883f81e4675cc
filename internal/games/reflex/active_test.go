package reflex

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

func TestResampleCardinality(t *testing.T) {
	grids := []core.GridConfig{
		{Rows: 2, Columns: 2, Active: 1},
		{Rows: 2, Columns: 2, Active: 3},
		{Rows: 2, Columns: 2, Active: 10},
		{Rows: 3, Columns: 3, Active: 2},
		{Rows: 5, Columns: 4, Active: 7},
		{Rows: 1, Columns: 2, Active: 1},
		{Rows: 2, Columns: 1, Active: 5},
		{Rows: 8, Columns: 8, Active: 63},
	}

	for _, grid := range grids {
		for seed := int64(1); seed <= 20; seed++ {
			gen := NewGenerator(rand.New(rand.NewSource(seed)))
			set := NewActiveSet()
			if err := gen.Resample(set, grid); err != nil {
				t.Fatalf("Resample(%s) failed: %v", grid, err)
			}
			if set.Len() != grid.EffectiveActive() {
				t.Errorf("Resample(%s) seed %d: len = %d, want %d", grid, seed, set.Len(), grid.EffectiveActive())
			}
			for _, p := range set.Positions() {
				if !p.In(grid.Rows, grid.Columns) {
					t.Errorf("Resample(%s) produced out-of-grid cell %s", grid, p)
				}
			}
		}
	}
}

func TestResampleReplacesPreviousContents(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(7)))
	set := NewActiveSet()
	if err := gen.Resample(set, core.NewGridConfig(6, 6, 10)); err != nil {
		t.Fatal(err)
	}
	small := core.NewGridConfig(2, 2, 1)
	if err := gen.Resample(set, small); err != nil {
		t.Fatal(err)
	}
	if set.Len() != 1 || !set.Positions()[0].In(2, 2) {
		t.Errorf("Resample() kept stale cells: %v", set.Positions())
	}
}

func TestResampleDegenerateGrid(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)))
	for _, grid := range []core.GridConfig{
		{Rows: 1, Columns: 1, Active: 1},
		{Rows: 0, Columns: 3, Active: 1},
		{Rows: 3, Columns: -1, Active: 1},
	} {
		err := gen.Resample(NewActiveSet(), grid)
		if !errors.Is(err, core.ErrDegenerateGrid) {
			t.Errorf("Resample(%s) error = %v, want ErrDegenerateGrid", grid, err)
		}
	}
}

func TestReplaceExcludesVacatedCell(t *testing.T) {
	// Three of four cells active: the replacement can only be the single
	// free cell, and the hit cell must go dark.
	grid := core.NewGridConfig(2, 2, 3)
	gen := NewGenerator(rand.New(rand.NewSource(3)))
	set := NewActiveSet()
	if err := gen.Resample(set, grid); err != nil {
		t.Fatal(err)
	}

	for i := range 50 {
		var free core.Position
		for _, p := range []core.Position{core.Pos(0, 0), core.Pos(0, 1), core.Pos(1, 0), core.Pos(1, 1)} {
			if !set.Contains(p) {
				free = p
			}
		}
		hit := set.Positions()[i%3]

		next, err := gen.Replace(set, grid, hit)
		if err != nil {
			t.Fatalf("Replace() failed: %v", err)
		}
		if next != free {
			t.Fatalf("Replace(%s) = %s, want the free cell %s", hit, next, free)
		}
		if set.Contains(hit) {
			t.Fatalf("hit cell %s still active", hit)
		}
		if set.Len() != 3 {
			t.Fatalf("len = %d after replace, want 3", set.Len())
		}
	}
}

func TestReplaceNotActive(t *testing.T) {
	grid := core.NewGridConfig(3, 3, 1)
	gen := NewGenerator(rand.New(rand.NewSource(1)))
	set := NewActiveSet()
	if err := gen.Resample(set, grid); err != nil {
		t.Fatal(err)
	}
	active := set.Positions()[0]
	other := core.Pos((active.Row+1)%3, active.Col)

	if _, err := gen.Replace(set, grid, other); !errors.Is(err, ErrNotActive) {
		t.Errorf("Replace(inactive) error = %v, want ErrNotActive", err)
	}
	if !set.Contains(active) || set.Len() != 1 {
		t.Errorf("failed Replace() modified the set: %v", set.Positions())
	}
}
