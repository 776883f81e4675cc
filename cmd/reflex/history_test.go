package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/history"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

func TestPrintHistory(t *testing.T) {
	hist := history.New(storage.NewMemory(), log.New(io.Discard))
	grid := core.NewGridConfig(3, 3, 2)
	for _, r := range []core.Record{
		core.NewRecord(1, 4, 2000, grid),
		core.NewRecord(2, 9, 3000, grid),
	} {
		if err := hist.Append(grid, r); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	printHistory(&buf, hist, []core.GridConfig{grid, core.NewGridConfig(4, 4, 1)})
	out := buf.String()

	for _, want := range []string{
		"History - 3×3, 2 active",
		"  2     9       3.00      3.00      3x3     2",
		"Best: 9 hits in 3.00s (3.00/s)",
		"History - 4×4, 1 active",
		"No runs recorded yet.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}

	// Newest first
	if strings.Index(out, "  2     9") > strings.Index(out, "  1     4") {
		t.Errorf("records out of order:\n%s", out)
	}
}

func TestPrintHistoryNoGrids(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, history.New(storage.NewMemory(), log.New(io.Discard)), nil)
	if got := buf.String(); got != "No runs recorded yet.\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPrintTotals(t *testing.T) {
	hist := history.New(storage.NewMemory(), log.New(io.Discard))
	small := core.NewGridConfig(3, 3, 2)
	large := core.NewGridConfig(4, 4, 3)
	for _, tc := range []struct {
		grid core.GridConfig
		rec  core.Record
	}{
		{small, core.NewRecord(1, 4, 2000, small)},
		{small, core.NewRecord(2, 6, 1000, small)},
		{large, core.NewRecord(1, 10, 2000, large)},
	} {
		if err := hist.Append(tc.grid, tc.rec); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	printTotals(&buf, hist)
	want := "\nTotal: 3 runs on 2 grids, 20 hits in 5.00s (4.00/s)\n"
	if got := buf.String(); got != want {
		t.Errorf("printTotals() = %q, expected %q", got, want)
	}

	buf.Reset()
	printTotals(&buf, history.New(storage.NewMemory(), log.New(io.Discard)))
	if buf.Len() != 0 {
		t.Errorf("printTotals() on empty history = %q", buf.String())
	}
}

func TestGridFlagsOverrides(t *testing.T) {
	f := gridFlags{rows: 5, active: 2}
	o := f.overrides()
	if o.Rows != 5 || o.Columns != 0 || o.Active != 2 {
		t.Errorf("overrides() = %+v", o)
	}
}
