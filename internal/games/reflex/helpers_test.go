package reflex

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/history"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

func quietLogger() *log.Logger {
	l := log.New(io.Discard)
	l.SetLevel(log.FatalLevel)
	return l
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(ms int) {
	c.now = c.now.Add(time.Duration(ms) * time.Millisecond)
}

func newTestSession(t *testing.T, grid core.GridConfig, seed int64) (*Session, *fakeClock, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	clock := newFakeClock()
	s, err := NewSession(grid, history.New(kv, quietLogger()), rand.New(rand.NewSource(seed)), clock.Now)
	if err != nil {
		t.Fatalf("NewSession(%s) failed: %v", grid, err)
	}
	return s, clock, kv
}

// inactiveCell returns some in-grid cell that is not active.
func inactiveCell(t *testing.T, s *Session) core.Position {
	t.Helper()
	grid := s.Grid()
	for row := range grid.Rows {
		for col := range grid.Columns {
			if p := core.Pos(row, col); !s.IsActive(p) {
				return p
			}
		}
	}
	t.Fatal("no inactive cell")
	return core.Position{}
}
