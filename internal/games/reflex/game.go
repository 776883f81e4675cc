// Package reflex implements a reaction-time grid game: a few cells of the
// grid light up, the player presses lit cells as fast as possible, and the
// first press on a dark cell ends the run.
package reflex

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/history"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

// Options configures a new Game.
type Options struct {
	Config    config.ReflexConfig
	Runtime   core.RuntimeConfig
	Overrides config.Overrides // Grid values given on the command line
	Logger    *log.Logger      // nil uses the default logger
	Now       func() time.Time // nil uses time.Now
}

// Game ties a session, its input gate and the screen layout together.
// It is driven synchronously by the platform's event loop.
type Game struct {
	kv      storage.KV
	cfg     config.ReflexConfig
	logger  *log.Logger
	history *history.Store
	session *Session
	gate    *Gate
	layout  Layout

	screenW int
	screenH int
	status  string
}

// New loads settings and history from kv and starts an idle session.
func New(kv storage.KV, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	grid, err := config.ResolveGrid(kv, opts.Config.DefaultGrid(), opts.Overrides)
	if err != nil {
		logger.Warn("could not store grid settings", "error", err)
	}

	rc := opts.Runtime
	if rc.ScreenW <= 0 || rc.ScreenH <= 0 {
		def := core.DefaultConfig()
		rc.ScreenW, rc.ScreenH = def.ScreenW, def.ScreenH
	}
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	hist := history.New(kv, logger)
	session, err := NewSession(grid, hist, rand.New(rand.NewSource(seed)), opts.Now)
	if err != nil {
		return nil, fmt.Errorf("reflex: start session: %w", err)
	}

	g := &Game{
		kv:      kv,
		cfg:     opts.Config,
		logger:  logger,
		history: hist,
		session: session,
		gate:    NewGate(session),
	}
	g.Resize(rc.ScreenW, rc.ScreenH)
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "reflex"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Reflex"
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// History returns the history store.
func (g *Game) History() *history.Store {
	return g.history
}

// Gate returns the input gate.
func (g *Game) Gate() *Gate {
	return g.gate
}

// Layout returns the current screen layout.
func (g *Game) Layout() Layout {
	return g.layout
}

// Grid returns the grid in play.
func (g *Game) Grid() core.GridConfig {
	return g.session.Grid()
}

// Status returns the last status message.
func (g *Game) Status() string {
	return g.status
}

// ClearStatus drops the status message.
func (g *Game) ClearStatus() {
	g.status = ""
}

// Resize recomputes the layout for a new screen size.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout = NewLayout(g.session.Grid(), g.cfg.Display, width, height)
}

// HandleAction applies a semantic key action.
func (g *Game) HandleAction(a core.Action) error {
	switch a {
	case core.ActionUp:
		g.gate.Move(-1, 0)
	case core.ActionDown:
		g.gate.Move(1, 0)
	case core.ActionLeft:
		g.gate.Move(0, -1)
	case core.ActionRight:
		g.gate.Move(0, 1)
	case core.ActionTrigger:
		return g.apply(g.gate.Trigger())
	case core.ActionClearBucket:
		return g.ClearBucket()
	case core.ActionClearAll:
		return g.ClearAll()
	}
	return nil
}

// MouseMove updates the hovered cell from a pointer position.
func (g *Game) MouseMove(x, y int) {
	if p, ok := g.layout.CellAt(x, y); ok {
		g.gate.Hover(p)
		return
	}
	g.gate.Leave()
}

// MousePress triggers at a pointer position.
func (g *Game) MousePress(x, y int) error {
	p, ok := g.layout.CellAt(x, y)
	return g.apply(g.gate.Press(p, ok))
}

// Reconfigure switches grids, resets the run and persists the settings.
func (g *Game) Reconfigure(grid core.GridConfig) error {
	if err := g.session.Reconfigure(grid); err != nil {
		return err
	}
	g.gate.Sync()
	g.Resize(g.screenW, g.screenH)
	g.status = fmt.Sprintf("Grid set to %s", g.session.Grid())
	if err := config.SaveGrid(g.kv, g.session.Grid()); err != nil {
		return fmt.Errorf("reflex: save settings: %w", err)
	}
	return nil
}

// ClearBucket removes history for the current grid.
func (g *Game) ClearBucket() error {
	g.status = fmt.Sprintf("History cleared for %s", g.session.Grid())
	return g.history.Clear(g.session.Grid())
}

// ClearAll removes all history.
func (g *Game) ClearAll() error {
	g.status = "All history cleared"
	return g.history.ClearAll()
}

func (g *Game) apply(out Outcome, err error) error {
	switch {
	case out.Hit:
		g.status = ""
	case out.Recorded:
		g.status = fmt.Sprintf("Game over: %d hits in %.2fs, saved as #%d",
			out.Run.Score, out.Run.Seconds(), out.Run.Position)
	case out.Run.Score == 1:
		g.status = "Game over: 1 hit, not recorded"
	}
	if err != nil {
		g.logger.Warn("input failed", "error", err)
	}
	return err
}
