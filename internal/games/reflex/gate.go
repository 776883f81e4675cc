package reflex

import "github.com/vovakirdan/tui-reflex/internal/core"

// Gate turns raw pointer and key events into session inputs. It tracks the
// cell under the pointer (or the keyboard focus) and resolves every trigger
// against it: a trigger with no cell under the pointer is a miss.
type Gate struct {
	session  *Session
	hovered  core.Position
	hasHover bool
}

// NewGate creates a gate feeding session.
func NewGate(session *Session) *Gate {
	return &Gate{session: session}
}

// Hover marks p as the cell under the pointer. Out-of-grid positions clear
// the hover instead.
func (g *Gate) Hover(p core.Position) {
	grid := g.session.Grid()
	if !p.In(grid.Rows, grid.Columns) {
		g.Leave()
		return
	}
	g.hovered = p
	g.hasHover = true
}

// Leave clears the hovered cell.
func (g *Gate) Leave() {
	g.hasHover = false
}

// Hovered returns the hovered cell, if any.
func (g *Gate) Hovered() (core.Position, bool) {
	return g.hovered, g.hasHover
}

// Move shifts the keyboard focus by the given offsets, wrapping around the
// grid edges. Without a focused cell the focus lands on the top-left cell.
func (g *Gate) Move(dRow, dCol int) {
	grid := g.session.Grid()
	if !g.hasHover {
		g.Hover(core.Pos(0, 0))
		return
	}
	g.Hover(core.Pos(
		wrap(g.hovered.Row+dRow, grid.Rows),
		wrap(g.hovered.Col+dCol, grid.Columns),
	))
}

// Trigger presses the hovered cell. With nothing hovered the run ends as if
// the player clicked outside the grid.
func (g *Gate) Trigger() (Outcome, error) {
	if g.hasHover {
		return g.session.Input(g.hovered)
	}
	return g.session.finish()
}

// Press hovers p and triggers in one step, as a pointer press does.
func (g *Gate) Press(p core.Position, onCell bool) (Outcome, error) {
	if onCell {
		g.Hover(p)
	} else {
		g.Leave()
	}
	return g.Trigger()
}

// Sync drops a hover that no longer fits the session's grid.
func (g *Gate) Sync() {
	if g.hasHover {
		g.Hover(g.hovered)
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
