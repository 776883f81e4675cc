package reflex

import "github.com/vovakirdan/tui-reflex/internal/core"

// Snapshot captures the observable game state in one value.
type Snapshot struct {
	Grid       core.GridConfig
	State      State
	Score      int
	Millis     int64
	Active     []core.Position // Row-major order
	Hovered    core.Position
	HasHover   bool
	Best       core.Record
	HistoryLen int // Records in the current grid's bucket
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	hovered, hasHover := g.gate.Hovered()
	cur := g.session.Current()
	return Snapshot{
		Grid:       g.session.Grid(),
		State:      g.session.State(),
		Score:      cur.Score,
		Millis:     cur.Millis,
		Active:     g.session.Active(),
		Hovered:    hovered,
		HasHover:   hasHover,
		Best:       g.session.Best(),
		HistoryLen: g.history.Len(g.session.Grid()),
	}
}
