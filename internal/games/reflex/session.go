package reflex

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/history"
)

// State is the phase of the current run.
type State int

const (
	StateIdle    State = iota // No hit yet, score is 0
	StateRunning              // At least one hit, timer running
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Outcome describes what a single input did to the session.
type Outcome struct {
	Hit      bool          // The input scored
	Cell     core.Position // Target cell, valid when HasCell
	HasCell  bool
	Run      core.Record // Finished run on a miss (Position is 0 when not recorded)
	Recorded bool        // The finished run was added to history
}

// Session owns the state of one player's runs on one grid: the active cells,
// the score accumulator and the transition into history on a miss.
type Session struct {
	grid    core.GridConfig
	active  *ActiveSet
	gen     *Generator
	history *history.Store
	now     func() time.Time

	score  int
	millis int64
	start  time.Time
}

// NewSession creates an idle session on grid and samples the first active
// cells. A nil now uses time.Now.
func NewSession(grid core.GridConfig, hist *history.Store, rng *rand.Rand, now func() time.Time) (*Session, error) {
	if now == nil {
		now = time.Now
	}
	s := &Session{
		active:  NewActiveSet(),
		gen:     NewGenerator(rng),
		history: hist,
		now:     now,
	}
	if err := s.Reconfigure(grid); err != nil {
		return nil, err
	}
	return s, nil
}

// Grid returns the normalized grid configuration in play.
func (s *Session) Grid() core.GridConfig {
	return s.grid
}

// Score returns the hits of the current run.
func (s *Session) Score() int {
	return s.score
}

// State reports whether a run is in progress.
func (s *Session) State() State {
	if s.score > 0 {
		return StateRunning
	}
	return StateIdle
}

// IsActive reports whether p is currently active.
func (s *Session) IsActive(p core.Position) bool {
	return s.active.Contains(p)
}

// Active returns the active cells in row-major order.
func (s *Session) Active() []core.Position {
	return s.active.Positions()
}

// Current returns the in-progress run as an unnumbered record.
func (s *Session) Current() core.Record {
	return core.NewRecord(0, s.score, s.millis, s.grid)
}

// Best returns the top record for the current grid, counting the run in
// progress so that the display updates before game over.
func (s *Session) Best() core.Record {
	candidates := append([]core.Record{s.Current()}, s.history.Bucket(s.grid)...)
	best, _ := core.Best(candidates...)
	return best
}

// History returns the history store the session records into.
func (s *Session) History() *history.Store {
	return s.history
}

// Hit scores an active cell and replaces it with a new one.
// The first hit of a run starts the timer.
func (s *Session) Hit(p core.Position) error {
	if !s.active.Contains(p) {
		return ErrNotActive
	}

	now := s.now()
	if s.score == 0 {
		s.start = now
	}
	if _, err := s.gen.Replace(s.active, s.grid, p); err != nil {
		return err
	}
	s.score++
	s.millis = now.Sub(s.start).Milliseconds()
	return nil
}

// Miss ends the run. Runs scoring more than one hit are prepended to the
// history bucket of the current grid with the next insertion number. The
// score is reset in every case; a persistence error is returned after the
// reset.
func (s *Session) Miss() (core.Record, bool, error) {
	run := s.Current()
	recorded := false

	var err error
	if run.Score > 1 {
		run = core.NewRecord(s.history.Len(s.grid)+1, run.Score, run.Millis, s.grid)
		recorded = true
		if appendErr := s.history.Append(s.grid, run); appendErr != nil {
			err = fmt.Errorf("reflex: record run: %w", appendErr)
		}
	}

	s.score = 0
	s.millis = 0
	return run, recorded, err
}

// Input dispatches an input on cell p: a hit when p is active, a miss otherwise.
func (s *Session) Input(p core.Position) (Outcome, error) {
	if s.active.Contains(p) {
		err := s.Hit(p)
		return Outcome{Hit: err == nil, Cell: p, HasCell: true}, err
	}
	out, err := s.finish()
	out.Cell, out.HasCell = p, true
	return out, err
}

// Reconfigure switches to a new grid: the active cells are resampled and the
// run is reset. History is kept.
func (s *Session) Reconfigure(grid core.GridConfig) error {
	if err := grid.Validate(); err != nil {
		return err
	}
	grid = grid.Normalize()
	if err := s.gen.Resample(s.active, grid); err != nil {
		return err
	}
	s.grid = grid
	s.score = 0
	s.millis = 0
	return nil
}

func (s *Session) finish() (Outcome, error) {
	run, recorded, err := s.Miss()
	return Outcome{Run: run, Recorded: recorded}, err
}
