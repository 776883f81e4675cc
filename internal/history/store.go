// Package history keeps the records of finished runs, grouped by grid
// configuration, and persists them under a single key of a storage.KV.
package history

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

// Key is the storage key holding the encoded history.
const Key = "history"

// Store is the in-memory history mirrored to a KV after every mutation.
// It is not safe for concurrent use; each game session owns one.
type Store struct {
	kv      storage.KV
	logger  *log.Logger
	buckets Buckets
}

// New creates a store backed by kv and loads the persisted history.
// A nil logger uses the charmbracelet/log default logger.
func New(kv storage.KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{
		kv:      kv,
		logger:  logger,
		buckets: make(Buckets),
	}
	s.Load()
	return s
}

// Load re-reads the persisted history and returns a copy of it.
// Unreadable or malformed data yields an empty history; corrupt local state
// must never prevent a new game from starting.
func (s *Store) Load() Buckets {
	s.buckets = make(Buckets)

	raw, ok, err := s.kv.Get(Key)
	if err != nil {
		s.logger.Warn("could not read history", "error", err)
		return s.buckets.Clone()
	}
	if !ok {
		return s.buckets.Clone()
	}

	decoded, err := Decode(raw)
	if err != nil {
		s.logger.Debug("discarding stored history", "error", err)
		return s.buckets.Clone()
	}
	if len(decoded) == 0 {
		//nolint:errcheck // Best-effort cleanup of an empty value
		s.kv.Delete(Key)
	}

	s.buckets = decoded
	return s.buckets.Clone()
}

// Save replaces the whole history with b and persists it.
func (s *Store) Save(b Buckets) error {
	s.buckets = make(Buckets, len(b))
	for grid, records := range b {
		if len(records) == 0 {
			continue
		}
		s.buckets[grid.Normalize()] = append([]core.Record(nil), records...)
	}
	return s.persist()
}

// Append prepends rec to the bucket for grid and persists the history.
func (s *Store) Append(grid core.GridConfig, rec core.Record) error {
	grid = grid.Normalize()
	bucket := s.buckets[grid]
	next := make([]core.Record, 0, len(bucket)+1)
	next = append(next, rec)
	next = append(next, bucket...)
	s.buckets[grid] = next
	return s.persist()
}

// Clear removes the bucket for grid only.
func (s *Store) Clear(grid core.GridConfig) error {
	delete(s.buckets, grid.Normalize())
	return s.persist()
}

// ClearAll removes every bucket.
func (s *Store) ClearAll() error {
	s.buckets = make(Buckets)
	return s.persist()
}

// Bucket returns a copy of the records for grid, most recent first.
func (s *Store) Bucket(grid core.GridConfig) []core.Record {
	return append([]core.Record(nil), s.buckets[grid.Normalize()]...)
}

// Len returns the number of records for grid.
func (s *Store) Len(grid core.GridConfig) int {
	return len(s.buckets[grid.Normalize()])
}

// Grids returns the configurations that have records.
func (s *Store) Grids() []core.GridConfig {
	return s.buckets.Grids()
}

// All returns every record, bucket by bucket in Grids order.
func (s *Store) All() []core.Record {
	var out []core.Record
	for _, grid := range s.buckets.Grids() {
		out = append(out, s.buckets[grid]...)
	}
	return out
}

// Best returns the top record for grid, if any.
func (s *Store) Best(grid core.GridConfig) (core.Record, bool) {
	return core.Best(s.buckets[grid.Normalize()]...)
}

func (s *Store) persist() error {
	if len(s.buckets.Grids()) == 0 {
		if err := s.kv.Delete(Key); err != nil {
			return fmt.Errorf("history: cannot clear: %w", err)
		}
		return nil
	}
	if err := s.kv.Set(Key, Encode(s.buckets)); err != nil {
		return fmt.Errorf("history: cannot save: %w", err)
	}
	return nil
}
