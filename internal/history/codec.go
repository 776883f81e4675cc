package history

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

// formatVersion is the leading field of every encoded record.
const formatVersion = 1

const fieldCount = 7

// ErrMalformed is returned by Decode for any input it does not fully understand.
var ErrMalformed = errors.New("history: malformed data")

// Buckets maps a normalized grid configuration to its records,
// most recent first.
type Buckets map[core.GridConfig][]core.Record

// Clone returns a deep copy of b.
func (b Buckets) Clone() Buckets {
	out := make(Buckets, len(b))
	for grid, records := range b {
		if len(records) == 0 {
			continue
		}
		out[grid] = append([]core.Record(nil), records...)
	}
	return out
}

// Grids returns the bucket keys ordered by rows, columns, then active.
func (b Buckets) Grids() []core.GridConfig {
	grids := make([]core.GridConfig, 0, len(b))
	for grid, records := range b {
		if len(records) > 0 {
			grids = append(grids, grid)
		}
	}
	sort.Slice(grids, func(i, j int) bool {
		a, c := grids[i], grids[j]
		if a.Rows != c.Rows {
			return a.Rows < c.Rows
		}
		if a.Columns != c.Columns {
			return a.Columns < c.Columns
		}
		return a.Active < c.Active
	})
	return grids
}

// Encode serializes b as newline-separated records of the form
// version,position,score,millis,rows,columns,active.
// Buckets are written in Grids order, records in bucket order.
func Encode(b Buckets) string {
	var lines []string
	for _, grid := range b.Grids() {
		for _, r := range b[grid] {
			lines = append(lines, encodeRecord(r))
		}
	}
	return strings.Join(lines, "\n")
}

func encodeRecord(r core.Record) string {
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d,%d",
		formatVersion, r.Position, r.Score, r.Millis, r.Rows, r.Columns, r.Active)
}

// Decode parses data produced by Encode. Any unparsable line fails the
// whole decode; partial results are never returned.
func Decode(data string) (Buckets, error) {
	out := make(Buckets)

	data = strings.TrimRight(data, "\r\n")
	if strings.TrimSpace(data) == "" {
		return out, nil
	}

	for i, line := range strings.Split(data, "\n") {
		r, err := decodeRecord(strings.TrimSuffix(line, "\r"))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, i+1, err)
		}
		grid := r.Grid()
		out[grid] = append(out[grid], r)
	}
	return out, nil
}

func decodeRecord(line string) (core.Record, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return core.Record{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}

	var nums [fieldCount]int64
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return core.Record{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		if n < 0 {
			return core.Record{}, fmt.Errorf("field %d: negative value %d", i+1, n)
		}
		nums[i] = n
	}

	if nums[0] != formatVersion {
		return core.Record{}, fmt.Errorf("unsupported version %d", nums[0])
	}

	position := int(nums[1])
	if position < 1 {
		return core.Record{}, fmt.Errorf("position %d out of range", position)
	}
	grid := core.GridConfig{Rows: int(nums[4]), Columns: int(nums[5]), Active: int(nums[6])}
	if grid.Rows < core.MinDimension || grid.Columns < core.MinDimension {
		return core.Record{}, fmt.Errorf("grid %dx%d below %d cells per side", grid.Rows, grid.Columns, core.MinDimension)
	}
	if grid.Active < 1 {
		return core.Record{}, fmt.Errorf("active %d out of range", grid.Active)
	}
	return core.NewRecord(position, int(nums[2]), nums[3], grid), nil
}
