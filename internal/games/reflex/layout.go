package reflex

import (
	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
)

// Screen rows reserved around the grid.
const (
	hudTop    = 3 // Title, score, blank
	hudBottom = 2 // Blank, status message
)

// Layout maps grid cells to screen rectangles and back.
type Layout struct {
	Rows, Columns int
	X, Y          int // Top-left corner of the grid on screen
	CellW, CellH  int
	Gap           int
	TooSmall      bool
}

// NewLayout fits the grid into a screen of the given size, shrinking cells
// below the configured size when needed and centering the result.
func NewLayout(grid core.GridConfig, display config.DisplayConfig, screenW, screenH int) Layout {
	l := Layout{
		Rows:    grid.Rows,
		Columns: grid.Columns,
		Gap:     display.Gap,
	}

	availW := screenW
	availH := screenH - hudTop - hudBottom

	l.CellW = fitCell(display.CellWidth, availW, grid.Columns, l.Gap)
	l.CellH = fitCell(display.CellHeight, availH, grid.Rows, l.Gap)
	if l.CellW < 1 || l.CellH < 1 {
		// Try again without gaps before giving up.
		l.Gap = 0
		l.CellW = fitCell(display.CellWidth, availW, grid.Columns, 0)
		l.CellH = fitCell(display.CellHeight, availH, grid.Rows, 0)
	}
	if l.CellW < 1 || l.CellH < 1 {
		l.TooSmall = true
		return l
	}

	l.X = (screenW - l.Width()) / 2
	l.Y = hudTop + (availH-l.Height())/2
	return l
}

func fitCell(preferred, avail, count, gap int) int {
	if count <= 0 {
		return 0
	}
	fit := (avail - gap*(count-1)) / count
	return core.Min(preferred, fit)
}

// Width returns the grid width in screen columns.
func (l Layout) Width() int {
	return l.Columns*l.CellW + (l.Columns-1)*l.Gap
}

// Height returns the grid height in screen rows.
func (l Layout) Height() int {
	return l.Rows*l.CellH + (l.Rows-1)*l.Gap
}

// CellRect returns the screen rectangle of cell p.
func (l Layout) CellRect(p core.Position) core.Rect {
	return core.NewRect(
		l.X+p.Col*(l.CellW+l.Gap),
		l.Y+p.Row*(l.CellH+l.Gap),
		l.CellW,
		l.CellH,
	)
}

// CellAt returns the cell under screen point (x, y). Points in gaps or
// outside the grid report ok=false.
func (l Layout) CellAt(x, y int) (core.Position, bool) {
	if l.TooSmall || x < l.X || y < l.Y {
		return core.Position{}, false
	}
	p := core.Pos((y-l.Y)/(l.CellH+l.Gap), (x-l.X)/(l.CellW+l.Gap))
	if !p.In(l.Rows, l.Columns) {
		return core.Position{}, false
	}
	if !l.CellRect(p).Contains(x, y) {
		return core.Position{}, false
	}
	return p, true
}
