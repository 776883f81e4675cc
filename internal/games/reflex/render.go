package reflex

import (
	"fmt"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

const (
	activeFill  = '█'
	hoverFill   = '▓'
	statusColor = core.ColorCyan
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.TooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)

	if g.status != "" {
		dst.DrawTextCentered(dst.Height()-1, g.status, statusColor)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Please resize terminal for a %s grid", g.Grid()), core.ColorGray)
}

// renderHUD draws the title and the current/best score line.
func (g *Game) renderHUD(dst *core.Screen) {
	grid := g.Grid()
	dst.DrawTextCentered(0, fmt.Sprintf("REFLEX  %d×%d  active %d", grid.Rows, grid.Columns, grid.Active), core.ColorBrightWhite)
	dst.DrawTextCentered(1, ScoreLine(g.session.Current(), g.session.Best()), core.ColorDefault)
}

// ScoreLine formats the live score next to the best one.
func ScoreLine(current, best core.Record) string {
	return fmt.Sprintf("Score: %d (%.2f/s) / %d (%.2f/s)",
		current.Score, current.Rate(), best.Score, best.Rate())
}

func (g *Game) renderGrid(dst *core.Screen) {
	hovered, hasHover := g.gate.Hovered()
	grid := g.Grid()

	for row := range grid.Rows {
		for col := range grid.Columns {
			p := core.Pos(row, col)
			rect := g.layout.CellRect(p)
			active := g.session.IsActive(p)
			hover := hasHover && hovered == p

			switch {
			case active && hover:
				dst.DrawRect(rect, hoverFill, core.ColorBrightYellow)
			case active:
				dst.DrawRect(rect, activeFill, core.ColorBrightGreen)
			case hover:
				dst.DrawBox(rect, core.ColorYellow)
			default:
				dst.DrawBox(rect, core.ColorGray)
			}
		}
	}
}
