package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/history"
)

// ScoreboardKeyMap defines the key bindings for the history screen.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextGrid    key.Binding
	PrevGrid    key.Binding
	ClearBucket key.Binding
	ClearAll    key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGrid, k.PrevGrid, k.ClearBucket, k.ClearAll, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGrid, k.PrevGrid},
		{k.ClearBucket, k.ClearAll, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGrid: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next grid"),
		),
		PrevGrid: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev grid"),
		),
		ClearBucket: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear grid"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists recorded runs, one grid configuration at a time.
type ScoreboardModel struct {
	store      *history.Store
	grids      []core.GridConfig
	gridCursor int
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	status     string
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a history view opened on the current grid.
func NewScoreboardModel(store *history.Store, current core.GridConfig, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload(current)
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Pos", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Score/s", Width: 8},
		{Title: "Seconds", Width: 9},
		{Title: "Size", Width: 7},
		{Title: "Active", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload refreshes the grid list, keeping focus on grid when present.
// The current grid is always listed so it can be cleared or browsed empty.
func (m *ScoreboardModel) reload(focus core.GridConfig) {
	m.grids = m.store.Grids()
	if !slices.Contains(m.grids, focus) {
		m.grids = append([]core.GridConfig{focus}, m.grids...)
	}
	m.gridCursor = slices.Index(m.grids, focus)
	m.updateTableRows()
}

// Grid returns the grid whose history is shown.
func (m ScoreboardModel) Grid() core.GridConfig {
	return m.grids[m.gridCursor]
}

// updateTableRows fills the table from the selected bucket, newest first.
func (m *ScoreboardModel) updateTableRows() {
	bucket := m.store.Bucket(m.Grid())
	rows := make([]table.Row, len(bucket))
	for i, r := range bucket {
		rows[i] = RecordRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// RecordRow formats a record as a table row.
func RecordRow(r core.Record) table.Row {
	return table.Row{
		fmt.Sprintf("%d", r.Position),
		fmt.Sprintf("%d", r.Score),
		fmt.Sprintf("%.2f", r.Rate()),
		fmt.Sprintf("%.2fs", r.Seconds()),
		fmt.Sprintf("%d×%d", r.Rows, r.Columns),
		fmt.Sprintf("%d", r.Active),
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextGrid):
			m.gridCursor = (m.gridCursor + 1) % len(m.grids)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevGrid):
			m.gridCursor = (m.gridCursor + len(m.grids) - 1) % len(m.grids)
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.ClearBucket):
			grid := m.Grid()
			m.status = m.result(m.store.Clear(grid), fmt.Sprintf("Cleared %s", grid))
			m.reload(grid)
			return m, nil

		case key.Matches(msg, m.keys.ClearAll):
			grid := m.Grid()
			m.status = m.result(m.store.ClearAll(), "Cleared all history")
			m.reload(grid)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) result(err error, ok string) string {
	if err != nil {
		return err.Error()
	}
	return ok
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("HISTORY", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if best, ok := m.store.Best(m.Grid()); ok {
		b.WriteString(fmt.Sprintf("Best: %d hits in %.2fs (%.2f/s)\n", best.Score, best.Seconds(), best.Rate()))
	}
	if m.status != "" {
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs renders one tab per grid configuration.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.grids))
	for i, g := range m.grids {
		if i == m.gridCursor {
			tabs[i] = activeTabStyle.Render(g.String())
		} else {
			tabs[i] = tabStyle.Render(" " + g.String() + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.Grid())
	}
	return line
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if m.store.Len(m.Grid()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No runs recorded for this grid.\nA run needs at least 2 hits.")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the game.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
