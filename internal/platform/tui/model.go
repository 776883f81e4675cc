package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/games/reflex"
)

// view selects which screen the model shows.
type view int

const (
	viewGame view = iota
	viewSettings
	viewHistory
)

// helpHeight is the number of rows below the game reserved for key help.
const helpHeight = 1

// Model is the Bubble Tea model driving one reflex game: the grid itself plus
// the settings form and the history table.
type Model struct {
	game       *reflex.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	view       view
	settings   SettingsModel
	scoreboard ScoreboardModel
	width      int
	height     int
	statusSeq  int
	quitting   bool
}

// NewModel creates a model for game on a terminal of the given size.
func NewModel(game *reflex.Game, width, height int, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	m := Model{
		game:   game,
		screen: core.NewScreen(width, core.Max(height-helpHeight, 0)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		width:  width,
		height: height,
	}
	m.help.Width = width
	game.Resize(m.screen.Width(), m.screen.Height())
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.game.ClearStatus()
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.view {
	case viewSettings:
		return m.updateSettings(msg)
	case viewHistory:
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionSettings:
		m.view = viewSettings
		m.settings = NewSettingsModel(m.game.Grid(), m.width)
		return m, nil
	case core.ActionHistory:
		m.view = viewHistory
		m.scoreboard = NewScoreboardModel(m.game.History(), m.game.Grid(), m.width, m.height)
		return m, nil
	case core.ActionBack:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	return m.track(func() error { return m.game.HandleAction(action) })
}

// handleMouse hovers cells on motion and triggers on a left press.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.game.MouseMove(msg.X, msg.Y)
		return m, nil
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.track(func() error { return m.game.MousePress(msg.X, msg.Y) })
	}
	return m, nil
}

// track runs a game operation and schedules the expiry of any new status
// message it produced.
func (m Model) track(op func() error) (tea.Model, tea.Cmd) {
	before := m.game.Status()
	if err := op(); err != nil {
		m.logger.Error("game operation failed", "error", err)
	}
	if s := m.game.Status(); s == "" || s == before {
		return m, nil
	}
	m.statusSeq++
	return m, clearStatusCmd(m.statusSeq)
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.settings, cmd = m.settings.Update(msg)
	if !m.settings.Done() {
		return m, cmd
	}

	m.view = viewGame
	grid, ok := m.settings.Result()
	if !ok || grid == m.game.Grid() {
		return m, nil
	}
	return m.track(func() error { return m.game.Reconfigure(grid) })
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)
	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
	case m.scoreboard.IsGoingBack():
		m.view = viewGame
	}
	return m, cmd
}

// handleResize processes window resize events. The run in progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 0))
	m.game.Resize(m.screen.Width(), m.screen.Height())

	var cmd tea.Cmd
	switch m.view {
	case viewSettings:
		m.settings, cmd = m.settings.Update(msg)
	case viewHistory:
		m.scoreboard, cmd = m.scoreboard.Update(msg)
	}
	return m, cmd
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewSettings:
		return m.settings.View()
	case viewHistory:
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the game driven by the model.
func (m Model) Game() *reflex.Game {
	return m.game
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game *reflex.Game, width, height int, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, width, height, logger),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
	)

	_, err := p.Run()
	return err
}
