package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Trigger     key.Binding
	Settings    key.Binding
	History     key.Binding
	ClearBucket key.Binding
	ClearAll    key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Trigger, k.Settings, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Trigger},
		{k.Settings, k.History, k.ClearBucket, k.ClearAll},
		{k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Trigger: key.NewBinding(
			key.WithKeys(" ", "enter", "z", "x"),
			key.WithHelp("space/click", "press cell"),
		),
		Settings: key.NewBinding(
			key.WithKeys("o", "tab"),
			key.WithHelp("o", "settings"),
		),
		History: key.NewBinding(
			key.WithKeys("H", "?"),
			key.WithHelp("H", "history"),
		),
		ClearBucket: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear this grid"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Trigger):
		return core.ActionTrigger
	case key.Matches(msg, k.Settings):
		return core.ActionSettings
	case key.Matches(msg, k.History):
		return core.ActionHistory
	case key.Matches(msg, k.ClearBucket):
		return core.ActionClearBucket
	case key.Matches(msg, k.ClearAll):
		return core.ActionClearAll
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}
