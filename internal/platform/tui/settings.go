package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
)

// SettingsKeyMap defines the key bindings for the settings form.
type SettingsKeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Apply key.Binding
	Back  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Apply, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultSettingsKeyMap returns default key bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

var fieldLabels = map[config.Field]string{
	config.FieldRows:    "Rows",
	config.FieldColumns: "Columns",
	config.FieldActive:  "Active",
}

// SettingsModel is the form editing rows, columns and active cells.
type SettingsModel struct {
	grid   core.GridConfig
	inputs []textinput.Model
	focus  int
	keys   SettingsKeyMap
	help   help.Model
	err    error
	width  int

	done    bool
	applied bool
}

// NewSettingsModel creates a form prefilled with grid.
func NewSettingsModel(grid core.GridConfig, width int) SettingsModel {
	inputs := make([]textinput.Model, len(config.Fields))
	for i, f := range config.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 3
		ti.Width = 5
		ti.SetValue(strconv.Itoa(config.Value(grid, f)))
		inputs[i] = ti
	}
	inputs[0].Focus()

	return SettingsModel{
		grid:   grid,
		inputs: inputs,
		keys:   DefaultSettingsKeyMap(),
		help:   help.New(),
		width:  width,
	}
}

// Update handles messages for the form.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.done = true
			return m, nil
		case key.Matches(msg, m.keys.Apply):
			return m.apply(), nil
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % len(m.inputs))
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// apply validates every field in order. The first rejected field keeps the
// previous grid and leaves the form open.
func (m SettingsModel) apply() SettingsModel {
	next := m.grid
	for i, f := range config.Fields {
		var err error
		next, err = config.ApplyEdit(next, f, m.inputs[i].Value())
		if err != nil {
			m.err = err
			m.inputs[m.focus].Blur()
			m.focus = i
			m.inputs[i].Focus()
			return m
		}
	}
	m.err = nil
	m.grid = next
	m.applied = true
	m.done = true
	return m
}

// Done reports whether the form was closed.
func (m SettingsModel) Done() bool {
	return m.done
}

// Result returns the accepted grid and whether the form was applied.
func (m SettingsModel) Result() (core.GridConfig, bool) {
	return m.grid, m.applied
}

// View renders the form.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("SETTINGS", m.width)))
	b.WriteString("\n\n")

	var form strings.Builder
	for i, f := range config.Fields {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		form.WriteString(cursor)
		form.WriteString(padRight(fieldLabels[f], 9))
		form.WriteString(m.inputs[i].View())
		if i < len(config.Fields)-1 {
			form.WriteString("\n")
		}
	}
	b.WriteString(panelStyle.Render(form.String()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
