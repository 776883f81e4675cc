// Package tui provides the Bubble Tea front end of the reflex game: the game
// screen, the settings form, the history table and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status message stays on screen.
const statusTTL = 4 * time.Second

// clearStatusMsg expires the status message set at the given sequence number.
type clearStatusMsg struct {
	seq int
}

// clearStatusCmd schedules the expiry of status message seq.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
