package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reflex/internal/config"
	"github.com/vovakirdan/tui-reflex/internal/core"
	"github.com/vovakirdan/tui-reflex/internal/games/reflex"
	"github.com/vovakirdan/tui-reflex/internal/storage"
)

func quietLogger() *log.Logger {
	l := log.New(io.Discard)
	l.SetLevel(log.FatalLevel)
	return l
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (Model, storage.KV) {
	t.Helper()
	kv := storage.NewMemory()
	game, err := reflex.New(kv, reflex.Options{
		Config:  config.DefaultReflexConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 99},
		Logger:  quietLogger(),
	})
	if err != nil {
		t.Fatalf("reflex.New() failed: %v", err)
	}
	return NewModel(game, 80, 25, quietLogger()), kv
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runes("s"), core.ActionDown},
		{runes("a"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionTrigger},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionTrigger},
		{runes("z"), core.ActionTrigger},
		{runes("o"), core.ActionSettings},
		{runes("H"), core.ActionHistory},
		{runes("c"), core.ActionClearBucket},
		{runes("C"), core.ActionClearAll},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("7"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestModelMousePlay(t *testing.T) {
	m, _ := newTestModel(t)
	game := m.Game()

	r := game.Layout().CellRect(game.Session().Active()[0])
	m = update(t, m, tea.MouseMsg{X: r.X, Y: r.Y, Action: tea.MouseActionMotion})
	if _, ok := game.Gate().Hovered(); !ok {
		t.Fatal("motion over a cell did not hover it")
	}

	m = update(t, m, tea.MouseMsg{X: r.X, Y: r.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if game.Session().Score() != 1 {
		t.Errorf("score = %d after pressing an active cell", game.Session().Score())
	}

	// Right clicks are ignored
	update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if game.Session().Score() != 1 {
		t.Errorf("right click changed the score to %d", game.Session().Score())
	}
}

func TestModelSettingsApply(t *testing.T) {
	m, kv := newTestModel(t)

	m = update(t, m, runes("o"))
	if m.view != viewSettings {
		t.Fatalf("view = %v, want settings", m.view)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = update(t, m, runes("5"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.view != viewGame {
		t.Fatalf("view = %v after apply, want game", m.view)
	}
	if got := m.Game().Grid(); got != core.NewGridConfig(5, 3, 3) {
		t.Errorf("grid = %s, want 5×3/3", got)
	}
	if v, _, _ := kv.Get(config.KeyRows); v != "5" {
		t.Errorf("stored rows = %q", v)
	}
}

func TestModelSettingsRejectsInvalid(t *testing.T) {
	m, _ := newTestModel(t)
	before := m.Game().Grid()

	m = update(t, m, runes("o"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = update(t, m, runes("1"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.view != viewSettings {
		t.Fatal("invalid edit closed the form")
	}
	if !strings.Contains(m.View(), "rows must be at least 2") {
		t.Errorf("form does not show the error:\n%s", m.View())
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewGame || m.Game().Grid() != before {
		t.Errorf("cancel: view %v grid %s", m.view, m.Game().Grid())
	}
}

func TestModelHistoryClear(t *testing.T) {
	m, _ := newTestModel(t)
	game := m.Game()
	grid := game.Grid()
	if err := game.History().Append(grid, core.NewRecord(1, 4, 1200, grid)); err != nil {
		t.Fatal(err)
	}

	m = update(t, m, runes("H"))
	if m.view != viewHistory {
		t.Fatalf("view = %v, want history", m.view)
	}
	if !strings.Contains(m.View(), "1.20s") {
		t.Errorf("history view lacks the record:\n%s", m.View())
	}

	m = update(t, m, runes("c"))
	if game.History().Len(grid) != 0 {
		t.Error("c did not clear the current grid")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewGame {
		t.Errorf("view = %v after esc, want game", m.view)
	}
}

func TestModelStatusExpires(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runes("C"))
	m = next.(Model)
	if m.Game().Status() == "" || cmd == nil {
		t.Fatalf("clear all: status %q, cmd %v", m.Game().Status(), cmd)
	}

	// A stale expiry leaves a newer message alone
	m = update(t, m, clearStatusMsg{seq: m.statusSeq - 1})
	if m.Game().Status() == "" {
		t.Error("stale expiry cleared the status")
	}
	m = update(t, m, clearStatusMsg{seq: m.statusSeq})
	if m.Game().Status() != "" {
		t.Errorf("status = %q after expiry", m.Game().Status())
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line 0 %q lacks %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("line 1 = %q", lines[1])
	}
}
