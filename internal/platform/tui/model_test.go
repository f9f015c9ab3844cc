package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/fishing"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(Options{
		Catalog: catalog.Default(),
		Tuning:  config.DefaultFishingConfig(),
		Runtime: core.RuntimeConfig{Width: 800, Height: 480, TickRate: 60, Seed: 7},
		Logger:  log.New(io.Discard),
	})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", updated)
	}
	return next
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelSize(t *testing.T) {
	m := newTestModel(t)
	if m.cols != 80 || m.rows != 24 {
		t.Errorf("grid = %dx%d, expected 80x24", m.cols, m.rows)
	}
	if m.Game().Phase() != fishing.PhaseMenu {
		t.Errorf("phase = %v, expected menu", m.Game().Phase())
	}
}

func TestEnterStartsThenCasts(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Game().Phase() != fishing.PhaseIdle {
		t.Fatalf("after first enter phase = %v, expected idle", m.Game().Phase())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg{})
	if m.Game().Phase() != fishing.PhaseCasting {
		t.Errorf("after second enter phase = %v, expected casting", m.Game().Phase())
	}
	if m.keyHold != 0 {
		t.Errorf("keyHold = %d, expected released after one tick", m.keyHold)
	}
}

func TestMouseMapsToSurfacePixels(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion})

	expected := core.V(105, 110)
	if m.aim != expected {
		t.Errorf("aim = %v, expected %v", m.aim, expected)
	}
}

func TestMousePressCasts(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.MouseMsg{X: 40, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Game().Phase() != fishing.PhaseIdle {
		t.Fatalf("press on title left phase %v, expected idle", m.Game().Phase())
	}

	m = send(t, m, tea.MouseMsg{X: 40, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, tea.MouseMsg{X: 40, Y: 8, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = send(t, m, TickMsg{})
	if m.Game().Phase() != fishing.PhaseCasting {
		t.Errorf("phase = %v, expected casting", m.Game().Phase())
	}
}

func TestStageKeys(t *testing.T) {
	tests := []struct {
		name     string
		key      tea.KeyMsg
		expected string
	}{
		{"digit picks stage", runeKey("3"), "pond"},
		{"tab cycles", tea.KeyMsg{Type: tea.KeyTab}, "stream"},
		{"out of range ignored", runeKey("9"), "river_mouth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m = send(t, m, tt.key)
			if got := m.Game().Stage().ID; got != tt.expected {
				t.Errorf("stage = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestBookPausesGame(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = send(t, m, runeKey("b"))
	if m.book == nil {
		t.Fatal("expected book to open")
	}
	if m.Game().Phase() != fishing.PhaseMenu {
		t.Errorf("phase with book open = %v, expected menu", m.Game().Phase())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.book != nil {
		t.Fatal("expected book to close")
	}
	if m.Game().Phase() != fishing.PhaseIdle {
		t.Errorf("phase after book = %v, expected idle", m.Game().Phase())
	}
}

func TestPauseToggle(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runeKey("p"))
	if m.paused {
		t.Error("pause on the title screen should be ignored")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runeKey("p"))
	if !m.paused || m.Game().Phase() != fishing.PhaseMenu {
		t.Fatalf("paused = %v phase = %v, expected paused menu", m.paused, m.Game().Phase())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.paused || m.Game().Phase() != fishing.PhaseIdle {
		t.Errorf("paused = %v phase = %v, expected resumed idle", m.paused, m.Game().Phase())
	}
}

func TestQuitClosesGame(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	m = updated.(Model)
	if !m.Game().Closed() {
		t.Error("expected game to be closed")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestResizeReservesHelpLine(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	w, h := m.surface()
	if w != 1000 || h != 580 {
		t.Errorf("surface = %vx%v, expected 1000x580", w, h)
	}
}
