package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
)

func TestBookCollectionHidesUncaught(t *testing.T) {
	cat := catalog.Default()
	data, err := LoadBookData(nil, []string{"koi"})
	if err != nil {
		t.Fatalf("LoadBookData: %v", err)
	}
	m := NewBookModel(cat, data, 80, 24)

	rows := m.Rows()
	if len(rows) != len(cat.AllSpecies()) {
		t.Fatalf("rows = %d, expected %d", len(rows), len(cat.AllSpecies()))
	}
	for i, sp := range cat.AllSpecies() {
		expected := unknownName
		if sp.ID == "koi" {
			expected = "Koi"
		}
		if rows[i][1] != expected {
			t.Errorf("row %d name = %q, expected %q", i, rows[i][1], expected)
		}
	}
}

func TestBookTabSwitch(t *testing.T) {
	data, _ := LoadBookData(nil, nil)
	m := NewBookModel(catalog.Default(), data, 80, 24)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(BookModel)
	if m.Tab() != TabCatches {
		t.Fatalf("tab = %v, expected catches", m.Tab())
	}
	if len(m.Rows()) != 0 {
		t.Errorf("catch rows = %d, expected 0 without a store", len(m.Rows()))
	}
}

func TestStageMenuSelect(t *testing.T) {
	m := NewStageMenuModel(catalog.Default(), "river_mouth", 80, 24)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(StageMenuModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(StageMenuModel)

	if m.Selected() == nil || m.Selected().ID != "stream" {
		t.Errorf("selected = %v, expected stream", m.Selected())
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		key      string
		expected MenuAction
	}{
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.key); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.key, got, tt.expected)
		}
	}
}
