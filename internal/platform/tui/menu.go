package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
)

// StageMenuModel is the Bubble Tea model for the stage picker.
type StageMenuModel struct {
	cat      *catalog.Catalog
	stages   []*catalog.Stage
	cursor   int
	width    int
	height   int
	quitting bool
	selected *catalog.Stage
}

// NewStageMenuModel creates a stage picker with the cursor on current.
func NewStageMenuModel(cat *catalog.Catalog, current string, width, height int) StageMenuModel {
	stages := cat.Stages()
	cursor := 0
	for i, st := range stages {
		if st.ID == current {
			cursor = i
		}
	}
	return StageMenuModel{
		cat:    cat,
		stages: stages,
		cursor: cursor,
		width:  width,
		height: height,
	}
}

// Init initializes the menu model.
func (m StageMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m StageMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m StageMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg.String()) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.stages)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.stages) > 0 {
			m.selected = m.stages[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m StageMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  F I S H I N G  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a fishing spot", m.width))
	b.WriteString("\n\n")

	for i, st := range m.stages {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}
		line := fmt.Sprintf("%s%d. %s %s", cursor, i+1, st.NameEn, st.Name)
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	if len(m.stages) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(centerText(m.describe(m.stages[m.cursor]), m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Fish here  |  Esc: Back", m.width))
	b.WriteString("\n")

	return b.String()
}

// describe summarizes a stage's water and roster.
func (m StageMenuModel) describe(st *catalog.Stage) string {
	names := make([]string, 0, len(st.FishTypes))
	for _, sp := range m.cat.Roster(st) {
		names = append(names, sp.NameEn)
	}
	return fmt.Sprintf("flow %.1f  |  %d fish  |  %s", st.Flow, st.FishCount, strings.Join(names, ", "))
}

// Selected returns the chosen stage, or nil if none.
func (m StageMenuModel) Selected() *catalog.Stage {
	return m.selected
}

// IsQuitting returns true if user backed out.
func (m StageMenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// RunStagePicker shows the stage picker and returns the chosen stage id,
// or "" if the player backed out.
func RunStagePicker(cat *catalog.Catalog, current string, width, height int) (string, error) {
	p := tea.NewProgram(
		NewStageMenuModel(cat, current, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := finalModel.(StageMenuModel)
	if !ok || m.Selected() == nil {
		return "", nil
	}
	return m.Selected().ID, nil
}
