package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/storage"
)

// Book layout constants
const (
	maxCatches  = 50 // Max catch log rows to load
	unknownName = "???"
)

// BookTab selects the fish book page.
type BookTab int

const (
	TabCollection BookTab = iota
	TabCatches
)

// BookKeyMap defines the key bindings for the fish book.
type BookKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BookKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BookKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab},
		{k.Back, k.Quit},
	}
}

// DefaultBookKeyMap returns default key bindings.
func DefaultBookKeyMap() BookKeyMap {
	return BookKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "collection/catches"),
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

// BookData is what the book shows. Stats and Top come from the catch log
// and are empty without a store.
type BookData struct {
	Caught map[string]bool
	Stats  map[string]storage.SpeciesStat
	Top    []storage.CatchEntry
}

// LoadBookData merges the in-game collection with the store's catch log.
// A nil store yields collection data only.
func LoadBookData(store *storage.Store, caught []string) (BookData, error) {
	data := BookData{
		Caught: make(map[string]bool, len(caught)),
		Stats:  make(map[string]storage.SpeciesStat),
	}
	for _, id := range caught {
		data.Caught[id] = true
	}
	if store == nil {
		return data, nil
	}

	stored, err := store.CaughtSpecies()
	if err != nil {
		return data, err
	}
	for _, id := range stored {
		data.Caught[id] = true
	}

	stats, err := store.SpeciesStats()
	if err != nil {
		return data, err
	}
	for _, st := range stats {
		data.Stats[st.SpeciesID] = st
	}

	data.Top, err = store.TopCatches(maxCatches)
	return data, err
}

// BookModel is the Bubble Tea model for the fish book screen.
type BookModel struct {
	cat       *catalog.Catalog
	data      BookData
	tab       BookTab
	table     table.Model
	help      help.Model
	keys      BookKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewBookModel creates a new fish book model.
func NewBookModel(cat *catalog.Catalog, data BookData, width, height int) BookModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := BookModel{
		cat:    cat,
		data:   data,
		keys:   DefaultBookKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *BookModel) columns() []table.Column {
	if m.tab == TabCatches {
		return []table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Fish", Width: 16},
			{Title: "Size", Width: 8},
			{Title: "Points", Width: 8},
			{Title: "Stage", Width: 12},
			{Title: "Date", Width: 13},
		}
	}
	return []table.Column{
		{Title: "No.", Width: 4},
		{Title: "Name", Width: 16},
		{Title: "", Width: 6},
		{Title: "Rarity", Width: 7},
		{Title: "Caught", Width: 7},
		{Title: "Best", Width: 8},
	}
}

func (m *BookModel) createTable() table.Model {
	height := m.height - 8 // Title, tabs, help and borders
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Rows returns the rows of the current tab.
func (m BookModel) Rows() []table.Row {
	if m.tab == TabCatches {
		return m.catchRows()
	}
	return m.collectionRows()
}

func (m BookModel) collectionRows() []table.Row {
	species := m.cat.AllSpecies()
	rows := make([]table.Row, len(species))
	for i, sp := range species {
		row := table.Row{fmt.Sprintf("%02d", i+1), unknownName, "", sp.Stars(), "-", "-"}
		if m.data.Caught[sp.ID] {
			row[1] = sp.NameEn
			row[2] = sp.Name
		}
		if st, ok := m.data.Stats[sp.ID]; ok && st.Count > 0 {
			row[4] = fmt.Sprintf("%d", st.Count)
			row[5] = fmt.Sprintf("%.0f cm", st.BestSize)
		}
		rows[i] = row
	}
	return rows
}

func (m BookModel) catchRows() []table.Row {
	rows := make([]table.Row, len(m.data.Top))
	for i, c := range m.data.Top {
		name := c.SpeciesID
		if sp := m.cat.Species(c.SpeciesID); sp != nil {
			name = sp.NameEn
		}
		stage := c.StageID
		if st := m.cat.Stage(c.StageID); st != nil {
			stage = st.NameEn
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			name,
			fmt.Sprintf("%.0f cm", c.Size),
			fmt.Sprintf("%.2f", c.Points),
			stage,
			c.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m *BookModel) updateTableRows() {
	m.table.SetRows(m.Rows())
	m.table.GotoTop()
}

// Init initializes the book model.
func (m BookModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the book.
func (m BookModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % 2
			// Columns change with the tab, so the rows must be cleared
			// first or the table renders stale cells.
			m.table.SetRows(nil)
			m.table.SetColumns(m.columns())
			m.updateTableRows()
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

// View renders the book.
func (m BookModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	caught := 0
	for _, sp := range m.cat.AllSpecies() {
		if m.data.Caught[sp.ID] {
			caught++
		}
	}
	title := fmt.Sprintf("FISH BOOK  %d/%d", caught, len(m.cat.AllSpecies()))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Padding(0, 1)
	names := []string{"Collection", "Catches"}
	tabs := make([]string, len(names))
	for i, name := range names {
		if BookTab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if row := m.table.SelectedRow(); m.tab == TabCollection && row != nil {
		b.WriteString(m.renderDesc())
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderDesc shows the selected species' description once it is caught.
func (m BookModel) renderDesc() string {
	species := m.cat.AllSpecies()
	i := m.table.Cursor()
	if i < 0 || i >= len(species) {
		return ""
	}
	sp := species[i]
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")).
		Italic(true)
	if !m.data.Caught[sp.ID] {
		return descStyle.Render("Not caught yet.")
	}
	return descStyle.Render(fmt.Sprintf("%s: %s (%.0f-%.0f cm)", sp.NameEn, sp.Desc, sp.MinSize, sp.MaxSize))
}

func (m BookModel) renderTableContent() string {
	if m.tab == TabCatches && len(m.data.Top) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No catches recorded yet.\nCast a line and land your first fish!")
	}
	return m.table.View()
}

// Tab returns the current page.
func (m BookModel) Tab() BookTab {
	return m.tab
}

// IsGoingBack returns true if user wants to go back.
func (m BookModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BookModel) IsQuitting() bool {
	return m.quitting
}

// RunBook shows the fish book as its own program.
func RunBook(cat *catalog.Catalog, store *storage.Store, width, height int) error {
	data, err := LoadBookData(store, nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewBookModel(cat, data, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
