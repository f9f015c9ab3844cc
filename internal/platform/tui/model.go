package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fishing/internal/audio"
	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/fishing"
	"github.com/vovakirdan/tui-fishing/internal/render"
	"github.com/vovakirdan/tui-fishing/internal/session"
	"github.com/vovakirdan/tui-fishing/internal/storage"
)

// One terminal cell covers this many surface pixels.
const (
	CellWidth  = 10
	CellHeight = 20
)

// keyHoldTicks is how long one key press keeps the line reeling. Terminals
// report no key release, so auto-repeat extends the hold instead.
const keyHoldTicks = 15

// Options wires the play screen to its collaborators. Nil collaborators
// are skipped.
type Options struct {
	Catalog  *catalog.Catalog
	Tuning   config.FishingConfig
	Runtime  core.RuntimeConfig
	Store    *storage.Store
	Recorder *storage.Recorder
	Sound    *audio.SoundManager
	Logger   *log.Logger
	Snapshot *session.Snapshot
}

// Model is the Bubble Tea model for the fishing screen.
type Model struct {
	game *fishing.Game
	term *render.Terminal
	opts Options
	keys KeyMap
	help help.Model
	log  *log.Logger

	cols, rows int
	aim        core.Vec2 // Last pointer position in surface pixels
	keyHold    int       // Ticks left on a keyboard reel
	started    bool      // Title screen dismissed
	paused     bool
	book       *BookModel
	quitting   bool
}

// NewModel creates the play model. The game starts on its title screen.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	rc := opts.Runtime

	gameOpts := []fishing.Option{
		fishing.WithLogger(opts.Logger),
		fishing.WithRand(core.NewRand(rc.ResolveSeed())),
	}
	if opts.Recorder != nil {
		gameOpts = append(gameOpts, fishing.WithPersistence(opts.Recorder))
	}
	if opts.Sound != nil {
		gameOpts = append(gameOpts, fishing.WithAudio(opts.Sound))
	}
	if opts.Snapshot != nil {
		gameOpts = append(gameOpts, fishing.WithSnapshot(*opts.Snapshot))
	}

	cols := int(rc.Width) / CellWidth
	rows := int(rc.Height) / CellHeight
	return Model{
		game: fishing.New(opts.Catalog, opts.Tuning, rc, gameOpts...),
		term: render.NewTerminal(cols, rows),
		opts: opts,
		keys: DefaultKeyMap(),
		help: help.New(),
		log:  opts.Logger,
		cols: cols,
		rows: rows,
		aim:  core.V(rc.Width/2, rc.Height*0.6),
	}
}

// Game exposes the simulation, mainly for tests and the final summary.
func (m Model) Game() *fishing.Game {
	return m.game
}

// surface returns the simulated surface size in pixels.
func (m Model) surface() (float64, float64) {
	return float64(m.cols * CellWidth), float64(m.rows * CellHeight)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.book != nil {
		return m.updateBook(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cols = msg.Width
	m.rows = msg.Height - 1 // Help line
	if m.rows < 1 {
		m.rows = 1
	}
	m.term.Resize(m.cols, m.rows)
	m.help.Width = msg.Width
	if m.book != nil {
		updated, _ := m.book.Update(msg)
		book := updated.(BookModel)
		m.book = &book
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.keyHold > 0 {
		m.keyHold--
		if m.keyHold == 0 {
			m.game.SetInput(core.PointerRelease())
		}
	}
	w, h := m.surface()
	m.game.Update(w, h)
	return m, tickCmd(m.opts.Runtime)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.game.Phase() == fishing.PhaseCaught && !key.Matches(msg, m.keys.Quit) {
		m.game.DismissResult()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Cast), key.Matches(msg, m.keys.Reel):
		m.press(true)

	case key.Matches(msg, m.keys.Stage):
		idx := int(msg.String()[0] - '1')
		ids := m.opts.Catalog.StageIDs()
		if idx >= 0 && idx < len(ids) {
			m.changeStage(ids[idx])
		}

	case key.Matches(msg, m.keys.NextStage):
		ids := m.opts.Catalog.StageIDs()
		for i, id := range ids {
			if id == m.game.Stage().ID {
				m.changeStage(ids[(i+1)%len(ids)])
				break
			}
		}

	case key.Matches(msg, m.keys.Book):
		m.openBook()

	case key.Matches(msg, m.keys.Pause):
		if !m.started {
			break
		}
		if m.paused {
			m.game.CloseMenu()
		} else {
			m.game.OpenMenu()
		}
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Mute):
		if m.opts.Sound != nil {
			m.opts.Sound.SetMuted(!m.opts.Sound.Muted())
		}

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	}
	return m, nil
}

// press performs the primary action. Keyboard presses reel for a while;
// mouse presses hold until released.
func (m *Model) press(fromKey bool) {
	switch {
	case !m.started:
		m.game.Start()
		m.started = true
		return
	case m.paused:
		m.game.CloseMenu()
		m.paused = false
		return
	}

	switch m.game.Phase() {
	case fishing.PhaseCaught:
		m.game.DismissResult()
	case fishing.PhaseIdle:
		m.game.SetInput(core.PointerPress(m.aim.X, m.aim.Y))
		if fromKey {
			m.keyHold = 1
		}
	default:
		m.game.SetInput(core.PointerPress(m.aim.X, m.aim.Y))
		if fromKey {
			m.keyHold = keyHoldTicks
		}
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.aim = core.V((float64(msg.X)+0.5)*CellWidth, (float64(msg.Y)+0.5)*CellHeight)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.keyHold = 0
		m.press(false)
	case tea.MouseActionRelease:
		m.game.SetInput(core.PointerRelease())
	case tea.MouseActionMotion:
		m.game.SetInput(core.PointerMove(m.aim.X, m.aim.Y))
	}
	return m, nil
}

func (m *Model) changeStage(id string) {
	if !m.game.ChangeStage(id) {
		return
	}
	m.started = true
	m.paused = false
	m.keyHold = 0
}

func (m *Model) openBook() {
	data, err := LoadBookData(m.opts.Store, m.game.Caught())
	if err != nil {
		m.log.Warn("load fish book", "err", err)
	}
	if m.started && !m.paused {
		m.game.OpenMenu()
	}
	book := NewBookModel(m.opts.Catalog, data, m.cols, m.rows+1)
	m.book = &book
}

func (m Model) updateBook(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The book's own commands are dropped; its back key returns tea.Quit,
	// which would end the whole program here.
	updated, _ := m.book.Update(msg)
	book := updated.(BookModel)
	switch {
	case book.IsQuitting():
		return m.quit()
	case book.IsGoingBack():
		m.book = nil
		if m.started && !m.paused {
			m.game.CloseMenu()
		}
		return m, nil
	}
	m.book = &book
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.game.Close()
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	w, h := m.surface()
	m.game.Draw(m.term, w, h)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".fishing", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.Stage().ID, timestamp))
	if err := os.WriteFile(path, []byte(m.term.String()), 0o600); err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.book != nil {
		return m.book.View()
	}

	w, h := m.surface()
	fr := m.game.Frame(w, h)
	m.term.Render(fr)
	return RenderScreen(m.term.Screen(), fr.Flash > 0.5) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and returns the session as it stood
// when the player quit.
func Run(opts Options) (session.Snapshot, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	finalModel, err := p.Run()
	model.Game().Close()
	if m, ok := finalModel.(Model); ok {
		return m.Game().Session(), err
	}
	return model.Game().Session(), err
}
