package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the fishing screen.
type KeyMap struct {
	Cast       key.Binding
	Reel       key.Binding
	Stage      key.Binding
	NextStage  key.Binding
	Book       key.Binding
	Pause      key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cast, k.Reel, k.Stage, k.Book, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cast, k.Reel, k.Stage, k.NextStage},
		{k.Book, k.Pause, k.Mute, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Cast: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "cast/hook/ok"),
		),
		Reel: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "reel (hold)"),
		),
		Stage: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "stage"),
		),
		NextStage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next stage"),
		),
		Book: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "fish book"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc", "p"),
			key.WithHelp("esc/p", "pause"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(k string) MenuAction {
	switch k {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
