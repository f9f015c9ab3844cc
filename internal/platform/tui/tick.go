// Package tui runs the fishing simulation in a terminal with Bubble Tea.
// It maps mouse and keys onto pointer input, drives the tick loop and
// shows the stage picker and fish book screens.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// TickMsg advances the simulation by one frame.
type TickMsg time.Time

// tickCmd schedules the next frame one tick interval from now.
func tickCmd(rc core.RuntimeConfig) tea.Cmd {
	return tea.Tick(rc.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
