// Package tui runs Pong in the terminal with Bubble Tea.
// It maps keys to actions, drives the fixed-step loop and draws frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg wakes the model once per frame. Each tick runs every simulation
// step the clock says is due and then redraws the arena, so the frame rate
// and the simulation rate can drift apart without changing the physics.
type TickMsg time.Time

// tickCmd schedules the next frame at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	frame := time.Second / time.Duration(tickRate)
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
