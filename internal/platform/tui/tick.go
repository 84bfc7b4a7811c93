// Package tui provides the Bubble Tea integration for Forest Run.
// It owns the terminal loop, key mapping, frame scheduling and run history;
// the simulation itself never sees a key code or a timer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is one scheduled simulation frame. Gen is the frame clock
// generation it was requested under; frames from a retired generation are
// dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// RefreshMsg asks the view to redraw without stepping the simulation.
type RefreshMsg struct{}

// frameInterval converts a tick rate to the delay between frames.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next frame of generation gen.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// refreshCmd redraws once after d, used to reveal the next-level prompt.
func refreshCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return RefreshMsg{}
	})
}
