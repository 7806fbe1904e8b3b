// Package tui drives a chase session from a Bubble Tea program.
// It owns the frame clock, maps mouse and keyboard input onto move
// targets, times the hit blink and the end-of-session restart, and
// renders snapshots into the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the frame timestamp handed to Session.Step.
type TickMsg time.Time

// restartMsg asks for a fresh session. gen must match the model's current
// session generation, so a stale timer never restarts a newer session.
type restartMsg struct {
	gen int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// restartCmd fires once after d.
func restartCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return restartMsg{gen: gen}
	})
}
