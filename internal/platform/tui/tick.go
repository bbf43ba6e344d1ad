// Package tui provides the Bubble Tea frame driver for the game.
// It polls keys, measures frame time, drives the simulation, and renders it,
// both in the local terminal and over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the requested rate is not positive.
const defaultTickRate = 60

// maxFrameDelta caps the simulated time of one frame after a stall.
const maxFrameDelta = 0.1

// TickMsg is sent once per frame. It carries the frame's timestamp.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick message.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, clamped to [0, maxFrameDelta].
// The first frame has no predecessor and simulates nothing.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	d := now.Sub(prev).Seconds()
	if d < 0 {
		return 0
	}
	if d > maxFrameDelta {
		return maxFrameDelta
	}
	return d
}
