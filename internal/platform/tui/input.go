package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// heldKeys turns discrete terminal key events into per-frame input.
// Terminals report presses and auto-repeats but no releases, so an action
// counts as held until window has passed since its last event.
type heldKeys struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
	pressed  map[core.Action]bool
}

func newHeldKeys(window time.Duration) *heldKeys {
	return &heldKeys{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
		pressed:  make(map[core.Action]bool),
	}
}

// press records a key event.
func (h *heldKeys) press(a core.Action, now time.Time) {
	h.lastSeen[a] = now
	h.pressed[a] = true
}

// frame builds the input for a frame at time now. Pressed actions are
// those seen since the previous call.
func (h *heldKeys) frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, seen := range h.lastSeen {
		if now.Sub(seen) < h.window {
			f.Hold(a)
		} else {
			delete(h.lastSeen, a)
		}
	}
	for a := range h.pressed {
		f.Press(a)
	}
	clear(h.pressed)
	return f
}
