// Package input turns press-only terminal key reports into the down/up
// events the game expects.
package input

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Event is a synthesized key transition.
type Event struct {
	Key  string // Host key name, as first pressed
	Down bool
}

// hold is one direction key considered held until a deadline.
type hold struct {
	key   core.Key
	name  string
	until time.Time
}

// HoldTracker emulates key releases for terminals that only report presses.
// A first press holds the key for the initial window, long enough to cover
// the OS auto-repeat delay; each repeat extends it by the repeat window.
// Pressing the opposite direction releases the other one immediately.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	held    []hold
}

// NewHoldTracker creates a tracker with the given hold windows.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initial: initial,
		repeat:  repeat,
	}
}

// Press records a key press at now and returns the events to deliver.
// Non-direction keys are not tracked and produce no events.
func (h *HoldTracker) Press(name string, now time.Time) []Event {
	k := core.ParseKey(name)
	if !k.Direction() {
		return nil
	}

	var events []Event
	if i := h.index(k.Opposite()); i >= 0 {
		events = append(events, Event{Key: h.held[i].name})
		h.remove(i)
	}

	// Auto-repeat of a held key
	if i := h.index(k); i >= 0 {
		h.held[i].until = later(h.held[i].until, now.Add(h.repeat))
		return events
	}

	h.held = append(h.held, hold{key: k, name: name, until: now.Add(h.initial)})
	return append(events, Event{Key: name, Down: true})
}

// Expire releases every hold whose window ended before now.
func (h *HoldTracker) Expire(now time.Time) []Event {
	var events []Event
	kept := h.held[:0]
	for _, hd := range h.held {
		if now.After(hd.until) {
			events = append(events, Event{Key: hd.name})
			continue
		}
		kept = append(kept, hd)
	}
	h.held = kept
	return events
}

// ReleaseAll drops every hold and returns the matching key-up events.
func (h *HoldTracker) ReleaseAll() []Event {
	events := make([]Event, 0, len(h.held))
	for _, hd := range h.held {
		events = append(events, Event{Key: hd.name})
	}
	h.held = h.held[:0]
	return events
}

func (h *HoldTracker) index(k core.Key) int {
	for i, hd := range h.held {
		if hd.key == k {
			return i
		}
	}
	return -1
}

func (h *HoldTracker) remove(i int) {
	h.held = append(h.held[:i], h.held[i+1:]...)
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
