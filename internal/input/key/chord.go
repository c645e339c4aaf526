package key

import (
	"strings"
)

// Chord is an ordered series of key events that together identify a
// binding. Most chords are a single key; multi-key chords like
// "escape enter" exist for sequences the terminal cannot report as one
// event.
type Chord struct {
	// Events contains the key events in order.
	Events []Event
}

// NewChord creates an empty chord.
func NewChord() *Chord {
	return &Chord{
		Events: make([]Event, 0, 2),
	}
}

// NewChordFrom creates a chord from the given events.
func NewChordFrom(events ...Event) *Chord {
	return &Chord{
		Events: events,
	}
}

// Len returns the number of events in the chord.
func (c *Chord) Len() int {
	return len(c.Events)
}

// IsEmpty returns true if the chord has no events.
func (c *Chord) IsEmpty() bool {
	return len(c.Events) == 0
}

// Add appends an event to the chord.
func (c *Chord) Add(event Event) {
	c.Events = append(c.Events, event)
}

// Clear removes all events from the chord.
func (c *Chord) Clear() {
	c.Events = c.Events[:0]
}

// Last returns the last event, or nil if empty.
func (c *Chord) Last() *Event {
	if len(c.Events) == 0 {
		return nil
	}
	return &c.Events[len(c.Events)-1]
}

// String returns a space-separated canonical representation.
// Examples: "Esc Enter", "C-j", "F2".
func (c *Chord) String() string {
	if len(c.Events) == 0 {
		return ""
	}

	parts := make([]string, len(c.Events))
	for i, e := range c.Events {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Equals returns true if two chords are identical.
func (c *Chord) Equals(other *Chord) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.Events) != len(other.Events) {
		return false
	}
	for i, e := range c.Events {
		if !e.Equals(other.Events[i]) {
			return false
		}
	}
	return true
}

// HasPrefix returns true if this chord starts with the given prefix.
func (c *Chord) HasPrefix(prefix *Chord) bool {
	if prefix == nil || prefix.IsEmpty() {
		return true
	}
	if len(prefix.Events) > len(c.Events) {
		return false
	}
	for i, e := range prefix.Events {
		if !e.Equals(c.Events[i]) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the chord.
func (c *Chord) Clone() *Chord {
	if c == nil {
		return nil
	}
	events := make([]Event, len(c.Events))
	copy(events, c.Events)
	return &Chord{Events: events}
}
