package keymap

import (
	"fmt"
	"sync"

	"github.com/devadathanmb/pgcli/internal/input/key"
)

// Table is the ordered collection of bindings for the editor. It is
// constructed once at startup and immutable thereafter; toggling
// application flags changes predicate outcomes, not the table itself.
//
// Resolution picks, among the bindings whose chord matches and whose
// condition holds, the eager tier first; within a tier the first
// registered binding wins.
type Table struct {
	mu sync.RWMutex

	// bindings in registration order.
	bindings []Binding

	// index groups binding positions by canonical chord string.
	index map[string][]int

	// prefixes holds the canonical string of every proper prefix of a
	// registered multi-key chord.
	prefixes map[string]struct{}
}

// NewTable creates an empty binding table.
func NewTable() *Table {
	return &Table{
		index:    make(map[string][]int),
		prefixes: make(map[string]struct{}),
	}
}

// Add registers a binding built from the given chord spec.
func (t *Table) Add(spec string, handler Handler) *Table {
	return t.AddBinding(NewBinding(spec, handler))
}

// AddBinding registers a fully configured binding.
// Registration order is the tie-break within a priority tier.
func (t *Table) AddBinding(b Binding) *Table {
	t.mu.Lock()
	defer t.mu.Unlock()

	pos := len(t.bindings)
	t.bindings = append(t.bindings, b)

	chordKey := b.Chord.String()
	t.index[chordKey] = append(t.index[chordKey], pos)

	// Index proper prefixes so the dispatcher can wait for multi-key
	// chords to complete.
	for i := 1; i < b.Chord.Len(); i++ {
		prefix := key.NewChordFrom(b.Chord.Events[:i]...)
		t.prefixes[prefix.String()] = struct{}{}
	}

	return t
}

// Len returns the number of registered bindings.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.bindings)
}

// Resolve returns the single binding that should fire for the chord in
// the given state, or nil when no applicable binding exists. Exactly
// one binding fires per key event, or none.
func (t *Table) Resolve(chord *key.Chord, state State) *Binding {
	if chord == nil || chord.IsEmpty() {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	positions := t.index[chord.String()]

	// Eager tier first; registration order breaks ties within a tier.
	for _, pos := range positions {
		b := &t.bindings[pos]
		if b.Eager && b.Applies(state) {
			return b
		}
	}
	for _, pos := range positions {
		b := &t.bindings[pos]
		if !b.Eager && b.Applies(state) {
			return b
		}
	}
	return nil
}

// HasMatch returns true if any binding is registered on the chord,
// regardless of conditions.
func (t *Table) HasMatch(chord *key.Chord) bool {
	if chord == nil || chord.IsEmpty() {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.index[chord.String()]) > 0
}

// HasPrefix returns true if the chord is a proper prefix of a longer
// registered chord, meaning the dispatcher should wait for more keys.
func (t *Table) HasPrefix(chord *key.Chord) bool {
	if chord == nil || chord.IsEmpty() {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.prefixes[chord.String()]
	return ok
}

// Bindings returns a copy of the registered bindings in order.
func (t *Table) Bindings() []Binding {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Binding, len(t.bindings))
	copy(out, t.bindings)
	return out
}

// Validate checks that every binding has a chord and a handler.
func (t *Table) Validate() error {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, b := range t.bindings {
		if b.Chord == nil || b.Chord.IsEmpty() {
			return fmt.Errorf("binding %d (%s): empty chord", i, b.Name)
		}
		if b.Handler == nil {
			return fmt.Errorf("binding %d (%s): nil handler", i, b.Chord.String())
		}
	}
	return nil
}
