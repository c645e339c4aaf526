package keymap

import (
	"github.com/devadathanmb/pgcli/internal/input/key"
)

// Event carries per-dispatch information into a handler.
type Event struct {
	// Keys is the chord that fired the binding.
	Keys *key.Chord

	// Count is the numeric repeat argument of the key event.
	// Defaults to 1 when no count prefix was entered.
	Count int
}

// NewEvent creates a dispatch event with the default count.
func NewEvent(keys *key.Chord) *Event {
	return &Event{Keys: keys, Count: 1}
}

// WithCount sets the repeat count.
func (e *Event) WithCount(count int) *Event {
	if count > 0 {
		e.Count = count
	}
	return e
}

// Handler performs a binding's action. Handlers run synchronously to
// completion before the next key event is processed.
type Handler func(*Event)

// Binding maps a key chord to a handler, guarded by a condition.
type Binding struct {
	// Chord is the key sequence that triggers this binding.
	Chord *key.Chord

	// When must be true for the binding to fire. Nil means always.
	When Condition

	// Eager bindings take dispatch priority over non-eager bindings on
	// the same chord whenever their condition holds. This is a static
	// priority tier, not a runtime contention mechanism.
	Eager bool

	// Handler is invoked when the binding fires.
	Handler Handler

	// Name documents the binding for display and debugging.
	Name string
}

// NewBinding creates a binding for the given chord spec.
// The spec must be valid; it is parsed with MustParseChord.
func NewBinding(spec string, handler Handler) Binding {
	return Binding{
		Chord:   key.MustParseChord(spec),
		Handler: handler,
	}
}

// WithWhen sets the guard condition.
func (b Binding) WithWhen(cond Condition) Binding {
	b.When = cond
	return b
}

// WithEager marks the binding as eager.
func (b Binding) WithEager() Binding {
	b.Eager = true
	return b
}

// WithName sets the documentation name.
func (b Binding) WithName(name string) Binding {
	b.Name = name
	return b
}

// Applies returns true if the binding's condition holds for the state.
func (b *Binding) Applies(state State) bool {
	return b.When == nil || b.When(state)
}
