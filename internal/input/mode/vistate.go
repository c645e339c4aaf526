package mode

import "sync"

// ChangeCallback is notified when the input mode is set. It receives the
// previous and the new mode. Every set call is reported, including the
// idempotent case old == new, so observers that drive terminal state can
// re-assert it after a redraw.
type ChangeCallback func(from, to InputMode)

// ViState holds the vi emulation's modal state. Interested parties
// register callbacks instead of patching the setter; the host calls
// SetMode on every transition.
type ViState struct {
	mu sync.RWMutex

	mode InputMode

	callbacks []ChangeCallback
}

// NewViState creates a ViState starting in insert mode.
func NewViState() *ViState {
	return &ViState{mode: Insert}
}

// Mode returns the current input mode.
func (s *ViState) Mode() InputMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode sets the input mode and notifies all registered callbacks,
// even when the mode is unchanged.
func (s *ViState) SetMode(m InputMode) {
	s.mu.Lock()
	from := s.mode
	s.mode = m
	callbacks := make([]ChangeCallback, len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mu.Unlock()

	// Notify outside the lock; a callback may read the mode back.
	for _, cb := range callbacks {
		if cb != nil {
			cb(from, m)
		}
	}
}

// OnChange registers a callback for mode sets.
// Returns a function to unregister the callback.
func (s *ViState) OnChange(cb ChangeCallback) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.callbacks = append(s.callbacks, cb)
	index := len(s.callbacks) - 1

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// Remove by setting to nil (preserves indices of other callbacks).
		if index < len(s.callbacks) {
			s.callbacks[index] = nil
		}
	}
}

// IsNavigation returns true if the current mode is navigation.
func (s *ViState) IsNavigation() bool {
	return s.Mode() == Navigation
}

// IsInsert returns true if the current mode is insert.
func (s *ViState) IsInsert() bool {
	return s.Mode() == Insert
}

// IsReplace returns true if the current mode is replace.
func (s *ViState) IsReplace() bool {
	return s.Mode() == Replace
}

// Reset returns the state to insert mode, notifying callbacks.
func (s *ViState) Reset() {
	s.SetMode(Insert)
}
