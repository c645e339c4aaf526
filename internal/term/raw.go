package term

import (
	"fmt"

	"golang.org/x/term"
)

// RawMode holds the terminal state needed to restore cooked mode.
type RawMode struct {
	fd    int
	state *term.State
}

// EnterRaw puts the terminal into raw mode and returns a guard that
// restores the previous state.
func EnterRaw(fd int) (*RawMode, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	return &RawMode{fd: fd, state: state}, nil
}

// Restore returns the terminal to its previous state.
func (r *RawMode) Restore() error {
	if r == nil || r.state == nil {
		return nil
	}
	if err := term.Restore(r.fd, r.state); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	r.state = nil
	return nil
}

// IsTerminal reports whether the file descriptor is a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Size returns the terminal dimensions in cells.
func Size(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}
