package mode

import "fmt"

// InputMode is the modal state of the vi emulation: inserting text,
// navigating, or replacing. It is orthogonal to EditingMode; the
// insert/navigation/replace distinction only exists while the top-level
// editing mode is vi.
type InputMode uint8

const (
	// Insert is the default text-entry state (beam cursor).
	Insert InputMode = iota

	// Navigation is vi "normal" mode, used for movement and commands
	// (block cursor).
	Navigation

	// Replace overwrites characters under the cursor (underline cursor).
	Replace
)

// String returns a human-readable mode name.
func (m InputMode) String() string {
	switch m {
	case Insert:
		return "insert"
	case Navigation:
		return "navigation"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("InputMode(%d)", m)
	}
}

// EditingMode is the top-level key-binding scheme.
type EditingMode uint8

const (
	// Emacs is the conventional readline scheme.
	Emacs EditingMode = iota

	// Vi enables modal editing with InputMode transitions.
	Vi
)

// String returns a human-readable editing-mode name.
func (m EditingMode) String() string {
	switch m {
	case Emacs:
		return "emacs"
	case Vi:
		return "vi"
	default:
		return fmt.Sprintf("EditingMode(%d)", m)
	}
}
