package keymap

import (
	"github.com/devadathanmb/pgcli/internal/input/mode"
)

// State is the read-only snapshot of editor state that binding
// predicates are evaluated against. It is rebuilt from the live buffer
// and application objects for every key event and has no identity of
// its own.
type State struct {
	// InputMode is the current vi input mode.
	InputMode mode.InputMode

	// EditingMode is the top-level binding scheme (emacs or vi).
	EditingMode mode.EditingMode

	// CompletionOpen is true while a completion menu is showing.
	CompletionOpen bool

	// CompletionSelected is true when a completion candidate is
	// currently highlighted in the menu.
	CompletionSelected bool

	// Searching is true during an incremental history search.
	Searching bool

	// HasSelection is true when a text selection is active.
	HasSelection bool

	// CursorAtLineEnd is true when the document cursor sits at the end
	// of the current line.
	CursorAtLineEnd bool

	// HasSuggestion is true when an inline ghost-text suggestion is
	// pending.
	HasSuggestion bool
}

// Condition is a predicate over a state snapshot. A nil Condition on a
// binding means the binding always applies.
type Condition func(State) bool

// Not inverts a condition.
func Not(c Condition) Condition {
	return func(s State) bool { return !c(s) }
}

// And is true when all conditions are true.
func And(conds ...Condition) Condition {
	return func(s State) bool {
		for _, c := range conds {
			if !c(s) {
				return false
			}
		}
		return true
	}
}

// Or is true when any condition is true.
func Or(conds ...Condition) Condition {
	return func(s State) bool {
		for _, c := range conds {
			if c(s) {
				return true
			}
		}
		return false
	}
}

// Common conditions used by the default binding set.
var (
	// CompletionOpen is true while the completion menu is showing.
	CompletionOpen Condition = func(s State) bool { return s.CompletionOpen }

	// CompletionSelected is true when a candidate is highlighted.
	CompletionSelected Condition = func(s State) bool { return s.CompletionSelected }

	// Searching is true during incremental history search.
	Searching Condition = func(s State) bool { return s.Searching }

	// HasSelection is true when a selection is active.
	HasSelection Condition = func(s State) bool { return s.HasSelection }

	// ViMode is true when the top-level editing mode is vi.
	ViMode Condition = func(s State) bool { return s.EditingMode == mode.Vi }

	// ViNavigationMode is true in vi navigation (normal) mode.
	ViNavigationMode Condition = func(s State) bool {
		return s.EditingMode == mode.Vi && s.InputMode == mode.Navigation
	}

	// SuggestionAtLineEnd is true when a suggestion is pending and the
	// cursor is at the end of the current line.
	SuggestionAtLineEnd Condition = func(s State) bool {
		return s.HasSuggestion && s.CursorAtLineEnd
	}
)
