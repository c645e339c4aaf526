package prompt

import (
	"github.com/devadathanmb/pgcli/internal/app"
	"github.com/devadathanmb/pgcli/internal/input/keymap"
	"github.com/devadathanmb/pgcli/internal/prompt/buffer"
)

// snapshot captures the state the binding predicates evaluate against.
// Rebuilt from the live objects for every key event.
func snapshot(a *app.App, buf *buffer.Buffer) keymap.State {
	cs := buf.CompletionState()
	return keymap.State{
		InputMode:          a.ViState().Mode(),
		EditingMode:        a.EditingMode(),
		CompletionOpen:     cs != nil,
		CompletionSelected: cs.HasSelection(),
		Searching:          a.Searching(),
		HasSelection:       a.HasSelection(),
		CursorAtLineEnd:    buf.Document().CursorAtLineEnd(),
		HasSuggestion:      buf.Suggestion() != "",
	}
}
