package prompt

import (
	"strings"

	"github.com/devadathanmb/pgcli/internal/app"
	"github.com/devadathanmb/pgcli/internal/input/keymap"
	"github.com/devadathanmb/pgcli/internal/input/mode"
	"github.com/devadathanmb/pgcli/internal/prompt/buffer"
	"github.com/devadathanmb/pgcli/internal/term"
)

// indent is inserted when Tab has nothing to complete.
const indent = "    "

// NewBindingTable builds the full binding set over the given
// collaborators. The table is immutable after this returns; the F2-F5
// toggles change what the conditions evaluate to, not the table.
func NewBindingTable(a *app.App, buf *buffer.Buffer, observer *term.CursorObserver, shapes *term.ShapeWriter) *keymap.Table {
	t := keymap.NewTable()

	bufferShouldBeHandled := func(keymap.State) bool {
		return a.ShouldHandleBuffer(buf.Text())
	}
	safeMultiLine := func(keymap.State) bool {
		return a.SafeMultiLine()
	}
	// Escape leaves vi insert or replace mode; the completion branch of
	// Escape is registered separately and checked first.
	viNotNavigation := func(s keymap.State) bool {
		return s.EditingMode == mode.Vi && s.InputMode != mode.Navigation
	}

	t.AddBinding(keymap.NewBinding("f2", func(e *keymap.Event) {
		a.ToggleSmartCompletion()
	}).WithName("toggle-smart-completion"))

	t.AddBinding(keymap.NewBinding("f3", func(e *keymap.Event) {
		a.ToggleMultiLine()
	}).WithName("toggle-multiline"))

	t.AddBinding(keymap.NewBinding("f4", func(e *keymap.Event) {
		if a.ToggleEditingMode() == mode.Vi {
			observer.Attach()
		} else {
			observer.Detach()
			shapes.Reset()
		}
	}).WithName("toggle-editing-mode"))

	t.AddBinding(keymap.NewBinding("f5", func(e *keymap.Event) {
		a.ToggleExplainMode()
	}).WithName("toggle-explain-mode"))

	// Tab completes on the first line and on any line with content;
	// an empty continuation line gets indentation instead.
	t.AddBinding(keymap.NewBinding("tab", func(e *keymap.Event) {
		doc := buf.Document()
		if doc.OnFirstLine() || strings.TrimSpace(doc.CurrentLine()) != "" {
			if buf.CompletionState() != nil {
				buf.CompleteNext()
				return
			}
			buf.StartCompletion(true)
			return
		}
		// The silent insert keeps the menu closed.
		buf.InsertText(indent, false)
	}).WithName("force-completion"))

	t.AddBinding(keymap.NewBinding("escape", func(e *keymap.Event) {
		buf.ClearCompletion()
	}).WithWhen(keymap.CompletionOpen).WithName("cancel-completion"))

	// Ctrl-Space toggles the menu: open without preselecting, close if
	// already showing.
	t.AddBinding(keymap.NewBinding("c-space", func(e *keymap.Event) {
		if buf.CompletionState() != nil {
			buf.ClearCompletion()
			return
		}
		buf.StartCompletion(false)
	}).WithName("toggle-completion-menu"))

	t.AddBinding(keymap.NewBinding("c-j", func(e *keymap.Event) {
		buf.CompleteNext()
	}).WithWhen(keymap.CompletionOpen).WithName("completion-next"))

	t.AddBinding(keymap.NewBinding("c-k", func(e *keymap.Event) {
		buf.CompletePrevious()
	}).WithWhen(keymap.CompletionOpen).WithName("completion-previous"))

	// Enter accepts the highlighted candidate instead of submitting;
	// the candidate text is already in the buffer, so closing the menu
	// is the whole action.
	t.AddBinding(keymap.NewBinding("enter", func(e *keymap.Event) {
		buf.ClearCompletion()
	}).WithWhen(keymap.CompletionSelected).WithName("accept-completion"))

	t.AddBinding(keymap.NewBinding("enter", func(e *keymap.Event) {
		buf.ValidateAndSubmit()
	}).WithWhen(keymap.And(
		keymap.Not(keymap.Or(keymap.CompletionSelected, keymap.Searching)),
		bufferShouldBeHandled,
	)).WithName("submit"))

	// Terminals deliver a deliberate Escape-then-Enter as two events,
	// but a fast Alt+Enter arrives as one; both spell the same intent.
	insertNewline := func(e *keymap.Event) {
		buf.InsertText("\n", true)
	}
	newlineGuard := keymap.And(
		keymap.Not(keymap.ViMode),
		keymap.Not(keymap.Condition(safeMultiLine)),
	)
	t.AddBinding(keymap.NewBinding("escape enter", insertNewline).
		WithWhen(newlineGuard).WithName("insert-newline"))
	t.AddBinding(keymap.NewBinding("a-enter", insertNewline).
		WithWhen(newlineGuard).WithName("insert-newline"))

	t.AddBinding(keymap.NewBinding("c-p", func(e *keymap.Event) {
		buf.HistoryBackward(e.Count)
	}).WithWhen(keymap.Not(keymap.HasSelection)).WithName("history-backward"))

	t.AddBinding(keymap.NewBinding("c-n", func(e *keymap.Event) {
		buf.HistoryForward(e.Count)
	}).WithWhen(keymap.Not(keymap.HasSelection)).WithName("history-forward"))

	// Forward movement in vi navigation mode doubles as suggestion
	// acceptance: the eager binding wins whenever a suggestion is
	// pending at the end of the line, the non-eager one moves.
	acceptSuggestion := func(e *keymap.Event) {
		if text := buf.Suggestion(); text != "" {
			buf.InsertText(text, true)
		}
	}
	moveRight := func(e *keymap.Event) {
		buf.CursorRight(e.Count)
	}
	for _, spec := range []string{"l", "right"} {
		t.AddBinding(keymap.NewBinding(spec, acceptSuggestion).
			WithWhen(keymap.And(keymap.ViNavigationMode, keymap.SuggestionAtLineEnd)).
			WithEager().
			WithName("accept-suggestion"))
		t.AddBinding(keymap.NewBinding(spec, moveRight).
			WithWhen(keymap.ViNavigationMode).
			WithName("vi-forward"))
	}

	t.AddBinding(keymap.NewBinding("h", func(e *keymap.Event) {
		buf.CursorLeft(e.Count)
	}).WithWhen(keymap.ViNavigationMode).WithName("vi-backward"))

	t.AddBinding(keymap.NewBinding("j", func(e *keymap.Event) {
		buf.CursorDown(e.Count)
	}).WithWhen(keymap.ViNavigationMode).WithName("vi-down"))

	t.AddBinding(keymap.NewBinding("k", func(e *keymap.Event) {
		buf.CursorUp(e.Count)
	}).WithWhen(keymap.ViNavigationMode).WithName("vi-up"))

	t.AddBinding(keymap.NewBinding("0", func(e *keymap.Event) {
		buf.CursorToLineStart()
	}).WithWhen(keymap.ViNavigationMode).WithName("vi-line-start"))

	t.AddBinding(keymap.NewBinding("$", func(e *keymap.Event) {
		buf.CursorToLineEnd()
	}).WithWhen(keymap.ViNavigationMode).WithName("vi-line-end"))

	t.AddBinding(keymap.NewBinding("i", func(e *keymap.Event) {
		a.ViState().SetMode(mode.Insert)
	}).WithWhen(keymap.ViNavigationMode).WithName("vi-insert"))

	t.AddBinding(keymap.NewBinding("a", func(e *keymap.Event) {
		buf.CursorRight(1)
		a.ViState().SetMode(mode.Insert)
	}).WithWhen(keymap.ViNavigationMode).WithName("vi-append"))

	t.AddBinding(keymap.NewBinding("A", func(e *keymap.Event) {
		buf.CursorToLineEnd()
		a.ViState().SetMode(mode.Insert)
	}).WithWhen(keymap.ViNavigationMode).WithName("vi-append-line"))

	t.AddBinding(keymap.NewBinding("x", func(e *keymap.Event) {
		buf.DeleteUnderCursor(e.Count)
	}).WithWhen(keymap.ViNavigationMode).WithName("vi-delete-char"))

	t.AddBinding(keymap.NewBinding("escape", func(e *keymap.Event) {
		a.ViState().SetMode(mode.Navigation)
		buf.CursorLeft(1)
	}).WithWhen(viNotNavigation).WithName("vi-leave-insert"))

	return t
}
