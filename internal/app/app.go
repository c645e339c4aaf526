package app

import (
	"strings"
	"sync"

	"github.com/devadathanmb/pgcli/internal/input/mode"
)

// MultilineMode selects how Enter behaves when multi-line input is on.
type MultilineMode string

const (
	// MultilinePsql submits on a terminating semicolon, a backslash
	// command, or a bare exit/quit, psql style.
	MultilinePsql MultilineMode = "psql"

	// MultilineSafe never submits on Enter; submission requires an
	// explicit terminator elsewhere in the pipeline.
	MultilineSafe MultilineMode = "safe"
)

// App holds the client-level toggle flags and transient editor state
// the key-binding predicates read. All accessors are safe for
// concurrent use; dispatch itself runs on one goroutine.
type App struct {
	mu sync.RWMutex

	smartCompletion bool
	multiLine       bool
	multilineMode   MultilineMode
	explainMode     bool
	editingMode     mode.EditingMode

	searching    bool
	hasSelection bool

	vi *mode.ViState
}

// Option configures an App.
type Option func(*App)

// WithSmartCompletion sets the initial smart-completion flag.
func WithSmartCompletion(on bool) Option {
	return func(a *App) { a.smartCompletion = on }
}

// WithMultiLine sets the initial multi-line flag.
func WithMultiLine(on bool) Option {
	return func(a *App) { a.multiLine = on }
}

// WithMultilineMode sets the multi-line submission style.
func WithMultilineMode(m MultilineMode) Option {
	return func(a *App) { a.multilineMode = m }
}

// WithEditingMode sets the initial top-level editing mode.
func WithEditingMode(m mode.EditingMode) Option {
	return func(a *App) { a.editingMode = m }
}

// New creates an App with emacs editing mode and psql multi-line
// style unless options say otherwise.
func New(opts ...Option) *App {
	a := &App{
		multilineMode: MultilinePsql,
		editingMode:   mode.Emacs,
		vi:            mode.NewViState(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ViState returns the vi input-mode state machine.
func (a *App) ViState() *mode.ViState {
	return a.vi
}

// SmartCompletion reports whether smart completion is enabled.
func (a *App) SmartCompletion() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.smartCompletion
}

// ToggleSmartCompletion flips the smart-completion flag and returns
// the new value.
func (a *App) ToggleSmartCompletion() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.smartCompletion = !a.smartCompletion
	return a.smartCompletion
}

// MultiLine reports whether multi-line input is enabled.
func (a *App) MultiLine() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.multiLine
}

// ToggleMultiLine flips the multi-line flag and returns the new value.
func (a *App) ToggleMultiLine() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.multiLine = !a.multiLine
	return a.multiLine
}

// ExplainMode reports whether explain mode is enabled.
func (a *App) ExplainMode() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.explainMode
}

// ToggleExplainMode flips the explain-mode flag and returns the new
// value.
func (a *App) ToggleExplainMode() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.explainMode = !a.explainMode
	return a.explainMode
}

// EditingMode returns the top-level editing mode.
func (a *App) EditingMode() mode.EditingMode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.editingMode
}

// ToggleEditingMode switches between emacs and vi editing and returns
// the new mode. Switching into vi starts in insert mode; the caller
// attaches or detaches the cursor-shape observer.
func (a *App) ToggleEditingMode() mode.EditingMode {
	a.mu.Lock()
	if a.editingMode == mode.Vi {
		a.editingMode = mode.Emacs
	} else {
		a.editingMode = mode.Vi
	}
	m := a.editingMode
	a.mu.Unlock()

	if m == mode.Vi {
		a.vi.SetMode(mode.Insert)
	}
	return m
}

// Searching reports whether an incremental history search is active.
func (a *App) Searching() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.searching
}

// SetSearching records whether a history search is active.
func (a *App) SetSearching(on bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.searching = on
}

// HasSelection reports whether a text selection is active.
func (a *App) HasSelection() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.hasSelection
}

// SetSelection records whether a text selection is active.
func (a *App) SetSelection(on bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hasSelection = on
}

// SafeMultiLine reports whether multi-line input is on with the safe
// submission style, which removes the bare-Enter submission paths.
func (a *App) SafeMultiLine() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.multiLine && a.multilineMode == MultilineSafe
}

// isComplete reports whether text ends in a statement terminator. A
// backslash-escaped semicolon does not terminate.
func isComplete(text string) bool {
	return strings.HasSuffix(text, ";") && !strings.HasSuffix(text, `\;`)
}

// ShouldHandleBuffer decides whether Enter submits the given buffer
// text. Single-line input always submits. Safe multi-line never does.
// Otherwise the text submits when it is a backslash command, requests
// the external editor or expanded output, ends with a terminator, or
// is a bare exit/quit/:q or empty line.
func (a *App) ShouldHandleBuffer(text string) bool {
	a.mu.RLock()
	multiLine := a.multiLine
	mlMode := a.multilineMode
	a.mu.RUnlock()

	if !multiLine {
		return true
	}
	if mlMode == MultilineSafe {
		return false
	}

	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, `\`) ||
		strings.HasSuffix(trimmed, `\e`) ||
		strings.HasSuffix(trimmed, `\G`) ||
		isComplete(trimmed) ||
		trimmed == "exit" ||
		trimmed == "quit" ||
		trimmed == ":q" ||
		trimmed == ""
}

// SubmitText returns the text to hand to the executor, applying the
// explain-mode prefix to plain statements. Backslash commands and
// blank lines pass through untouched.
func (a *App) SubmitText(text string) string {
	if !a.ExplainMode() {
		return text
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, `\`) {
		return text
	}
	return "EXPLAIN " + text
}
