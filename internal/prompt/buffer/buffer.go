package buffer

import (
	"strings"
)

// Suggester produces inline ghost-text continuations for the buffer
// content, fish/zsh style. Suggest returns the remainder to append, or
// "" when there is nothing to offer.
type Suggester interface {
	Suggest(text string) string
}

// History is the input history the buffer navigates with C-p/C-n.
type History interface {
	// Len returns the number of stored entries.
	Len() int

	// At returns entry i, 0 being the oldest.
	At(i int) string

	// Append stores a newly submitted entry.
	Append(text string)
}

// SubmitFunc receives the buffer text on validate-and-submit.
type SubmitFunc func(text string)

// Buffer is the line-editing buffer: text, cursor, and the attached
// completion session, suggestion slot, and history cursor. It is the
// collaborator every key handler mutates; it performs no terminal I/O
// itself.
type Buffer struct {
	text   []rune
	cursor int

	completer  Completer
	suggester  Suggester
	history    History
	submit     SubmitFunc
	completion *CompletionState
	suggestion string

	// histIdx is the history position while navigating; equal to
	// history.Len() when editing the live (not yet submitted) line.
	histIdx int

	// stash preserves the live line while navigating history.
	stash string
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithCompleter attaches a completion engine.
func WithCompleter(c Completer) Option {
	return func(b *Buffer) { b.completer = c }
}

// WithSuggester attaches a ghost-text suggestion provider.
func WithSuggester(s Suggester) Option {
	return func(b *Buffer) { b.suggester = s }
}

// WithHistory attaches the input history.
func WithHistory(h History) Option {
	return func(b *Buffer) { b.history = h }
}

// WithSubmit sets the submission callback.
func WithSubmit(fn SubmitFunc) Option {
	return func(b *Buffer) { b.submit = fn }
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		text: make([]rune, 0, 64),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.history != nil {
		b.histIdx = b.history.Len()
	}
	return b
}

// Text returns the buffer content.
func (b *Buffer) Text() string {
	return string(b.text)
}

// SetText replaces the buffer content, clamps the cursor to the end,
// closes any completion session and refreshes the suggestion.
func (b *Buffer) SetText(text string) {
	b.text = []rune(text)
	b.cursor = len(b.text)
	b.completion = nil
	b.refreshSuggestion()
}

// Document returns a snapshot of the text and cursor.
func (b *Buffer) Document() Document {
	return Document{Text: string(b.text), Cursor: b.cursor}
}

// Cursor returns the cursor position as a rune offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamped to the text bounds.
func (b *Buffer) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.text) {
		pos = len(b.text)
	}
	b.cursor = pos
}

// CursorRight moves the cursor right by up to n runes, stopping at the
// end of the current line.
func (b *Buffer) CursorRight(n int) {
	for i := 0; i < n; i++ {
		if b.cursor >= len(b.text) || b.text[b.cursor] == '\n' {
			return
		}
		b.cursor++
	}
}

// CursorLeft moves the cursor left by up to n runes, stopping at the
// start of the current line.
func (b *Buffer) CursorLeft(n int) {
	for i := 0; i < n; i++ {
		if b.cursor == 0 || b.text[b.cursor-1] == '\n' {
			return
		}
		b.cursor--
	}
}

// CursorUp moves the cursor up n lines, keeping the column where the
// target line allows.
func (b *Buffer) CursorUp(n int) {
	b.moveVertical(-n)
}

// CursorDown moves the cursor down n lines, keeping the column where
// the target line allows.
func (b *Buffer) CursorDown(n int) {
	b.moveVertical(n)
}

func (b *Buffer) moveVertical(delta int) {
	if delta == 0 {
		return
	}
	doc := b.Document()
	lines := doc.Lines()
	row := doc.CursorRow() + delta
	if row < 0 {
		row = 0
	}
	if row >= len(lines) {
		row = len(lines) - 1
	}
	col := doc.CursorCol()
	if width := len([]rune(lines[row])); col > width {
		col = width
	}

	pos := 0
	for i := 0; i < row; i++ {
		pos += len([]rune(lines[i])) + 1
	}
	b.cursor = pos + col
}

// CursorToLineStart moves the cursor to column 0 of the current line.
func (b *Buffer) CursorToLineStart() {
	for b.cursor > 0 && b.text[b.cursor-1] != '\n' {
		b.cursor--
	}
}

// CursorToLineEnd moves the cursor past the last rune of the current
// line.
func (b *Buffer) CursorToLineEnd() {
	for b.cursor < len(b.text) && b.text[b.cursor] != '\n' {
		b.cursor++
	}
}

// InsertText inserts text at the cursor. With fireEvent the completion
// session is closed and the suggestion refreshed; without it the
// insertion is silent (used for the Tab indent, which must not open a
// completion menu).
func (b *Buffer) InsertText(text string, fireEvent bool) {
	if text == "" {
		return
	}
	b.replaceRunes(b.cursor, b.cursor, text)
	b.cursor += len([]rune(text))

	if fireEvent {
		b.completion = nil
		b.refreshSuggestion()
	}
}

// DeleteBeforeCursor removes up to n runes before the cursor and
// returns the deleted text.
func (b *Buffer) DeleteBeforeCursor(n int) string {
	if n > b.cursor {
		n = b.cursor
	}
	if n <= 0 {
		return ""
	}
	deleted := string(b.text[b.cursor-n : b.cursor])
	b.text = append(b.text[:b.cursor-n], b.text[b.cursor:]...)
	b.cursor -= n
	b.completion = nil
	b.refreshSuggestion()
	return deleted
}

// DeleteUnderCursor removes up to n runes at the cursor and returns
// the deleted text.
func (b *Buffer) DeleteUnderCursor(n int) string {
	end := b.cursor + n
	if end > len(b.text) {
		end = len(b.text)
	}
	if end <= b.cursor {
		return ""
	}
	deleted := string(b.text[b.cursor:end])
	b.text = append(b.text[:b.cursor], b.text[end:]...)
	b.completion = nil
	b.refreshSuggestion()
	return deleted
}

// Suggestion returns the pending ghost text, or "".
func (b *Buffer) Suggestion() string {
	return b.suggestion
}

// refreshSuggestion recomputes the ghost text for the current content.
func (b *Buffer) refreshSuggestion() {
	b.suggestion = ""
	if b.suggester == nil {
		return
	}
	if len(b.text) == 0 {
		return
	}
	b.suggestion = b.suggester.Suggest(string(b.text))
}

// HistoryBackward moves back count entries through history, stashing
// the live line on first use.
func (b *Buffer) HistoryBackward(count int) {
	if b.history == nil || count <= 0 {
		return
	}
	if b.histIdx == b.history.Len() {
		b.stash = b.Text()
	}
	idx := b.histIdx - count
	if idx < 0 {
		idx = 0
	}
	if idx == b.histIdx || b.history.Len() == 0 {
		return
	}
	b.histIdx = idx
	b.SetText(b.history.At(idx))
}

// HistoryForward moves forward count entries; walking past the newest
// entry restores the stashed live line.
func (b *Buffer) HistoryForward(count int) {
	if b.history == nil || count <= 0 {
		return
	}
	idx := b.histIdx + count
	if idx >= b.history.Len() {
		if b.histIdx == b.history.Len() {
			return
		}
		b.histIdx = b.history.Len()
		b.SetText(b.stash)
		return
	}
	b.histIdx = idx
	b.SetText(b.history.At(idx))
}

// ValidateAndSubmit hands the buffer text to the submission callback,
// records it in history, and resets the buffer to an empty live line.
func (b *Buffer) ValidateAndSubmit() {
	text := b.Text()

	if b.submit != nil {
		b.submit(text)
	}
	if b.history != nil && strings.TrimSpace(text) != "" {
		b.history.Append(text)
	}

	b.text = b.text[:0]
	b.cursor = 0
	b.completion = nil
	b.suggestion = ""
	b.stash = ""
	if b.history != nil {
		b.histIdx = b.history.Len()
	}
}

// replaceRunes replaces the rune range [start, end) with text.
func (b *Buffer) replaceRunes(start, end int, text string) {
	if start < 0 {
		start = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if start > end {
		start = end
	}
	replacement := []rune(text)
	out := make([]rune, 0, len(b.text)-(end-start)+len(replacement))
	out = append(out, b.text[:start]...)
	out = append(out, replacement...)
	out = append(out, b.text[end:]...)
	b.text = out
}
