package buffer

import (
	"strings"
	"unicode"
)

// Document is an immutable snapshot of the buffer text and cursor,
// taken per key event for predicate evaluation and completion.
type Document struct {
	// Text is the full buffer content.
	Text string

	// Cursor is the cursor position as a rune offset into Text.
	Cursor int
}

// Lines returns the document split into lines.
func (d Document) Lines() []string {
	return strings.Split(d.Text, "\n")
}

// TextBeforeCursor returns the text up to the cursor.
func (d Document) TextBeforeCursor() string {
	runes := []rune(d.Text)
	if d.Cursor >= len(runes) {
		return d.Text
	}
	return string(runes[:d.Cursor])
}

// TextAfterCursor returns the text from the cursor onwards.
func (d Document) TextAfterCursor() string {
	runes := []rune(d.Text)
	if d.Cursor >= len(runes) {
		return ""
	}
	return string(runes[d.Cursor:])
}

// CursorRow returns the 0-indexed line the cursor is on.
func (d Document) CursorRow() int {
	return strings.Count(d.TextBeforeCursor(), "\n")
}

// CursorCol returns the 0-indexed rune column within the current line.
func (d Document) CursorCol() int {
	before := d.TextBeforeCursor()
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	return len([]rune(before))
}

// OnFirstLine returns true if the cursor is on the first line.
func (d Document) OnFirstLine() bool {
	return d.CursorRow() == 0
}

// CurrentLine returns the text of the line the cursor is on.
func (d Document) CurrentLine() string {
	lines := d.Lines()
	row := d.CursorRow()
	if row >= len(lines) {
		return ""
	}
	return lines[row]
}

// CursorAtLineEnd returns true if the cursor sits at the end of the
// current line.
func (d Document) CursorAtLineEnd() bool {
	after := d.TextAfterCursor()
	return after == "" || after[0] == '\n'
}

// isWordRune reports whether r belongs to a completion word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// WordBeforeCursor returns the word fragment immediately before the
// cursor and its rune start offset. An empty fragment starts at the
// cursor itself.
func (d Document) WordBeforeCursor() (word string, start int) {
	runes := []rune(d.TextBeforeCursor())
	start = len(runes)
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	return string(runes[start:]), start
}
