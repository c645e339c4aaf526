package prompt

import (
	"bufio"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/devadathanmb/pgcli/internal/prompt/buffer"
)

// Escape sequences used by the renderer, pre-allocated.
var (
	seqClearBelow = []byte("\x1b[J")
	seqDim        = []byte("\x1b[2m")
	seqReverse    = []byte("\x1b[7m")
	seqReset      = []byte("\x1b[0m")
	seqCRLF       = []byte("\r\n")
)

// maxMenuCandidates bounds the completion menu line.
const maxMenuCandidates = 8

// Renderer redraws the prompt, the buffer content, the inline
// suggestion, and the completion menu line after every key event. It
// owns no state beyond the height of the previous frame, which it
// needs to rewind the cursor before redrawing.
type Renderer struct {
	out        *bufio.Writer
	prompt     string
	contPrompt string

	// width is the terminal width in cells; 0 means unbounded. The
	// menu row is trimmed to it so a long candidate list cannot wrap
	// and throw off the row accounting.
	width int

	// lastRows is the height of the previous frame in terminal rows.
	lastRows int
}

// NewRenderer creates a renderer writing frames to out.
func NewRenderer(out *bufio.Writer, prompt string, width int) *Renderer {
	cont := "> "
	if w := runewidth.StringWidth(prompt); w > 2 {
		cont = strings.Repeat(" ", w-2) + "> "
	}
	return &Renderer{out: out, prompt: prompt, contPrompt: cont, width: width}
}

// Render draws the current buffer state and leaves the terminal cursor
// on the document cursor position.
func (r *Renderer) Render(buf *buffer.Buffer) error {
	doc := buf.Document()
	lines := doc.Lines()

	r.rewind()

	rows := 0
	for i, line := range lines {
		if i > 0 {
			r.out.Write(seqCRLF)
			rows++
		}
		if i == 0 {
			r.out.WriteString(r.prompt)
		} else {
			r.out.WriteString(r.contPrompt)
		}
		r.out.WriteString(line)
	}

	// Ghost suggestion after the text, dimmed.
	if s := buf.Suggestion(); s != "" && doc.Cursor == len([]rune(doc.Text)) {
		r.out.Write(seqDim)
		r.out.WriteString(s)
		r.out.Write(seqReset)
	}

	menuRows := r.renderMenu(buf)
	rows += menuRows
	r.lastRows = rows + 1

	// Park the terminal cursor on the document cursor.
	r.moveTo(doc, len(lines), menuRows)
	return r.out.Flush()
}

// Clear erases the rendered frame, for use before handing the terminal
// to query output. The next Render starts a fresh frame where the
// cursor ends up.
func (r *Renderer) Clear() error {
	r.rewind()
	r.lastRows = 0
	return r.out.Flush()
}

// rewind moves to the first frame row and erases downwards.
func (r *Renderer) rewind() {
	if r.lastRows > 1 {
		r.cursorUp(r.lastRows - 1)
	}
	r.out.WriteByte('\r')
	r.out.Write(seqClearBelow)
}

// renderMenu draws the completion candidates on one row below the
// text, the highlighted one in reverse video. Returns the number of
// rows drawn.
func (r *Renderer) renderMenu(buf *buffer.Buffer) int {
	cs := buf.CompletionState()
	if cs == nil || len(cs.Candidates) == 0 {
		return 0
	}

	r.out.Write(seqCRLF)
	shown := cs.Candidates
	if len(shown) > maxMenuCandidates {
		shown = shown[:maxMenuCandidates]
	}
	used := 0
	for i, cand := range shown {
		cols := runewidth.StringWidth(cand)
		if i > 0 {
			cols++
		}
		if r.width > 0 && used+cols > r.width {
			break
		}
		used += cols
		if i > 0 {
			r.out.WriteByte(' ')
		}
		if i == cs.Index {
			r.out.Write(seqReverse)
			r.out.WriteString(cand)
			r.out.Write(seqReset)
		} else {
			r.out.WriteString(cand)
		}
	}
	return 1
}

// moveTo positions the terminal cursor on the document cursor, given
// that drawing left it at the end of the last drawn row.
func (r *Renderer) moveTo(doc buffer.Document, textRows, menuRows int) {
	row := doc.CursorRow()
	up := (textRows - 1 - row) + menuRows
	r.cursorUp(up)

	promptText := r.prompt
	if row > 0 {
		promptText = r.contPrompt
	}
	col := runewidth.StringWidth(promptText) + lineWidthBefore(doc)

	r.out.WriteByte('\r')
	if col > 0 {
		r.cursorRight(col)
	}
}

// lineWidthBefore returns the display width of the current line up to
// the cursor.
func lineWidthBefore(doc buffer.Document) int {
	before := doc.TextBeforeCursor()
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	return runewidth.StringWidth(before)
}

func (r *Renderer) cursorUp(n int) {
	if n <= 0 {
		return
	}
	r.out.WriteString("\x1b[")
	writeInt(r.out, n)
	r.out.WriteByte('A')
}

func (r *Renderer) cursorRight(n int) {
	if n <= 0 {
		return
	}
	r.out.WriteString("\x1b[")
	writeInt(r.out, n)
	r.out.WriteByte('C')
}

// writeInt writes a small positive integer without allocating.
func writeInt(w *bufio.Writer, n int) {
	if n >= 10 {
		writeInt(w, n/10)
	}
	w.WriteByte(byte('0' + n%10))
}
