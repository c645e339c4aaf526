package term

import (
	"io"
	"sync"

	"github.com/devadathanmb/pgcli/internal/input/mode"
)

// DECSCUSR cursor shape sequences, pre-allocated (avoid allocations on
// the dispatch path).
var (
	seqCursorBlock     = []byte("\x1b[1 q")
	seqCursorUnderline = []byte("\x1b[3 q")
	seqCursorBeam      = []byte("\x1b[5 q")
)

// shapeSequence maps an input mode to its cursor shape escape sequence.
// Unknown modes fall back to the beam (default) shape.
func shapeSequence(m mode.InputMode) []byte {
	switch m {
	case mode.Navigation:
		return seqCursorBlock
	case mode.Replace:
		return seqCursorUnderline
	default:
		return seqCursorBeam
	}
}

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// ShapeWriter emits cursor-shape escape sequences to a raw output
// stream. All writes are best effort: a missing or failing stream must
// never interrupt editing, so errors are swallowed at the call site.
type ShapeWriter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewShapeWriter creates a shape writer over the given stream.
// A nil stream yields a writer whose methods are no-ops.
func NewShapeWriter(out io.Writer) *ShapeWriter {
	return &ShapeWriter{out: out}
}

// Apply emits the shape sequence for the given mode and flushes.
func (w *ShapeWriter) Apply(m mode.InputMode) {
	w.emit(shapeSequence(m))
}

// Reset emits the default beam shape and flushes.
func (w *ShapeWriter) Reset() {
	w.emit(seqCursorBeam)
}

func (w *ShapeWriter) emit(seq []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.out == nil {
		return
	}
	if _, err := w.out.Write(seq); err != nil {
		return
	}
	if f, ok := w.out.(flusher); ok {
		_ = f.Flush()
	}
}

// CursorObserver ties a ShapeWriter to a ViState so that every input
// mode set updates the visible cursor glyph. Attach is idempotent: a
// second Attach without a Detach registers nothing, so a single mode
// transition can never emit twice.
type CursorObserver struct {
	mu     sync.Mutex
	vi     *mode.ViState
	writer *ShapeWriter
	remove func()
}

// NewCursorObserver creates an observer; call Attach to activate it.
func NewCursorObserver(vi *mode.ViState, writer *ShapeWriter) *CursorObserver {
	return &CursorObserver{vi: vi, writer: writer}
}

// Attach registers the observer with the ViState and immediately emits
// the shape for the current mode.
func (o *CursorObserver) Attach() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.remove != nil {
		return
	}
	o.remove = o.vi.OnChange(func(from, to mode.InputMode) {
		o.writer.Apply(to)
	})
	o.writer.Apply(o.vi.Mode())
}

// Detach unregisters the observer. It does not emit anything; callers
// that want the cursor restored send a reset directly.
func (o *CursorObserver) Detach() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.remove == nil {
		return
	}
	o.remove()
	o.remove = nil
}

// Attached returns true if the observer is currently registered.
func (o *CursorObserver) Attached() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.remove != nil
}
