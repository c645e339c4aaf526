package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/devadathanmb/pgcli/internal/app"
	"github.com/devadathanmb/pgcli/internal/input/key"
	"github.com/devadathanmb/pgcli/internal/input/keymap"
	"github.com/devadathanmb/pgcli/internal/input/mode"
	"github.com/devadathanmb/pgcli/internal/prompt/buffer"
	"github.com/devadathanmb/pgcli/internal/term"
)

// Editor runs the interactive read-dispatch-render loop over a raw
// terminal.
type Editor struct {
	app        *app.App
	buf        *buffer.Buffer
	table      *keymap.Table
	dispatcher *Dispatcher
	decoder    *term.Decoder
	renderer   *Renderer
	observer   *term.CursorObserver
	shapes     *term.ShapeWriter

	in           io.Reader
	out          *bufio.Writer
	promptText   string
	screenWidth  int
	chordTimeout time.Duration

	quit bool
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithInput sets the input stream. Defaults to os.Stdin.
func WithInput(in io.Reader) EditorOption {
	return func(e *Editor) { e.in = in }
}

// WithOutput sets the output stream. Defaults to os.Stdout.
func WithOutput(out io.Writer) EditorOption {
	return func(e *Editor) { e.out = bufio.NewWriter(out) }
}

// WithPrompt sets the prompt text.
func WithPrompt(prompt string) EditorOption {
	return func(e *Editor) { e.promptText = prompt }
}

// WithScreenWidth sets the terminal width in cells, used to keep the
// completion menu on one row. Zero leaves the menu unbounded.
func WithScreenWidth(width int) EditorOption {
	return func(e *Editor) { e.screenWidth = width }
}

// WithChordTimeout sets how long multi-key chords may stay pending.
func WithChordTimeout(d time.Duration) EditorOption {
	return func(e *Editor) { e.chordTimeout = d }
}

// NewEditor wires the binding table, dispatcher, decoder, renderer,
// and cursor-shape observer over the given application and buffer.
func NewEditor(a *app.App, buf *buffer.Buffer, opts ...EditorOption) *Editor {
	e := &Editor{
		app:          a,
		buf:          buf,
		decoder:      term.NewDecoder(),
		in:           os.Stdin,
		out:          bufio.NewWriter(os.Stdout),
		promptText:   "> ",
		chordTimeout: DefaultChordTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.renderer = NewRenderer(e.out, e.promptText, e.screenWidth)

	e.shapes = term.NewShapeWriter(e.out)
	e.observer = term.NewCursorObserver(a.ViState(), e.shapes)
	e.table = NewBindingTable(a, buf, e.observer, e.shapes)

	// Ctrl-D on an empty buffer ends the session.
	e.table.AddBinding(keymap.NewBinding("c-d", func(ev *keymap.Event) {
		e.quit = true
	}).WithWhen(func(keymap.State) bool {
		return buf.Text() == ""
	}).WithName("end-of-input"))

	e.dispatcher = NewDispatcher(e.table, a, buf)
	return e
}

// Stop ends the run loop after the current event finishes dispatching.
// The submit callback calls this on exit/quit commands.
func (e *Editor) Stop() {
	e.quit = true
}

// ClearPrompt erases the rendered prompt frame so submitted output can
// take its place. Submit callbacks call this before printing.
func (e *Editor) ClearPrompt() error {
	return e.renderer.Clear()
}

// Table exposes the binding table, for inspection and tests.
func (e *Editor) Table() *keymap.Table {
	return e.table
}

// Run reads raw input and dispatches key events until the input
// closes, the context is cancelled, or Stop is called. It leaves the
// terminal cursor shape restored on return.
func (e *Editor) Run(ctx context.Context) error {
	if err := e.table.Validate(); err != nil {
		return fmt.Errorf("validating key bindings: %w", err)
	}

	if e.app.EditingMode() == mode.Vi {
		e.observer.Attach()
	}
	defer func() {
		e.observer.Detach()
		e.shapes.Reset()
		e.out.Flush()
	}()

	data := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		chunk := make([]byte, 256)
		for {
			n, err := e.in.Read(chunk)
			if n > 0 {
				out := make([]byte, n)
				copy(out, chunk[:n])
				select {
				case data <- out:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	for {
		if err := e.renderer.Render(e.buf); err != nil {
			return fmt.Errorf("rendering prompt: %w", err)
		}
		if e.quit {
			return nil
		}

		var timeout <-chan time.Time
		if e.dispatcher.Waiting() || e.decoder.Pending() {
			timeout = time.After(e.chordTimeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)

		case chunk := <-data:
			for _, ev := range e.decoder.Feed(chunk) {
				e.handle(ev)
			}

		case <-timeout:
			for _, ev := range e.decoder.Flush() {
				e.dispatcher.HandleEvent(ev)
			}
			e.dispatcher.Flush()
		}
	}
}

// handle dispatches one decoded event.
func (e *Editor) handle(ev key.Event) {
	if e.quit {
		return
	}
	e.dispatcher.HandleEvent(ev)
}
