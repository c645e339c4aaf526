package prompt

import (
	"log"
	"time"

	"github.com/devadathanmb/pgcli/internal/app"
	"github.com/devadathanmb/pgcli/internal/input/key"
	"github.com/devadathanmb/pgcli/internal/input/keymap"
	"github.com/devadathanmb/pgcli/internal/input/mode"
	"github.com/devadathanmb/pgcli/internal/prompt/buffer"
)

// DefaultChordTimeout is how long the dispatcher waits for a multi-key
// chord to complete before flushing the pending keys.
const DefaultChordTimeout = 500 * time.Millisecond

// Dispatcher routes key events through the binding table. Events that
// could still grow into a longer registered chord are held back until
// the chord completes, a non-matching key arrives, or the caller
// flushes on timeout. Events no binding claims fall through to default
// buffer behavior.
//
// The dispatcher is single-goroutine: the read loop feeds it events
// and timeouts sequentially, and every handler runs to completion
// before the next event is examined.
type Dispatcher struct {
	table *keymap.Table
	app   *app.App
	buf   *buffer.Buffer

	pending *key.Chord
	count   int

	// Verbose enables fallback tracing.
	Verbose bool
}

// NewDispatcher creates a dispatcher over the table and collaborators.
func NewDispatcher(table *keymap.Table, a *app.App, buf *buffer.Buffer) *Dispatcher {
	return &Dispatcher{
		table:   table,
		app:     a,
		buf:     buf,
		pending: key.NewChord(),
	}
}

// Waiting reports whether keys are held back for a possible longer
// chord. The read loop uses this to arm the flush timeout.
func (d *Dispatcher) Waiting() bool {
	return !d.pending.IsEmpty()
}

// HandleEvent processes one key event.
func (d *Dispatcher) HandleEvent(ev key.Event) {
	if d.accumulateCount(ev) {
		return
	}

	d.pending.Add(ev)

	// A proper prefix of a longer chord: wait for more keys. Any
	// binding on the prefix itself stays resolvable at flush time.
	if d.table.HasPrefix(d.pending) {
		return
	}

	state := snapshot(d.app, d.buf)
	if b := d.table.Resolve(d.pending, state); b != nil {
		d.fire(b)
		return
	}
	d.replayPending()
}

// Flush resolves the held-back keys as they stand. The read loop calls
// it when the chord timeout expires with keys still pending.
func (d *Dispatcher) Flush() {
	if d.pending.IsEmpty() {
		return
	}
	state := snapshot(d.app, d.buf)
	if b := d.table.Resolve(d.pending, state); b != nil {
		d.fire(b)
		return
	}
	d.replayPending()
}

// fire runs the resolved binding with the pending chord and count.
func (d *Dispatcher) fire(b *keymap.Binding) {
	e := keymap.NewEvent(d.pending.Clone()).WithCount(d.takeCount())
	d.pending.Clear()
	b.Handler(e)
}

// replayPending re-dispatches each held key on its own: a key that was
// swallowed waiting for a chord may still have a single-key binding,
// and anything left over gets default buffer treatment.
func (d *Dispatcher) replayPending() {
	events := make([]key.Event, len(d.pending.Events))
	copy(events, d.pending.Events)
	d.pending.Clear()
	count := d.takeCount()

	for _, ev := range events {
		single := key.NewChordFrom(ev)
		state := snapshot(d.app, d.buf)
		if b := d.table.Resolve(single, state); b != nil {
			b.Handler(keymap.NewEvent(single).WithCount(count))
			count = 1
			continue
		}
		d.defaultHandle(ev, state)
		count = 1
	}
}

// accumulateCount absorbs a vi-style numeric prefix in navigation
// mode. "0" only extends an existing count; alone it is the
// line-start motion.
func (d *Dispatcher) accumulateCount(ev key.Event) bool {
	if !d.pending.IsEmpty() {
		return false
	}
	if d.app.EditingMode() != mode.Vi || !d.app.ViState().IsNavigation() {
		return false
	}
	if !ev.IsChar() || ev.Rune < '0' || ev.Rune > '9' {
		return false
	}
	if ev.Rune == '0' && d.count == 0 {
		return false
	}
	d.count = d.count*10 + int(ev.Rune-'0')
	return true
}

// takeCount consumes the accumulated count, defaulting to 1.
func (d *Dispatcher) takeCount() int {
	c := d.count
	d.count = 0
	if c <= 0 {
		return 1
	}
	return c
}

// defaultHandle applies the buffer behavior for a key no binding
// claimed.
func (d *Dispatcher) defaultHandle(ev key.Event, state keymap.State) {
	canInsert := state.EditingMode == mode.Emacs ||
		state.InputMode == mode.Insert || state.InputMode == mode.Replace

	switch {
	case ev.IsEnter():
		// Enter with no applicable binding: multi-line continuation.
		if canInsert {
			d.buf.InsertText("\n", true)
		}
	case ev.Key == key.KeyBackspace:
		d.buf.DeleteBeforeCursor(1)
	case ev.Key == key.KeyDelete:
		d.buf.DeleteUnderCursor(1)
	case ev.Key == key.KeyLeft:
		d.buf.CursorLeft(1)
	case ev.Key == key.KeyRight:
		d.buf.CursorRight(1)
	case ev.Key == key.KeyUp:
		d.buf.CursorUp(1)
	case ev.Key == key.KeyDown:
		d.buf.CursorDown(1)
	case ev.Key == key.KeyHome:
		d.buf.CursorToLineStart()
	case ev.Key == key.KeyEnd:
		d.buf.CursorToLineEnd()
	case ev.IsChar() && canInsert:
		if state.InputMode == mode.Replace {
			d.buf.DeleteUnderCursor(1)
		}
		d.buf.InsertText(string(ev.Rune), true)
	default:
		if d.Verbose {
			log.Printf("debug: no binding or default for %s", ev.String())
		}
	}
}
