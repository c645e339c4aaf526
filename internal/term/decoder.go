package term

import (
	"unicode/utf8"

	"github.com/devadathanmb/pgcli/internal/input/key"
)

// Decoder turns raw terminal bytes into key events. Feed it chunks as
// they arrive from the tty; incomplete escape sequences and split UTF-8
// runes are buffered until the next chunk.
type Decoder struct {
	buf []byte
}

// NewDecoder creates an empty decoder.
func NewDecoder() *Decoder {
	return &Decoder{buf: make([]byte, 0, 64)}
}

// Feed appends raw bytes and returns all key events that can be decoded
// so far.
func (d *Decoder) Feed(data []byte) []key.Event {
	d.buf = append(d.buf, data...)

	var events []key.Event
	for {
		event, n, ok := d.decodeOne()
		if !ok {
			break
		}
		events = append(events, event)
		d.buf = d.buf[n:]
	}
	return events
}

// Flush forces decoding of a pending lone ESC byte. Call it when the
// read side has been quiet long enough that no continuation is coming.
func (d *Decoder) Flush() []key.Event {
	if len(d.buf) == 1 && d.buf[0] == 0x1b {
		d.buf = d.buf[:0]
		return []key.Event{key.NewSpecialEvent(key.KeyEscape, key.ModNone)}
	}
	return nil
}

// Pending returns true if buffered bytes are waiting for continuation.
func (d *Decoder) Pending() bool {
	return len(d.buf) > 0
}

// decodeOne decodes a single event from the front of the buffer.
// Returns ok=false if more bytes are needed or the buffer is empty.
func (d *Decoder) decodeOne() (key.Event, int, bool) {
	if len(d.buf) == 0 {
		return key.Event{}, 0, false
	}

	b := d.buf[0]
	switch {
	case b == 0x1b:
		return d.decodeEscape()
	case b == 0x00:
		// NUL is how terminals report Ctrl-Space.
		return key.NewRuneEvent(' ', key.ModCtrl), 1, true
	case b == '\t':
		return key.NewSpecialEvent(key.KeyTab, key.ModNone), 1, true
	case b == '\r':
		return key.NewSpecialEvent(key.KeyEnter, key.ModNone), 1, true
	case b == 0x7f:
		return key.NewSpecialEvent(key.KeyBackspace, key.ModNone), 1, true
	case b < 0x20:
		// Remaining C0 controls are Ctrl-letter combinations.
		// Note '\n' lands here: in raw mode Enter sends '\r', so a
		// bare '\n' is Ctrl-J.
		return key.NewRuneEvent(rune('a'+b-1), key.ModCtrl), 1, true
	default:
		r, n := utf8.DecodeRune(d.buf)
		if r == utf8.RuneError && n == 1 && !utf8.FullRune(d.buf) {
			// Split multi-byte rune; wait for the rest.
			return key.Event{}, 0, false
		}
		return key.NewRuneEvent(r, key.ModNone), n, true
	}
}

// csiKeys maps the final byte of short CSI sequences (ESC [ X) to keys.
var csiKeys = map[byte]key.Key{
	'A': key.KeyUp,
	'B': key.KeyDown,
	'C': key.KeyRight,
	'D': key.KeyLeft,
	'H': key.KeyHome,
	'F': key.KeyEnd,
	'Z': key.KeyTab, // back-tab, delivered as Shift-Tab
}

// ss3Keys maps the byte after ESC O.
var ss3Keys = map[byte]key.Key{
	'A': key.KeyUp,
	'B': key.KeyDown,
	'C': key.KeyRight,
	'D': key.KeyLeft,
	'H': key.KeyHome,
	'F': key.KeyEnd,
	'P': key.KeyF1,
	'Q': key.KeyF2,
	'R': key.KeyF3,
	'S': key.KeyF4,
}

// tildeKeys maps the numeric parameter of vt sequences (ESC [ n ~).
var tildeKeys = map[int]key.Key{
	1:  key.KeyHome,
	2:  key.KeyInsert,
	3:  key.KeyDelete,
	4:  key.KeyEnd,
	5:  key.KeyPageUp,
	6:  key.KeyPageDown,
	11: key.KeyF1,
	12: key.KeyF2,
	13: key.KeyF3,
	14: key.KeyF4,
	15: key.KeyF5,
	17: key.KeyF6,
	18: key.KeyF7,
	19: key.KeyF8,
	20: key.KeyF9,
	21: key.KeyF10,
	23: key.KeyF11,
	24: key.KeyF12,
}

// decodeEscape decodes sequences starting with ESC.
func (d *Decoder) decodeEscape() (key.Event, int, bool) {
	if len(d.buf) == 1 {
		// Lone ESC so far; the caller decides via Flush whether this
		// is a standalone Escape press.
		return key.Event{}, 0, false
	}

	switch d.buf[1] {
	case '[':
		return d.decodeCSI()
	case 'O':
		if len(d.buf) < 3 {
			return key.Event{}, 0, false
		}
		if k, ok := ss3Keys[d.buf[2]]; ok {
			return key.NewSpecialEvent(k, key.ModNone), 3, true
		}
		return key.NewSpecialEvent(key.KeyNone, key.ModNone), 3, true
	case 0x1b:
		// ESC ESC: emit one Escape, keep the second.
		return key.NewSpecialEvent(key.KeyEscape, key.ModNone), 1, true
	default:
		// ESC + printable is an Alt-modified key.
		r, n := utf8.DecodeRune(d.buf[1:])
		if r == utf8.RuneError && n == 1 && !utf8.FullRune(d.buf[1:]) {
			return key.Event{}, 0, false
		}
		if r == '\r' {
			return key.NewSpecialEvent(key.KeyEnter, key.ModAlt), 1 + n, true
		}
		return key.NewRuneEvent(r, key.ModAlt), 1 + n, true
	}
}

// decodeCSI decodes ESC [ sequences.
func (d *Decoder) decodeCSI() (key.Event, int, bool) {
	// Scan for the final byte (0x40-0x7e).
	i := 2
	param := 0
	for ; i < len(d.buf); i++ {
		b := d.buf[i]
		if b >= '0' && b <= '9' {
			param = param*10 + int(b-'0')
			continue
		}
		if b == ';' {
			// Modifier parameters are not distinguished; skip them.
			param = 0
			continue
		}
		break
	}
	if i >= len(d.buf) {
		return key.Event{}, 0, false
	}

	final := d.buf[i]
	length := i + 1

	if final == '~' {
		if k, ok := tildeKeys[param]; ok {
			return key.NewSpecialEvent(k, key.ModNone), length, true
		}
		return key.NewSpecialEvent(key.KeyNone, key.ModNone), length, true
	}

	if k, ok := csiKeys[final]; ok {
		mods := key.ModNone
		if final == 'Z' {
			mods = key.ModShift
		}
		return key.NewSpecialEvent(k, mods), length, true
	}

	// Unrecognized CSI sequence: swallow it rather than leaking bytes
	// into the buffer as text.
	return key.NewSpecialEvent(key.KeyNone, key.ModNone), length, true
}
