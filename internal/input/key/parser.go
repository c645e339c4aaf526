package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a single-key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", ";", "l"
//   - Special keys: "enter", "escape", "tab", "right", "f2"
//   - With modifiers: "c-j", "c-space", "a-enter", "ctrl-k"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// A bare character parses as itself, even "-".
	if utf8.RuneCountInString(spec) == 1 {
		return parseSingle(spec)
	}

	// Split leading modifier prefixes: "c-space", "c-a-x".
	var mods Modifier
	rest := spec
	for {
		i := strings.IndexByte(rest, '-')
		if i <= 0 || i == len(rest)-1 {
			break
		}
		mod := ModifierFromName(rest[:i])
		if mod == ModNone {
			break
		}
		mods = mods.With(mod)
		rest = rest[i+1:]
	}

	return parseKeyWithModifiers(rest, mods)
}

// parseSingle parses a single character.
func parseSingle(spec string) (Event, error) {
	r, _ := utf8.DecodeRuneInString(spec)
	var mods Modifier
	// Uppercase letters carry implicit Shift.
	if unicode.IsUpper(r) {
		mods = ModShift
	}
	return NewRuneEvent(r, mods), nil
}

// parseKeyWithModifiers parses a key name with already-known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	if keyPart == "space" {
		return NewRuneEvent(' ', mods), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	if utf8.RuneCountInString(keyPart) == 1 {
		r, _ := utf8.DecodeRuneInString(keyPart)
		// Ctrl combinations are case-insensitive.
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		return NewRuneEvent(r, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// ParseChord parses a space-separated chord specification.
// Examples: "f2", "c-j", "escape enter".
func ParseChord(spec string) (*Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySpec
	}

	chord := NewChord()
	for _, part := range strings.Fields(spec) {
		event, err := Parse(part)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", spec, err)
		}
		chord.Add(event)
	}
	return chord, nil
}

// MustParseChord parses a chord specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParseChord(spec string) *Chord {
	chord, err := ParseChord(spec)
	if err != nil {
		panic("invalid key chord: " + spec + ": " + err.Error())
	}
	return chord
}
