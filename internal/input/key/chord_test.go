package key

import (
	"testing"
)

func TestChordString(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"f2", "F2"},
		{"c-j", "C-j"},
		{"c-space", "C-Space"},
		{"escape enter", "Esc Enter"},
		{"l", "l"},
		{"right", "Right"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			chord := MustParseChord(tt.spec)
			if got := chord.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChordEquals(t *testing.T) {
	a := MustParseChord("escape enter")
	b := MustParseChord("escape enter")
	c := MustParseChord("escape")

	if !a.Equals(b) {
		t.Error("identical chords should be equal")
	}
	if a.Equals(c) {
		t.Error("chords of different length should not be equal")
	}

	var nilChord *Chord
	if a.Equals(nilChord) {
		t.Error("chord should not equal nil")
	}
}

func TestChordHasPrefix(t *testing.T) {
	full := MustParseChord("escape enter")

	if !full.HasPrefix(MustParseChord("escape")) {
		t.Error("\"escape\" should be a prefix of \"escape enter\"")
	}
	if !full.HasPrefix(full) {
		t.Error("a chord should be a prefix of itself")
	}
	if full.HasPrefix(MustParseChord("enter")) {
		t.Error("\"enter\" should not be a prefix of \"escape enter\"")
	}
	if !full.HasPrefix(NewChord()) {
		t.Error("the empty chord is a prefix of everything")
	}
}

func TestChordAddClear(t *testing.T) {
	chord := NewChord()
	if !chord.IsEmpty() {
		t.Error("new chord should be empty")
	}

	chord.Add(NewSpecialEvent(KeyEscape, ModNone))
	chord.Add(NewSpecialEvent(KeyEnter, ModNone))
	if chord.Len() != 2 {
		t.Errorf("Len() = %d, want 2", chord.Len())
	}
	if last := chord.Last(); last == nil || last.Key != KeyEnter {
		t.Errorf("Last() = %v, want Enter", last)
	}

	chord.Clear()
	if !chord.IsEmpty() {
		t.Error("chord should be empty after Clear")
	}
	if chord.Last() != nil {
		t.Error("Last() should be nil for empty chord")
	}
}

func TestChordClone(t *testing.T) {
	orig := MustParseChord("escape enter")
	clone := orig.Clone()

	if !orig.Equals(clone) {
		t.Error("clone should equal original")
	}

	clone.Add(NewRuneEvent('x', ModNone))
	if orig.Len() == clone.Len() {
		t.Error("mutating the clone should not affect the original")
	}
}

func TestEventIsChar(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"plain letter", NewRuneEvent('a', ModNone), true},
		{"shifted letter", NewRuneEvent('A', ModShift), true},
		{"ctrl-j", NewRuneEvent('j', ModCtrl), false},
		{"enter", NewSpecialEvent(KeyEnter, ModNone), false},
		{"space", NewRuneEvent(' ', ModNone), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.IsChar(); got != tt.want {
				t.Errorf("IsChar() = %v, want %v", got, tt.want)
			}
		})
	}
}
