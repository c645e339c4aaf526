package keymap

import (
	"testing"

	"github.com/devadathanmb/pgcli/internal/input/key"
	"github.com/devadathanmb/pgcli/internal/input/mode"
)

func TestTableResolveSingle(t *testing.T) {
	table := NewTable()
	fired := false
	table.Add("f2", func(e *Event) { fired = true })

	b := table.Resolve(key.MustParseChord("f2"), State{})
	if b == nil {
		t.Fatal("Resolve should find the f2 binding")
	}
	b.Handler(NewEvent(b.Chord))
	if !fired {
		t.Error("handler should have run")
	}

	if got := table.Resolve(key.MustParseChord("f3"), State{}); got != nil {
		t.Errorf("Resolve(f3) = %v, want nil", got)
	}
}

func TestTableResolveCondition(t *testing.T) {
	table := NewTable()
	table.AddBinding(NewBinding("escape", func(e *Event) {}).
		WithWhen(CompletionOpen))

	chord := key.MustParseChord("escape")
	if table.Resolve(chord, State{CompletionOpen: false}) != nil {
		t.Error("binding should not apply when menu is closed")
	}
	if table.Resolve(chord, State{CompletionOpen: true}) == nil {
		t.Error("binding should apply when menu is open")
	}
}

func TestTableEagerPreemptsNonEager(t *testing.T) {
	table := NewTable()
	var ran string

	// Registered first, but non-eager.
	table.AddBinding(NewBinding("l", func(e *Event) { ran = "move" }).
		WithWhen(ViNavigationMode))
	table.AddBinding(NewBinding("l", func(e *Event) { ran = "accept" }).
		WithWhen(And(ViNavigationMode, SuggestionAtLineEnd)).
		WithEager())

	state := State{
		EditingMode:     mode.Vi,
		InputMode:       mode.Navigation,
		HasSuggestion:   true,
		CursorAtLineEnd: true,
	}

	b := table.Resolve(key.MustParseChord("l"), state)
	if b == nil {
		t.Fatal("Resolve returned nil")
	}
	b.Handler(NewEvent(b.Chord))
	if ran != "accept" {
		t.Errorf("ran = %q, want eager binding to preempt", ran)
	}

	// Without a suggestion only the movement guard holds.
	ran = ""
	state.HasSuggestion = false
	b = table.Resolve(key.MustParseChord("l"), state)
	if b == nil {
		t.Fatal("Resolve returned nil")
	}
	b.Handler(NewEvent(b.Chord))
	if ran != "move" {
		t.Errorf("ran = %q, want non-eager movement binding", ran)
	}
}

func TestTableRegistrationOrderTieBreak(t *testing.T) {
	table := NewTable()
	var ran string
	table.Add("x", func(e *Event) { ran = "first" })
	table.Add("x", func(e *Event) { ran = "second" })

	b := table.Resolve(key.MustParseChord("x"), State{})
	b.Handler(NewEvent(b.Chord))
	if ran != "first" {
		t.Errorf("ran = %q, want first registered binding", ran)
	}
}

func TestTableResolveFiltersByMode(t *testing.T) {
	table := NewTable()
	table.AddBinding(NewBinding("l", func(e *Event) {}).
		WithWhen(ViNavigationMode))

	chord := key.MustParseChord("l")
	insert := State{EditingMode: mode.Vi, InputMode: mode.Insert}
	if table.Resolve(chord, insert) != nil {
		t.Error("navigation binding should not fire in insert mode")
	}

	emacs := State{EditingMode: mode.Emacs, InputMode: mode.Navigation}
	if table.Resolve(chord, emacs) != nil {
		t.Error("navigation binding should not fire in emacs editing mode")
	}
}

func TestTablePrefix(t *testing.T) {
	table := NewTable()
	table.Add("escape enter", func(e *Event) {})

	if !table.HasPrefix(key.MustParseChord("escape")) {
		t.Error("\"escape\" should be a prefix of \"escape enter\"")
	}
	if table.HasPrefix(key.MustParseChord("escape enter")) {
		t.Error("a full chord is not a proper prefix")
	}
	if table.HasPrefix(key.MustParseChord("enter")) {
		t.Error("\"enter\" is not a prefix")
	}
	if !table.HasMatch(key.MustParseChord("escape enter")) {
		t.Error("the full chord should match")
	}
}

func TestTableValidate(t *testing.T) {
	table := NewTable()
	table.Add("f2", func(e *Event) {})
	if err := table.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	table.AddBinding(Binding{Chord: key.MustParseChord("f3")})
	if err := table.Validate(); err == nil {
		t.Error("Validate should reject a nil handler")
	}
}

func TestConditionCombinators(t *testing.T) {
	s := State{CompletionOpen: true, Searching: false}

	if !And(CompletionOpen, Not(Searching))(s) {
		t.Error("And/Not combination evaluated incorrectly")
	}
	if !Or(Searching, CompletionOpen)(s) {
		t.Error("Or should be true when one condition holds")
	}
	if Or(Searching, HasSelection)(s) {
		t.Error("Or should be false when no condition holds")
	}
}

func TestEventCount(t *testing.T) {
	e := NewEvent(key.MustParseChord("c-p"))
	if e.Count != 1 {
		t.Errorf("default Count = %d, want 1", e.Count)
	}
	e.WithCount(3)
	if e.Count != 3 {
		t.Errorf("Count = %d, want 3", e.Count)
	}
	e.WithCount(0) // ignored
	if e.Count != 3 {
		t.Errorf("Count after WithCount(0) = %d, want 3", e.Count)
	}
}
