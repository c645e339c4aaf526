package buffer

import "testing"

type staticCompleter struct {
	candidates []string
}

func (c *staticCompleter) Complete(doc Document) []string {
	return c.candidates
}

func TestStartCompletionSelectFirst(t *testing.T) {
	c := &staticCompleter{candidates: []string{"count", "coalesce"}}
	b := New(WithCompleter(c))
	b.InsertText("select co", true)

	b.StartCompletion(true)
	cs := b.CompletionState()
	if cs == nil {
		t.Fatal("completion session should be open")
	}
	if cs.Index != 0 {
		t.Errorf("Index = %d, want 0", cs.Index)
	}
	if got := b.Text(); got != "select count" {
		t.Errorf("Text() = %q, want %q", got, "select count")
	}
	if got := b.Cursor(); got != 12 {
		t.Errorf("Cursor() = %d, want 12", got)
	}
}

func TestStartCompletionNoSelection(t *testing.T) {
	c := &staticCompleter{candidates: []string{"count", "coalesce"}}
	b := New(WithCompleter(c))
	b.InsertText("select co", true)

	b.StartCompletion(false)
	cs := b.CompletionState()
	if cs == nil {
		t.Fatal("completion session should be open")
	}
	if cs.HasSelection() {
		t.Error("menu opened without selectFirst should have no selection")
	}
	if got := b.Text(); got != "select co" {
		t.Errorf("Text() = %q, want unchanged %q", got, "select co")
	}
}

func TestCompleteNextWraps(t *testing.T) {
	c := &staticCompleter{candidates: []string{"count", "coalesce"}}
	b := New(WithCompleter(c))
	b.InsertText("co", true)
	b.StartCompletion(false)

	b.CompleteNext()
	if got := b.Text(); got != "count" {
		t.Errorf("after first next: Text() = %q, want %q", got, "count")
	}
	b.CompleteNext()
	if got := b.Text(); got != "coalesce" {
		t.Errorf("after second next: Text() = %q, want %q", got, "coalesce")
	}
	b.CompleteNext() // wraps to the first candidate
	if got := b.Text(); got != "count" {
		t.Errorf("after wrap: Text() = %q, want %q", got, "count")
	}
}

func TestCompletePreviousWraps(t *testing.T) {
	c := &staticCompleter{candidates: []string{"count", "coalesce"}}
	b := New(WithCompleter(c))
	b.InsertText("co", true)
	b.StartCompletion(false)

	b.CompletePrevious() // from no selection, wraps to the last
	if got := b.Text(); got != "coalesce" {
		t.Errorf("Text() = %q, want %q", got, "coalesce")
	}
	cs := b.CompletionState()
	if cs.Index != 1 {
		t.Errorf("Index = %d, want 1", cs.Index)
	}
}

func TestClearCompletionKeepsText(t *testing.T) {
	c := &staticCompleter{candidates: []string{"count"}}
	b := New(WithCompleter(c))
	b.InsertText("co", true)
	b.StartCompletion(true)

	b.ClearCompletion()
	if b.CompletionState() != nil {
		t.Error("session should be closed")
	}
	if got := b.Text(); got != "count" {
		t.Errorf("Text() = %q, want applied candidate kept", got)
	}
}

func TestCompletionClosedByTypedText(t *testing.T) {
	c := &staticCompleter{candidates: []string{"count"}}
	b := New(WithCompleter(c))
	b.InsertText("co", true)
	b.StartCompletion(false)

	b.InsertText("x", true)
	if b.CompletionState() != nil {
		t.Error("typing should close the completion session")
	}
}

func TestStartCompletionNoCandidates(t *testing.T) {
	c := &staticCompleter{}
	b := New(WithCompleter(c))
	b.InsertText("zzz", true)

	b.StartCompletion(true)
	if b.CompletionState() != nil {
		t.Error("no session should open without candidates")
	}

	b2 := New() // no completer at all
	b2.StartCompletion(true)
	if b2.CompletionState() != nil {
		t.Error("no session should open without a completer")
	}
}
