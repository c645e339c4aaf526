package completer

import (
	"reflect"
	"testing"

	"github.com/devadathanmb/pgcli/internal/prompt/buffer"
)

func docAtEnd(text string) buffer.Document {
	return buffer.Document{Text: text, Cursor: len([]rune(text))}
}

func TestCompleteKeywords(t *testing.T) {
	c := New(nil)

	got := c.Complete(docAtEnd("sel"))
	want := []string{"select"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(\"sel\") = %v, want %v", got, want)
	}
}

func TestCompleteKeywordCaseFollowsInput(t *testing.T) {
	c := New(nil)

	got := c.Complete(docAtEnd("SEL"))
	want := []string{"SELECT"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete(\"SEL\") = %v, want %v", got, want)
	}
}

func TestCompleteEmptyWord(t *testing.T) {
	c := New(func() bool { return true }, WithTables("users"))

	if got := c.Complete(docAtEnd("select ")); got != nil {
		t.Errorf("Complete after space = %v, want nil", got)
	}
}

func TestCompleteSmartToggle(t *testing.T) {
	smart := false
	c := New(func() bool { return smart },
		WithTables("users", "user_roles"),
		WithColumns("user_id"))

	naive := c.Complete(docAtEnd("select use"))
	if len(naive) != 0 {
		t.Errorf("naive completion returned names: %v", naive)
	}

	smart = true
	got := c.Complete(docAtEnd("select use"))
	want := []string{"user_id", "user_roles", "users"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("smart completion = %v, want %v", got, want)
	}
}

func TestCompleteKeywordsBeforeNames(t *testing.T) {
	c := New(func() bool { return true }, WithFunctions("setval"))

	got := c.Complete(docAtEnd("se"))
	if len(got) < 2 {
		t.Fatalf("Complete(\"se\") = %v, want keywords plus setval", got)
	}
	if got[len(got)-1] != "setval" {
		t.Errorf("schema names should follow keywords, got %v", got)
	}
	for _, cand := range got[:len(got)-1] {
		if cand == "setval" {
			t.Errorf("setval appeared among keywords: %v", got)
		}
	}
}

func TestCompleteMidWordCursor(t *testing.T) {
	c := New(nil)

	// Cursor after "sel", before " from t".
	doc := buffer.Document{Text: "sel from t", Cursor: 3}
	got := c.Complete(doc)
	want := []string{"select"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Complete mid-text = %v, want %v", got, want)
	}
}
