package buffer

import "testing"

func TestDocumentCursorRowCol(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		cursor  int
		wantRow int
		wantCol int
	}{
		{"empty", "", 0, 0, 0},
		{"single line middle", "select", 3, 0, 3},
		{"second line start", "select\nfrom", 7, 1, 0},
		{"second line middle", "select\nfrom", 9, 1, 2},
		{"at newline", "ab\ncd", 2, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Document{Text: tt.text, Cursor: tt.cursor}
			if got := d.CursorRow(); got != tt.wantRow {
				t.Errorf("CursorRow() = %d, want %d", got, tt.wantRow)
			}
			if got := d.CursorCol(); got != tt.wantCol {
				t.Errorf("CursorCol() = %d, want %d", got, tt.wantCol)
			}
		})
	}
}

func TestDocumentTextAroundCursor(t *testing.T) {
	d := Document{Text: "select 1", Cursor: 6}
	if got := d.TextBeforeCursor(); got != "select" {
		t.Errorf("TextBeforeCursor() = %q, want %q", got, "select")
	}
	if got := d.TextAfterCursor(); got != " 1" {
		t.Errorf("TextAfterCursor() = %q, want %q", got, " 1")
	}
}

func TestDocumentCursorAtLineEnd(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		want   bool
	}{
		{"end of text", "abc", 3, true},
		{"before newline", "ab\ncd", 2, true},
		{"mid line", "abc", 1, false},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Document{Text: tt.text, Cursor: tt.cursor}
			if got := d.CursorAtLineEnd(); got != tt.want {
				t.Errorf("CursorAtLineEnd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDocumentCurrentLine(t *testing.T) {
	d := Document{Text: "select *\nfrom users", Cursor: 12}
	if got := d.CurrentLine(); got != "from users" {
		t.Errorf("CurrentLine() = %q, want %q", got, "from users")
	}
	if d.OnFirstLine() {
		t.Error("OnFirstLine() = true, want false")
	}
}

func TestDocumentWordBeforeCursor(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		cursor    int
		wantWord  string
		wantStart int
	}{
		{"plain word", "select cou", 10, "cou", 7},
		{"after space", "select ", 7, "", 7},
		{"underscore", "my_tab", 6, "my_tab", 0},
		{"empty", "", 0, "", 0},
		{"after punctuation", "a.b", 3, "b", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Document{Text: tt.text, Cursor: tt.cursor}
			word, start := d.WordBeforeCursor()
			if word != tt.wantWord || start != tt.wantStart {
				t.Errorf("WordBeforeCursor() = (%q, %d), want (%q, %d)",
					word, start, tt.wantWord, tt.wantStart)
			}
		})
	}
}
