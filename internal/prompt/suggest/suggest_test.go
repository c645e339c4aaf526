package suggest

import "testing"

type sliceSource []string

func (s sliceSource) Len() int        { return len(s) }
func (s sliceSource) At(i int) string { return s[i] }

func TestHistorySuggester(t *testing.T) {
	source := sliceSource{
		"select * from users;",
		"select count(*) from users;",
		"\\d users",
	}
	s := NewHistorySuggester(source)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"newest match wins", "select", " count(*) from users;"},
		{"longer prefix", "select *", " from users;"},
		{"backslash command", "\\d", " users"},
		{"no match", "insert", ""},
		{"empty input", "", ""},
		{"exact duplicate", "\\d users", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Suggest(tt.text); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestHistorySuggesterNilSource(t *testing.T) {
	s := NewHistorySuggester(nil)
	if got := s.Suggest("select"); got != "" {
		t.Errorf("Suggest with nil source = %q, want empty", got)
	}
}
