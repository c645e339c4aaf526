package suggest

import "strings"

// Source exposes the history entries the suggester scans, newest last.
type Source interface {
	Len() int
	At(i int) string
}

// HistorySuggester offers the remainder of the most recent history
// entry that starts with the current input.
type HistorySuggester struct {
	source Source
}

// NewHistorySuggester creates a suggester over the given history.
func NewHistorySuggester(source Source) *HistorySuggester {
	return &HistorySuggester{source: source}
}

// Suggest returns the ghost text to append after text, or "" when no
// history entry extends it. Matching ignores nothing: the entry must
// start with text byte for byte, and an exact duplicate yields no
// suggestion.
func (s *HistorySuggester) Suggest(text string) string {
	if s.source == nil || text == "" {
		return ""
	}
	for i := s.source.Len() - 1; i >= 0; i-- {
		entry := s.source.At(i)
		if len(entry) > len(text) && strings.HasPrefix(entry, text) {
			return entry[len(text):]
		}
	}
	return ""
}
