package completer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/devadathanmb/pgcli/internal/prompt/buffer"
)

// keywords is the candidate pool the naive completer draws from.
var keywords = []string{
	"ABORT", "ALL", "ALTER", "ANALYZE", "AND", "AS", "ASC", "BEGIN",
	"BETWEEN", "BY", "CASE", "CAST", "COMMIT", "COPY", "CREATE",
	"DATABASE", "DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP", "ELSE",
	"END", "EXISTS", "EXPLAIN", "FROM", "FULL", "FUNCTION", "GRANT",
	"GROUP", "HAVING", "IN", "INDEX", "INNER", "INSERT", "INTO", "IS",
	"JOIN", "LEFT", "LIKE", "LIMIT", "NOT", "NULL", "OFFSET", "ON",
	"OR", "ORDER", "OUTER", "PRIMARY", "RIGHT", "ROLLBACK", "SCHEMA",
	"SELECT", "SET", "TABLE", "THEN", "UNION", "UNIQUE", "UPDATE",
	"USING", "VALUES", "VIEW", "WHEN", "WHERE", "WITH",
}

// SQLCompleter completes SQL keywords and, when the smart predicate
// holds, schema object names learned from the connected database.
type SQLCompleter struct {
	// smart reports whether schema-aware completion is enabled; it is
	// read per keystroke so F2 toggles take effect immediately.
	smart func() bool

	tables    []string
	columns   []string
	functions []string
}

// Option configures a SQLCompleter.
type Option func(*SQLCompleter)

// WithTables seeds table names for smart completion.
func WithTables(names ...string) Option {
	return func(c *SQLCompleter) { c.tables = append(c.tables, names...) }
}

// WithColumns seeds column names for smart completion.
func WithColumns(names ...string) Option {
	return func(c *SQLCompleter) { c.columns = append(c.columns, names...) }
}

// WithFunctions seeds function names for smart completion.
func WithFunctions(names ...string) Option {
	return func(c *SQLCompleter) { c.functions = append(c.functions, names...) }
}

// New creates a completer. smart may be nil, which disables
// schema-aware candidates permanently.
func New(smart func() bool, opts ...Option) *SQLCompleter {
	c := &SQLCompleter{smart: smart}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete returns candidates for the word before the cursor, keyword
// matches first, then schema names when smart completion is on.
// Keyword candidates follow the case of the typed fragment.
func (c *SQLCompleter) Complete(doc buffer.Document) []string {
	word, _ := doc.WordBeforeCursor()
	if word == "" {
		return nil
	}
	lower := strings.ToLower(word)
	upper := isUpper(word)

	var out []string
	for _, kw := range keywords {
		if strings.HasPrefix(strings.ToLower(kw), lower) {
			if upper {
				out = append(out, kw)
			} else {
				out = append(out, strings.ToLower(kw))
			}
		}
	}

	if c.smart != nil && c.smart() {
		var names []string
		for _, pool := range [][]string{c.tables, c.columns, c.functions} {
			for _, name := range pool {
				if strings.HasPrefix(strings.ToLower(name), lower) {
					names = append(names, name)
				}
			}
		}
		sort.Strings(names)
		out = append(out, names...)
	}
	return out
}

// isUpper reports whether the fragment contains an uppercase letter
// and no lowercase ones.
func isUpper(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
