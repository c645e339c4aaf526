package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded input.
type Entry struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Store holds input history in memory and mirrors appends to a
// JSON-lines file. A Store with an empty path is memory-only.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	path    string
	maxSize int
}

const defaultMaxSize = 10000

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{maxSize: defaultMaxSize}
}

// Open loads history from the JSON-lines file at path, creating parent
// directories as needed. A missing file yields an empty store. Lines
// that fail to parse are skipped rather than aborting the load.
func Open(path string) (*Store, error) {
	s := &Store{path: path, maxSize: defaultMaxSize}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		s.entries = append(s.entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	if len(s.entries) > s.maxSize {
		s.entries = s.entries[len(s.entries)-s.maxSize:]
	}
	return s, nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// At returns the text of entry i, 0 being the oldest. Out-of-range
// indexes return "".
func (s *Store) At(i int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.entries) {
		return ""
	}
	return s.entries[i].Text
}

// Entries returns a copy of all entries, oldest first.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Append records text as a new entry and mirrors it to the history
// file. Write failures are silent; losing a history line never aborts
// the session.
func (s *Store) Append(text string) {
	e := Entry{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: time.Now().UTC(),
	}

	s.mu.Lock()
	s.entries = append(s.entries, e)
	if len(s.entries) > s.maxSize {
		s.entries = s.entries[len(s.entries)-s.maxSize:]
	}
	path := s.path
	s.mu.Unlock()

	if path == "" {
		return
	}
	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	data = append(data, '\n')
	_, _ = f.Write(data)
}

// Last returns the newest entry text, or "" when empty.
func (s *Store) Last() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[len(s.entries)-1].Text
}
