// Package history persists generated passwords to a JSON file.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/passtui/internal/model"
)

// Store holds the insertion-ordered password history and its backing
// file. Entries are never mutated or removed; the only transition is
// append followed by a full rewrite of the file.
type Store struct {
	path    string
	entries []model.Entry
}

// New returns an empty store backed by the given path.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the history file at path. A missing file yields an empty
// store; unreadable or malformed content is an error, and the caller
// decides whether to degrade to an empty store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Store{path: path}, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	return &Store{path: path, entries: entries}, nil
}

// Append adds entry and rewrites the whole file. On a failed write the
// in-memory append is rolled back so memory and disk never diverge.
func (s *Store) Append(entry model.Entry) error {
	s.entries = append(s.entries, entry)
	if err := s.persist(); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return err
	}
	return nil
}

func (s *Store) persist() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "history-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close history file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// Entries returns a copy of the full history, oldest first.
func (s *Store) Entries() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Recent returns up to n entries, most recent first. n <= 0 returns the
// whole history.
func (s *Store) Recent(n int) []model.Entry {
	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]model.Entry, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		out = append(out, s.entries[i])
	}
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}
