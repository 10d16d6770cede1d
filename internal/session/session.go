// Package session holds the single-slot "last searched company" cache.
// Search writes the slot, save reads it, so `chconnect save` without
// arguments saves whatever was searched last. CLI invocations are separate
// processes, so the slot is a small JSON file in the data directory rather
// than in-memory state.
package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chconnect-dev/chconnect/internal/model"
	"github.com/chconnect-dev/chconnect/internal/registry"
)

// FileName is the session file inside the data directory.
const FileName = "session.json"

// Entry is the cached search result: the mapped portfolio record plus the
// raw profile kept for display.
type Entry struct {
	Company model.Company    `json:"company"`
	Profile registry.Profile `json:"profile"`
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a Store over the given session.json path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save overwrites the slot with a new entry.
func (s *Store) Save(e Entry) error {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Load returns the slot contents. A missing or unreadable session file means
// no company has been searched yet.
func (s *Store) Load() (Entry, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Entry{}, false
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, false
	}
	if e.Company.CRN == "" {
		return Entry{}, false
	}
	return e, true
}

// Clear empties the slot. Clearing an absent slot is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
