// Package portfolio owns the saved company collection. The companies.json
// file is the sole source of truth; every mutation is a full atomic rewrite.
package portfolio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chconnect-dev/chconnect/internal/model"
)

// FetchFunc obtains a freshly mapped record for a CRN from the registry.
// The second return is false on any lookup failure; the store does not
// distinguish not-found from transport errors.
type FetchFunc func(crn string) (model.Company, bool)

// RefreshPolicy decides what happens to a stored record whose refresh fetch
// fails.
type RefreshPolicy string

const (
	// DropMissing removes records whose fetch yields nothing. A transient
	// registry outage during a bulk refresh therefore shrinks the
	// portfolio; this matches the historical behavior and is the default.
	DropMissing RefreshPolicy = "drop"
	// KeepStale retains the previous record unchanged when its fetch
	// fails. Kept-stale records do not count as refreshed.
	KeepStale RefreshPolicy = "keep-stale"
)

// ParseRefreshPolicy validates a policy string from config or flags.
func ParseRefreshPolicy(s string) (RefreshPolicy, error) {
	switch RefreshPolicy(s) {
	case "":
		return DropMissing, nil
	case DropMissing, KeepStale:
		return RefreshPolicy(s), nil
	}
	return "", fmt.Errorf("unknown refresh policy %q (want %q or %q)", s, DropMissing, KeepStale)
}

// Store persists the portfolio as a JSON array of records.
type Store struct {
	path string
}

// NewStore creates a Store over the given companies.json path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }

// LoadAll returns the current persisted collection. A missing, unreadable or
// corrupt file is an empty portfolio, never an error: every failure mode
// here degrades to "nothing saved yet".
func (s *Store) LoadAll() []model.Company {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var records []model.Company
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}

// SaveAll atomically replaces the entire persisted collection. The write
// goes to a temp file in the same directory and is renamed into place, so a
// crash mid-save leaves the previous collection intact.
func (s *Store) SaveAll(records []model.Company) error {
	if records == nil {
		records = []model.Company{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding portfolio: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating portfolio dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "companies-*.json")
	if err != nil {
		return fmt.Errorf("creating temp portfolio: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing portfolio: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing portfolio: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing portfolio: %w", err)
	}
	return nil
}

// Add appends a record unless its CRN is already present. It returns false
// without touching the file when the company is already saved.
func (s *Store) Add(record model.Company) (bool, error) {
	records := s.LoadAll()
	for _, c := range records {
		if c.CRN == record.CRN {
			return false, nil
		}
	}
	if err := s.SaveAll(append(records, record)); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes all records matching crn. Removing an absent CRN is a
// successful no-op.
func (s *Store) Remove(crn string) error {
	records := s.LoadAll()
	kept := records[:0]
	for _, c := range records {
		if c.CRN != crn {
			kept = append(kept, c)
		}
	}
	return s.SaveAll(kept)
}

// Exists reports whether a CRN is already saved.
func (s *Store) Exists(crn string) bool {
	for _, c := range s.LoadAll() {
		if c.CRN == crn {
			return true
		}
	}
	return false
}

// RefreshAll re-fetches every stored company in original order and fully
// replaces the collection with the result. Records whose fetch fails are
// dropped or kept stale per the policy. Returns the number of successfully
// refreshed records.
func (s *Store) RefreshAll(fetch FetchFunc, policy RefreshPolicy) (int, error) {
	records := s.LoadAll()
	updated := make([]model.Company, 0, len(records))
	refreshed := 0
	for _, c := range records {
		fresh, ok := fetch(c.CRN)
		if ok {
			updated = append(updated, fresh)
			refreshed++
			continue
		}
		if policy == KeepStale {
			updated = append(updated, c)
		}
	}
	if err := s.SaveAll(updated); err != nil {
		return 0, err
	}
	return refreshed, nil
}
