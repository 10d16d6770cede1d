// Package importer parses bulk-add files: CSVs whose first column is a
// company registration number. Extra columns (names, notes) are ignored so
// exports from other tools can be fed in directly.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chconnect-dev/chconnect/internal/crn"
)

// ReadCRNs reads CRNs from r, one per row, first column. A header row whose
// first cell is "crn" (any case) is skipped. Each CRN is normalized and
// validated; duplicates within the file collapse to the first occurrence.
func ReadCRNs(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column count varies across sources

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import CSV: %w", err)
	}

	seen := make(map[string]bool)
	var crns []string
	for i, rec := range records {
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "crn") {
			continue
		}
		c := crn.Normalize(rec[0])
		if err := crn.Validate(c); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		crns = append(crns, c)
	}
	return crns, nil
}

// ReadFile reads CRNs from a file on disk.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	crns, err := ReadCRNs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return crns, nil
}
