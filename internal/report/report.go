// Package report aggregates the portfolio into summary counts and a sorted,
// filterable row projection for display and export.
package report

import (
	"sort"
	"time"

	"github.com/chconnect-dev/chconnect/internal/classify"
	"github.com/chconnect-dev/chconnect/internal/deadline"
	"github.com/chconnect-dev/chconnect/internal/model"
)

// unknownDays sorts records with no CS deadline data to the end of the
// nearest-deadline view.
const unknownDays = 99999

// Summary holds the portfolio-wide tile counts. A company contributes one
// increment per defined deadline, so it can appear in up to two buckets.
type Summary struct {
	Total   int
	Overdue int
	DueIn7  int
	DueIn30 int
}

// Summarize counts every defined day offset across both deadline fields of
// every record. Offsets beyond 30 days belong to no visible bucket.
func Summarize(records []model.Company, today time.Time) Summary {
	s := Summary{Total: len(records)}
	for _, c := range records {
		for _, due := range []string{c.AccountsDue, c.CSDue} {
			d, ok := deadline.DaysUntil(due, today)
			if !ok {
				continue
			}
			switch {
			case d < 0:
				s.Overdue++
			case d <= 7:
				s.DueIn7++
			case d <= 30:
				s.DueIn30++
			}
		}
	}
	return s
}

// Filter retains the records whose overall urgency matches the choice.
// FilterAll passes everything through; Unknown-urgency records never match
// any other choice.
func Filter(records []model.Company, choice model.Filter, today time.Time) []model.Company {
	if choice == model.FilterAll {
		return records
	}
	var out []model.Company
	for _, c := range records {
		if model.Filter(classify.Overall(c, today).Label()) == choice {
			out = append(out, c)
		}
	}
	return out
}

// Row is one line of the portfolio table: raw dates plus derived labels for
// each deadline, in export column order.
type Row struct {
	Name             string
	CRN              string
	AccountsDue      string
	AccountsDeadline string
	AccountsStatus   string
	CSDue            string
	CSDeadline       string
	CSStatus         string
	CompanyStatus    string
	LastUpdated      string

	csDays int // retained for SortByNearestCS
}

// Project maps records into display rows.
func Project(records []model.Company, today time.Time) []Row {
	rows := make([]Row, 0, len(records))
	for _, c := range records {
		csDays := unknownDays
		if d, ok := deadline.DaysUntil(c.CSDue, today); ok {
			csDays = d
		}
		rows = append(rows, Row{
			Name:             c.Name,
			CRN:              c.CRN,
			AccountsDue:      c.AccountsDue,
			AccountsDeadline: deadline.RelativeLabel(c.AccountsDue, today),
			AccountsStatus:   deadline.UrgencyOf(c.AccountsDue, today).Label(),
			CSDue:            c.CSDue,
			CSDeadline:       deadline.RelativeLabel(c.CSDue, today),
			CSStatus:         deadline.UrgencyOf(c.CSDue, today).Label(),
			CompanyStatus:    c.Status,
			LastUpdated:      c.LastUpdated,
			csDays:           csDays,
		})
	}
	return rows
}

// SortByNearestCS stably sorts rows ascending by confirmation-statement day
// offset; rows without CS deadline data sort to the end, ties keep their
// original order.
func SortByNearestCS(rows []Row) []Row {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].csDays < rows[j].csDays
	})
	return rows
}
