package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Header is the CSV header for portfolio exports.
const Header = "Company Name,Company Number,Accounts Due Date,Accounts Deadline,Accounts Status,CS01 Due Date,CS01 Deadline,CS01 Status,Company Status,Last Updated"

const numFields = 10

// MarshalRow converts a Row to a CSV record in Header column order.
func MarshalRow(r Row) []string {
	return []string{
		r.Name,
		r.CRN,
		r.AccountsDue,
		r.AccountsDeadline,
		r.AccountsStatus,
		r.CSDue,
		r.CSDeadline,
		r.CSStatus,
		r.CompanyStatus,
		r.LastUpdated,
	}
}

// WriteCSV writes the header and rows to w.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
