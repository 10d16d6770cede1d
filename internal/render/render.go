// Package render builds markdown views of companies and portfolios from
// embedded templates and displays them in the terminal through glamour.
package render

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/chconnect-dev/chconnect/internal/deadline"
	"github.com/chconnect-dev/chconnect/internal/registry"
	"github.com/chconnect-dev/chconnect/internal/report"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
	"orNA": func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	},
}

// DeadlineLine is one row of the filing-deadlines table in the search view.
type DeadlineLine struct {
	Filing string
	Due    string
	Label  string
	Status string
}

// SearchData feeds the dashboard search template.
type SearchData struct {
	CRN       string
	Profile   registry.Profile
	Deadlines []DeadlineLine
}

// DetailsData feeds the company details template.
type DetailsData struct {
	CRN         string
	Profile     registry.Profile
	Officers    []registry.Officer
	Filings     []registry.FilingEvent
	Charges     []registry.Charge
	ChargeCount int
}

// Search renders the dashboard view for a freshly fetched profile.
func Search(crn string, p registry.Profile, today time.Time) (string, error) {
	data := SearchData{
		CRN:     crn,
		Profile: p,
		Deadlines: []DeadlineLine{
			deadlineLine("Annual accounts", p.Accounts.NextDue, today),
			deadlineLine("Confirmation statement (CS01)", p.ConfirmationStatement.NextDue, today),
		},
	}
	return renderTemplate("search.md", data)
}

// Details renders the rich details panel for a single company.
func Details(d DetailsData) (string, error) {
	return renderTemplate("details.md", d)
}

// Summary renders the portfolio summary tiles.
func Summary(s report.Summary) (string, error) {
	return renderTemplate("summary.md", s)
}

// Table renders portfolio rows as a markdown table in export column order.
func Table(rows []report.Row) string {
	var sb strings.Builder
	sb.WriteString("| Company Name | Company Number | Accounts Due Date | Accounts Deadline | Accounts Status | CS01 Due Date | CS01 Deadline | CS01 Status | Company Status | Last Updated |\n")
	sb.WriteString("|---|---|---|---|---|---|---|---|---|---|\n")
	for _, r := range rows {
		cells := report.MarshalRow(r)
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "|", "\\|")
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return sb.String()
}

// ANSI converts markdown to styled terminal output. On any rendering error
// the raw markdown comes back unchanged; display must never fail a command.
func ANSI(markdown string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

func deadlineLine(filing, due string, today time.Time) DeadlineLine {
	if due == "" {
		due = "N/A"
	}
	return DeadlineLine{
		Filing: filing,
		Due:    due,
		Label:  deadline.RelativeLabel(due, today),
		Status: deadline.UrgencyOf(due, today).Label(),
	}
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).ParseFS(templates, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}
	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return sb.String(), nil
}
