package model

import "fmt"

// Urgency classifies how close a filing deadline is. Higher values are more
// urgent; Unknown sorts below everything because it carries no deadline data.
type Urgency int

const (
	UrgencyUnknown Urgency = iota
	UrgencyOK
	UrgencyDue30
	UrgencyDue7
	UrgencyOverdue
)

// Label returns the display form used in table rows and filters.
func (u Urgency) Label() string {
	switch u {
	case UrgencyOverdue:
		return "Overdue"
	case UrgencyDue7:
		return "Due in 7 days"
	case UrgencyDue30:
		return "Due in 30 days"
	case UrgencyOK:
		return "OK"
	default:
		return "N/A"
	}
}

// Filter selects which companies a portfolio view shows.
type Filter string

const (
	FilterAll     Filter = "All"
	FilterOverdue Filter = "Overdue"
	FilterDue7    Filter = "Due in 7 days"
	FilterDue30   Filter = "Due in 30 days"
	FilterOK      Filter = "OK"
)

// Filters lists all valid filter choices in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterOverdue, FilterDue7, FilterDue30, FilterOK}
}

// ParseFilter matches a user-supplied choice against the known filters,
// accepting the shorthand forms "all", "overdue", "due7", "due30" and "ok".
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", "all", string(FilterAll):
		return FilterAll, nil
	case "overdue", string(FilterOverdue):
		return FilterOverdue, nil
	case "due7", string(FilterDue7):
		return FilterDue7, nil
	case "due30", string(FilterDue30):
		return FilterDue30, nil
	case "ok", string(FilterOK):
		return FilterOK, nil
	}
	return "", fmt.Errorf("unknown filter %q (want all, overdue, due7, due30 or ok)", s)
}
