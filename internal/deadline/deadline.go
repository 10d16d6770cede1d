// Package deadline converts filing due-date strings into day offsets,
// relative labels and urgency classes. All functions take "today" explicitly
// so results are deterministic under test.
package deadline

import (
	"fmt"
	"time"

	"github.com/chconnect-dev/chconnect/internal/model"
)

// DateFormat is the strict on-the-wire date format for due dates.
const DateFormat = "2006-01-02"

// monthDays is the fixed month length used for relative labels. Labels use a
// 30-day month approximation, not calendar months.
const monthDays = 30

// DaysUntil parses a due date and returns its signed day offset from today:
// negative for past dates, zero for today, positive for future dates. The
// second return is false for the unknown sentinel, an empty string, or a
// malformed date; callers treat all three uniformly as "no deadline data".
func DaysUntil(dateStr string, today time.Time) (int, bool) {
	if dateStr == "" || dateStr == model.UnknownDate {
		return 0, false
	}
	d, err := time.Parse(DateFormat, dateStr)
	if err != nil {
		return 0, false
	}
	return int(midnight(d).Sub(midnight(today)).Hours() / 24), true
}

// RelativeLabel renders a due date as a human label like "in 10 days",
// "in 2 months", "5 days ago" or "3 months ago". Dates without deadline
// data render as "N/A".
func RelativeLabel(dateStr string, today time.Time) string {
	d, ok := DaysUntil(dateStr, today)
	if !ok {
		return model.UnknownDate
	}
	if d < 0 {
		daysAgo := -d
		months := daysAgo / monthDays
		if months == 0 {
			return fmt.Sprintf("%d days ago", daysAgo)
		}
		return fmt.Sprintf("%d month%s ago", months, plural(months))
	}
	if d < monthDays {
		return fmt.Sprintf("in %d days", d)
	}
	months := d / monthDays
	return fmt.Sprintf("in %d month%s", months, plural(months))
}

// UrgencyOf classifies a single due date.
func UrgencyOf(dateStr string, today time.Time) model.Urgency {
	d, ok := DaysUntil(dateStr, today)
	if !ok {
		return model.UrgencyUnknown
	}
	return Classify(d)
}

// Classify maps a day offset onto an urgency class. The 7 and 30 day
// boundaries are inclusive: offset 7 is still "due in 7 days" and offset 30
// is still "due in 30 days".
func Classify(offset int) model.Urgency {
	switch {
	case offset < 0:
		return model.UrgencyOverdue
	case offset <= 7:
		return model.UrgencyDue7
	case offset <= 30:
		return model.UrgencyDue30
	default:
		return model.UrgencyOK
	}
}

// midnight truncates a time to its calendar day at midnight UTC, so offsets
// count whole days regardless of wall-clock time or zone.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
