// Package classify combines a company's two filing deadlines into one
// overall urgency.
package classify

import (
	"time"

	"github.com/chconnect-dev/chconnect/internal/deadline"
	"github.com/chconnect-dev/chconnect/internal/model"
)

// Overall returns the urgency of a company's nearest defined deadline.
//
// The class is re-derived from the minimum day offset across accounts and
// confirmation-statement due dates rather than joined from two per-date
// labels, so it always agrees with the single-date thresholds. When neither
// deadline carries data the result is Unknown.
func Overall(c model.Company, today time.Time) model.Urgency {
	min, found := 0, false
	for _, due := range []string{c.AccountsDue, c.CSDue} {
		d, ok := deadline.DaysUntil(due, today)
		if !ok {
			continue
		}
		if !found || d < min {
			min = d
			found = true
		}
	}
	if !found {
		return model.UrgencyUnknown
	}
	return deadline.Classify(min)
}
