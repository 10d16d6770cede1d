package deadline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chconnect-dev/chconnect/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntil(t *testing.T) {
	today := date(2024, time.March, 2)

	tests := []struct {
		name    string
		dateStr string
		want    int
		ok      bool
	}{
		{"today", "2024-03-02", 0, true},
		{"tomorrow", "2024-03-03", 1, true},
		{"yesterday", "2024-03-01", -1, true},
		{"sixty days out", "2024-05-01", 60, true},
		{"far past", "2023-03-02", -366, true}, // 2024 is a leap year
		{"unknown sentinel", "N/A", 0, false},
		{"empty", "", 0, false},
		{"malformed", "02/03/2024", 0, false},
		{"partial", "2024-03", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DaysUntil(tt.dateStr, today)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysUntil_IgnoresWallClock(t *testing.T) {
	// Late evening vs early morning must not change the day count.
	evening := time.Date(2024, time.March, 2, 23, 50, 0, 0, time.UTC)
	morning := time.Date(2024, time.March, 2, 0, 5, 0, 0, time.UTC)

	d1, ok := DaysUntil("2024-03-05", evening)
	require.True(t, ok)
	d2, ok := DaysUntil("2024-03-05", morning)
	require.True(t, ok)
	assert.Equal(t, 3, d1)
	assert.Equal(t, 3, d2)
}

func TestRelativeLabel(t *testing.T) {
	today := date(2024, time.March, 2)

	tests := []struct {
		dateStr string
		want    string
	}{
		{"N/A", "N/A"},
		{"", "N/A"},
		{"garbage", "N/A"},
		{"2024-03-02", "in 0 days"},
		{"2024-03-12", "in 10 days"},
		{"2024-03-31", "in 29 days"},
		{"2024-04-01", "in 1 month"},  // 30 days
		{"2024-05-01", "in 2 months"}, // 60 days, the 30-day bucketing rule
		{"2024-02-26", "5 days ago"},
		{"2024-02-02", "29 days ago"},
		{"2024-02-01", "1 month ago"},  // 30 days ago
		{"2023-12-03", "3 months ago"}, // 90 days ago
	}

	for _, tt := range tests {
		t.Run(tt.dateStr, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeLabel(tt.dateStr, today))
		})
	}
}

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		offset int
		want   model.Urgency
	}{
		{-400, model.UrgencyOverdue},
		{-1, model.UrgencyOverdue},
		{0, model.UrgencyDue7},
		{7, model.UrgencyDue7},
		{8, model.UrgencyDue30},
		{30, model.UrgencyDue30},
		{31, model.UrgencyOK},
		{365, model.UrgencyOK},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.offset), "offset %d", tt.offset)
	}
}

func TestUrgencyOf(t *testing.T) {
	today := date(2024, time.March, 2)

	assert.Equal(t, model.UrgencyUnknown, UrgencyOf("N/A", today))
	assert.Equal(t, model.UrgencyOverdue, UrgencyOf("2024-03-01", today))
	assert.Equal(t, model.UrgencyDue7, UrgencyOf("2024-03-09", today))
	assert.Equal(t, model.UrgencyDue30, UrgencyOf("2024-04-01", today))
	assert.Equal(t, model.UrgencyOK, UrgencyOf("2024-04-02", today))
}
