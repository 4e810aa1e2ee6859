package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var wed = time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart string
		wantEnd   string
	}{
		{"wednesday", wed, "2026-10-11", "2026-10-17"},
		{"sunday", time.Date(2026, time.October, 11, 0, 0, 0, 0, time.UTC), "2026-10-11", "2026-10-17"},
		{"saturday", time.Date(2026, time.October, 17, 23, 59, 0, 0, time.UTC), "2026-10-11", "2026-10-17"},
		{"across month", time.Date(2026, time.November, 2, 9, 0, 0, 0, time.UTC), "2026-11-01", "2026-11-07"},
		{"across year", time.Date(2026, time.December, 31, 9, 0, 0, 0, time.UTC), "2026-12-27", "2027-01-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStart, ISODate(WeekStart(tt.now)))
			assert.Equal(t, tt.wantEnd, ISODate(WeekEnd(tt.now)))
		})
	}
}

func TestMonthEnd(t *testing.T) {
	assert.Equal(t, "2026-10-31", ISODate(MonthEnd(wed)))
	assert.Equal(t, "2028-02-29", ISODate(MonthEnd(time.Date(2028, time.February, 3, 0, 0, 0, 0, time.UTC))))
	assert.Equal(t, "2026-12-31", ISODate(MonthEnd(time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC))))
}

func TestInWeekAndMonth(t *testing.T) {
	assert.True(t, InWeek("2026-10-11", wed))
	assert.True(t, InWeek("2026-10-17", wed))
	assert.False(t, InWeek("2026-10-10", wed))
	assert.False(t, InWeek("2026-10-18", wed))
	assert.False(t, InWeek("garbage", wed))

	assert.True(t, InMonth("2026-10-01", wed))
	assert.False(t, InMonth("2025-10-01", wed))
	assert.False(t, InMonth("2026-09-30", wed))
}

func TestIsPast(t *testing.T) {
	assert.False(t, IsPast("2026-10-14", wed), "today is not past")
	assert.True(t, IsPast("2026-10-13", wed))
	assert.False(t, IsPast("2026-10-15", wed))
	assert.False(t, IsPast("", wed))
}

func TestDaysUntil(t *testing.T) {
	n, err := DaysUntil("2026-10-20", wed)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = DaysUntil("2026-10-12", wed)
	require.NoError(t, err)
	assert.Equal(t, -2, n)

	_, err = DaysUntil("nope", wed)
	assert.Error(t, err)
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(wed, time.Date(2026, time.October, 14, 0, 0, 1, 0, time.UTC)))
	assert.False(t, SameDay(wed, time.Date(2025, time.October, 14, 15, 0, 0, 0, time.UTC)))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "10:00", FormatClock(10*time.Minute))
	assert.Equal(t, "08:59", FormatClock(539*time.Second))
	assert.Equal(t, "00:00", FormatClock(-time.Second))
	assert.Equal(t, "90:05", FormatClock(90*time.Minute+5*time.Second+400*time.Millisecond))
}
