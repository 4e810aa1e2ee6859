package timeutil

import (
	"fmt"
	"time"
)

// LayoutISO is the calendar-day format used for every persisted date.
const LayoutISO = "2006-01-02"

// StartOfDay truncates t to local midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ISODate renders the calendar day of t.
func ISODate(t time.Time) string {
	return t.Format(LayoutISO)
}

// ParseISODate parses a YYYY-MM-DD day in loc.
func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(LayoutISO, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// SameDay reports whether a and b fall on the same calendar day in a's
// location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// IsPast reports whether the day dateISO is strictly before the day of now.
// Unparseable dates are never past.
func IsPast(dateISO string, now time.Time) bool {
	day, err := ParseISODate(dateISO, now.Location())
	if err != nil {
		return false
	}
	return day.Before(StartOfDay(now))
}

// WeekStart is the Sunday that opens the week containing now.
func WeekStart(now time.Time) time.Time {
	today := StartOfDay(now)
	return today.AddDate(0, 0, -int(today.Weekday()))
}

// WeekEnd is the Saturday that closes the week containing now. On a Saturday
// it is now's own day.
func WeekEnd(now time.Time) time.Time {
	return WeekStart(now).AddDate(0, 0, 6)
}

// MonthEnd is the last calendar day of now's month.
func MonthEnd(now time.Time) time.Time {
	y, m, _ := now.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, now.Location())
}

// InWeek reports whether dateISO falls in the Sunday–Saturday week holding now.
func InWeek(dateISO string, now time.Time) bool {
	day, err := ParseISODate(dateISO, now.Location())
	if err != nil {
		return false
	}
	start := WeekStart(now)
	return !day.Before(start) && day.Before(start.AddDate(0, 0, 7))
}

// InMonth reports whether dateISO falls in now's calendar month.
func InMonth(dateISO string, now time.Time) bool {
	day, err := ParseISODate(dateISO, now.Location())
	if err != nil {
		return false
	}
	return day.Year() == now.Year() && day.Month() == now.Month()
}

// DaysUntil counts calendar days from now's day to dateISO. Negative values
// mean the date has passed.
func DaysUntil(dateISO string, now time.Time) (int, error) {
	day, err := ParseISODate(dateISO, now.Location())
	if err != nil {
		return 0, err
	}
	return calendarDays(StartOfDay(now), day), nil
}

// calendarDays counts midnights between a and b, immune to DST hour shifts.
func calendarDays(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// FormatClock renders d as MM:SS, clamping negatives to zero.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
