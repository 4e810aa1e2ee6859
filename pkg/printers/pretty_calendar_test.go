package printers

import (
	"testing"
	"time"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
)

func TestCountByDay(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	count := CountByDay(now, []challenge.Completion{
		{DateISO: "2026-10-14"},
		{DateISO: "2026-10-14"},
		{DateISO: "2026-10-01"},
		{DateISO: "2026-09-30"},
		{DateISO: "garbage"},
	})
	if len(count) != 31 {
		t.Fatalf("expected 31 days, got %d", len(count))
	}
	if count[13] != 2 || count[0] != 1 {
		t.Fatalf("unexpected counts: %v", count)
	}
	total := 0
	for _, c := range count {
		total += c
	}
	if total != 3 {
		t.Fatalf("expected 3 counted, got %d", total)
	}
}

func TestMonthLayout(t *testing.T) {
	tests := []struct {
		then  time.Time
		days  int
		start time.Weekday
	}{
		{time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC), 31, time.Thursday},
		{time.Date(2028, 2, 3, 0, 0, 0, 0, time.UTC), 29, time.Tuesday},
		{time.Date(2026, 11, 30, 23, 0, 0, 0, time.FixedZone("x", -5*3600)), 30, time.Sunday},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.then); got != tt.days {
			t.Errorf("DaysIn(%s) = %d, want %d", tt.then, got, tt.days)
		}
		if got := StartDay(tt.then); got != tt.start {
			t.Errorf("StartDay(%s) = %s, want %s", tt.then, got, tt.start)
		}
	}
}
