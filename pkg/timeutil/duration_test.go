package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 7*24*time.Hour {
		t.Fatalf("expected one week, got %v", dur)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	tests := map[string]struct {
		in    string
		want  time.Duration
		label string
	}{
		"days":         {in: "3d", want: 72 * time.Hour, label: "3d"},
		"weeks fold":   {in: "14 days", want: 14 * 24 * time.Hour, label: "2w"},
		"month":        {in: "1month", want: 30 * 24 * time.Hour, label: "1mo"},
		"mixed":        {in: "1mo1w2d6h", want: (37*24 + 2*24 + 6) * time.Hour, label: "1mo1w2d6h"},
		"upper spaced": {in: " 2W 1D ", want: 15 * 24 * time.Hour, label: "2w1d"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			dur, label, err := ParseWindow(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dur != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, dur)
			}
			if label != tc.label {
				t.Fatalf("expected label %s, got %s", tc.label, label)
			}
		})
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3x", "0d", "5"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatWindowDropsMinutes(t *testing.T) {
	if got := FormatWindow(90 * time.Minute); got != "1h" {
		t.Fatalf("expected 1h, got %s", got)
	}
	if got := FormatWindow(time.Minute); got != "0h" {
		t.Fatalf("expected 0h, got %s", got)
	}
}
