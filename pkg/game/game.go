// Package game derives streaks, XP, titles and achievement unlocks from the
// completion history. Every function is pure; the caller supplies now.
package game

import (
	"sort"
	"time"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/timeutil"
)

// Streak counts consecutive calendar days, ending today, with at least one
// completion. No completion today means a streak of zero.
func Streak(completions []challenge.Completion, now time.Time) int {
	days := make(map[string]struct{}, len(completions))
	for _, c := range completions {
		days[c.DateISO] = struct{}{}
	}

	streak := 0
	for day := timeutil.StartOfDay(now); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[timeutil.ISODate(day)]; !ok {
			return streak
		}
		streak++
	}
}

// WeeklyCount is the number of completions dated in the current
// Sunday–Saturday week.
func WeeklyCount(completions []challenge.Completion, now time.Time) int {
	n := 0
	for _, c := range completions {
		if timeutil.InWeek(c.DateISO, now) {
			n++
		}
	}
	return n
}

// MonthlyCount is the number of completions dated in the current calendar
// month.
func MonthlyCount(completions []challenge.Completion, now time.Time) int {
	n := 0
	for _, c := range completions {
		if timeutil.InMonth(c.DateISO, now) {
			n++
		}
	}
	return n
}

// TotalXP sums the XP earned across completions.
func TotalXP(completions []challenge.Completion) int {
	total := 0
	for _, c := range completions {
		total += c.XPEarned
	}
	return total
}

var titles = []struct {
	min   int
	title string
}{
	{15, "Unstoppable"},
	{7, "Super Overcomer"},
	{3, "Overcomer"},
	{0, "Starter"},
}

// Title is the rank earned by a streak.
func Title(streak int) string {
	for _, t := range titles {
		if streak >= t.min {
			return t.title
		}
	}
	return "Starter"
}

// Recent returns the n most recent completions by completion time, newest
// first. The input is not modified.
func Recent(completions []challenge.Completion, n int) []challenge.Completion {
	sorted := make([]challenge.Completion, len(completions))
	copy(sorted, completions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Stats is the derived gamification state shown to the user.
type Stats struct {
	Streak       int          `json:"streak"`
	Weekly       int          `json:"weekly"`
	Monthly      int          `json:"monthly"`
	TotalXP      int          `json:"totalXP"`
	Title        string       `json:"title"`
	Completions  int          `json:"completions"`
	Achievements Achievements `json:"achievements"`
}

// Compute derives Stats from the history and the persisted unlocks.
func Compute(completions []challenge.Completion, achievements Achievements, now time.Time) Stats {
	streak := Streak(completions, now)
	return Stats{
		Streak:       streak,
		Weekly:       WeeklyCount(completions, now),
		Monthly:      MonthlyCount(completions, now),
		TotalXP:      TotalXP(completions),
		Title:        Title(streak),
		Completions:  len(completions),
		Achievements: achievements,
	}
}
