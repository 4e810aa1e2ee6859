package app

import (
	"context"
	"sort"
	"time"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
)

// HistoryDay groups the completions of one calendar day.
type HistoryDay struct {
	Date        string
	Completions []challenge.Completion
	XP          int
}

// HistoryResult is the completion history for a time window.
type HistoryResult struct {
	Since time.Time
	Until time.Time
	Days  []HistoryDay
	Total int
	XP    int
	// OnTime counts completions finished by their target date.
	OnTime int
}

// History returns completions whose completion time falls in [since, until],
// grouped by completion day, newest day first.
func (s *Service) History(ctx context.Context, since, until time.Time) (HistoryResult, error) {
	if since.After(until) {
		since, until = until, since
	}
	completions, err := s.loadCompletions(ctx)
	if err != nil {
		return HistoryResult{}, err
	}

	result := HistoryResult{Since: since, Until: until}
	grouped := make(map[string]*HistoryDay)
	for _, c := range completions {
		if c.CompletedAt.Before(since) || c.CompletedAt.After(until) {
			continue
		}
		day, ok := grouped[c.DateISO]
		if !ok {
			day = &HistoryDay{Date: c.DateISO}
			grouped[c.DateISO] = day
		}
		day.Completions = append(day.Completions, c)
		day.XP += c.XPEarned
		result.Total++
		result.XP += c.XPEarned
		if c.FinishedOnTime {
			result.OnTime++
		}
	}
	if len(grouped) == 0 {
		return result, nil
	}

	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	result.Days = make([]HistoryDay, 0, len(dates))
	for _, date := range dates {
		day := grouped[date]
		sort.SliceStable(day.Completions, func(i, j int) bool {
			return day.Completions[i].CompletedAt.After(day.Completions[j].CompletedAt)
		})
		result.Days = append(result.Days, *day)
	}
	return result, nil
}
