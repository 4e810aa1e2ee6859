package app

import (
	"context"
	"sort"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/timeutil"
)

// OverdueItem is a pending challenge whose target day has passed.
type OverdueItem struct {
	Challenge   challenge.Challenge
	DaysOverdue int
}

// Overdue returns pending challenges with a target date before today, most
// overdue first.
func (s *Service) Overdue(ctx context.Context) ([]OverdueItem, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	pending, err := s.loadPending(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()

	results := make([]OverdueItem, 0, len(pending))
	for _, c := range pending {
		if !timeutil.IsPast(c.TargetDateISO, now) {
			continue
		}
		days, err := timeutil.DaysUntil(c.TargetDateISO, now)
		if err != nil {
			continue
		}
		results = append(results, OverdueItem{Challenge: c, DaysOverdue: -days})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].DaysOverdue == results[j].DaysOverdue {
			return results[i].Challenge.CreatedAt.Before(results[j].Challenge.CreatedAt)
		}
		return results[i].DaysOverdue > results[j].DaysOverdue
	})
	return results, nil
}
