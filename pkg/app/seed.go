package app

import (
	"context"
	"fmt"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/game"
	"github.com/Omkarop0808/Excuse-Killer/pkg/migrate"
	"github.com/Omkarop0808/Excuse-Killer/pkg/store"
	"github.com/Omkarop0808/Excuse-Killer/pkg/timeutil"
)

var sampleTasks = []struct {
	text      string
	intensity challenge.Intensity
}{
	{"Complete morning workout", challenge.Normal},
	{"Read 30 pages of a book", challenge.Chill},
	{"Practice coding for 1 hour", challenge.Hardcore},
	{"Meditate for 15 minutes", challenge.Chill},
	{"Write in journal", challenge.Normal},
}

// Seed loads sample data: a five day streak of completions, three pending
// challenges and two unlocks. The pending challenges are written in the
// legacy shape and upgraded by the migration engine. Seed refuses to touch a
// store that already holds data and reports whether it wrote anything.
func (s *Service) Seed(ctx context.Context) (bool, error) {
	if s.Store == nil {
		return false, errNoStore
	}
	for _, key := range store.AppKeys() {
		if s.Store.Has(key) {
			return false, nil
		}
	}
	now := s.now()

	completions := make([]challenge.Completion, 0, len(sampleTasks))
	for i, task := range sampleTasks {
		at := now.AddDate(0, 0, -i)
		day := timeutil.ISODate(at)
		completions = append(completions, challenge.Completion{
			ID:             fmt.Sprintf("completion-sample-%d", i),
			TaskText:       task.text,
			DateISO:        day,
			TargetType:     challenge.TargetToday,
			TargetDateISO:  day,
			FinishedOnTime: true,
			XPEarned:       task.intensity.XP(),
			CompletedAt:    at,
			Intensity:      task.intensity,
		})
	}

	today := timeutil.ISODate(now)
	legacy := func(n int, text string, tt challenge.TargetType, in challenge.Intensity, useTimer bool) migrate.Record {
		minutes := 0
		if useTimer {
			minutes = in.DefaultDuration()
		}
		return migrate.Record{
			"id":               fmt.Sprintf("challenge-sample-%d", n),
			"taskText":         text,
			"dateISO":          today,
			"targetType":       string(tt),
			"targetDateISO":    challenge.TargetDate(tt, "", now),
			"intensity":        string(in),
			"useTimer":         useTimer,
			"timerDuration":    minutes,
			"notificationSent": false,
			"status":           string(challenge.StatusPending),
			"timerStartedAt":   nil,
		}
	}
	pending := []migrate.Record{
		legacy(1, "Finish project documentation", challenge.TargetToday, challenge.Normal, true),
		legacy(2, "Learn a new language feature in depth", challenge.TargetThisWeek, challenge.Hardcore, true),
		legacy(3, "Build a side project", challenge.TargetThisMonth, challenge.Hardcore, false),
	}

	achievements := game.Achievements{
		game.FirstStep:   now.AddDate(0, 0, -4),
		game.WeekWarrior: now.AddDate(0, 0, -1),
	}

	for _, w := range []struct {
		key string
		v   any
	}{
		{store.KeyCompletions, completions},
		{store.KeyPending, pending},
		{store.KeyAchievements, achievements},
	} {
		if err := s.Store.Write(w.key, w.v); err != nil {
			return false, err
		}
	}

	if _, err := s.Migrate(ctx); err != nil {
		return true, err
	}
	return true, nil
}
