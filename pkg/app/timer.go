package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/timer"
)

// TimerOutcome is what answering an expiry prompt did to the challenge.
type TimerOutcome struct {
	Completion   *challenge.Completion
	Notification *challenge.Notification
}

// Timer builds the countdown for a challenge that uses a timer. The caller
// chooses between Start and Recover and must Close it when done.
func (s *Service) Timer(ctx context.Context, id string, tick time.Duration) (*challenge.Challenge, *timer.Timer, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !c.UseTimer {
		return c, nil, fmt.Errorf("app: challenge %s does not use a timer", id)
	}
	t := timer.New(timer.Options{
		Duration:     time.Duration(c.DurationMinutes) * time.Minute,
		Key:          c.ID,
		Store:        &timer.AdapterRecords{Store: s.Store},
		Now:          s.now,
		TickInterval: tick,
		Log:          s.log(),
	})
	return c, t, nil
}

// ResolveTimer answers a timer's expiry prompt: true completes the
// challenge, false abandons it.
func (s *Service) ResolveTimer(ctx context.Context, id string, t *timer.Timer, completed bool) (TimerOutcome, error) {
	done, err := t.Resolve(completed)
	if err != nil {
		return TimerOutcome{}, err
	}
	if done {
		comp, err := s.Complete(ctx, id)
		return TimerOutcome{Completion: comp}, err
	}
	note, err := s.Abandon(ctx, id)
	return TimerOutcome{Notification: note}, err
}
