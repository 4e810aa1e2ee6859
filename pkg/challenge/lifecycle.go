package challenge

import (
	"fmt"
	"time"

	"github.com/Omkarop0808/Excuse-Killer/pkg/timeutil"
)

var transitions = map[Status][]Status{
	StatusPending: {StatusOngoing, StatusCompleted, StatusAbandoned},
	StatusOngoing: {StatusCompleted, StatusAbandoned},
}

// CanTransition reports whether a challenge in from may move to to.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (c *Challenge) moveTo(to Status, now time.Time) error {
	if !CanTransition(c.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, to)
	}
	c.Status = to
	c.UpdatedAt = now
	if to != StatusOngoing {
		c.TimerStartedAt = nil
	}
	return nil
}

// Start moves a pending challenge to ongoing. The timer start is stamped
// only for challenges that use a timer.
func (c *Challenge) Start(now time.Time) error {
	if err := c.moveTo(StatusOngoing, now); err != nil {
		return err
	}
	if c.UseTimer {
		t := now
		c.TimerStartedAt = &t
	}
	return nil
}

// Complete marks the challenge completed and returns its Completion record.
func (c *Challenge) Complete(id string, now time.Time) (*Completion, error) {
	if err := c.moveTo(StatusCompleted, now); err != nil {
		return nil, err
	}
	return &Completion{
		ID:             id,
		TaskText:       c.TaskText,
		DateISO:        timeutil.ISODate(now),
		TargetType:     c.TargetType,
		TargetDateISO:  c.TargetDateISO,
		FinishedOnTime: !timeutil.IsPast(c.TargetDateISO, now),
		XPEarned:       c.Intensity.XP(),
		CompletedAt:    now,
		Intensity:      c.Intensity,
	}, nil
}

// Abandon marks the challenge abandoned.
func (c *Challenge) Abandon(now time.Time) error {
	return c.moveTo(StatusAbandoned, now)
}
