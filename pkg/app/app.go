package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/game"
	"github.com/Omkarop0808/Excuse-Killer/pkg/store"
)

// AbandonMessage is recorded every time a challenge is abandoned.
const AbandonMessage = "Task not completed. Streak deducted by 1."

// Service provides the challenge lifecycle over the store. Every operation
// reads the collections it needs, mutates them, and writes them back, so
// CLIs and tests can share it without hidden state.
type Service struct {
	Store *store.Adapter
	// Now defaults to time.Now.
	Now func() time.Time
	// NewID defaults to "<prefix>-<uuid>".
	NewID func(prefix string) string
	Log   *slog.Logger
}

var errNoStore = errors.New("app: no store configured")

// Clock returns the service's notion of now.
func (s *Service) Clock() time.Time { return s.now() }

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID(prefix string) string {
	if s.NewID != nil {
		return s.NewID(prefix)
	}
	return prefix + "-" + uuid.NewString()
}

func (s *Service) log() *slog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return slog.Default()
}

// recoverRead turns a corruption error into a warning. The adapter has
// already cleared the key and handed back the default.
func (s *Service) recoverRead(key string, err error) error {
	if err == nil {
		return nil
	}
	if store.IsCorruption(err) {
		s.log().Warn("corrupted data detected and cleared", "key", key, "err", err)
		return nil
	}
	return err
}

func (s *Service) loadPending(ctx context.Context) ([]challenge.Challenge, error) {
	r, err := s.pendingRecords()
	return r.items, err
}

func (s *Service) savePending(r records[challenge.Challenge]) error {
	return saveRecords(s, store.KeyPending, r)
}

func (s *Service) loadCompletions(ctx context.Context) ([]challenge.Completion, error) {
	r, err := s.completionRecords()
	return r.items, err
}

func (s *Service) loadAchievements(ctx context.Context) (game.Achievements, error) {
	return s.achievementRecords()
}

func (s *Service) loadNotifications(ctx context.Context) ([]challenge.Notification, error) {
	r, err := s.notificationRecords()
	return r.items, err
}

func indexOf(pending []challenge.Challenge, id string) (int, error) {
	for i := range pending {
		if pending[i].ID == id {
			return i, nil
		}
	}
	return -1, &challenge.NotFoundError{ID: id}
}

func without(pending []challenge.Challenge, i int) []challenge.Challenge {
	out := make([]challenge.Challenge, 0, len(pending)-1)
	out = append(out, pending[:i]...)
	return append(out, pending[i+1:]...)
}

// Create validates in and appends a new pending challenge.
func (s *Service) Create(ctx context.Context, in challenge.Input) (*challenge.Challenge, error) {
	now := s.now()
	if err := in.Validate(now); err != nil {
		return nil, err
	}
	pending, err := s.pendingRecords()
	if err != nil {
		return nil, err
	}
	c := challenge.New(s.newID("challenge"), in, now)
	if err := s.savePending(pending.with(append(pending.items, *c))); err != nil {
		return nil, err
	}
	return c, nil
}

// Start moves a pending challenge to ongoing.
func (s *Service) Start(ctx context.Context, id string) (*challenge.Challenge, error) {
	pending, err := s.pendingRecords()
	if err != nil {
		return nil, err
	}
	i, err := indexOf(pending.items, id)
	if err != nil {
		return nil, err
	}
	c := pending.items[i]
	if err := c.Start(s.now()); err != nil {
		return nil, err
	}
	pending.items[i] = c
	if err := s.savePending(pending); err != nil {
		return nil, err
	}
	return &c, nil
}

// Complete records a Completion for the challenge, removes it from pending,
// and re-evaluates achievements. Pending is written first; if the history
// write then fails the challenge is put back, so a retry cannot count it
// twice.
func (s *Service) Complete(ctx context.Context, id string) (*challenge.Completion, error) {
	pending, err := s.pendingRecords()
	if err != nil {
		return nil, err
	}
	i, err := indexOf(pending.items, id)
	if err != nil {
		return nil, err
	}
	completions, err := s.completionRecords()
	if err != nil {
		return nil, err
	}

	c := pending.items[i]
	done, err := c.Complete(s.newID("completion"), s.now())
	if err != nil {
		return nil, err
	}
	if err := s.savePending(pending.with(without(pending.items, i))); err != nil {
		return nil, err
	}
	if err := saveRecords(s, store.KeyCompletions, completions.with(append(completions.items, *done))); err != nil {
		return nil, s.putBack(pending, id, err)
	}
	s.clearTimer(id)

	if _, _, err := s.SyncAchievements(ctx); err != nil {
		return done, err
	}
	return done, nil
}

// Abandon drops the challenge without a Completion. While a streak is
// running, the most recently completed Completion is removed as a penalty.
func (s *Service) Abandon(ctx context.Context, id string) (*challenge.Notification, error) {
	pending, err := s.pendingRecords()
	if err != nil {
		return nil, err
	}
	i, err := indexOf(pending.items, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	c := pending.items[i]
	if err := c.Abandon(now); err != nil {
		return nil, err
	}

	completions, err := s.completionRecords()
	if err != nil {
		return nil, err
	}
	if err := s.savePending(pending.with(without(pending.items, i))); err != nil {
		return nil, err
	}
	if game.Streak(completions.items, now) > 0 {
		if err := saveRecords(s, store.KeyCompletions, completions.with(dropLatest(completions.items))); err != nil {
			return nil, s.putBack(pending, id, err)
		}
	}
	s.clearTimer(id)

	note := challenge.Notification{
		ID:        s.newID("notification"),
		Message:   AbandonMessage,
		Type:      challenge.NotifyError,
		Timestamp: now,
	}
	if err := s.notify(ctx, note); err != nil {
		return nil, err
	}
	return &note, nil
}

// putBack restores pending after a failed history write and returns cause,
// joined with the restore failure if the challenge could not be put back.
func (s *Service) putBack(pending records[challenge.Challenge], id string, cause error) error {
	if err := s.savePending(pending); err != nil {
		s.log().Error("challenge lost from pending", "id", id, "err", err)
		return errors.Join(cause, fmt.Errorf("app: put back %s: %w", id, err))
	}
	return cause
}

// dropLatest removes the single completion with the latest CompletedAt.
func dropLatest(completions []challenge.Completion) []challenge.Completion {
	if len(completions) == 0 {
		return completions
	}
	latest := 0
	for i := range completions {
		if completions[i].CompletedAt.After(completions[latest].CompletedAt) {
			latest = i
		}
	}
	out := make([]challenge.Completion, 0, len(completions)-1)
	out = append(out, completions[:latest]...)
	return append(out, completions[latest+1:]...)
}

func (s *Service) notify(ctx context.Context, note challenge.Notification) error {
	notes, err := s.notificationRecords()
	if err != nil {
		return err
	}
	return saveRecords(s, store.KeyNotifications, notes.with(append(notes.items, note)))
}

func (s *Service) clearTimer(id string) {
	if err := s.Store.Remove(store.TimerKey(id)); err != nil {
		s.log().Error("clear timer record", "id", id, "err", err)
	}
}

// SyncAchievements evaluates the unlock rules against the current history
// and writes the map back only when it changed.
func (s *Service) SyncAchievements(ctx context.Context) (game.Achievements, bool, error) {
	completions, err := s.loadCompletions(ctx)
	if err != nil {
		return nil, false, err
	}
	current, err := s.loadAchievements(ctx)
	if err != nil {
		return nil, false, err
	}
	next := game.EvaluateAchievements(completions, current, s.now())
	if next.Equal(current) {
		return current, false, nil
	}
	if err := s.Store.Write(store.KeyAchievements, next); err != nil {
		return current, false, err
	}
	for id := range next {
		if !current.Unlocked(id) {
			s.log().Info("achievement unlocked", "id", id)
		}
	}
	return next, true, nil
}

// Pending lists challenges not yet completed or abandoned.
func (s *Service) Pending(ctx context.Context) ([]challenge.Challenge, error) {
	return s.loadPending(ctx)
}

// Get returns the pending challenge with id.
func (s *Service) Get(ctx context.Context, id string) (*challenge.Challenge, error) {
	pending, err := s.loadPending(ctx)
	if err != nil {
		return nil, err
	}
	i, err := indexOf(pending, id)
	if err != nil {
		return nil, err
	}
	return &pending[i], nil
}

// Completions returns the full completion history.
func (s *Service) Completions(ctx context.Context) ([]challenge.Completion, error) {
	return s.loadCompletions(ctx)
}

// Notifications returns the notification history.
func (s *Service) Notifications(ctx context.Context) ([]challenge.Notification, error) {
	return s.loadNotifications(ctx)
}

// Achievements returns the persisted unlocks.
func (s *Service) Achievements(ctx context.Context) (game.Achievements, error) {
	return s.loadAchievements(ctx)
}

// Stats derives streak, counts, XP and title as of now.
func (s *Service) Stats(ctx context.Context) (game.Stats, error) {
	completions, err := s.loadCompletions(ctx)
	if err != nil {
		return game.Stats{}, err
	}
	achievements, err := s.loadAchievements(ctx)
	if err != nil {
		return game.Stats{}, err
	}
	return game.Compute(completions, achievements, s.now()), nil
}

// Recent returns the last n completions, newest first.
func (s *Service) Recent(ctx context.Context, n int) ([]challenge.Completion, error) {
	completions, err := s.loadCompletions(ctx)
	if err != nil {
		return nil, err
	}
	return game.Recent(completions, n), nil
}
