// Package timer implements a countdown that survives process restarts. The
// remaining time is always derived from the wall clock and a persisted start
// timestamp, never from counting ticks.
package timer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// State of a Timer.
type State int

const (
	Idle State = iota
	Running
	Paused
	Expired
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Expired:
		return "expired"
	default:
		return "idle"
	}
}

// EventType distinguishes timer events.
type EventType int

const (
	// EventTick carries the recomputed remaining time while running.
	EventTick EventType = iota
	// EventExpired is the completion prompt. Answer it with Resolve.
	EventExpired
)

// Event is delivered on the Events channel.
type Event struct {
	Type      EventType
	Remaining time.Duration
}

var (
	ErrExpired  = errors.New("timer: expired, reset before starting again")
	ErrNoPrompt = errors.New("timer: no completion prompt pending")
	ErrClosed   = errors.New("timer: closed")
)

// Options configures a Timer.
type Options struct {
	Duration time.Duration
	// Key is the owning challenge id. Without a key or a Store nothing is
	// persisted and the timer does not survive a restart.
	Key   string
	Store RecordStore
	// Now defaults to time.Now.
	Now func() time.Time
	// TickInterval defaults to one second.
	TickInterval time.Duration
	Log          *slog.Logger
}

// Timer is a wall-clock countdown. Its methods are safe to call while the
// tick loop runs.
type Timer struct {
	opts Options

	mu        sync.Mutex
	state     State
	anchor    time.Time
	remaining time.Duration
	prompt    bool
	closed    bool
	cancel    context.CancelFunc
	done      chan struct{}

	events chan Event
}

// New returns an idle timer at full duration.
func New(opts Options) *Timer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	return &Timer{
		opts:      opts,
		remaining: opts.Duration,
		events:    make(chan Event, 16),
	}
}

// Events streams ticks and the expiry prompt. Ticks are dropped when the
// consumer falls behind; the expiry prompt is never dropped.
func (t *Timer) Events() <-chan Event {
	return t.events
}

func (t *Timer) persistent() bool {
	return t.opts.Key != "" && t.opts.Store != nil
}

// State reports the current state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// PromptPending reports whether an expiry is waiting for Resolve.
func (t *Timer) PromptPending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.prompt
}

// Remaining is the time left, recomputed from the wall clock while running.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remainingLocked()
}

// Progress is the elapsed fraction of the duration, from 0 to 1.
func (t *Timer) Progress() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.opts.Duration <= 0 {
		return 1
	}
	elapsed := t.opts.Duration - t.remainingLocked()
	return float64(elapsed) / float64(t.opts.Duration)
}

// Duration is the full length of the countdown.
func (t *Timer) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.opts.Duration
}

func (t *Timer) remainingLocked() time.Duration {
	if t.state != Running {
		return t.remaining
	}
	rem := t.opts.Duration - t.opts.Now().Sub(t.anchor)
	if rem < 0 {
		return 0
	}
	return rem
}

// Start begins or resumes the countdown. A recovery record already on file
// is reused, start time and duration both, so that a restart never resets
// the clock.
func (t *Timer) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case t.closed:
		return ErrClosed
	case t.state == Running:
		return nil
	case t.state == Expired:
		return ErrExpired
	}

	now := t.opts.Now()
	t.anchor = now.Add(-(t.opts.Duration - t.remaining))
	if t.persistent() {
		rec, ok, err := t.opts.Store.Load(t.opts.Key)
		if err != nil {
			t.opts.Log.Warn("timer: discarding recovery record", "key", t.opts.Key, "err", err)
		}
		if ok {
			t.anchor = time.UnixMilli(rec.StartTimestamp)
			t.opts.Duration = time.Duration(rec.DurationSeconds) * time.Second
		} else if err := t.opts.Store.Save(t.opts.Key, Record{
			StartTimestamp:  t.anchor.UnixMilli(),
			DurationSeconds: int64(t.opts.Duration / time.Second),
		}); err != nil {
			return err
		}
	}
	t.state = Running
	if t.remainingLocked() <= 0 {
		t.expireLocked()
		return nil
	}
	t.spawnLocked()
	return nil
}

// Pause freezes the remaining time and drops the recovery record. A paused
// timer is not persisted and restarts at full duration in a new process.
func (t *Timer) Pause() {
	t.mu.Lock()
	if t.state != Running {
		t.mu.Unlock()
		return
	}
	t.remaining = t.remainingLocked()
	t.state = Paused
	t.clearRecordLocked()
	t.mu.Unlock()
	t.stop()
}

// Reset returns to idle at full duration and drops the recovery record and
// any pending prompt.
func (t *Timer) Reset() {
	t.mu.Lock()
	t.state = Idle
	t.remaining = t.opts.Duration
	t.prompt = false
	t.clearRecordLocked()
	t.mu.Unlock()
	t.stop()
}

// Close stops the tick loop but keeps the recovery record so a later
// Recover picks the countdown up again.
func (t *Timer) Close() {
	t.mu.Lock()
	if t.state == Running {
		t.remaining = t.remainingLocked()
	}
	t.closed = true
	t.mu.Unlock()
	t.stop()
}

// Recover rebuilds state from the recovery record. A record whose time has
// run out is cleared and the expiry prompt is raised at once.
func (t *Timer) Recover() (State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return t.state, ErrClosed
	}
	if !t.persistent() || t.state == Running {
		return t.state, nil
	}
	rec, ok, err := t.opts.Store.Load(t.opts.Key)
	if err != nil {
		t.opts.Log.Warn("timer: discarding recovery record", "key", t.opts.Key, "err", err)
		return t.state, nil
	}
	if !ok {
		return t.state, nil
	}

	t.anchor = time.UnixMilli(rec.StartTimestamp)
	elapsed := t.opts.Now().Sub(t.anchor)
	total := time.Duration(rec.DurationSeconds) * time.Second
	t.opts.Duration = total
	t.state = Running
	if elapsed >= total {
		t.expireLocked()
		return t.state, nil
	}
	t.spawnLocked()
	return t.state, nil
}

// Resolve answers the expiry prompt. The caller acts on completed; the
// timer only returns to idle.
func (t *Timer) Resolve(completed bool) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.prompt {
		return false, ErrNoPrompt
	}
	t.prompt = false
	t.state = Idle
	t.remaining = t.opts.Duration
	return completed, nil
}

func (t *Timer) expireLocked() {
	t.state = Expired
	t.remaining = 0
	t.prompt = true
	t.clearRecordLocked()
	ev := Event{Type: EventExpired}
	select {
	case t.events <- ev:
	default:
		// Make room by dropping the oldest tick.
		select {
		case <-t.events:
		default:
		}
		select {
		case t.events <- ev:
		default:
		}
	}
}

func (t *Timer) clearRecordLocked() {
	if !t.persistent() {
		return
	}
	if err := t.opts.Store.Clear(t.opts.Key); err != nil {
		t.opts.Log.Error("timer: clear recovery record", "key", t.opts.Key, "err", err)
	}
}

func (t *Timer) spawnLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	t.cancel, t.done = cancel, done
	go t.run(ctx, done)
}

// stop cancels the tick loop, waits for it to exit and discards ticks it
// left behind. It must be called without t.mu held.
func (t *Timer) stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	for {
		select {
		case ev := <-t.events:
			if ev.Type == EventExpired {
				t.requeue(ev)
				return
			}
		default:
			return
		}
	}
}

func (t *Timer) requeue(ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.prompt {
		return
	}
	select {
	case t.events <- ev:
	default:
	}
}

func (t *Timer) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(t.opts.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if !t.tick() {
			return
		}
	}
}

// tick recomputes the remaining time and reports whether the loop should
// keep going.
func (t *Timer) tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Running {
		return false
	}
	rem := t.remainingLocked()
	if rem <= 0 {
		t.expireLocked()
		return false
	}
	select {
	case t.events <- Event{Type: EventTick, Remaining: rem}:
	default:
	}
	return true
}
