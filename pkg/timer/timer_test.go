package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Omkarop0808/Excuse-Killer/pkg/store"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	kv      *store.Memory
	records *AdapterRecords
	clock   *clock
}

func newFixture() *fixture {
	kv := store.NewMemory()
	return &fixture{
		kv:      kv,
		records: &AdapterRecords{Store: store.NewAdapter(kv)},
		clock:   newClock(),
	}
}

func (f *fixture) timer(d, tick time.Duration) *Timer {
	return New(Options{
		Duration:     d,
		Key:          "challenge-1",
		Store:        f.records,
		Now:          f.clock.Now,
		TickInterval: tick,
	})
}

func (f *fixture) hasRecord() bool {
	_, ok, _ := f.kv.Get(store.TimerKey("challenge-1"))
	return ok
}

func waitFor(t *testing.T, events <-chan Event, want EventType) Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Type == want {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event %d", want)
		}
	}
}

func TestRecoverAfterGap(t *testing.T) {
	f := newFixture()
	first := f.timer(10*time.Minute, time.Hour)
	require.NoError(t, first.Start())
	first.Close()
	require.True(t, f.hasRecord(), "close keeps the recovery record")

	f.clock.Advance(61 * time.Second)

	second := f.timer(10*time.Minute, time.Hour)
	defer second.Close()
	state, err := second.Recover()
	require.NoError(t, err)
	assert.Equal(t, Running, state)
	assert.InDelta(t, 539, second.Remaining().Seconds(), 1)

	f.clock.Advance(9 * time.Second)
	assert.InDelta(t, 530, second.Remaining().Seconds(), 1)
}

func TestStartReusesExistingRecord(t *testing.T) {
	f := newFixture()
	first := f.timer(10*time.Minute, time.Hour)
	require.NoError(t, first.Start())
	first.Close()

	f.clock.Advance(2 * time.Minute)
	second := f.timer(10*time.Minute, time.Hour)
	defer second.Close()
	require.NoError(t, second.Start())
	assert.Equal(t, 8*time.Minute, second.Remaining())
}

func TestRecoverExpired(t *testing.T) {
	f := newFixture()
	first := f.timer(time.Minute, time.Hour)
	require.NoError(t, first.Start())
	first.Close()

	f.clock.Advance(5 * time.Minute)
	second := f.timer(time.Minute, time.Hour)
	state, err := second.Recover()
	require.NoError(t, err)
	assert.Equal(t, Expired, state)
	assert.False(t, f.hasRecord())
	assert.Equal(t, time.Duration(0), second.Remaining())
	waitFor(t, second.Events(), EventExpired)

	assert.ErrorIs(t, second.Start(), ErrExpired)

	completed, err := second.Resolve(true)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, Idle, second.State())
	assert.Equal(t, time.Minute, second.Remaining())

	_, err = second.Resolve(false)
	assert.ErrorIs(t, err, ErrNoPrompt)
}

func TestRecoverWithoutRecord(t *testing.T) {
	f := newFixture()
	tm := f.timer(time.Minute, time.Hour)
	state, err := tm.Recover()
	require.NoError(t, err)
	assert.Equal(t, Idle, state)
	assert.Equal(t, time.Minute, tm.Remaining())
}

func TestRecoverMalformedRecord(t *testing.T) {
	for name, raw := range map[string]string{
		"not json":      "{oops",
		"zero duration": `{"startTimestamp":1,"durationSeconds":0}`,
		"wrong type":    `{"startTimestamp":"soon","durationSeconds":60}`,
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			f.kv.SetRaw(store.TimerKey("challenge-1"), raw)
			tm := f.timer(time.Minute, time.Hour)
			state, err := tm.Recover()
			require.NoError(t, err)
			assert.Equal(t, Idle, state)
			assert.False(t, f.hasRecord())
		})
	}
}

func TestStartAdoptsStoredRecord(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.records.Save("challenge-1", Record{
		StartTimestamp:  f.clock.Now().Add(-time.Minute).UnixMilli(),
		DurationSeconds: 300,
	}))

	tm := f.timer(20*time.Minute, 5*time.Millisecond)
	defer tm.Close()
	require.NoError(t, tm.Start())
	assert.Equal(t, Running, tm.State())
	assert.Equal(t, 5*time.Minute, tm.Duration())
	assert.Equal(t, 4*time.Minute, tm.Remaining())

	f.clock.Advance(4 * time.Minute)
	ev := waitFor(t, tm.Events(), EventExpired)
	assert.Zero(t, ev.Remaining)
}

func TestPauseAndResume(t *testing.T) {
	f := newFixture()
	tm := f.timer(10*time.Minute, time.Hour)
	defer tm.Close()
	require.NoError(t, tm.Start())

	f.clock.Advance(3 * time.Minute)
	tm.Pause()
	assert.Equal(t, Paused, tm.State())
	assert.False(t, f.hasRecord(), "paused timers are not persisted")

	f.clock.Advance(time.Hour)
	assert.Equal(t, 7*time.Minute, tm.Remaining())
	assert.InDelta(t, 0.3, tm.Progress(), 0.001)

	require.NoError(t, tm.Start())
	assert.True(t, f.hasRecord())
	f.clock.Advance(time.Minute)
	assert.Equal(t, 6*time.Minute, tm.Remaining())

	rec, ok, err := f.records.Load("challenge-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(600), rec.DurationSeconds)
	assert.Equal(t, f.clock.Now().Add(-4*time.Minute).UnixMilli(), rec.StartTimestamp)
}

func TestReset(t *testing.T) {
	f := newFixture()
	tm := f.timer(10*time.Minute, time.Hour)
	require.NoError(t, tm.Start())
	f.clock.Advance(time.Minute)
	tm.Reset()
	assert.Equal(t, Idle, tm.State())
	assert.Equal(t, 10*time.Minute, tm.Remaining())
	assert.False(t, f.hasRecord())
}

func TestTickLoopExpires(t *testing.T) {
	f := newFixture()
	tm := f.timer(time.Minute, time.Millisecond)
	defer tm.Close()
	require.NoError(t, tm.Start())

	ev := waitFor(t, tm.Events(), EventTick)
	assert.Equal(t, time.Minute, ev.Remaining)

	f.clock.Advance(time.Minute)
	waitFor(t, tm.Events(), EventExpired)
	assert.Equal(t, Expired, tm.State())
	assert.True(t, tm.PromptPending())
	assert.False(t, f.hasRecord())
}

func TestExpiryNotDroppedWhenConsumerLags(t *testing.T) {
	f := newFixture()
	tm := f.timer(time.Minute, time.Millisecond)
	defer tm.Close()
	require.NoError(t, tm.Start())

	// Let ticks fill the buffer with nobody reading.
	time.Sleep(50 * time.Millisecond)
	f.clock.Advance(2 * time.Minute)
	require.Eventually(t, func() bool { return tm.State() == Expired }, 2*time.Second, time.Millisecond)

	waitFor(t, tm.Events(), EventExpired)
}

func TestNoTicksAfterPause(t *testing.T) {
	f := newFixture()
	tm := f.timer(time.Minute, time.Millisecond)
	require.NoError(t, tm.Start())
	waitFor(t, tm.Events(), EventTick)

	tm.Pause()
	select {
	case ev := <-tm.Events():
		t.Fatalf("unexpected event after pause: %+v", ev)
	case <-time.After(30 * time.Millisecond):
	}

	tm.Close()
	assert.ErrorIs(t, tm.Start(), ErrClosed)
}

func TestWithoutStore(t *testing.T) {
	c := newClock()
	tm := New(Options{Duration: time.Minute, Now: c.Now, TickInterval: time.Hour})
	defer tm.Close()
	require.NoError(t, tm.Start())
	c.Advance(15 * time.Second)
	assert.Equal(t, 45*time.Second, tm.Remaining())
	state, err := tm.Recover()
	require.NoError(t, err)
	assert.Equal(t, Running, state)
}
