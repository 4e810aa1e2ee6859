package challenge

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var now = time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)

func validInput() Input {
	return Input{
		TaskText:        "write the report",
		Intensity:       Normal,
		DurationMinutes: 20,
		TargetType:      TargetToday,
		Recurrence:      Once,
	}
}

func TestIntensityTables(t *testing.T) {
	tests := []struct {
		in       Intensity
		xp, mins int
	}{
		{Chill, 30, 10},
		{Normal, 50, 20},
		{Hardcore, 75, 30},
		{"extreme", 0, FallbackDuration},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.xp, tt.in.XP())
			assert.Equal(t, tt.mins, tt.in.DefaultDuration())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Input)
		fields []string
	}{
		"valid": {
			mutate: func(*Input) {},
		},
		"blank task": {
			mutate: func(in *Input) { in.TaskText = "   " },
			fields: []string{"taskText"},
		},
		"bad schedule time": {
			mutate: func(in *Input) { in.ScheduleTime = "24:00" },
			fields: []string{"scheduleTime"},
		},
		"good schedule time": {
			mutate: func(in *Input) { in.ScheduleTime = "07:05" },
		},
		"custom date missing": {
			mutate: func(in *Input) { in.TargetType = TargetCustomDate },
			fields: []string{"customDate"},
		},
		"custom date in past": {
			mutate: func(in *Input) {
				in.TargetType = TargetCustomDate
				in.CustomDate = "2026-10-13"
			},
			fields: []string{"customDate"},
		},
		"custom date today": {
			mutate: func(in *Input) {
				in.TargetType = TargetCustomDate
				in.CustomDate = "2026-10-14"
			},
		},
		"every field wrong": {
			mutate: func(in *Input) {
				*in = Input{Intensity: "x", TargetType: "y", Recurrence: "z", ScheduleTime: "9:00"}
			},
			fields: []string{"durationMinutes", "intensity", "recurrence", "scheduleTime", "targetType", "taskText"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			err := in.Validate(now)
			if len(tc.fields) == 0 {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			got := make([]string, 0, len(verr.Fields))
			for f := range verr.Fields {
				got = append(got, f)
			}
			assert.ElementsMatch(t, tc.fields, got)
		})
	}
}

func TestTargetDate(t *testing.T) {
	assert.Equal(t, "2026-10-14", TargetDate(TargetToday, "", now))
	assert.Equal(t, "2026-10-17", TargetDate(TargetThisWeek, "", now))
	assert.Equal(t, "2026-10-31", TargetDate(TargetThisMonth, "", now))
	assert.Equal(t, "2026-12-01", TargetDate(TargetCustomDate, "2026-12-01", now))
}

func TestNew(t *testing.T) {
	in := validInput()
	in.TargetType = TargetCustomDate
	in.CustomDate = "2026-11-02"
	in.ScheduleTime = "18:30"
	c := New("challenge-1", in, now)

	assert.Equal(t, StatusPending, c.Status)
	assert.Equal(t, "2026-11-02", c.TargetDateISO)
	require.NotNil(t, c.CustomDateISO)
	assert.Equal(t, "2026-11-02", *c.CustomDateISO)
	require.NotNil(t, c.ScheduleTime)
	assert.Equal(t, now, c.CreatedAt)
	assert.Equal(t, CurrentSchema, c.Schema)
	assert.Nil(t, c.TimerStartedAt)
}

func TestLifecycle(t *testing.T) {
	t.Run("start stamps timer only with useTimer", func(t *testing.T) {
		c := New("a", validInput(), now)
		require.NoError(t, c.Start(now))
		assert.Equal(t, StatusOngoing, c.Status)
		assert.Nil(t, c.TimerStartedAt)

		in := validInput()
		in.UseTimer = true
		c = New("b", in, now)
		require.NoError(t, c.Start(now))
		require.NotNil(t, c.TimerStartedAt)
	})

	t.Run("cannot start twice", func(t *testing.T) {
		c := New("a", validInput(), now)
		require.NoError(t, c.Start(now))
		assert.True(t, errors.Is(c.Start(now), ErrInvalidTransition))
	})

	t.Run("direct complete from pending", func(t *testing.T) {
		in := validInput()
		in.Intensity = Hardcore
		c := New("a", in, now)
		comp, err := c.Complete("completion-1", now)
		require.NoError(t, err)
		assert.Equal(t, 75, comp.XPEarned)
		assert.True(t, comp.FinishedOnTime)
		assert.Equal(t, "2026-10-14", comp.DateISO)
		assert.Equal(t, StatusCompleted, c.Status)
	})

	t.Run("late completion", func(t *testing.T) {
		c := New("a", validInput(), now)
		comp, err := c.Complete("completion-1", now.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.False(t, comp.FinishedOnTime)
	})

	t.Run("terminal states are final", func(t *testing.T) {
		in := validInput()
		in.UseTimer = true
		c := New("a", in, now)
		require.NoError(t, c.Start(now))
		require.NoError(t, c.Abandon(now))
		assert.Nil(t, c.TimerStartedAt)
		_, err := c.Complete("x", now)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.ErrorIs(t, c.Abandon(now), ErrInvalidTransition)
	})
}

func TestErrors(t *testing.T) {
	err := error(&NotFoundError{ID: "challenge-9"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "challenge-9")

	verr := &ValidationError{Fields: map[string]string{"b": "two", "a": "one"}}
	assert.Equal(t, "challenge: invalid input: a: one; b: two", verr.Error())
}
