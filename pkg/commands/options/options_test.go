package options

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
)

func TestCreateInput(t *testing.T) {
	o := &CreateOptions{Intensity: "HARDCORE", Target: "this_week", Recurrence: "daily", Timer: true}
	in := o.Input("run", "")
	assert.Equal(t, challenge.Hardcore, in.Intensity)
	assert.Equal(t, 30, in.DurationMinutes)
	assert.Equal(t, challenge.TargetThisWeek, in.TargetType)
	assert.True(t, in.UseTimer)

	o.Duration = 45
	in = o.Input("run", "2026-12-01")
	assert.Equal(t, 45, in.DurationMinutes)
	assert.Equal(t, challenge.TargetCustomDate, in.TargetType)
	assert.Equal(t, "2026-12-01", in.CustomDate)
}

func TestGetOn(t *testing.T) {
	now := time.Date(2026, 12, 5, 10, 0, 0, 0, time.UTC)
	tests := map[string]string{
		"":          "",
		"2027-2-28": "2027-02-28",
		"12/5":      "2026-12-05",
		"1/3":       "2027-01-03",
	}
	for in, want := range tests {
		o := &OnOptions{OnString: in}
		got, err := o.GetOn(now)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := (&OnOptions{OnString: "tomorrow"}).GetOn(now)
	assert.Error(t, err)
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "one two\nthree", Wrap("one   two three", 8))
}
