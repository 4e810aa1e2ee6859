package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/timeutil"
)

// Wednesday.
var now = time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)

// daysAgo builds one completion per offset, completed at noon on that day.
func daysAgo(offsets ...int) []challenge.Completion {
	out := make([]challenge.Completion, 0, len(offsets))
	for i, off := range offsets {
		day := timeutil.StartOfDay(now).AddDate(0, 0, -off).Add(12 * time.Hour)
		out = append(out, challenge.Completion{
			ID:          "c" + string(rune('a'+i)),
			DateISO:     timeutil.ISODate(day),
			XPEarned:    50,
			CompletedAt: day,
			Intensity:   challenge.Normal,
		})
	}
	return out
}

func TestStreak(t *testing.T) {
	tests := map[string]struct {
		offsets []int
		want    int
	}{
		"empty":                 {nil, 0},
		"today only":            {[]int{0}, 1},
		"missed today":          {[]int{1, 2, 3}, 0},
		"three days":            {[]int{0, 1, 2}, 3},
		"gap stops walk":        {[]int{0, 1, 3, 4}, 2},
		"duplicates count once": {[]int{0, 0, 1, 1}, 2},
		"future ignored":        {[]int{-1, 0}, 1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Streak(daysAgo(tc.offsets...), now))
		})
	}
}

func TestStreakIgnoresOrder(t *testing.T) {
	completions := daysAgo(0, 1, 2, 3, 4, 6, 7, 0, 2)
	want := Streak(completions, now)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		r.Shuffle(len(completions), func(a, b int) {
			completions[a], completions[b] = completions[b], completions[a]
		})
		require.Equal(t, want, Streak(completions, now))
	}
	assert.Equal(t, 5, want)
}

func TestCounts(t *testing.T) {
	// 10-14 and Sunday 10-11 are this week; 10-10 and 10-01 are earlier in
	// the month; 09-30 is last month.
	completions := daysAgo(0, 3, 4, 13)
	completions = append(completions, challenge.Completion{DateISO: "2026-09-30", XPEarned: 75})

	assert.Equal(t, 2, WeeklyCount(completions, now))
	assert.Equal(t, 4, MonthlyCount(completions, now))
	assert.Equal(t, 4*50+75, TotalXP(completions))
}

func TestTitle(t *testing.T) {
	tests := []struct {
		streak int
		want   string
	}{
		{0, "Starter"},
		{2, "Starter"},
		{3, "Overcomer"},
		{6, "Overcomer"},
		{7, "Super Overcomer"},
		{14, "Super Overcomer"},
		{15, "Unstoppable"},
		{100, "Unstoppable"},
	}
	for _, tt := range tests {
		if got := Title(tt.streak); got != tt.want {
			t.Errorf("Title(%d) = %q, want %q", tt.streak, got, tt.want)
		}
	}
}

func TestEvaluateAchievements(t *testing.T) {
	t.Run("first completion", func(t *testing.T) {
		got := EvaluateAchievements(daysAgo(0), nil, now)
		assert.Equal(t, Achievements{FirstStep: now}, got)
	})

	t.Run("seven day streak", func(t *testing.T) {
		got := EvaluateAchievements(daysAgo(0, 1, 2, 3, 4, 5, 6), nil, now)
		assert.True(t, got.Unlocked(WeekWarrior))
		assert.False(t, got.Unlocked(Unstoppable))
	})

	t.Run("thirty completions", func(t *testing.T) {
		offsets := make([]int, 30)
		for i := range offsets {
			offsets[i] = 2 * i
		}
		got := EvaluateAchievements(daysAgo(offsets...), nil, now)
		assert.True(t, got.Unlocked(ConsistencyKing))
		assert.False(t, got.Unlocked(WeekWarrior))
	})

	t.Run("never removes or restamps", func(t *testing.T) {
		earlier := now.AddDate(0, 0, -20)
		current := Achievements{WeekWarrior: earlier, FirstStep: earlier}
		got := EvaluateAchievements(nil, current, now)
		assert.True(t, got.Equal(current))

		got = EvaluateAchievements(daysAgo(0), current, now)
		assert.Equal(t, earlier, got[FirstStep])
	})

	t.Run("does not mutate input", func(t *testing.T) {
		current := Achievements{}
		got := EvaluateAchievements(daysAgo(0), current, now)
		assert.Empty(t, current)
		assert.False(t, got.Equal(current))
	})

	t.Run("speed demon and ai believer stay locked", func(t *testing.T) {
		offsets := make([]int, 40)
		for i := range offsets {
			offsets[i] = i
		}
		got := EvaluateAchievements(daysAgo(offsets...), nil, now)
		assert.Len(t, got, 4)
		assert.False(t, got.Unlocked(SpeedDemon))
		assert.False(t, got.Unlocked(AIBeliever))
	})
}

func TestAchievementsEqual(t *testing.T) {
	a := Achievements{FirstStep: now}
	assert.True(t, a.Equal(Achievements{FirstStep: now.In(time.FixedZone("x", 3600))}))
	assert.False(t, a.Equal(Achievements{FirstStep: now.Add(time.Second)}))
	assert.False(t, a.Equal(Achievements{WeekWarrior: now}))
	assert.False(t, a.Equal(nil))
	assert.True(t, Achievements(nil).Equal(Achievements{}))
}

func TestRecent(t *testing.T) {
	completions := daysAgo(3, 0, 1, 2)
	got := Recent(completions, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "cb", got[0].ID)
	assert.Equal(t, "cc", got[1].ID)
	assert.Equal(t, "ca", completions[0].ID)

	assert.Len(t, Recent(completions, 10), 4)
}

func TestCompute(t *testing.T) {
	stats := Compute(daysAgo(0, 1, 2), Achievements{FirstStep: now}, now)
	assert.Equal(t, 3, stats.Streak)
	assert.Equal(t, "Overcomer", stats.Title)
	assert.Equal(t, 150, stats.TotalXP)
	assert.Equal(t, 3, stats.Completions)
	assert.Equal(t, 3, stats.Weekly)
}

func TestCatalog(t *testing.T) {
	ids := []string{}
	for _, d := range Catalog() {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{FirstStep, WeekWarrior, Unstoppable, SpeedDemon, ConsistencyKing, AIBeliever}, ids)
}
