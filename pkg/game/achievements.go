package game

import (
	"time"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
)

// Achievement ids.
const (
	FirstStep       = "first-step"
	WeekWarrior     = "week-warrior"
	Unstoppable     = "unstoppable"
	SpeedDemon      = "speed-demon"
	ConsistencyKing = "consistency-king"
	AIBeliever      = "ai-believer"
)

// Achievements maps an achievement id to the moment it was unlocked. A
// missing id is locked.
type Achievements map[string]time.Time

// Unlocked reports whether id has been earned.
func (a Achievements) Unlocked(id string) bool {
	_, ok := a[id]
	return ok
}

// Equal reports whether a and b hold the same unlocks at the same instants.
func (a Achievements) Equal(b Achievements) bool {
	if len(a) != len(b) {
		return false
	}
	for id, at := range a {
		other, ok := b[id]
		if !ok || !at.Equal(other) {
			return false
		}
	}
	return true
}

// Definition describes an achievement for display.
type Definition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Condition   string `json:"unlockCondition"`
}

var catalog = []Definition{
	{FirstStep, "First Step", "Complete your first challenge", "🎯", "Complete 1 challenge"},
	{WeekWarrior, "Week Warrior", "Maintain a 7-day streak", "🔥", "Reach 7-day streak"},
	{Unstoppable, "Unstoppable", "Maintain a 15-day streak", "⚡", "Reach 15-day streak"},
	// Completions do not record elapsed time, so nothing unlocks this.
	{SpeedDemon, "Speed Demon", "Complete a challenge in under 5 minutes", "⚡", "Complete challenge < 5 min"},
	{ConsistencyKing, "Consistency King", "Complete 30 challenges", "👑", "Complete 30 challenges"},
	// Reserved for the coach feature.
	{AIBeliever, "AI Believer", "Use the AI coach", "🤖", "Use AI coach"},
}

// Catalog lists every achievement in display order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// EvaluateAchievements returns current plus any newly earned unlocks stamped
// with now. Existing unlocks are never removed or restamped, and current is
// left untouched.
func EvaluateAchievements(completions []challenge.Completion, current Achievements, now time.Time) Achievements {
	next := make(Achievements, len(current)+1)
	for id, at := range current {
		next[id] = at
	}

	streak := Streak(completions, now)
	unlock := func(id string, earned bool) {
		if earned && !next.Unlocked(id) {
			next[id] = now
		}
	}
	unlock(FirstStep, len(completions) >= 1)
	unlock(WeekWarrior, streak >= 7)
	unlock(Unstoppable, streak >= 15)
	unlock(ConsistencyKing, len(completions) >= 30)
	return next
}
