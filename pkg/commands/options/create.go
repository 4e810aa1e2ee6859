package options

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
)

// CreateOptions
type CreateOptions struct {
	Intensity  string
	Duration   int
	Target     string
	Recurrence string
	At         string
	Timer      bool
	Notes      string
}

func AddCreateArgs(cmd *cobra.Command, o *CreateOptions) {
	cmd.Flags().StringVarP(&o.Intensity, "intensity", "i", string(challenge.Normal),
		"How hard the challenge is. One of chill, normal or hardcore.")
	cmd.Flags().IntVarP(&o.Duration, "duration", "d", 0,
		"Minutes to spend. Defaults to 10, 20 or 30 by intensity.")
	cmd.Flags().StringVarP(&o.Target, "target", "t", string(challenge.TargetToday),
		"When it is due. One of today, this_week, this_month or custom_date.")
	cmd.Flags().StringVarP(&o.Recurrence, "recurrence", "r", string(challenge.Once),
		"How often it repeats. One of once, daily, weekly or monthly.")
	cmd.Flags().StringVar(&o.At, "at", "",
		`Time of day to do it, example: --at="18:30".`)
	cmd.Flags().BoolVar(&o.Timer, "timer", false,
		"Track the challenge with a countdown timer.")
	cmd.Flags().StringVar(&o.Notes, "notes", "",
		"Free text notes.")
}

// Input builds the challenge input for task. A --on date implies a
// custom_date target.
func (o *CreateOptions) Input(task string, on string) challenge.Input {
	in := challenge.Input{
		TaskText:        task,
		Intensity:       challenge.Intensity(strings.ToLower(o.Intensity)),
		DurationMinutes: o.Duration,
		TargetType:      challenge.TargetType(strings.ToLower(o.Target)),
		CustomDate:      on,
		Recurrence:      challenge.Recurrence(strings.ToLower(o.Recurrence)),
		ScheduleTime:    o.At,
		UseTimer:        o.Timer,
		Notes:           o.Notes,
	}
	if on != "" {
		in.TargetType = challenge.TargetCustomDate
	}
	if in.DurationMinutes == 0 {
		in.DurationMinutes = in.Intensity.DefaultDuration()
	}
	return in
}
