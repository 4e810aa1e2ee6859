package challenge

import (
	"regexp"
	"strings"
	"time"

	"github.com/Omkarop0808/Excuse-Killer/pkg/timeutil"
)

var scheduleTimeRE = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// Input is the user-supplied description of a new challenge.
type Input struct {
	TaskText        string
	Intensity       Intensity
	DurationMinutes int
	TargetType      TargetType
	CustomDate      string
	Recurrence      Recurrence
	ScheduleTime    string
	UseTimer        bool
	Notes           string
}

// Validate checks every field against its constraint and reports all
// violations at once.
func (in Input) Validate(now time.Time) error {
	fields := map[string]string{}

	if strings.TrimSpace(in.TaskText) == "" {
		fields["taskText"] = "Task description is required"
	}
	if !in.Intensity.Valid() {
		fields["intensity"] = "Invalid intensity level"
	}
	if in.DurationMinutes <= 0 {
		fields["durationMinutes"] = "Duration must be a positive number"
	}
	if !in.TargetType.Valid() {
		fields["targetType"] = "Invalid target type"
	} else if in.TargetType == TargetCustomDate {
		switch {
		case in.CustomDate == "":
			fields["customDate"] = "Custom date is required"
		case !validISODate(in.CustomDate, now.Location()):
			fields["customDate"] = "Custom date must be YYYY-MM-DD"
		case timeutil.IsPast(in.CustomDate, now):
			fields["customDate"] = "Date cannot be in the past"
		}
	}
	if !in.Recurrence.Valid() {
		fields["recurrence"] = "Invalid recurrence option"
	}
	if in.ScheduleTime != "" && !scheduleTimeRE.MatchString(in.ScheduleTime) {
		fields["scheduleTime"] = "Time must be in HH:MM format (00:00 to 23:59)"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validISODate(s string, loc *time.Location) bool {
	_, err := timeutil.ParseISODate(s, loc)
	return err == nil
}

// TargetDate derives the concrete target day for a target type, relative to
// now. Custom dates are returned as given.
func TargetDate(tt TargetType, custom string, now time.Time) string {
	switch tt {
	case TargetThisWeek:
		return timeutil.ISODate(timeutil.WeekEnd(now))
	case TargetThisMonth:
		return timeutil.ISODate(timeutil.MonthEnd(now))
	case TargetCustomDate:
		return custom
	default:
		return timeutil.ISODate(now)
	}
}

// New builds a pending challenge from validated input.
func New(id string, in Input, now time.Time) *Challenge {
	c := &Challenge{
		ID:              id,
		TaskText:        strings.TrimSpace(in.TaskText),
		Intensity:       in.Intensity,
		DurationMinutes: in.DurationMinutes,
		TargetType:      in.TargetType,
		TargetDateISO:   TargetDate(in.TargetType, in.CustomDate, now),
		Recurrence:      in.Recurrence,
		UseTimer:        in.UseTimer,
		Notes:           strings.TrimSpace(in.Notes),
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
		Schema:          CurrentSchema,
	}
	if in.TargetType == TargetCustomDate {
		d := in.CustomDate
		c.CustomDateISO = &d
	}
	if in.ScheduleTime != "" {
		t := in.ScheduleTime
		c.ScheduleTime = &t
	}
	return c
}
