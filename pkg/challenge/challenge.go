// Package challenge defines the challenge and completion records, their
// validation rules, and the lifecycle transitions a challenge may take.
package challenge

import (
	"time"
)

// CurrentSchema is stamped on every challenge written by this version.
// Records without a schema tag predate it and are upgraded by migrate.
const CurrentSchema = 2

// Intensity is the difficulty tier of a challenge.
type Intensity string

const (
	Chill    Intensity = "chill"
	Normal   Intensity = "normal"
	Hardcore Intensity = "hardcore"
)

var xpByIntensity = map[Intensity]int{
	Chill:    30,
	Normal:   50,
	Hardcore: 75,
}

var durationByIntensity = map[Intensity]int{
	Chill:    10,
	Normal:   20,
	Hardcore: 30,
}

// FallbackDuration is used when an intensity has no default duration.
const FallbackDuration = 20

// Valid reports whether i is a known tier.
func (i Intensity) Valid() bool {
	_, ok := xpByIntensity[i]
	return ok
}

// XP earned for completing a challenge of this tier. Unknown tiers earn 0.
func (i Intensity) XP() int {
	return xpByIntensity[i]
}

// DefaultDuration in minutes for the tier.
func (i Intensity) DefaultDuration() int {
	if d, ok := durationByIntensity[i]; ok {
		return d
	}
	return FallbackDuration
}

// TargetType selects how the target date is derived.
type TargetType string

const (
	TargetToday      TargetType = "today"
	TargetThisWeek   TargetType = "this_week"
	TargetThisMonth  TargetType = "this_month"
	TargetCustomDate TargetType = "custom_date"
)

// Valid reports whether t is a known target type.
func (t TargetType) Valid() bool {
	switch t {
	case TargetToday, TargetThisWeek, TargetThisMonth, TargetCustomDate:
		return true
	}
	return false
}

// Recurrence is how often a challenge repeats.
type Recurrence string

const (
	Once    Recurrence = "once"
	Daily   Recurrence = "daily"
	Weekly  Recurrence = "weekly"
	Monthly Recurrence = "monthly"
)

// Valid reports whether r is a known recurrence.
func (r Recurrence) Valid() bool {
	switch r {
	case Once, Daily, Weekly, Monthly:
		return true
	}
	return false
}

// Status is the lifecycle state of a challenge.
type Status string

const (
	StatusPending   Status = "pending"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}

// Challenge is a task the user commits to.
type Challenge struct {
	ID               string     `json:"id"`
	TaskText         string     `json:"taskText"`
	Intensity        Intensity  `json:"intensity"`
	DurationMinutes  int        `json:"durationMinutes"`
	TargetType       TargetType `json:"targetType"`
	TargetDateISO    string     `json:"targetDateISO"`
	CustomDateISO    *string    `json:"customDateISO"`
	Recurrence       Recurrence `json:"recurrence"`
	ScheduleTime     *string    `json:"scheduleTime"`
	UseTimer         bool       `json:"useTimer"`
	Notes            string     `json:"notes"`
	Status           Status     `json:"status"`
	NotificationSent bool       `json:"notificationSent"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	TimerStartedAt   *time.Time `json:"timerStartedAt"`
	Schema           int        `json:"schema"`
}

// Completion is the immutable record of a finished challenge.
type Completion struct {
	ID             string     `json:"id"`
	TaskText       string     `json:"taskText"`
	DateISO        string     `json:"dateISO"`
	TargetType     TargetType `json:"targetType,omitempty"`
	TargetDateISO  string     `json:"targetDateISO"`
	FinishedOnTime bool       `json:"finishedOnTime"`
	XPEarned       int        `json:"xpEarned"`
	CompletedAt    time.Time  `json:"completedAt"`
	Intensity      Intensity  `json:"intensity"`
}

// NotificationType is the severity of a notification.
type NotificationType string

const (
	NotifyError   NotificationType = "error"
	NotifySuccess NotificationType = "success"
	NotifyInfo    NotificationType = "info"
)

// Notification is a message surfaced to the user and kept in history.
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
}
