// Package migrate upgrades legacy challenge records to the current schema and
// keeps the rollback snapshots taken before every upgrade.
package migrate

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/timeutil"
)

// Record is a challenge as stored, before typing. Field presence matters, so
// records are kept as raw JSON objects until decoded.
type Record map[string]any

var requiredFields = []string{"durationMinutes", "recurrence", "status", "createdAt"}

// Version is the schema a record was written with. Untagged records are
// version 1.
func Version(r Record) int {
	switch v := r["schema"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 1
}

// legacy reports whether r lacks any field the current schema requires.
func legacy(r Record) bool {
	for _, f := range requiredFields {
		if _, ok := r[f]; !ok {
			return true
		}
	}
	return false
}

// NeedsMigration reports whether any record lacks a required field.
func NeedsMigration(records []Record) bool {
	for _, r := range records {
		if legacy(r) {
			return true
		}
	}
	return false
}

// MigrateOne returns a copy of r with every absent field backfilled. Present
// fields are never overwritten, so applying it twice changes nothing.
func MigrateOne(r Record, now time.Time) Record {
	out := make(Record, len(r)+10)
	for k, v := range r {
		out[k] = v
	}
	stamp := now.Format(time.RFC3339Nano)

	fill := func(field string, v any) {
		if _, ok := out[field]; !ok {
			out[field] = v
		}
	}
	intensity, _ := r["intensity"].(string)
	fill("durationMinutes", challenge.Intensity(intensity).DefaultDuration())
	fill("recurrence", string(challenge.Once))
	fill("scheduleTime", nil)
	fill("notes", "")
	fill("status", string(challenge.StatusPending))
	fill("notificationSent", false)
	if day, ok := r["dateISO"].(string); ok && day != "" {
		fill("createdAt", day)
	} else {
		fill("createdAt", stamp)
	}
	fill("updatedAt", stamp)
	if target, _ := r["targetType"].(string); target == string(challenge.TargetCustomDate) && r["targetDateISO"] != nil {
		fill("customDateISO", r["targetDateISO"])
	} else {
		fill("customDateISO", nil)
	}
	if Version(out) < challenge.CurrentSchema {
		out["schema"] = challenge.CurrentSchema
	}
	return out
}

var timeFields = []string{"createdAt", "updatedAt", "timerStartedAt"}

// Decode turns a stored record of any version into a current challenge.
// Legacy records are upgraded first; day-only timestamps left by the upgrade
// are read as midnight UTC.
func Decode(r Record, now time.Time) (challenge.Challenge, error) {
	var c challenge.Challenge
	if Version(r) < challenge.CurrentSchema || legacy(r) {
		r = MigrateOne(r, now)
	}
	norm := make(Record, len(r))
	for k, v := range r {
		norm[k] = v
	}
	for _, f := range timeFields {
		s, ok := norm[f].(string)
		if !ok {
			continue
		}
		if day, err := timeutil.ParseISODate(s, time.UTC); err == nil {
			norm[f] = day.Format(time.RFC3339)
		}
	}
	data, err := json.Marshal(norm)
	if err != nil {
		return c, fmt.Errorf("migrate: encode record: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("migrate: decode record %v: %w", r["id"], err)
	}
	c.Schema = challenge.CurrentSchema
	return c, nil
}

// Encode converts a typed challenge back into a Record.
func Encode(c challenge.Challenge) (Record, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return r, nil
}
