package migrate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Omkarop0808/Excuse-Killer/pkg/store"
)

// ErrNoBackup is returned by Restore for a key that holds no snapshot.
var ErrNoBackup = errors.New("migrate: backup not found")

// MigrationError means the pre-migration backup could not be written. The
// store was left untouched.
type MigrationError struct {
	BackupKey string
	Err       error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migrate: backup %s failed, migration skipped: %v", e.BackupKey, e.Err)
}

func (e *MigrationError) Unwrap() error { return e.Err }

// Snapshot is the state saved before a migration mutates the store.
type Snapshot struct {
	Pending       []json.RawMessage `json:"pending"`
	Completions   json.RawMessage   `json:"completions"`
	Achievements  json.RawMessage   `json:"achievements"`
	Notifications json.RawMessage   `json:"notifications"`
}

// Result reports what Run did.
type Result struct {
	Migrated  bool
	BackupKey string
	Count     int
}

// Run upgrades the pending collection if any record is legacy-shaped. The
// snapshot is written first; if that fails nothing else is written and a
// *MigrationError is returned. Elements that are not objects are carried
// through unchanged.
func Run(ctx context.Context, a *store.Adapter, now time.Time) (Result, error) {
	raws, err := store.Read[[]json.RawMessage](a, store.KeyPending, nil)
	switch {
	case store.IsMismatch(err):
		return Result{}, nil
	case err != nil && !store.IsCorruption(err):
		return Result{}, fmt.Errorf("migrate: read pending: %w", err)
	}
	records := make([]Record, len(raws))
	var candidates []Record
	for i, raw := range raws {
		if err := json.Unmarshal(raw, &records[i]); err != nil {
			records[i] = nil
			continue
		}
		candidates = append(candidates, records[i])
	}
	if !NeedsMigration(candidates) {
		return Result{}, nil
	}

	snap := Snapshot{Pending: raws}
	if snap.Completions, err = readRaw(a, store.KeyCompletions, "[]"); err != nil {
		return Result{}, err
	}
	if snap.Achievements, err = readRaw(a, store.KeyAchievements, "{}"); err != nil {
		return Result{}, err
	}
	if snap.Notifications, err = readRaw(a, store.KeyNotifications, "[]"); err != nil {
		return Result{}, err
	}

	key := store.BackupKey(now.UnixMilli())
	if err := a.Write(key, snap); err != nil {
		return Result{}, &MigrationError{BackupKey: key, Err: err}
	}

	migrated := make([]any, 0, len(raws))
	count := 0
	for i, r := range records {
		if r == nil {
			migrated = append(migrated, raws[i])
			continue
		}
		migrated = append(migrated, MigrateOne(r, now))
		count++
	}
	if err := a.Write(store.KeyPending, migrated); err != nil {
		return Result{BackupKey: key}, fmt.Errorf("migrate: write pending: %w", err)
	}
	return Result{Migrated: true, BackupKey: key, Count: count}, nil
}

func readRaw(a *store.Adapter, key, def string) (json.RawMessage, error) {
	raw, err := store.Read[json.RawMessage](a, key, json.RawMessage(def))
	if err != nil && !store.IsCorruption(err) {
		return nil, fmt.Errorf("migrate: read %s: %w", key, err)
	}
	return raw, nil
}

// Backup is a stored snapshot.
type Backup struct {
	Key string
	At  time.Time
}

// Backups lists the stored snapshots, newest first.
func Backups(ctx context.Context, a *store.Adapter) []Backup {
	var out []Backup
	for _, key := range a.Keys(ctx, store.BackupPrefix) {
		ms, err := strconv.ParseInt(strings.TrimPrefix(key, store.BackupPrefix), 10, 64)
		if err != nil {
			continue
		}
		out = append(out, Backup{Key: key, At: time.UnixMilli(ms)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At.After(out[j].At) })
	return out
}

// Restore writes the collections held in the snapshot at key back over the
// live ones. The snapshot itself is kept.
func Restore(ctx context.Context, a *store.Adapter, key string) error {
	if !store.IsBackupKey(key) || !a.Has(key) {
		return fmt.Errorf("%w: %s", ErrNoBackup, key)
	}
	snap, err := store.Read[Snapshot](a, key, Snapshot{})
	if err != nil {
		return fmt.Errorf("migrate: read %s: %w", key, err)
	}

	pending := snap.Pending
	if pending == nil {
		pending = []json.RawMessage{}
	}
	writes := []struct {
		key string
		v   any
	}{
		{store.KeyPending, pending},
		{store.KeyCompletions, orDefault(snap.Completions, '[', "[]")},
		{store.KeyAchievements, orDefault(snap.Achievements, '{', "{}")},
		{store.KeyNotifications, orDefault(snap.Notifications, '[', "[]")},
	}
	for _, w := range writes {
		if err := a.Write(w.key, w.v); err != nil {
			return fmt.Errorf("migrate: restore %s: %w", w.key, err)
		}
	}
	return nil
}

// orDefault keeps raw only if it is a JSON value of the expected kind.
func orDefault(raw json.RawMessage, open byte, def string) json.RawMessage {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed[0] != open {
		return json.RawMessage(def)
	}
	return raw
}
