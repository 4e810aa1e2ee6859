package store

import (
	"fmt"
	"strings"
)

// Logical collections persisted by the app.
const (
	KeyCompletions   = "excuse-killer-completions"
	KeyPending       = "excuse-killer-pending"
	KeyAchievements  = "excuse-killer-achievements"
	KeyNotifications = "excuse-killer-notifications"
	KeyProfile       = "excuse-killer-profile"

	TimerPrefix  = "excuse-killer-timer-"
	BackupPrefix = "excuse-killer-backup-"
)

// AppKeys lists the fixed collection keys, in display order.
func AppKeys() []string {
	return []string{
		KeyCompletions,
		KeyPending,
		KeyAchievements,
		KeyNotifications,
		KeyProfile,
	}
}

// TimerKey is the recovery record key for a challenge's timer.
func TimerKey(challengeID string) string {
	return TimerPrefix + challengeID
}

// BackupKey names a migration snapshot taken at unixMillis.
func BackupKey(unixMillis int64) string {
	return fmt.Sprintf("%s%d", BackupPrefix, unixMillis)
}

// IsTimerKey reports whether key holds a timer recovery record.
func IsTimerKey(key string) bool {
	return strings.HasPrefix(key, TimerPrefix)
}

// IsBackupKey reports whether key holds a migration snapshot.
func IsBackupKey(key string) bool {
	return strings.HasPrefix(key, BackupPrefix)
}
