package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskvRoundTrip(t *testing.T) {
	base := t.TempDir()
	kv := NewDiskv(base)

	_, ok, err := kv.Get(KeyPending)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(KeyPending, []byte(`[]`)))
	require.NoError(t, kv.Set(TimerKey("abc"), []byte(`{}`)))
	require.NoError(t, kv.Set(BackupKey(7), []byte(`{}`)))

	got, ok, err := kv.Get(KeyPending)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(got))

	assert.FileExists(t, filepath.Join(base, KeyPending))
	assert.FileExists(t, filepath.Join(base, timerDir, TimerKey("abc")))
	assert.FileExists(t, filepath.Join(base, backupDir, BackupKey(7)))

	assert.Equal(t,
		[]string{BackupKey(7), KeyPending, TimerKey("abc")},
		kv.Keys(context.Background()))

	require.NoError(t, kv.Remove(TimerKey("abc")))
	require.NoError(t, kv.Remove(TimerKey("abc")), "removing twice is fine")
	_, err = os.Stat(filepath.Join(base, timerDir, TimerKey("abc")))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskvSeesWritesFromAnotherInstance(t *testing.T) {
	base := t.TempDir()
	reader := NewAdapter(NewDiskv(base))
	writer := NewAdapter(NewDiskv(base))

	require.NoError(t, writer.Write(KeyCompletions, []int{1}))
	got, err := Read(reader, KeyCompletions, []int(nil))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	require.NoError(t, writer.Write(KeyCompletions, []int{1, 2}))
	got, err = Read(reader, KeyCompletions, []int(nil))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	require.NoError(t, writer.Remove(KeyCompletions))
	assert.False(t, reader.Has(KeyCompletions))
}

func TestDiskvThroughAdapterCorruption(t *testing.T) {
	base := t.TempDir()
	kv := NewDiskv(base)
	require.NoError(t, kv.Set(KeyCompletions, []byte(`not json`)))

	a := NewAdapter(kv)
	_, err := Read(a, KeyCompletions, []sample{})
	assert.True(t, IsCorruption(err))
	assert.NoFileExists(t, filepath.Join(base, KeyCompletions))
}

func TestSQLiteRoundTrip(t *testing.T) {
	db, err := NewSQLite(filepath.Join(t.TempDir(), "kv.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Set(KeyPending, []byte(`[1]`)))
	require.NoError(t, db.Set(KeyPending, []byte(`[2]`)))
	require.NoError(t, db.Set(KeyAchievements, []byte(`{}`)))

	got, ok, err := db.Get(KeyPending)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[2]`, string(got))

	assert.Equal(t, []string{KeyAchievements, KeyPending}, db.Keys(context.Background()))

	require.NoError(t, db.Remove(KeyPending))
	_, ok, err = db.Get(KeyPending)
	require.NoError(t, err)
	assert.False(t, ok)
}
