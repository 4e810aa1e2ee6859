package store

import (
	"context"
	"errors"
	"io/fs"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

const (
	timerDir  = "timers"
	backupDir = "backups"
)

// Diskv is a KV backed by a diskv directory tree. Collections sit at the base
// path; timer records and backups get their own sub-directories.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv opens (or lazily creates) a diskv store rooted at basePath. Reads
// always go to disk: other processes write the same files, and a cached value
// would hide their changes from `status --watch`.
func NewDiskv(basePath string) *Diskv {
	return &Diskv{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      0,
		}),
		basePath: basePath,
	}
}

// BasePath is the directory holding the store.
func (s *Diskv) BasePath() string {
	return s.basePath
}

func (s *Diskv) Get(key string) ([]byte, bool, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

func (s *Diskv) Set(key string, value []byte) error {
	return s.d.Write(key, value)
}

func (s *Diskv) Remove(key string) error {
	if err := s.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Diskv) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func keyToPathTransform(key string) *diskv.PathKey {
	switch {
	case IsTimerKey(key):
		return &diskv.PathKey{Path: []string{timerDir}, FileName: key}
	case IsBackupKey(key):
		return &diskv.PathKey{Path: []string{backupDir}, FileName: key}
	default:
		return &diskv.PathKey{Path: []string{}, FileName: key}
	}
}

// The file name is always the full key, so the directory can be ignored.
func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
