package store

import (
	"errors"
	"fmt"
)

// Kind classifies a StorageError.
type Kind string

const (
	// KindCorruption means the stored bytes could not be decoded. The key has
	// already been cleared when this is returned.
	KindCorruption Kind = "corruption"
	// KindMismatch means the stored bytes are valid JSON of the wrong type.
	// The key is left in place.
	KindMismatch Kind = "mismatch"
	// KindQuota means the store is full.
	KindQuota Kind = "quota"
	// KindWrite is any other failure to persist a value.
	KindWrite Kind = "write"
)

// Sentinels matched by StorageError.Is so callers can use errors.Is.
var (
	ErrCorruption = errors.New("store: corrupted data detected and cleared")
	ErrMismatch   = errors.New("store: stored value has an unexpected shape")
	ErrQuota      = errors.New("store: storage quota exceeded, clear old data")
	ErrWrite      = errors.New("store: failed to save data")
)

// StorageError is returned by the Adapter for every failure of the underlying
// key-value capability.
type StorageError struct {
	Kind Kind
	Key  string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("store: %s error on %q", e.Kind, e.Key)
	}
	return fmt.Sprintf("store: %s error on %q: %v", e.Kind, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *StorageError) Is(target error) bool {
	switch target {
	case ErrCorruption:
		return e.Kind == KindCorruption
	case ErrMismatch:
		return e.Kind == KindMismatch
	case ErrQuota:
		return e.Kind == KindQuota
	case ErrWrite:
		return e.Kind == KindWrite
	}
	return false
}

// IsCorruption reports whether err is (or wraps) a corruption StorageError.
func IsCorruption(err error) bool {
	return errors.Is(err, ErrCorruption)
}

// IsMismatch reports whether err is (or wraps) a mismatch StorageError.
func IsMismatch(err error) bool {
	return errors.Is(err, ErrMismatch)
}

// IsQuota reports whether err is (or wraps) a quota StorageError.
func IsQuota(err error) bool {
	return errors.Is(err, ErrQuota)
}
