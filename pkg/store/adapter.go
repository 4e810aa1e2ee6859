// Package store persists app state through a pluggable key-value capability
// and maps low-level failures onto a typed error taxonomy.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"syscall"
)

// DefaultQuota mirrors the 5MB budget browsers give localStorage.
const DefaultQuota int64 = 5 * 1024 * 1024

var errStoreFull = errors.New("store full")

// Adapter is the typed read/write layer over a KV.
type Adapter struct {
	kv    KV
	quota int64
	log   *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithQuota caps the total bytes the adapter will keep in the store. Zero
// disables the check.
func WithQuota(bytes int64) Option {
	return func(a *Adapter) { a.quota = bytes }
}

// WithLogger sets the logger used for recovered read failures.
func WithLogger(l *slog.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l
		}
	}
}

// NewAdapter wraps kv.
func NewAdapter(kv KV, opts ...Option) *Adapter {
	a := &Adapter{kv: kv, log: slog.Default()}
	for _, o := range opts {
		o(a)
	}
	return a
}

// KV returns the wrapped capability.
func (a *Adapter) KV() KV {
	return a.kv
}

// Read decodes the value stored at key. An absent key yields def. Malformed
// JSON is cleared and def is returned together with a corruption
// StorageError. Well-formed JSON of the wrong type is kept and reported as a
// mismatch.
func Read[T any](a *Adapter, key string, def T) (T, error) {
	raw, ok, err := a.kv.Get(key)
	if err != nil {
		a.log.Warn("store: read failed, using default", "key", key, "err", err)
		return def, fmt.Errorf("store: read %q: %w", key, err)
	}
	if !ok {
		return def, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		if !malformed(err) {
			a.log.Warn("store: value does not fit, left in place", "key", key, "err", err)
			return def, &StorageError{Kind: KindMismatch, Key: key, Err: err}
		}
		a.log.Warn("store: corrupted value cleared", "key", key, "err", err)
		if rmErr := a.kv.Remove(key); rmErr != nil {
			a.log.Error("store: clear corrupted value", "key", key, "err", rmErr)
		}
		return def, &StorageError{Kind: KindCorruption, Key: key, Err: err}
	}
	return v, nil
}

func malformed(err error) bool {
	var syntax *json.SyntaxError
	return errors.As(err, &syntax) || errors.Is(err, io.ErrUnexpectedEOF)
}

// Has reports whether key is present.
func (a *Adapter) Has(key string) bool {
	_, ok, err := a.kv.Get(key)
	return err == nil && ok
}

// Write encodes v as JSON and stores it at key.
func (a *Adapter) Write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &StorageError{Kind: KindWrite, Key: key, Err: err}
	}
	if a.quota > 0 {
		used, err := a.usedExcept(key)
		if err != nil {
			return &StorageError{Kind: KindWrite, Key: key, Err: err}
		}
		if used+int64(len(data)) > a.quota {
			return &StorageError{
				Kind: KindQuota,
				Key:  key,
				Err:  fmt.Errorf("%d bytes would exceed quota of %d", used+int64(len(data)), a.quota),
			}
		}
	}
	if err := a.kv.Set(key, data); err != nil {
		if errors.Is(err, errStoreFull) || errors.Is(err, syscall.ENOSPC) {
			return &StorageError{Kind: KindQuota, Key: key, Err: err}
		}
		return &StorageError{Kind: KindWrite, Key: key, Err: err}
	}
	return nil
}

// Remove deletes key.
func (a *Adapter) Remove(key string) error {
	if err := a.kv.Remove(key); err != nil {
		return &StorageError{Kind: KindWrite, Key: key, Err: err}
	}
	return nil
}

// Keys lists stored keys starting with prefix.
func (a *Adapter) Keys(ctx context.Context, prefix string) []string {
	return filterPrefix(a.kv.Keys(ctx), prefix)
}

// Usage is an approximate accounting of bytes held per key.
type Usage struct {
	Sizes map[string]int64
	Total int64
	Quota int64
}

// Usage sizes every key currently in the store.
func (a *Adapter) Usage(ctx context.Context) (Usage, error) {
	u := Usage{Sizes: make(map[string]int64), Quota: a.quota}
	for _, key := range a.kv.Keys(ctx) {
		raw, ok, err := a.kv.Get(key)
		if err != nil {
			return u, fmt.Errorf("store: size %q: %w", key, err)
		}
		if !ok {
			continue
		}
		u.Sizes[key] = int64(len(raw))
		u.Total += int64(len(raw))
	}
	return u, nil
}

func (a *Adapter) usedExcept(key string) (int64, error) {
	var total int64
	for _, k := range a.kv.Keys(context.Background()) {
		if k == key {
			continue
		}
		raw, ok, err := a.kv.Get(k)
		if err != nil {
			return 0, err
		}
		if ok {
			total += int64(len(raw))
		}
	}
	return total, nil
}
