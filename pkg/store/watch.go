package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType tells a watcher what changed.
type EventType int

const (
	// EventKeyChanged means the file for Key was written or erased.
	EventKeyChanged EventType = iota
	// EventInvalidated means something changed that does not map to one
	// key. Reload everything.
	EventInvalidated
)

// Event is one settled change in a diskv store.
type Event struct {
	Type EventType
	Key  string
}

// settleDelay is how long the store must stay quiet before pending changes
// are reported. A single Complete touches several files.
const settleDelay = 100 * time.Millisecond

// Watch reports changes made to the diskv store at base, by this process or
// any other, until ctx is done. Events that arrive while the reader is busy
// are dropped. The channel closes when ctx is done or the watcher dies.
func Watch(ctx context.Context, base string) (<-chan Event, error) {
	if base == "" {
		return nil, errors.New("store: watch: no base path")
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("store: watch: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: watch: %w", err)
	}

	w := &dirWatcher{
		fw:      fw,
		base:    filepath.Clean(base),
		out:     make(chan Event, 16),
		changed: map[string]bool{},
	}
	for _, dir := range w.dirs() {
		if err := w.follow(dir); err != nil && !errors.Is(err, os.ErrNotExist) {
			_ = fw.Close()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}
	go w.run(ctx)
	return w.out, nil
}

type dirWatcher struct {
	fw   *fsnotify.Watcher
	base string
	out  chan Event

	// changed collects keys seen since the last flush. The empty key stands
	// for a change that could not be attributed.
	changed map[string]bool
}

// dirs are the only directories diskv writes to, see keyToPathTransform.
func (w *dirWatcher) dirs() []string {
	return []string{
		w.base,
		filepath.Join(w.base, timerDir),
		filepath.Join(w.base, backupDir),
	}
}

func (w *dirWatcher) follow(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	return w.fw.Add(dir)
}

func (w *dirWatcher) run(ctx context.Context) {
	defer close(w.out)
	defer w.fw.Close()

	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()
	armed := false

	for {
		select {
		case <-ctx.Done():
			return
		case <-settle.C:
			armed = false
			w.flush()
			continue
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.Warn("store: watcher error", "err", err)
			w.changed[""] = true
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !w.note(ev) {
				continue
			}
		}
		if !armed {
			settle.Reset(settleDelay)
			armed = true
		}
	}
}

// note records ev and reports whether it is worth a flush.
func (w *dirWatcher) note(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(ev.Name)
	if ev.Has(fsnotify.Create) && slices.Contains(w.dirs()[1:], name) {
		// timers/ and backups/ are made on first use, maybe with files
		// already inside by the time the watch is added.
		if err := w.follow(name); err != nil {
			slog.Warn("store: watch new directory", "dir", name, "err", err)
		}
		w.changed[""] = true
		return true
	}
	key := filepath.Base(name)
	if !isStoreKey(key) {
		return false
	}
	w.changed[key] = true
	return true
}

func (w *dirWatcher) flush() {
	var batch []Event
	if w.changed[""] {
		batch = []Event{{Type: EventInvalidated}}
	} else {
		keys := make([]string, 0, len(w.changed))
		for k := range w.changed {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			batch = append(batch, Event{Type: EventKeyChanged, Key: k})
		}
	}
	clear(w.changed)

	for _, ev := range batch {
		select {
		case w.out <- ev:
		default:
		}
	}
}

func isStoreKey(name string) bool {
	return slices.Contains(AppKeys(), name) || IsTimerKey(name) || IsBackupKey(name)
}
