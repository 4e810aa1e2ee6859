package timer

import (
	"errors"

	"github.com/Omkarop0808/Excuse-Killer/pkg/store"
)

// Record is the persisted state of a running timer. It is all a later
// process needs to rebuild the countdown from the wall clock.
type Record struct {
	StartTimestamp  int64 `json:"startTimestamp"`
	DurationSeconds int64 `json:"durationSeconds"`
}

var errMalformed = errors.New("timer: malformed recovery record")

// RecordStore keeps recovery records by challenge id.
type RecordStore interface {
	Load(id string) (Record, bool, error)
	Save(id string, r Record) error
	Clear(id string) error
}

// AdapterRecords stores recovery records under excuse-killer-timer-<id>.
type AdapterRecords struct {
	Store *store.Adapter
}

var _ RecordStore = (*AdapterRecords)(nil)

func (a *AdapterRecords) Load(id string) (Record, bool, error) {
	key := store.TimerKey(id)
	if !a.Store.Has(key) {
		return Record{}, false, nil
	}
	r, err := store.Read(a.Store, key, Record{})
	if store.IsMismatch(err) {
		_ = a.Store.Remove(key)
		return Record{}, false, &store.StorageError{Kind: store.KindCorruption, Key: key, Err: err}
	}
	if err != nil {
		return Record{}, false, err
	}
	if r.DurationSeconds <= 0 || r.StartTimestamp <= 0 {
		_ = a.Store.Remove(key)
		return Record{}, false, &store.StorageError{Kind: store.KindCorruption, Key: key, Err: errMalformed}
	}
	return r, true, nil
}

func (a *AdapterRecords) Save(id string, r Record) error {
	return a.Store.Write(store.TimerKey(id), r)
}

func (a *AdapterRecords) Clear(id string) error {
	return a.Store.Remove(store.TimerKey(id))
}
