package app

import (
	"encoding/json"
	"time"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/game"
	"github.com/Omkarop0808/Excuse-Killer/pkg/migrate"
	"github.com/Omkarop0808/Excuse-Killer/pkg/store"
)

// records is a stored JSON array decoded one element at a time. Elements
// that fail to decode stay in kept and are written back untouched, so one bad
// record never costs the rest of the collection.
type records[T any] struct {
	items []T
	kept  []json.RawMessage
}

// with returns a copy holding items in place of the decoded elements.
func (r records[T]) with(items []T) records[T] {
	return records[T]{items: items, kept: r.kept}
}

func (r records[T]) values() []any {
	out := make([]any, 0, len(r.items)+len(r.kept))
	for _, v := range r.items {
		out = append(out, v)
	}
	for _, raw := range r.kept {
		out = append(out, raw)
	}
	return out
}

func loadRecords[T any](s *Service, key string, decode func(json.RawMessage) (T, error)) (records[T], error) {
	if s.Store == nil {
		return records[T]{}, errNoStore
	}
	raws, err := store.Read[[]json.RawMessage](s.Store, key, nil)
	if err := s.recoverRead(key, err); err != nil {
		return records[T]{}, err
	}
	out := records[T]{items: make([]T, 0, len(raws))}
	for i, raw := range raws {
		v, err := decode(raw)
		if err != nil {
			s.log().Warn("keeping undecodable record as is", "key", key, "index", i, "err", err)
			out.kept = append(out.kept, raw)
			continue
		}
		out.items = append(out.items, v)
	}
	return out, nil
}

func saveRecords[T any](s *Service, key string, r records[T]) error {
	return s.Store.Write(key, r.values())
}

func decodeJSON[T any](raw json.RawMessage) (T, error) {
	var v T
	err := json.Unmarshal(raw, &v)
	return v, err
}

func (s *Service) pendingRecords() (records[challenge.Challenge], error) {
	now := s.now()
	return loadRecords(s, store.KeyPending, func(raw json.RawMessage) (challenge.Challenge, error) {
		r, err := decodeJSON[migrate.Record](raw)
		if err != nil {
			return challenge.Challenge{}, err
		}
		return migrate.Decode(r, now)
	})
}

func (s *Service) completionRecords() (records[challenge.Completion], error) {
	return loadRecords(s, store.KeyCompletions, decodeJSON[challenge.Completion])
}

func (s *Service) notificationRecords() (records[challenge.Notification], error) {
	return loadRecords(s, store.KeyNotifications, decodeJSON[challenge.Notification])
}

// achievementRecords decodes unlocks one at a time. An unlock whose
// timestamp does not decode is dropped; the next evaluation grants it again
// if it still holds.
func (s *Service) achievementRecords() (game.Achievements, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	raws, err := store.Read[map[string]json.RawMessage](s.Store, store.KeyAchievements, nil)
	if err := s.recoverRead(store.KeyAchievements, err); err != nil {
		return nil, err
	}
	out := make(game.Achievements, len(raws))
	for id, raw := range raws {
		at, err := decodeJSON[time.Time](raw)
		if err != nil {
			s.log().Warn("dropping undecodable unlock", "id", id, "err", err)
			continue
		}
		out[id] = at
	}
	return out, nil
}
