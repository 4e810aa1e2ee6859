package app

import (
	"context"
	"errors"

	"github.com/Omkarop0808/Excuse-Killer/pkg/migrate"
	"github.com/Omkarop0808/Excuse-Killer/pkg/store"
)

// Migrate upgrades legacy records. A failed backup is logged and returned as
// a *migrate.MigrationError; the store is then still usable as it was.
func (s *Service) Migrate(ctx context.Context) (migrate.Result, error) {
	if s.Store == nil {
		return migrate.Result{}, errNoStore
	}
	res, err := migrate.Run(ctx, s.Store, s.now())
	var merr *migrate.MigrationError
	switch {
	case errors.As(err, &merr):
		s.log().Warn("migration skipped, continuing with unmigrated data", "backup", merr.BackupKey, "err", merr.Err)
		return res, err
	case err != nil:
		return res, err
	case res.Migrated:
		s.log().Info("migrated legacy challenges", "count", res.Count, "backup", res.BackupKey)
	}
	return res, nil
}

// Backups lists migration snapshots, newest first.
func (s *Service) Backups(ctx context.Context) ([]migrate.Backup, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return migrate.Backups(ctx, s.Store), nil
}

// Rollback restores the collections saved in a migration snapshot.
func (s *Service) Rollback(ctx context.Context, key string) error {
	if s.Store == nil {
		return errNoStore
	}
	if err := migrate.Restore(ctx, s.Store, key); err != nil {
		return err
	}
	s.log().Info("restored backup", "backup", key)
	return nil
}

// ClearAll removes every collection and timer record. Migration snapshots
// are kept.
func (s *Service) ClearAll(ctx context.Context) error {
	if s.Store == nil {
		return errNoStore
	}
	keys := append(store.AppKeys(), s.Store.Keys(ctx, store.TimerPrefix)...)
	for _, key := range keys {
		if err := s.Store.Remove(key); err != nil {
			return err
		}
	}
	return nil
}

// Usage reports bytes held per key.
func (s *Service) Usage(ctx context.Context) (store.Usage, error) {
	if s.Store == nil {
		return store.Usage{}, errNoStore
	}
	return s.Store.Usage(ctx)
}
