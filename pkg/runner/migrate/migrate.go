// Package migrate provides the runner logic for schema upgrades and backups.
package migrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
)

// Run upgrades legacy records and reports what happened.
type Run struct {
	Service *app.Service
}

func (n *Run) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not migrate, no service")
	}
	res, err := n.Service.Migrate(ctx)
	if err != nil {
		return err
	}
	if !res.Migrated {
		fmt.Println("Nothing to migrate.")
		return nil
	}
	fmt.Printf("Migrated %d challenge(s). Backup saved as %s.\n", res.Count, res.BackupKey)
	return nil
}

// Backups lists the snapshots written before each migration.
type Backups struct {
	Service *app.Service
}

func (n *Backups) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list backups, no service")
	}
	backups, err := n.Service.Backups(ctx)
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups.")
		return nil
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(color.New(color.Bold).Sprint("KEY"), color.New(color.Bold).Sprint("TAKEN"))
	for _, b := range backups {
		tbl.AddRow(b.Key, b.At.Local().Format("2006-01-02 15:04:05"))
	}
	fmt.Println(tbl)
	return nil
}

// Rollback restores a snapshot over the current collections.
type Rollback struct {
	Key     string
	Service *app.Service
}

func (n *Rollback) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not roll back, no service")
	}
	if err := n.Service.Rollback(ctx, n.Key); err != nil {
		return err
	}
	fmt.Printf("Restored %s.\n", n.Key)
	return nil
}
