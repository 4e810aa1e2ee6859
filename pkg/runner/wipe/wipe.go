// Package wipe provides the runner logic for wiping the store.
package wipe

import (
	"context"
	"errors"
	"fmt"
)

// Clearer removes every collection.
type Clearer interface {
	ClearAll(ctx context.Context) error
}

type Clear struct {
	Confirmed bool
	Service   Clearer
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not clear, no service")
	}
	if !n.Confirmed {
		return errors.New("refusing to clear without --yes")
	}
	if err := n.Service.ClearAll(ctx); err != nil {
		return err
	}
	fmt.Println("Cleared challenges, completions, achievements, notifications and timers. Backups were kept.")
	return nil
}
