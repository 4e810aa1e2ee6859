// Package status provides the runner logic for the progress dashboard.
package status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/printers"
	"github.com/Omkarop0808/Excuse-Killer/pkg/store"
)

const recentCount = 5

// Status prints streak, XP, the month calendar and recent completions.
type Status struct {
	Service *app.Service
	Watch   bool
	// BasePath and Backend locate the store for Watch.
	BasePath string
	Backend  string
}

func (n *Status) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show status, no service")
	}
	if err := n.render(ctx); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}
	if n.Backend != store.BackendDiskv {
		return fmt.Errorf("--watch needs the %s backend, have %s", store.BackendDiskv, n.Backend)
	}

	events, err := store.Watch(ctx, n.BasePath)
	if err != nil {
		return err
	}
	// Redraw at least once a minute so the streak rolls over at midnight.
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
		case <-ticker.C:
		}
		fmt.Print("\033[H\033[2J")
		if err := n.render(ctx); err != nil {
			return err
		}
	}
}

func (n *Status) render(ctx context.Context) error {
	stats, err := n.Service.Stats(ctx)
	if err != nil {
		return err
	}
	completions, err := n.Service.Completions(ctx)
	if err != nil {
		return err
	}
	recent, err := n.Service.Recent(ctx, recentCount)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Progress")
	pp.Stats(stats)
	pp.Calendar(n.Service.Clock(), completions...)
	pp.TitleWithCount("Recent", len(recent), "completion")
	pp.Completions(recent)
	return nil
}
