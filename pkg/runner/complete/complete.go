// Package complete provides the runner logic for completing a challenge.
package complete

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/game"
	"github.com/Omkarop0808/Excuse-Killer/pkg/printers"
)

// Complete marks a challenge completed.
type Complete struct {
	ID      string
	Service *app.Service
}

// Do completes the challenge and reports XP, streak and fresh unlocks.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}
	before, err := n.Service.Achievements(ctx)
	if err != nil {
		return err
	}
	done, err := n.Service.Complete(ctx, n.ID)
	if err != nil {
		return err
	}
	return Report(ctx, n.Service, done, before)
}

// Report prints a completion and any achievement unlocked since before.
func Report(ctx context.Context, svc *app.Service, done *challenge.Completion, before game.Achievements) error {
	pp := printers.PrettyPrint{}
	pp.Completions([]challenge.Completion{*done})

	stats, err := svc.Stats(ctx)
	if err != nil {
		return err
	}
	gold := color.New(color.FgHiYellow, color.Bold)
	for _, d := range game.Catalog() {
		if stats.Achievements.Unlocked(d.ID) && !before.Unlocked(d.ID) {
			_, _ = gold.Printf("%s Achievement unlocked: %s\n", d.Icon, d.Name)
		}
	}
	pp.Stats(stats)
	return nil
}
