// Package achievements provides CLI helpers to display achievement progress.
package achievements

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/game"
	"github.com/Omkarop0808/Excuse-Killer/pkg/printers"
)

// Achievements prints the catalog with what has been earned.
type Achievements struct {
	Service *app.Service
}

// Do renders the achievement table to stdout.
func (k *Achievements) Do(ctx context.Context) error {
	if k.Service == nil {
		return errors.New("can not list achievements, no service")
	}
	unlocked, _, err := k.Service.SyncAchievements(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, "")

	catalog := game.Catalog()
	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Achievements", len(unlocked), "unlock")
	pp.Achievements(catalog, unlocked)
	return nil
}
