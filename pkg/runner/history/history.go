// Package history provides the runner logic for the completion log.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/printers"
)

type History struct {
	Service *app.Service
	Window  time.Duration
	Label   string
	ShowID  bool
}

func (n *History) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show history, no service")
	}
	until := n.Service.Clock()
	result, err := n.Service.History(ctx, until.Add(-n.Window), until)
	if err != nil {
		return err
	}

	since := result.Since.Local().Format("2006-01-02 15:04")
	to := result.Until.Local().Format("2006-01-02 15:04")
	fmt.Printf("History · last %s (%s → %s)\n", n.Label, since, to)

	if result.Total == 0 {
		fmt.Println("  No completions found in this window.")
		fmt.Println()
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	for _, day := range result.Days {
		fmt.Println()
		pp.TitleWithCount(day.Date, len(day.Completions), "completion")
		pp.Completions(day.Completions)
	}
	_, _ = color.New(color.Faint).Printf("%d completed, %d on time, %d xp\n\n", result.Total, result.OnTime, result.XP)
	return nil
}
