// Package list provides the runner logic for listing pending challenges.
package list

import (
	"context"
	"errors"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/printers"
)

type List struct {
	ShowID  bool
	Overdue bool
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	overdue, err := n.Service.Overdue(ctx)
	if err != nil {
		return err
	}
	late := make(map[string]int, len(overdue))
	for _, o := range overdue {
		late[o.Challenge.ID] = o.DaysOverdue
	}

	if n.Overdue {
		list := make([]challenge.Challenge, 0, len(overdue))
		for _, o := range overdue {
			list = append(list, o.Challenge)
		}
		pp.TitleWithCount("Overdue", len(list), "challenge")
		pp.Challenges(list, late)
		return nil
	}

	pending, err := n.Service.Pending(ctx)
	if err != nil {
		return err
	}
	pp.TitleWithCount("Pending", len(pending), "challenge")
	pp.Challenges(pending, late)
	return nil
}
