// Package abandon provides the runner logic for giving up on a challenge.
package abandon

import (
	"context"
	"errors"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/printers"
)

type Abandon struct {
	ID      string
	Service *app.Service
}

func (n *Abandon) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not abandon, no service")
	}
	note, err := n.Service.Abandon(ctx, n.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Notification(*note)

	stats, err := n.Service.Stats(ctx)
	if err != nil {
		return err
	}
	pp.Stats(stats)
	return nil
}
