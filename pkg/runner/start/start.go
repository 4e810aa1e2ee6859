// Package start provides the runner logic for starting a challenge.
package start

import (
	"context"
	"errors"
	"fmt"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/printers"
)

type Start struct {
	ID      string
	Service *app.Service
}

func (n *Start) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not start, no service")
	}
	c, err := n.Service.Start(ctx, n.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Challenge(*c)
	if c.UseTimer {
		fmt.Printf("Run `excuse-killer timer %s` to begin the countdown.\n", c.ID)
	}
	return nil
}
