// Package create provides the runner logic for declaring a new challenge.
package create

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/printers"
)

// Create validates the input and stores a new pending challenge.
type Create struct {
	Input   challenge.Input
	Service *app.Service
}

func (n *Create) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not create, no service")
	}
	c, err := n.Service.Create(ctx, n.Input)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	_, _ = color.New(color.FgGreen).Println("Challenge accepted.")
	pp.Challenge(*c)
	return nil
}
