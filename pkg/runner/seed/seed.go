// Package seed provides the runner logic for loading demo data.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
)

type Seed struct {
	Service *app.Service
}

func (n *Seed) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not seed, no service")
	}
	seeded, err := n.Service.Seed(ctx)
	if err != nil {
		return err
	}
	if !seeded {
		fmt.Println("Store already has data, nothing seeded. Run `excuse-killer clear --yes` first.")
		return nil
	}
	fmt.Println("Seeded demo challenges, completions and achievements.")
	return nil
}
