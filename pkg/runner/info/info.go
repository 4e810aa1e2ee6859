package info

import (
	"context"
	"fmt"
	"os"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/printers"
	"github.com/Omkarop0808/Excuse-Killer/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {

	if override := os.Getenv("EXCUSE_KILLER_CONFIG_PATH"); override != "" {
		fmt.Println("EXCUSE_KILLER_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("EXCUSE_KILLER_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path:    ", n.Config.BasePath())
	fmt.Println("Config.backend: ", n.Config.Backend())
	fmt.Println("Config.tick:    ", n.Config.Tick())

	if n.Service == nil {
		return fmt.Errorf("failed to create service")
	}

	usage, err := n.Service.Usage(ctx)
	if err != nil {
		return err
	}
	fmt.Println()
	pp := printers.PrettyPrint{}
	pp.Usage(usage)

	backups, err := n.Service.Backups(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\nBackups:\n")
	if len(backups) == 0 {
		fmt.Printf("  %s\n", "no backups")
	}
	for _, b := range backups {
		fmt.Printf("  %s  (%s)\n", b.Key, b.At.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}
