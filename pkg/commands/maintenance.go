package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/export"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/info"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/migrate"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/seed"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/wipe"
)

func addMigrate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Upgrade stored challenges to the current format.",
		Long: `Migrate upgrades challenges saved by older versions. Every command already
does this on start; run it directly to see what happened. A backup of all data
is taken before anything is changed.`,
		Example: `
excuse-killer migrate
excuse-killer migrate backups
excuse-killer migrate rollback <backup key>
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := migrate.Run{
				Service: env.svc,
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	backups := &cobra.Command{
		Use:   "backups",
		Short: "List the backups taken before each migration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := migrate.Backups{
				Service: env.svc,
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	rollback := &cobra.Command{
		Use:   "rollback",
		Short: "Restore all data from a backup.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a backup key")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s := migrate.Rollback{
				Key:     args[0],
				Service: env.svc,
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.AddCommand(backups, rollback)
	topLevel.AddCommand(cmd)
}

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and where data is stored.",
		Example: `
excuse-killer info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := info.Info{
				Config:  env.cfg,
				Service: env.svc,
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addSeed(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo challenges and history into an empty store.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := seed.Seed{
				Service: env.svc,
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all challenges, history and achievements. Backups are kept.",
		Example: `
excuse-killer clear --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := wipe.Clear{
				Confirmed: yes,
				Service:   env.svc,
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deleting everything.")

	topLevel.AddCommand(cmd)
}

func addExport(topLevel *cobra.Command) {
	format := export.FormatYAML

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print every challenge, completion and notification.",
		Example: `
excuse-killer export > backup.yaml
excuse-killer export -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := export.Export{
				Format:  format,
				Service: env.svc,
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", export.FormatYAML, "Output format. One of 'yaml' or 'json'.")

	topLevel.AddCommand(cmd)
}
