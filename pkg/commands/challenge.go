package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Omkarop0808/Excuse-Killer/pkg/commands/options"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/abandon"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/complete"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/create"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/start"
)

func addCreate(topLevel *cobra.Command) {
	co := &options.CreateOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"new", "add"},
		Short:   "Create a challenge out of something you keep putting off.",
		Example: `
excuse-killer create "clean the garage" --intensity hardcore --target this_week
excuse-killer create "call mom" --on 2/28 --at 18:30
excuse-killer create "read chapter 3" -i chill --timer --recurrence daily
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			day, err := on.GetOn(env.svc.Clock())
			if err != nil {
				return output.HandleError(err)
			}
			s := create.Create{
				Input:   co.Input(strings.Join(args, " "), day),
				Service: env.svc,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddCreateArgs(cmd, co)
	options.AddOnArgs(cmd, on)

	topLevel.AddCommand(cmd)
}

func addStart(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start working on a pending challenge.",
		Example: `
excuse-killer start <challenge id>
`,
		Args:              options.RequireID(io),
		ValidArgsFunction: pendingCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := start.Start{
				ID:      io.ID,
				Service: env.svc,
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"completed", "done"},
		Short:   "Complete a challenge and collect its XP.",
		Example: `
excuse-killer complete <challenge id>
`,
		Args:              options.RequireID(io),
		ValidArgsFunction: pendingCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := complete.Complete{
				ID:      io.ID,
				Service: env.svc,
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addAbandon(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "abandon",
		Aliases: []string{"give-up"},
		Short:   "Give up on a challenge. Costs a day of streak.",
		Example: `
excuse-killer abandon <challenge id>
`,
		Args:              options.RequireID(io),
		ValidArgsFunction: pendingCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := abandon.Abandon{
				ID:      io.ID,
				Service: env.svc,
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
