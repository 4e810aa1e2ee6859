package commands

import (
	"github.com/spf13/cobra"

	"github.com/Omkarop0808/Excuse-Killer/pkg/commands/options"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/timer"
)

func addTimer(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the countdown for a timed challenge.",
		Long: `Timer counts down the challenge's duration. The start time is saved, so
quitting and running it again picks up where the clock is now. Ctrl-C pauses;
a paused countdown is not kept once the command exits.

When time runs out you are asked whether you finished. Yes completes the
challenge, no abandons it.`,
		Example: `
excuse-killer timer <challenge id>
`,
		Args:              options.RequireID(io),
		ValidArgsFunction: pendingCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := timer.Timer{
				ID:      io.ID,
				Service: env.svc,
				Tick:    env.cfg.Tick(),
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
