package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Omkarop0808/Excuse-Killer/pkg/commands/options"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/achievements"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/history"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/list"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/status"
	"github.com/Omkarop0808/Excuse-Killer/pkg/timeutil"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List pending challenges.",
		Example: `
excuse-killer list
excuse-killer list --overdue -k
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := list.List{
				ShowID:  io.ShowID,
				Overdue: lo.Overdue,
				Service: env.svc,
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddListArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}

func addStatus(topLevel *cobra.Command) {
	so := &options.StatusOptions{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show streak, XP, title and this month's calendar.",
		Example: `
excuse-killer status
excuse-killer status --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			s := status.Status{
				Service:  env.svc,
				Watch:    so.Watch,
				BasePath: env.cfg.BasePath(),
				Backend:  env.cfg.Backend(),
			}
			err := s.Do(ctx)
			return output.HandleError(err)
		},
	}
	options.AddStatusArgs(cmd, so)

	topLevel.AddCommand(cmd)
}

func addAchievements(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"badges"},
		Short:   "Show which achievements are unlocked.",
		Example: `
excuse-killer achievements
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := achievements.Achievements{
				Service: env.svc,
			}
			err := s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addHistory(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	ho := &options.HistoryOptions{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"report"},
		Short:   "Show completed challenges grouped by day.",
		Long: `History lists completions within the given window, newest day first.

Examples:
  excuse-killer history
  excuse-killer history --last 3d
  excuse-killer history --last 1mo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			window, label, err := timeutil.ParseWindow(ho.Last)
			if err != nil {
				return output.HandleError(err)
			}
			s := history.History{
				Service: env.svc,
				Window:  window,
				Label:   label,
				ShowID:  io.ShowID,
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddHistoryArgs(cmd, ho)

	topLevel.AddCommand(cmd)
}

func pendingCompletions(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	// Completion skips the persistent hooks.
	if env.svc == nil {
		if err := setup(ctx); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		defer func() { _ = teardown() }()
	}
	pending, err := env.svc.Pending(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	ids := make([]string, 0, len(pending))
	for _, c := range pending {
		ids = append(ids, c.ID+"\t"+c.TaskText)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
