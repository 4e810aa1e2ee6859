package options

import (
	"github.com/spf13/cobra"

	"github.com/Omkarop0808/Excuse-Killer/pkg/timeutil"
)

// HistoryOptions
type HistoryOptions struct {
	Last string
}

func AddHistoryArgs(cmd *cobra.Command, o *HistoryOptions) {
	cmd.Flags().StringVar(&o.Last, "last", timeutil.DefaultWindow,
		"Time window to include, for example 3d, 1w or 1w2d.")
}

// ListOptions
type ListOptions struct {
	Overdue bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVar(&o.Overdue, "overdue", false,
		"Only show challenges past their target date.")
}

// StatusOptions
type StatusOptions struct {
	Watch bool
}

func AddStatusArgs(cmd *cobra.Command, o *StatusOptions) {
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Redraw whenever the store changes.")
}
