package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Omkarop0808/Excuse-Killer/pkg/timeutil"
)

const (
	layoutISOLoose = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a due date, example: --on="2026-2-28" or --on="2/28".`)
}

// GetOn returns the --on date as YYYY-MM-DD, or "" when unset. A month/day
// without a year means the next such day on or after now.
func (o *OnOptions) GetOn(now time.Time) (string, error) {
	if o.OnString == "" {
		return "", nil
	}
	t, err := time.ParseInLocation(layoutISOLoose, o.OnString, now.Location())
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, now.Location())
		if err != nil {
			return "", err
		}
		t = t.AddDate(now.Year(), 0, 0)
		// Assume 1/3 said on 12/5 means next year, not 11 months ago.
		if t.Before(timeutil.StartOfDay(now)) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return timeutil.ISODate(t), nil
}
