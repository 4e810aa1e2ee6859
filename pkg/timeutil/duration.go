package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is how far back history looks when no window is given.
const DefaultWindow = "1w"

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
)

type windowUnit struct {
	label   string
	size    time.Duration
	aliases []string
}

// Largest first; FormatWindow relies on the order.
var windowUnits = []windowUnit{
	{"mo", month, []string{"mo", "mon", "month", "months"}},
	{"w", week, []string{"w", "wk", "wks", "week", "weeks"}},
	{"d", day, []string{"d", "day", "days"}},
	{"h", time.Hour, []string{"h", "hr", "hrs", "hour", "hours"}},
}

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitByAlias    = func() map[string]time.Duration {
		m := make(map[string]time.Duration)
		for _, u := range windowUnits {
			for _, a := range u.aliases {
				m[a] = u.size
			}
		}
		return m
	}()
)

// ParseWindow reads a history window such as "3d", "2w" or "1mo1w" and
// returns it with its canonical label. A month counts as 30 days. An empty
// input means DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		rest = DefaultWindow
	}

	var total time.Duration
	for strings.TrimSpace(rest) != "" {
		m := segmentPattern.FindStringSubmatch(rest)
		if m == nil {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		size, ok := unitByAlias[m[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", m[2])
		}
		total += time.Duration(n) * size
		rest = rest[len(m[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d with month, week, day and hour tokens. Anything
// under an hour is dropped.
func FormatWindow(d time.Duration) string {
	var b strings.Builder
	for _, u := range windowUnits {
		if d < u.size {
			continue
		}
		n := d / u.size
		d -= n * u.size
		fmt.Fprintf(&b, "%d%s", n, u.label)
	}
	if b.Len() == 0 {
		return "0h"
	}
	return b.String()
}
