package printers

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/timeutil"
)

// Calendar prints now's month with every day that has a completion in bold
// and today underlined.
func (pp *PrettyPrint) Calendar(now time.Time, completions ...challenge.Completion) {
	pp.PrintMonthCount(now, CountByDay(now, completions))
}

// CountByDay counts completions per day of now's month.
func CountByDay(now time.Time, completions []challenge.Completion) []int {
	count := make([]int, DaysIn(now))
	for _, c := range completions {
		if !timeutil.InMonth(c.DateISO, now) {
			continue
		}
		day, err := timeutil.ParseISODate(c.DateISO, now.Location())
		if err != nil {
			continue
		}
		count[day.Day()-1]++
	}
	return count
}

const width = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiGreen)
	today := color.New(color.Underline)
	todayDone := color.New(color.Bold, color.FgHiGreen, color.Underline)

	for i := 0; i < days; i++ {
		done := i < len(count) && count[i] > 0
		printer := l1
		switch {
		case i+1 == then.Day() && done:
			printer = todayDone
		case i+1 == then.Day():
			printer = today
		case done:
			printer = l2
		}
		_, _ = printer.Printf("%2d", i+1)
		fmt.Print(" ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday()
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
