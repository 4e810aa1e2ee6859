package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/game"
	"github.com/Omkarop0808/Excuse-Killer/pkg/store"
)

type PrettyPrint struct {
	ShowID bool
}

const notesWidth = 72

var (
	spacing = strings.Repeat(" ", len("challenge-00000000-0000-0000-0000-000000000000  "))

	intensityColor = map[challenge.Intensity]*color.Color{
		challenge.Chill:    color.New(color.FgCyan),
		challenge.Normal:   color.New(color.FgYellow),
		challenge.Hardcore: color.New(color.FgRed, color.Bold),
	}
	statusGlyph = map[challenge.Status]string{
		challenge.StatusPending:   "○",
		challenge.StatusOngoing:   "◐",
		challenge.StatusCompleted: "●",
		challenge.StatusAbandoned: "✕",
	}
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Printf(" %s\n", noun)
	default:
		_, _ = c.Printf(" %ss\n", noun)
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) id(id string) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Print(id)
	if pad := len(spacing) - len(id); pad > 0 {
		_, _ = y.Print(strings.Repeat(" ", pad))
	} else {
		_, _ = y.Print("  ")
	}
}

func intensity(i challenge.Intensity) string {
	if c, ok := intensityColor[i]; ok {
		return c.Sprint(i)
	}
	return string(i)
}

// Challenges prints one line per challenge. overdue maps ids to days late.
func (pp *PrettyPrint) Challenges(list []challenge.Challenge, overdue map[string]int) {
	if len(list) == 0 {
		pp.none()
		return
	}
	t := color.New()
	late := color.New(color.FgRed, color.Italic)
	faint := color.New(color.Faint)
	for _, c := range list {
		pp.id(c.ID)
		_, _ = t.Printf("%s %s %s", statusGlyph[c.Status], intensity(c.Intensity), c.TaskText)
		_, _ = faint.Printf("  %dm · due %s", c.DurationMinutes, c.TargetDateISO)
		if c.Recurrence != challenge.Once && c.Recurrence != "" {
			_, _ = faint.Printf(" · %s", c.Recurrence)
		}
		if c.ScheduleTime != nil {
			_, _ = faint.Printf(" @ %s", *c.ScheduleTime)
		}
		if c.UseTimer {
			_, _ = faint.Print(" · ⏱")
		}
		if days, ok := overdue[c.ID]; ok {
			_, _ = late.Printf("  overdue %dd", days)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Challenge prints the full detail of one challenge.
func (pp *PrettyPrint) Challenge(c challenge.Challenge) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("id"), c.ID)
	tbl.AddRow(bold.Sprint("task"), c.TaskText)
	tbl.AddRow(bold.Sprint("status"), fmt.Sprintf("%s %s", statusGlyph[c.Status], c.Status))
	tbl.AddRow(bold.Sprint("intensity"), fmt.Sprintf("%s (%d xp)", intensity(c.Intensity), c.Intensity.XP()))
	tbl.AddRow(bold.Sprint("duration"), fmt.Sprintf("%d minutes", c.DurationMinutes))
	tbl.AddRow(bold.Sprint("target"), fmt.Sprintf("%s (%s)", c.TargetDateISO, c.TargetType))
	tbl.AddRow(bold.Sprint("recurrence"), c.Recurrence)
	if c.ScheduleTime != nil {
		tbl.AddRow(bold.Sprint("scheduled"), *c.ScheduleTime)
	}
	if c.TimerStartedAt != nil {
		tbl.AddRow(bold.Sprint("timer started"), c.TimerStartedAt.Local().Format("2006-01-02 15:04:05"))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(color.Output, tbl)

	if strings.TrimSpace(c.Notes) != "" {
		_, _ = fmt.Fprintln(color.Output, "")
		_, _ = fmt.Fprintln(color.Output, wordwrap.String(c.Notes, notesWidth))
	}
	_, _ = fmt.Fprintln(color.Output, "")
}

// Completions prints completions, newest first as given.
func (pp *PrettyPrint) Completions(list []challenge.Completion) {
	if len(list) == 0 {
		pp.none()
		return
	}
	t := color.New()
	xp := color.New(color.FgGreen)
	late := color.New(color.Faint, color.Italic)
	for _, c := range list {
		pp.id(c.ID)
		_, _ = t.Printf("%s %s %s", statusGlyph[challenge.StatusCompleted], intensity(c.Intensity), c.TaskText)
		_, _ = xp.Printf("  +%d xp", c.XPEarned)
		if !c.FinishedOnTime {
			_, _ = late.Printf("  late (due %s)", c.TargetDateISO)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Notification prints a single notification coloured by type.
func (pp *PrettyPrint) Notification(n challenge.Notification) {
	c := color.New(color.FgBlue)
	switch n.Type {
	case challenge.NotifyError:
		c = color.New(color.FgRed)
	case challenge.NotifySuccess:
		c = color.New(color.FgGreen)
	}
	_, _ = c.Println(n.Message)
}

// Stats prints the gamification summary.
func (pp *PrettyPrint) Stats(s game.Stats) {
	bold := color.New(color.Bold)
	fire := color.New(color.FgHiRed, color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("title"), color.New(color.FgHiMagenta).Sprint(s.Title))
	tbl.AddRow(bold.Sprint("streak"), fire.Sprintf("%d day(s)", s.Streak))
	tbl.AddRow(bold.Sprint("this week"), s.Weekly)
	tbl.AddRow(bold.Sprint("this month"), s.Monthly)
	tbl.AddRow(bold.Sprint("total xp"), s.TotalXP)
	tbl.AddRow(bold.Sprint("completed"), s.Completions)
	tbl.AddRow(bold.Sprint("achievements"), fmt.Sprintf("%d/%d", len(s.Achievements), len(game.Catalog())))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Achievements prints the catalog with unlock state.
func (pp *PrettyPrint) Achievements(catalog []game.Definition, unlocked game.Achievements) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Achievement"), bold.Sprint("Unlock"), bold.Sprint("Earned"))
	for _, d := range catalog {
		if at, ok := unlocked[d.ID]; ok {
			tbl.AddRow(d.Icon, bold.Sprint(d.Name), d.Condition, at.Local().Format("2006-01-02"))
		} else {
			tbl.AddRow(faint.Sprint("🔒"), faint.Sprint(d.Name), faint.Sprint(d.Condition), faint.Sprint("locked"))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Usage prints approximate bytes per key against the quota.
func (pp *PrettyPrint) Usage(u store.Usage) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Size"))
	for _, key := range sortedKeys(u.Sizes) {
		tbl.AddRow(key, kb(u.Sizes[key]))
	}
	tbl.AddRow(bold.Sprint("total"), kb(u.Total))
	if u.Quota > 0 {
		tbl.AddRow(bold.Sprint("quota"), fmt.Sprintf("%s (%.1f%% used)", kb(u.Quota), 100*float64(u.Total)/float64(u.Quota)))
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func kb(n int64) string {
	return fmt.Sprintf("%.2f KB", float64(n)/1024)
}
