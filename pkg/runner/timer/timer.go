// Package timer provides the runner logic for the countdown of a challenge.
package timer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/runner/complete"
	countdown "github.com/Omkarop0808/Excuse-Killer/pkg/timer"
	"github.com/Omkarop0808/Excuse-Killer/pkg/timeutil"
)

// Timer runs, or picks back up, the countdown of a challenge and asks
// whether it was finished once time runs out.
type Timer struct {
	ID      string
	Service *app.Service
	Tick    time.Duration

	// Out and In default to stdout and stdin.
	Out io.Writer
	In  io.Reader
	// Signals pauses the countdown. Defaults to SIGINT and SIGTERM.
	Signals <-chan os.Signal
}

func (n *Timer) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not run timer, no service")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	in := n.In
	if in == nil {
		in = os.Stdin
	}
	sigs := n.Signals
	if sigs == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(ch)
		sigs = ch
	}

	c, t, err := n.Service.Timer(ctx, n.ID, n.Tick)
	if err != nil {
		return err
	}
	defer t.Close()

	state, err := t.Recover()
	if err != nil {
		return err
	}
	switch state {
	case countdown.Idle:
		if c.Status == challenge.StatusPending {
			if c, err = n.Service.Start(ctx, n.ID); err != nil {
				return err
			}
		}
		if err := t.Start(); err != nil {
			return err
		}
	case countdown.Running:
		_, _ = fmt.Fprintf(out, "Resuming %s with %s left.\n", c.ID, timeutil.FormatClock(t.Remaining()))
	}

	inPlace := isTerminal(out)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sigs:
			t.Pause()
			if inPlace {
				_, _ = fmt.Fprintln(out)
			}
			_, _ = color.New(color.FgYellow).Fprintf(out, "Paused with %s left. Progress is not kept once you exit.\n", timeutil.FormatClock(t.Remaining()))
			return nil
		case ev := <-t.Events():
			switch ev.Type {
			case countdown.EventTick:
				n.render(out, inPlace, c.TaskText, ev.Remaining)
			case countdown.EventExpired:
				if inPlace {
					_, _ = fmt.Fprintln(out)
				}
				return n.resolve(ctx, t, out, in, c)
			}
		}
	}
}

func (n *Timer) render(out io.Writer, inPlace bool, task string, remaining time.Duration) {
	if inPlace {
		_, _ = fmt.Fprintf(out, "\r%s  %s ", timeutil.FormatClock(remaining), task)
		return
	}
	_, _ = fmt.Fprintf(out, "%s  %s\n", timeutil.FormatClock(remaining), task)
}

func (n *Timer) resolve(ctx context.Context, t *countdown.Timer, out io.Writer, in io.Reader, c *challenge.Challenge) error {
	_, _ = color.New(color.Bold).Fprintln(out, "Time's up!")
	done, err := ask(out, bufio.NewReader(in), fmt.Sprintf("Did you finish %q? [y/n]: ", c.TaskText))
	if err != nil {
		return err
	}
	before, err := n.Service.Achievements(ctx)
	if err != nil {
		return err
	}
	outcome, err := n.Service.ResolveTimer(ctx, c.ID, t, done)
	if err != nil {
		return err
	}
	if outcome.Completion != nil {
		return complete.Report(ctx, n.Service, outcome.Completion, before)
	}
	if outcome.Notification != nil {
		_, _ = color.New(color.FgRed).Fprintln(out, outcome.Notification.Message)
	}
	return nil
}

func ask(out io.Writer, r *bufio.Reader, question string) (bool, error) {
	for {
		_, _ = fmt.Fprint(out, question)
		line, err := r.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, errors.New("no answer given, challenge left ongoing")
			}
			return false, err
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
