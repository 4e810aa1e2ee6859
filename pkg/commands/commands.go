package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/commands/options"
	"github.com/Omkarop0808/Excuse-Killer/pkg/migrate"
	"github.com/Omkarop0808/Excuse-Killer/pkg/store"
)

var (
	output = &options.OutputOptions{}
	env    = &runtime{}
)

// runtime is what every command needs once setup has run.
type runtime struct {
	cfg   store.Config
	svc   *app.Service
	close func() error
}

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "excuse-killer",
		Short: options.Wrap80("Turn excuses into finished challenges. Track streaks, XP and achievements from the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd.Context())
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addCreate(topLevel)
	addStart(topLevel)
	addComplete(topLevel)
	addAbandon(topLevel)
	addList(topLevel)
	addStatus(topLevel)
	addAchievements(topLevel)
	addHistory(topLevel)
	addTimer(topLevel)
	addMigrate(topLevel)
	addInfo(topLevel)
	addSeed(topLevel)
	addClear(topLevel)
	addExport(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// setup loads config, opens the store and upgrades legacy data. A failed
// migration is logged and the command carries on with the data as it is.
func setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg.LogLevel())
	slog.SetDefault(log)

	kv, closer, err := store.Open(cfg)
	if err != nil {
		return err
	}
	env.cfg = cfg
	env.close = closer
	env.svc = &app.Service{
		Store: store.NewAdapter(kv, store.WithQuota(cfg.Quota()), store.WithLogger(log)),
		Log:   log,
	}

	var merr *migrate.MigrationError
	if _, err := env.svc.Migrate(ctx); err != nil && !errors.As(err, &merr) {
		return err
	}
	return nil
}

func teardown() error {
	if env.close == nil {
		return nil
	}
	err := env.close()
	env.close = nil
	return err
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: l,
	}))
}
