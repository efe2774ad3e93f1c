package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dday/pkg/commands/options"
	"tableflip.dev/dday/pkg/logging"
	"tableflip.dev/dday/pkg/runner/session"
	"tableflip.dev/dday/pkg/store"
)

func New() *cobra.Command {
	e := &env{opts: &options.GlobalOptions{}}

	cmd := &cobra.Command{
		Use:   "dday",
		Short: base.Wrap80("Keep track of upcoming exams and how many days are left until each one."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := e.opts.LogLevel
			// A broken config is reported by the commands that need it.
			if cfg, err := e.config(); err == nil {
				level = cfg.LogLevel()
			}
			logging.Setup(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddGlobalArgs(cmd, e.opts)

	addCommands(cmd, e)
	return cmd
}

func addCommands(topLevel *cobra.Command, e *env) {
	addAdd(topLevel, e)
	addList(topLevel, e)
	addDelete(topLevel, e)
	addMenu(topLevel, e)
	addInfo(topLevel, e)
	addVersion(topLevel)
	addCompletions(topLevel, e)
}

// env resolves configuration once per invocation, after flags are parsed.
type env struct {
	opts *options.GlobalOptions
	cfg  store.Config
}

func (e *env) config() (store.Config, error) {
	if e.cfg != nil {
		return e.cfg, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	e.cfg = store.Override(cfg, e.opts.Owner, e.opts.LogLevel)
	return e.cfg, nil
}

func (e *env) open(ctx context.Context) (*session.Session, error) {
	cfg, err := e.config()
	if err != nil {
		return nil, err
	}
	today, err := e.opts.GetToday()
	if err != nil {
		return nil, err
	}
	return session.Open(ctx, cfg, today)
}
