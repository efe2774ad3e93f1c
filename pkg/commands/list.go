package commands

import (
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/dday/pkg/commands/options"
	"tableflip.dev/dday/pkg/runner/list"
)

func addList(topLevel *cobra.Command, e *env) {
	oo := &options.OutputOptions{}
	io := &options.IDOptions{}
	wo := &options.WatchOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List exams by date with their D-day.",
		Example: `
dday list
dday ls --output json
dday list --owner kim --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := oo.Format()
			if err != nil {
				return err
			}
			s, err := e.open(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			l := list.List{
				Owner:     s.Config.Owner(),
				Today:     s.Today,
				Format:    format,
				ShowID:    io.ShowID,
				Watch:     wo.Watch,
				WatchPath: s.Persistence.Path(),
				Store:     s.Store,
				Out:       cmd.OutOrStdout(),
			}
			ctx := cmd.Context()
			if wo.Watch {
				if l.WatchPath == "" {
					return errors.New("the configured backend has nothing to watch")
				}
				var stop func()
				ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
				defer stop()
			}
			return oo.HandleError(l.Do(ctx))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddWatchArg(cmd, wo)

	topLevel.AddCommand(cmd)
}
