package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/dday/pkg/runner/menu"
)

func addMenu(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu to add, list and delete exams.",
		Example: `
dday menu
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			m := menu.Menu{
				Owner: s.Config.Owner(),
				Store: s.Store,
				In:    cmd.InOrStdin(),
				Out:   cmd.OutOrStdout(),
			}
			if e.opts.Today != "" {
				m.Now = func() time.Time { return s.Today }
			}
			return m.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
