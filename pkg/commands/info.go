package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dday/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where exams are stored.",
		Example: `
dday info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			i := info.Info{
				Config: s.Config,
				Store:  s.Store,
				Out:    cmd.OutOrStdout(),
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
