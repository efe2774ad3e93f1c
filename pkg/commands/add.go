package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/dday/pkg/commands/options"
	"tableflip.dev/dday/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command, e *env) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "add <subject>",
		Short: "Add an exam to the schedule.",
		Example: `
dday add Math --date 2025-03-15 --desc midterm
dday add Korean History --date 2025-04-02 --note "chapters 3-5"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("a subject is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			a := add.Add{
				Exam:  ao.Exam(args),
				Owner: s.Config.Owner(),
				Today: s.Today,
				Store: s.Store,
				Out:   cmd.OutOrStdout(),
			}
			return a.Do(cmd.Context())
		},
	}

	options.AddExamArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
