package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dday/pkg/commands/options"
	"tableflip.dev/dday/pkg/runner/remove"
	"tableflip.dev/dday/pkg/store"
)

func addDelete(topLevel *cobra.Command, e *env) {
	io := &options.IDOptions{}
	position := 0

	cmd := &cobra.Command{
		Use:     "delete [position]",
		Aliases: []string{"rm"},
		Short:   "Delete an exam by its position in the listing, or by id.",
		Example: `
dday delete 2
dday rm --id 6f1c0c6e-9d0b-4b7a-a2a4-0a8e0f3b7c11
dday delete 0   # cancels
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if io.ID != "" {
				if len(args) > 0 {
					return errors.New("give either a position or --id, not both")
				}
				return nil
			}
			if len(args) != 1 {
				return errors.New("a position is required, see dday list")
			}
			n, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("%q is not a position", args[0])
			}
			position = n
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			r := remove.Remove{
				Position: position,
				ID:       io.ID,
				Owner:    s.Config.Owner(),
				Today:    s.Today,
				Store:    s.Store,
				Out:      cmd.OutOrStdout(),
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddIDArgs(cmd, io)
	_ = cmd.RegisterFlagCompletionFunc("id", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return examIDCompletions(e, toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}

// examIDCompletions offers the ids of the owner's exams, described by subject
// and date.
func examIDCompletions(e *env, toComplete string) []string {
	cfg, err := e.config()
	if err != nil {
		return nil
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil
	}
	defer p.Close()
	exams, err := p.ReadAll(context.Background())
	if err != nil {
		return nil
	}
	var ids []string
	for _, x := range exams {
		if x.ID == "" || !strings.HasPrefix(x.ID, toComplete) {
			continue
		}
		if owner := cfg.Owner(); owner != "" && x.Owner != owner {
			continue
		}
		ids = append(ids, fmt.Sprintf("%s\t%s %s", x.ID, x.Subject, x.Date))
	}
	return ids
}
