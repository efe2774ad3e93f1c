package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dday/pkg/exam"
)

// AddOptions
type AddOptions struct {
	Date string
	Desc string
	Note string
}

func AddExamArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Date of the exam, example: --date="2025-03-15".`)
	cmd.Flags().StringVar(&o.Desc, "desc", "",
		`Short description, example: --desc=midterm.`)
	cmd.Flags().StringVar(&o.Note, "note", "",
		"Free form note shown under the exam.")
	_ = cmd.MarkFlagRequired("date")
}

// Exam builds the record to add from the subject words and flags.
func (o *AddOptions) Exam(subject []string) exam.Exam {
	return exam.New(
		strings.TrimSpace(strings.Join(subject, " ")),
		strings.TrimSpace(o.Date),
		strings.TrimSpace(o.Desc),
		strings.TrimSpace(o.Note),
	)
}
