package options

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/dday/pkg/timeutil"
)

// GlobalOptions are the persistent flags every command sees.
type GlobalOptions struct {
	Owner    string
	Today    string
	LogLevel string
}

func AddGlobalArgs(cmd *cobra.Command, o *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&o.Owner, "owner", "",
		"Only show and add exams for this owner, overriding the config.")
	cmd.PersistentFlags().StringVar(&o.Today, "today", "",
		`Pin the date D-day labels count from, example: --today="2025-03-10".`)
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "",
		"Log level: debug, info, warn or error.")
}

// GetToday returns the pinned date, or the zero time when none was given.
func (o *GlobalOptions) GetToday() (time.Time, error) {
	if o.Today == "" {
		return time.Time{}, nil
	}
	return timeutil.ParseDate(strings.TrimSpace(o.Today))
}
