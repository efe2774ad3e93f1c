package options

import (
	"github.com/spf13/cobra"
)

// WatchOptions
type WatchOptions struct {
	Watch bool
}

func AddWatchArg(cmd *cobra.Command, o *WatchOptions) {
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep running and list again whenever the exam data changes.")
}
