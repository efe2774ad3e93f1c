package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/dday/pkg/schedule"
	"tableflip.dev/dday/pkg/store"
)

type Info struct {
	Config store.Config
	Store  *schedule.Store
	Out    io.Writer
}

func (n *Info) Do(_ context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}

	if override := os.Getenv("DDAY_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "DDAY_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "DDAY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	file := n.Config.ConfigFile()
	if file == "" {
		file = "none (defaults and environment)"
	}
	_, _ = fmt.Fprintln(w, "Config file:", file)
	_, _ = fmt.Fprintln(w, "Backend:    ", n.Config.Backend())
	_, _ = fmt.Fprintln(w, "Path:       ", n.Config.BasePath())
	owner := n.Config.Owner()
	if owner == "" {
		owner = "(everyone)"
	}
	_, _ = fmt.Fprintln(w, "Owner:      ", owner)

	if n.Store == nil {
		return fmt.Errorf("failed to load the schedule")
	}
	_, _ = fmt.Fprintln(w, "Exams:      ", n.Store.Len())
	return nil
}
