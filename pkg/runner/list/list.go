package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"tableflip.dev/dday/pkg/printers"
	"tableflip.dev/dday/pkg/runner/session"
	"tableflip.dev/dday/pkg/schedule"
	"tableflip.dev/dday/pkg/store"
)

type List struct {
	Owner  string
	Today  time.Time
	Format printers.Format
	ShowID bool
	// Watch keeps listing after every change to the data at WatchPath until
	// ctx is done.
	Watch     bool
	WatchPath string

	Store *schedule.Store
	Out   io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list, no schedule")
	}
	if err := n.render(); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := store.Watch(ctx, n.WatchPath)
	if err != nil {
		return err
	}
	for range events {
		slog.Debug("exam data changed, reloading", "path", n.WatchPath)
		if err := session.Tolerate(n.Store.Load(ctx)); err != nil {
			return err
		}
		if err := n.render(); err != nil {
			return err
		}
	}
	return nil
}

func (n *List) render() error {
	items := n.Store.ListFor(n.Today, n.Owner)
	return printers.Listing(n.Out, n.Format, "Exams", items, n.ShowID)
}
