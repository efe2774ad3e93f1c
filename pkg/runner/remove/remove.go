package remove

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"tableflip.dev/dday/pkg/exam"
	"tableflip.dev/dday/pkg/printers"
	"tableflip.dev/dday/pkg/runner/session"
	"tableflip.dev/dday/pkg/schedule"
)

// Remove deletes one exam from the owner's listing, picked either by its
// position or by ID.
type Remove struct {
	Position int
	ID       string
	Owner    string
	Today    time.Time

	Store *schedule.Store
	Out   io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no schedule")
	}
	pp := printers.PrettyPrint{Out: n.Out}

	target, err := n.target()
	if errors.Is(err, schedule.ErrCancelled) {
		_, _ = fmt.Fprintln(pp.Writer(), "Delete cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := session.Tolerate(n.Store.Remove(ctx, target)); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(pp.Writer(), "Deleted %s.\n\n", target)

	pp.Title("Exams")
	pp.Schedule(n.Store.ListFor(n.Today, n.Owner)...)
	return nil
}

func (n *Remove) target() (exam.Exam, error) {
	items := n.Store.ListFor(n.Today, n.Owner)
	if n.ID == "" {
		return schedule.Resolve(items, n.Position)
	}
	for _, it := range items {
		if it.Exam.ID == n.ID {
			return it.Exam, nil
		}
	}
	return exam.Exam{}, fmt.Errorf("remove: no exam with id %s", strconv.Quote(n.ID))
}
