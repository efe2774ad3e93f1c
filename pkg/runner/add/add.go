package add

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"tableflip.dev/dday/pkg/exam"
	"tableflip.dev/dday/pkg/printers"
	"tableflip.dev/dday/pkg/runner/session"
	"tableflip.dev/dday/pkg/schedule"
	"tableflip.dev/dday/pkg/timeutil"
)

type Add struct {
	Exam  exam.Exam
	Owner string
	Today time.Time

	Store *schedule.Store
	Out   io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no schedule")
	}
	if strings.TrimSpace(n.Exam.Subject) == "" {
		return errors.New("add: subject is required")
	}

	pp := printers.PrettyPrint{Out: n.Out}

	if _, err := timeutil.ParseDate(n.Exam.Date); err != nil {
		slog.Debug("adding exam with unparseable date", "date", n.Exam.Date)
		pp.Warn("%v; the exam is saved but sorts last", err)
	}
	if n.Exam.Owner == "" {
		n.Exam.Owner = n.Owner
	}

	added, err := n.Store.Add(ctx, n.Exam)
	if err := session.Tolerate(err); err != nil {
		return err
	}
	if err != nil {
		pp.Warn("exam kept for this session only")
	}
	slog.Info("exam added", "id", added.ID, "subject", added.Subject)

	pp.Title("Exams")
	pp.Schedule(n.Store.ListFor(n.Today, n.Owner)...)
	return nil
}
