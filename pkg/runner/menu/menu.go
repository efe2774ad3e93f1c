// Package menu is the interactive console loop: add, list and delete exams
// until the user quits or input ends.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dday/pkg/exam"
	"tableflip.dev/dday/pkg/printers"
	"tableflip.dev/dday/pkg/runner/session"
	"tableflip.dev/dday/pkg/schedule"
	"tableflip.dev/dday/pkg/timeutil"
)

const banner = "========================"

type Menu struct {
	Owner string
	// Now is the clock used for D-day labels, time.Now when nil.
	Now func() time.Time

	Store *schedule.Store
	In    io.Reader
	Out   io.Writer
}

type loop struct {
	*Menu
	ctx   context.Context
	lines *bufio.Scanner
	pp    printers.PrettyPrint
}

// errQuit ends the loop, either on request or because input ran out.
var errQuit = errors.New("quit")

func (m *Menu) Do(ctx context.Context) error {
	if m.Store == nil {
		return errors.New("can not run menu, no schedule")
	}
	l := &loop{
		Menu:  m,
		ctx:   ctx,
		lines: bufio.NewScanner(m.In),
		pp:    printers.PrettyPrint{Out: m.Out},
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.showMenu()
		choice, err := l.prompt("Choose: ")
		if err != nil {
			return l.quit(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = l.add()
		case "2":
			l.list()
		case "3":
			err = l.remove()
		case "4", "q", "quit":
			err = errQuit
		default:
			l.say("Invalid choice. Please pick again.\n")
		}
		if err != nil {
			return l.quit(err)
		}
	}
}

func (l *loop) quit(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		l.say("Bye.")
		return nil
	}
	return err
}

func (l *loop) showMenu() {
	b := color.New(color.Bold)
	_, _ = b.Fprintln(l.pp.Writer(), banner)
	_, _ = b.Fprintln(l.pp.Writer(), "  Exam schedule")
	_, _ = b.Fprintln(l.pp.Writer(), banner)
	l.say("1. Add exam")
	l.say("2. List exams (by date, with D-day)")
	l.say("3. Delete exam")
	l.say("4. Quit")
}

func (l *loop) say(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(l.pp.Writer(), format+"\n", args...)
}

// prompt returns the next input line, or io.EOF once input is exhausted.
func (l *loop) prompt(label string) (string, error) {
	_, _ = fmt.Fprint(l.pp.Writer(), label)
	if !l.lines.Scan() {
		if err := l.lines.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return l.lines.Text(), nil
}

func (l *loop) today() time.Time {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	return timeutil.Today(now())
}

func (l *loop) items() []schedule.Item {
	return l.Store.ListFor(l.today(), l.Owner)
}

func (l *loop) add() error {
	l.say("\n[Add exam]")
	var fields [4]string
	labels := []string{
		"Subject: ",
		"Date (YYYY-MM-DD): ",
		"Description (e.g. midterm, quiz): ",
		"Note (enter for none): ",
	}
	for i, label := range labels {
		v, err := l.prompt(label)
		if err != nil {
			return err
		}
		fields[i] = strings.TrimSpace(v)
	}

	if fields[0] == "" {
		l.say("A subject is required; nothing was added.\n")
		return nil
	}
	if _, err := timeutil.ParseDate(fields[1]); err != nil {
		l.pp.Warn("%v; the exam is saved but sorts last", err)
	}

	e := exam.New(fields[0], fields[1], fields[2], fields[3])
	e.Owner = l.Owner
	_, err := l.Store.Add(l.ctx, e)
	if err := session.Tolerate(err); err != nil {
		return err
	}
	if err != nil {
		l.pp.Warn("could not save; the exam is kept for this session only")
	}
	l.say("Exam added!\n")
	return nil
}

func (l *loop) list() {
	l.say("")
	l.pp.Title("Exams (by date, with D-day)")
	items := l.items()
	if len(items) == 0 {
		l.say("No exams scheduled.\n")
		return
	}
	l.pp.Schedule(items...)
}

func (l *loop) remove() error {
	l.say("\n[Delete exam]")
	for {
		items := l.items()
		if len(items) == 0 {
			l.say("Nothing to delete.\n")
			return nil
		}
		l.pp.Schedule(items...)

		input, err := l.prompt("Number to delete (0 to cancel): ")
		if err != nil {
			return err
		}
		target, err := schedule.ResolveInput(items, input)
		switch {
		case errors.Is(err, schedule.ErrCancelled):
			l.say("Delete cancelled.\n")
			return nil
		case err != nil:
			var serr *schedule.SelectionError
			if errors.As(err, &serr) {
				l.say("Invalid number %q, choose 1-%d.\n", serr.Input, serr.Max)
				continue
			}
			return err
		}

		err = l.Store.Remove(l.ctx, target)
		if err := session.Tolerate(err); err != nil {
			return err
		}
		if err != nil {
			l.pp.Warn("could not save; the deletion only applies to this session")
		}
		l.say("Deleted %s.\n", target)
		return nil
	}
}
