package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/dday/pkg/schedule"
)

const (
	noteWidth  = 60
	noteIndent = 6
)

// PrettyPrint renders listings as a coloured table.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
}

// Writer is where output goes, colour-aware stdout by default.
func (pp *PrettyPrint) Writer() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Writer(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Writer(), title)
}

// Schedule prints one row per item followed by a count. Notes are wrapped
// underneath their row.
func (pp *PrettyPrint) Schedule(items ...schedule.Item) {
	w := pp.Writer()
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	n := color.New(color.Faint)

	owners := false
	for _, it := range items {
		owners = owners || it.Exam.Owner != ""
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, it := range items {
		cells := []interface{}{fmt.Sprintf("%d)", it.Position)}
		if pp.ShowID {
			cells = append(cells, y.Sprint(oneLine(it.Exam.ID)))
		}
		cells = append(cells, oneLine(it.Exam.Subject), oneLine(it.Exam.Date), oneLine(it.Exam.Desc))
		if owners {
			cells = append(cells, oneLine(ownerLabel(it.Exam.Owner)))
		}
		cells = append(cells, countdownColor(it).Sprint(it.Countdown()))
		tbl.AddRow(cells...)
	}

	// One table line per item; notes go between them.
	lines := strings.Split(tbl.String(), "\n")
	for i, it := range items {
		if i < len(lines) {
			_, _ = fmt.Fprintln(w, strings.TrimRight(lines[i], " "))
		}
		if note := strings.TrimSpace(it.Exam.Note); note != "" {
			wrapped := indent.String(wordwrap.String(note, noteWidth), noteIndent)
			_, _ = n.Fprintln(w, wrapped)
		}
	}
	_, _ = n.Fprintf(w, "(%s)\n\n", plural(len(items)))
}

func countdownColor(it schedule.Item) *color.Color {
	switch {
	case it.Days == nil:
		return color.New(color.FgRed, color.Italic)
	case *it.Days == 0:
		return color.New(color.FgRed, color.Bold)
	case *it.Days < 0:
		return color.New(color.Faint)
	case *it.Days <= 7:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgGreen)
	}
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// oneLine keeps a cell on its row; the table is split back into rows by line.
func oneLine(s string) string {
	return lineBreaks.Replace(s)
}

func ownerLabel(owner string) string {
	if owner == "" {
		return "-"
	}
	return "@" + owner
}

func plural(count int) string {
	if count == 1 {
		return "1 exam"
	}
	return fmt.Sprintf("%d exams", count)
}

// Warn prints a warning line in the listing's own stream.
func (pp *PrettyPrint) Warn(format string, args ...interface{}) {
	_, _ = color.New(color.FgYellow).Fprintf(pp.Writer(), "warning: "+format+"\n", args...)
}
