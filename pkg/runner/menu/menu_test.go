package menu

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dday/pkg/exam"
	"tableflip.dev/dday/pkg/schedule"
	"tableflip.dev/dday/pkg/store"
)

func run(t *testing.T, p *store.Memory, owner, input string) string {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	s := schedule.New(p)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	var out bytes.Buffer
	m := Menu{
		Owner: owner,
		Now:   func() time.Time { return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC) },
		Store: s,
		In:    strings.NewReader(input),
		Out:   &out,
	}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("menu: %v", err)
	}
	return out.String()
}

func TestMenuAddThenList(t *testing.T) {
	p := store.NewMemory()
	out := run(t, p, "", "1\nMath\n2025-03-15\nMidterm\n\n2\n4\n")

	rows := p.Rows()
	if len(rows) != 1 || rows[0].Subject != "Math" || rows[0].Desc != "Midterm" {
		t.Fatalf("unexpected stored rows: %#v", rows)
	}
	if !strings.Contains(out, "Exam added!") {
		t.Fatalf("expected confirmation:\n%s", out)
	}
	if !strings.Contains(out, "D-5") {
		t.Fatalf("expected D-5 in listing:\n%s", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "Bye.") {
		t.Fatalf("expected goodbye:\n%s", out)
	}
}

func TestMenuAddRequiresSubject(t *testing.T) {
	p := store.NewMemory()
	out := run(t, p, "", "1\n  \n2025-03-15\n\n\n4\n")
	if len(p.Rows()) != 0 || p.Writes != 0 {
		t.Fatalf("expected nothing stored")
	}
	if !strings.Contains(out, "subject is required") {
		t.Fatalf("expected validation message:\n%s", out)
	}
}

func TestMenuAddInvalidDateWarnsButStores(t *testing.T) {
	p := store.NewMemory()
	out := run(t, p, "kim", "1\nArt\n2025-13-40\n\n\n4\n")
	rows := p.Rows()
	if len(rows) != 1 || rows[0].Date != "2025-13-40" || rows[0].Owner != "kim" {
		t.Fatalf("unexpected rows: %#v", rows)
	}
	if !strings.Contains(out, "warning:") {
		t.Fatalf("expected warning:\n%s", out)
	}
}

func TestMenuDeleteBySortedPosition(t *testing.T) {
	p := store.NewMemory(
		exam.New("Late", "2025-06-01", "", ""),
		exam.New("Early", "2025-04-01", "", ""),
	)
	run(t, p, "", "3\n1\n4\n")
	rows := p.Rows()
	if len(rows) != 1 || rows[0].Subject != "Late" {
		t.Fatalf("expected Early to be deleted, got %#v", rows)
	}
}

func TestMenuDeleteInvalidThenCancel(t *testing.T) {
	p := store.NewMemory(exam.New("Math", "2025-03-15", "", ""))
	out := run(t, p, "", "3\n7\nabc\n0\n4\n")
	if len(p.Rows()) != 1 || p.Writes != 0 {
		t.Fatalf("expected store untouched")
	}
	if strings.Count(out, "Invalid number") != 2 {
		t.Fatalf("expected two re-prompts:\n%s", out)
	}
	if !strings.Contains(out, "Delete cancelled.") {
		t.Fatalf("expected cancel message:\n%s", out)
	}
}

func TestMenuDeleteEmpty(t *testing.T) {
	out := run(t, store.NewMemory(), "", "3\n4\n")
	if !strings.Contains(out, "Nothing to delete.") {
		t.Fatalf("expected empty message:\n%s", out)
	}
}

func TestMenuListFiltersOwner(t *testing.T) {
	p := store.NewMemory(
		exam.Exam{Subject: "Mine", Date: "2025-03-11", Owner: "kim"},
		exam.Exam{Subject: "Theirs", Date: "2025-03-12", Owner: "lee"},
	)
	out := run(t, p, "kim", "2\nq\n")
	if !strings.Contains(out, "Mine") || strings.Contains(out, "Theirs") {
		t.Fatalf("expected only kim's exams:\n%s", out)
	}
}

func TestMenuEOFQuits(t *testing.T) {
	out := run(t, store.NewMemory(), "", "1\nMath\n")
	if !strings.Contains(out, "Bye.") {
		t.Fatalf("expected graceful exit on EOF:\n%s", out)
	}
}

func TestMenuUnknownChoice(t *testing.T) {
	out := run(t, store.NewMemory(), "", "9\n4\n")
	if !strings.Contains(out, "Invalid choice") {
		t.Fatalf("expected invalid choice message:\n%s", out)
	}
}

func TestMenuSaveFailureKeepsGoing(t *testing.T) {
	p := store.NewMemory()
	p.WriteErr = errors.New("read-only file system")
	out := run(t, p, "", "1\nMath\n2025-03-15\n\n\n2\n4\n")
	if !strings.Contains(out, "could not save") || !strings.Contains(out, "Math") {
		t.Fatalf("expected warning and in-memory exam:\n%s", out)
	}
}
