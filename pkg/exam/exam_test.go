package exam

import (
	"testing"
)

func TestFromRowMissingFields(t *testing.T) {
	e := FromRow(map[string]any{"subject": "Math"})
	if e.Subject != "Math" {
		t.Fatalf("expected subject Math, got %q", e.Subject)
	}
	if e.Date != "" || e.Desc != "" || e.Note != "" || e.Owner != "" || e.ID != "" {
		t.Fatalf("expected missing fields to be empty, got %#v", e)
	}
}

func TestFromRowLooseValues(t *testing.T) {
	e := FromRow(map[string]any{
		"subject": 101,
		"date":    "2025-03-15",
		"desc":    nil,
		"note":    true,
	})
	if e.Subject != "101" {
		t.Fatalf("expected numeric subject as text, got %q", e.Subject)
	}
	if e.Desc != "" {
		t.Fatalf("expected nil desc to be empty, got %q", e.Desc)
	}
	if e.Note != "true" {
		t.Fatalf("expected bool note as text, got %q", e.Note)
	}
}

func TestRowOmitsEmptyIDAndOwner(t *testing.T) {
	row := New("Math", "2025-03-15", "Midterm", "").Row()
	if _, ok := row[FieldID]; ok {
		t.Fatalf("expected no id in row: %v", row)
	}
	if _, ok := row[FieldOwner]; ok {
		t.Fatalf("expected no owner in row: %v", row)
	}
	if row[FieldSubject] != "Math" || row[FieldNote] != "" {
		t.Fatalf("unexpected row: %v", row)
	}
}

func TestMatches(t *testing.T) {
	a := Exam{ID: "a", Subject: "Math", Date: "2025-03-15"}
	b := Exam{ID: "b", Subject: "Math", Date: "2025-03-15"}

	if a.Matches(b) {
		t.Fatalf("records with different ids must not match")
	}
	if !a.Matches(Exam{Subject: "Math", Date: "2025-03-15"}) {
		t.Fatalf("expected content match when target has no id")
	}
	if a.Matches(Exam{Subject: "Math", Date: "2025-03-16"}) {
		t.Fatalf("expected no match for different date")
	}
}

func TestWithID(t *testing.T) {
	e := New("Math", "2025-03-15", "", "").WithID()
	if e.ID == "" {
		t.Fatalf("expected generated id")
	}
	if again := e.WithID(); again.ID != e.ID {
		t.Fatalf("expected existing id to be kept")
	}
}

func TestWithRowID(t *testing.T) {
	e := New("Math", "2025-03-15", "", "")
	a, b := e.WithRowID(0), e.WithRowID(0)
	if a.ID == "" || a.ID != b.ID {
		t.Fatalf("expected the same derived id twice, got %q and %q", a.ID, b.ID)
	}
	if e.WithRowID(1).ID == a.ID {
		t.Fatalf("expected position to change the id")
	}
	if kept := (Exam{ID: "x", Subject: "Math"}).WithRowID(0); kept.ID != "x" {
		t.Fatalf("expected stored id to be kept, got %q", kept.ID)
	}
}
