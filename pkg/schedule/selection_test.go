package schedule

import (
	"errors"
	"testing"

	"tableflip.dev/dday/pkg/exam"
)

func listing(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Position: i + 1, Exam: exam.Exam{ID: string(rune('a' + i))}}
	}
	return items
}

func TestResolveCancel(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		_, err := Resolve(listing(n), 0)
		if !errors.Is(err, ErrCancelled) {
			t.Fatalf("len %d: expected ErrCancelled, got %v", n, err)
		}
	}
}

func TestResolveInRange(t *testing.T) {
	items := listing(3)
	for pos := 1; pos <= 3; pos++ {
		got, err := Resolve(items, pos)
		if err != nil {
			t.Fatalf("position %d: %v", pos, err)
		}
		if got.ID != items[pos-1].Exam.ID {
			t.Fatalf("position %d: got %q", pos, got.ID)
		}
	}
}

func TestResolveOutOfRange(t *testing.T) {
	for _, tc := range []struct {
		n, pos int
	}{
		{0, 1}, {3, 4}, {3, -1}, {3, 100},
	} {
		_, err := Resolve(listing(tc.n), tc.pos)
		var serr *SelectionError
		if !errors.As(err, &serr) {
			t.Fatalf("len %d pos %d: expected SelectionError, got %v", tc.n, tc.pos, err)
		}
		if serr.Max != tc.n {
			t.Fatalf("expected max %d, got %d", tc.n, serr.Max)
		}
	}
}

func TestResolveInput(t *testing.T) {
	items := listing(2)

	if got, err := ResolveInput(items, " 2\n"); err != nil || got.ID != "b" {
		t.Fatalf("expected b, got %q, %v", got.ID, err)
	}
	if _, err := ResolveInput(items, "0"); !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	for _, in := range []string{"", "two", "1.5", "1a"} {
		var serr *SelectionError
		if _, err := ResolveInput(items, in); !errors.As(err, &serr) {
			t.Fatalf("input %q: expected SelectionError, got %v", in, err)
		}
	}
}
