package timeutil

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestParseDateValid(t *testing.T) {
	d := mustDate(t, "2025-03-15")
	if d.Year() != 2025 || d.Month() != time.March || d.Day() != 15 {
		t.Fatalf("unexpected date: %v", d)
	}
}

func TestParseDateRejectsPadding(t *testing.T) {
	for _, in := range []string{" 2025-03-15", "2025-03-15\n", "\t2025-03-15 "} {
		if _, err := ParseDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q): expected ErrInvalidDate, got %v", in, err)
		}
	}
}

func TestOffsetPaddedDateIsInvalid(t *testing.T) {
	if off := Offset("2025-03-15 ", mustDate(t, "2025-03-10")); off != nil {
		t.Fatalf("expected nil offset for padded date, got %d", *off)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"2025-13-40",
		"2025-02-30",
		"2025/03/15",
		"15-03-2025",
		"2025-3-5",
		"tomorrow",
		"2025-03-15T10:00:00Z",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDate(in)
			if err == nil {
				t.Fatalf("expected error for %q", in)
			}
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("expected ErrInvalidDate, got %v", err)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	today := mustDate(t, "2025-03-10")
	cases := map[string]int{
		"2025-03-15": 5,
		"2025-03-10": 0,
		"2025-03-09": -1,
		"2024-03-10": -365,
		"2026-03-10": 365,
		"2025-02-28": -10,
	}
	for in, want := range cases {
		if got := DaysUntil(mustDate(t, in), today); got != want {
			t.Errorf("DaysUntil(%s) = %d, want %d", in, got, want)
		}
	}
}

func TestDaysUntilIgnoresClockTime(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	today := time.Date(2025, time.March, 10, 23, 59, 0, 0, loc)
	target := time.Date(2025, time.March, 11, 0, 1, 0, 0, loc)
	if got := DaysUntil(target, today); got != 1 {
		t.Fatalf("expected 1 day, got %d", got)
	}
}

func TestDaysUntilFarFuture(t *testing.T) {
	today := mustDate(t, "0001-01-01")
	target := mustDate(t, "9999-12-31")
	if got := DaysUntil(target, today); got != 3652058 {
		t.Fatalf("expected 3652058 days, got %d", got)
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2025, time.March, 10, 15, 4, 5, 6, time.UTC)
	got := Today(now)
	want := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOffsetInvalid(t *testing.T) {
	if off := Offset("2025-13-40", time.Now()); off != nil {
		t.Fatalf("expected nil offset, got %d", *off)
	}
}
