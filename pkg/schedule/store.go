// Package schedule keeps the session's exam collection and the rules for
// listing, adding and deleting exams.
package schedule

import (
	"context"
	"errors"
	"sort"
	"time"

	"tableflip.dev/dday/pkg/exam"
	"tableflip.dev/dday/pkg/timeutil"
)

// Persistence is the bulk storage the store delegates to. WriteAll replaces
// everything previously stored.
type Persistence interface {
	ReadAll(ctx context.Context) ([]exam.Exam, error)
	WriteAll(ctx context.Context, exams []exam.Exam) error
}

// Store is one session's exam collection. It is not safe for concurrent use.
type Store struct {
	persistence Persistence
	exams       []exam.Exam
}

func New(p Persistence) *Store {
	return &Store{persistence: p}
}

// Item is one line of a sorted listing.
type Item struct {
	Position int
	Exam     exam.Exam
	// Days until the exam, nil when its date does not parse.
	Days *int
}

// Countdown is the D-day label for the item.
func (i Item) Countdown() string {
	return timeutil.FormatCountdown(i.Days)
}

// Load replaces the collection with what the collaborator holds. Rows stored
// without an ID get one derived from their position and content. On failure
// the collection is left empty and a *PersistenceError is returned.
func (s *Store) Load(ctx context.Context) error {
	s.exams = nil
	if s.persistence == nil {
		return &PersistenceError{Op: "read", Err: errors.New("no persistence configured")}
	}
	all, err := s.persistence.ReadAll(ctx)
	if err != nil {
		return &PersistenceError{Op: "read", Err: err}
	}
	s.exams = make([]exam.Exam, 0, len(all))
	for i, e := range all {
		s.exams = append(s.exams, e.WithRowID(i))
	}
	return nil
}

// Add appends e and writes the whole collection. Nothing is validated. When
// the write fails the exam stays in memory and a *PersistenceError is
// returned alongside it.
func (s *Store) Add(ctx context.Context, e exam.Exam) (exam.Exam, error) {
	e = e.WithID()
	s.exams = append(s.exams, e)
	return e, s.save(ctx)
}

// Remove deletes the first exam matching e and writes the whole collection.
// It is a no-op when nothing matches.
func (s *Store) Remove(ctx context.Context, e exam.Exam) error {
	for i, candidate := range s.exams {
		if candidate.Matches(e) {
			s.exams = append(s.exams[:i:i], s.exams[i+1:]...)
			return s.save(ctx)
		}
	}
	return nil
}

func (s *Store) save(ctx context.Context) error {
	if s.persistence == nil {
		return &PersistenceError{Op: "write", Err: errors.New("no persistence configured")}
	}
	if err := s.persistence.WriteAll(ctx, s.All()); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}

// All returns a copy of the collection in storage order.
func (s *Store) All() []exam.Exam {
	out := make([]exam.Exam, len(s.exams))
	copy(out, s.exams)
	return out
}

func (s *Store) Len() int {
	return len(s.exams)
}

// ListSorted returns every exam by ascending date, annotated against today.
// It is recomputed on each call.
func (s *Store) ListSorted(today time.Time) []Item {
	sorted := Sort(s.exams)
	items := make([]Item, len(sorted))
	for i, e := range sorted {
		items[i] = Item{
			Position: i + 1,
			Exam:     e,
			Days:     timeutil.Offset(e.Date, today),
		}
	}
	return items
}

// ListFor is ListSorted narrowed to one owner, see FilterOwner.
func (s *Store) ListFor(today time.Time, owner string) []Item {
	return FilterOwner(s.ListSorted(today), owner)
}

// Sort orders exams by ascending date. Exams whose dates do not parse come
// last. Ties keep their input order.
func Sort(exams []exam.Exam) []exam.Exam {
	type keyed struct {
		e     exam.Exam
		at    time.Time
		valid bool
	}
	ks := make([]keyed, len(exams))
	for i, e := range exams {
		at, err := timeutil.ParseDate(e.Date)
		ks[i] = keyed{e: e, at: at, valid: err == nil}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		left, right := ks[i], ks[j]
		switch {
		case left.valid && right.valid:
			return left.at.Before(right.at)
		default:
			return left.valid && !right.valid
		}
	})
	out := make([]exam.Exam, len(ks))
	for i, k := range ks {
		out[i] = k.e
	}
	return out
}

// FilterOwner keeps one owner's items and renumbers them. An empty owner
// keeps everything.
func FilterOwner(items []Item, owner string) []Item {
	if owner == "" {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Exam.Owner != owner {
			continue
		}
		it.Position = len(out) + 1
		out = append(out, it)
	}
	return out
}
