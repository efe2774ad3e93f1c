package schedule

import (
	"errors"
	"fmt"
)

// PersistenceError reports that the collaborator could not be read or
// written. The store stays usable after one; callers decide whether to warn.
type PersistenceError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("schedule: %s exams: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ErrCancelled is returned by Resolve for position 0.
var ErrCancelled = errors.New("schedule: selection cancelled")

// SelectionError reports a position outside the listing or input that is not
// a whole number.
type SelectionError struct {
	Input string
	Max   int
}

func (e *SelectionError) Error() string {
	if e.Max == 0 {
		return fmt.Sprintf("schedule: invalid selection %q: nothing to select", e.Input)
	}
	return fmt.Sprintf("schedule: invalid selection %q: choose 1-%d, or 0 to cancel", e.Input, e.Max)
}
