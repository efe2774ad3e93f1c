package schedule

import (
	"strconv"
	"strings"

	"tableflip.dev/dday/pkg/exam"
)

// Resolve maps a 1-based position from a listing back to its exam. Position
// 0 yields ErrCancelled whatever the listing holds.
func Resolve(items []Item, position int) (exam.Exam, error) {
	if position == 0 {
		return exam.Exam{}, ErrCancelled
	}
	if position < 1 || position > len(items) {
		return exam.Exam{}, &SelectionError{Input: strconv.Itoa(position), Max: len(items)}
	}
	return items[position-1].Exam, nil
}

// ResolveInput is Resolve for text typed by a user.
func ResolveInput(items []Item, input string) (exam.Exam, error) {
	trimmed := strings.TrimSpace(input)
	position, err := strconv.Atoi(trimmed)
	if err != nil {
		return exam.Exam{}, &SelectionError{Input: trimmed, Max: len(items)}
	}
	return Resolve(items, position)
}
