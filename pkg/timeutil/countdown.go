package timeutil

import (
	"fmt"
	"time"
)

// InvalidDateLabel is shown in place of a countdown for unparseable dates.
const InvalidDateLabel = "invalid date"

// FormatCountdown renders a day offset as a D-day label: D-3 before the
// exam, D-day on it, D+2 after it. A nil offset means the date was invalid.
func FormatCountdown(offset *int) string {
	if offset == nil {
		return InvalidDateLabel
	}
	switch n := *offset; {
	case n > 0:
		return fmt.Sprintf("D-%d", n)
	case n == 0:
		return "D-day"
	default:
		return fmt.Sprintf("D+%d", -n)
	}
}

// Countdown is the label for a raw date string as seen from today.
func Countdown(date string, today time.Time) string {
	return FormatCountdown(Offset(date, today))
}
