// Package timeutil provides the calendar-day arithmetic and display
// formatting shared by the risk and urgency engines. All day-difference
// calculations normalize both operands to midnight first so the results
// are stable integers independent of time-of-day.
package timeutil

import (
	"fmt"
	"time"
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole calendar days from a to b, negative when
// b is before a. Both operands are midnight-normalized before
// differencing.
func DaysBetween(a, b time.Time) int {
	diff := StartOfDay(b).Sub(StartOfDay(a))
	days := int(diff.Hours() / 24)
	// integer division truncates toward zero; floor for negative spans
	if diff < 0 && diff%(24*time.Hour) != 0 {
		days--
	}
	return days
}

// RelativeLabel returns a human-readable relative time string.
// Examples: "just now", "2h ago", "Yesterday", "3d ago", "12 Jan".
func RelativeLabel(t, now time.Time) string {
	diff := now.Sub(t)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	// elapsed whole days, not calendar days: "Yesterday" means 24-48h ago
	days := hours / 24

	switch {
	case mins < 2:
		return "just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days == 1:
		return "Yesterday"
	case days < 30:
		return fmt.Sprintf("%dd ago", days)
	default:
		return t.Format("2 Jan")
	}
}

// FormatDate renders a timestamp as a short display date, e.g.
// "12 Jan 2026".
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}

// FormatDateTime renders a timestamp with time of day, e.g.
// "12 Jan 2026, 15:04".
func FormatDateTime(t time.Time) string {
	return t.Format("2 Jan 2006, 15:04")
}
