package timecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical external date representation.
	DateLayout = "02-01-2006"
	// ClockLayout is the 24-hour wall-clock time of day.
	ClockLayout = "15:04:05"
)

// ToSeconds converts an HH:MM:SS wall-clock string to a second count.
// The input must already match the record validator's time pattern;
// behavior on any other input is undefined.
func ToSeconds(clock string) int {
	parts := strings.SplitN(clock, ":", 3)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	s, _ := strconv.Atoi(parts[2])
	return h*3600 + m*60 + s
}

// FormatDuration renders a second count as a zero-padded HH:MM:SS string.
// Negative counts are rendered with a leading minus sign; this is the
// defined representation for over-quota and out-of-order figures.
func FormatDuration(seconds int) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}

// FormatClock returns the HH:MM:SS time of day of t.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatDate returns the DD-MM-YYYY representation of t's calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a DD-MM-YYYY date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// WeekRange returns the first and last instant of the calendar week
// containing t, for the given week-start day.
func WeekRange(t time.Time, weekStart time.Weekday) (time.Time, time.Time) {
	back := (int(t.Weekday()) - int(weekStart) + 7) % 7
	start := StartOfDay(t.AddDate(0, 0, -back))
	end := EndOfDay(start.AddDate(0, 0, 6))
	return start, end
}

// MonthRange returns the first and last instant of the calendar month
// containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := EndOfDay(start.AddDate(0, 1, -1))
	return start, end
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Within reports whether t falls inside [from, to] inclusive.
func Within(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
