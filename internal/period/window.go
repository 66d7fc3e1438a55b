// Package period provides the calendar arithmetic behind the week view and
// the reporting summaries: deriving the Monday-based week that contains a
// date, paging between weeks, and computing the date span of a named
// reporting period. Everything here is pure computation over time.Time
// values; callers own the currently selected date and pass it in explicitly.
package period

import "time"

// Direction selects which way Page moves the reference date.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// Week is a Monday-starting 7-day window. Start is the Monday at midnight;
// Days holds the seven consecutive dates Monday..Sunday.
type Week struct {
	Start time.Time
	Days  [7]time.Time
}

// End returns the Sunday of the week.
func (w Week) End() time.Time {
	return w.Days[6]
}

// WeekContaining returns the ISO week (Monday = day 1) that contains the
// reference date. The computation uses calendar-aware date arithmetic, so
// month, year and leap-day boundaries are handled by the time package.
func WeekContaining(reference time.Time) Week {
	day := StartOfDay(reference)
	offset := (int(day.Weekday()) + 6) % 7 // Monday -> 0 .. Sunday -> 6
	start := day.AddDate(0, 0, -offset)

	var w Week
	w.Start = start
	for i := range w.Days {
		w.Days[i] = start.AddDate(0, 0, i)
	}
	return w
}

// Page moves the reference date by exactly one week in the given direction,
// preserving its time-of-day.
func Page(reference time.Time, direction Direction) time.Time {
	if direction == Backward {
		return reference.AddDate(0, 0, -7)
	}
	return reference.AddDate(0, 0, 7)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
