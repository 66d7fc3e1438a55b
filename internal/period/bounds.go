package period

import (
	"fmt"
	"time"
)

// Period names a reporting window anchored on a reference date.
type Period string

const (
	Day    Period = "day"
	WeekP  Period = "week"
	Month  Period = "month"
	Year   Period = "year"
	Custom Period = "custom"
)

// ValidPeriods is the canonical set of accepted period strings.
var ValidPeriods = map[string]bool{
	"day": true, "week": true, "month": true, "year": true, "custom": true,
}

// Parse converts a user-supplied period name into a Period.
func Parse(s string) (Period, error) {
	if !ValidPeriods[s] {
		return "", fmt.Errorf("unknown period %q (expected day, week, month, year or custom)", s)
	}
	return Period(s), nil
}

// Range is a caller-supplied custom date range. Both dates are interpreted
// at day granularity and are inclusive.
type Range struct {
	Start time.Time
	End   time.Time
}

// Span is a half-open instant interval [Start, End). Start is midnight of
// the first included day and End is midnight after the last included day,
// so every boundary date belongs to exactly one span.
type Span struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the span.
func (s Span) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}

// Days returns the number of calendar days the span covers. Counting by
// date arithmetic keeps the figure right in locations where a DST shift
// makes some days shorter than 24 hours.
func (s Span) Days() int {
	days := 0
	for d := s.Start; d.Before(s.End); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// InvalidRangeError reports a custom range whose end date precedes its
// start date. It is the only error the reporting core raises; callers are
// expected to reject the range rather than clamp it.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: end %s is before start %s",
		e.End.Format("2006-01-02"), e.Start.Format("2006-01-02"))
}

// Bounds computes the span of the given period around the reference date.
// day covers the single calendar day of reference; week the Monday..Sunday
// window containing it; month the first through the true last day of the
// month (28/29/30/31); year Jan 1..Dec 31. custom uses the supplied range
// and fails with *InvalidRangeError when end < start.
func Bounds(p Period, reference time.Time, custom *Range) (Span, error) {
	switch p {
	case Day:
		start := StartOfDay(reference)
		return Span{Start: start, End: start.AddDate(0, 0, 1)}, nil
	case WeekP:
		w := WeekContaining(reference)
		return Span{Start: w.Start, End: w.Start.AddDate(0, 0, 7)}, nil
	case Month:
		start := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
		return Span{Start: start, End: start.AddDate(0, 1, 0)}, nil
	case Year:
		start := time.Date(reference.Year(), time.January, 1, 0, 0, 0, 0, reference.Location())
		return Span{Start: start, End: start.AddDate(1, 0, 0)}, nil
	case Custom:
		if custom == nil {
			return Span{}, fmt.Errorf("custom period requires an explicit range")
		}
		start := StartOfDay(custom.Start)
		end := StartOfDay(custom.End)
		if end.Before(start) {
			return Span{}, &InvalidRangeError{Start: start, End: end}
		}
		return Span{Start: start, End: end.AddDate(0, 0, 1)}, nil
	default:
		return Span{}, fmt.Errorf("unknown period %q", p)
	}
}
