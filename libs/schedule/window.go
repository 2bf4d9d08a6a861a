package schedule

import (
	"fmt"
	"time"
)

// Granularity selects how wide a calendar window is.
type Granularity int

const (
	WindowDay Granularity = iota
	WindowWeek
	WindowMonth
)

var granularityLabels = map[Granularity]string{
	WindowDay:   "day",
	WindowWeek:  "week",
	WindowMonth: "month",
}

func (g Granularity) String() string {
	if label, ok := granularityLabels[g]; ok {
		return label
	}
	return fmt.Sprintf("Granularity(%d)", int(g))
}

// InvalidWindowError reports a granularity outside the supported set.
type InvalidWindowError struct {
	Granularity string
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("unsupported window granularity %q", e.Granularity)
}

// ParseGranularity maps a request label to a Granularity.
func ParseGranularity(label string) (Granularity, error) {
	for g, l := range granularityLabels {
		if l == label {
			return g, nil
		}
	}
	return 0, &InvalidWindowError{Granularity: label}
}

// ResolveWindow converts a reference date into an inclusive
// [start, end] day range. Day is the date itself. Week runs from the
// Monday of ref's week through the following Sunday. Month runs from
// the first through the last day of ref's month, with December
// rolling over into January of the next year.
func ResolveWindow(ref time.Time, g Granularity) (time.Time, time.Time, error) {
	y, m, d := ref.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())

	switch g {
	case WindowDay:
		return day, day, nil
	case WindowWeek:
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil
	case WindowMonth:
		start := time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
		var next time.Time
		if m == time.December {
			next = time.Date(y+1, time.January, 1, 0, 0, 0, 0, ref.Location())
		} else {
			next = time.Date(y, m+1, 1, 0, 0, 0, 0, ref.Location())
		}
		return start, next.AddDate(0, 0, -1), nil
	default:
		return time.Time{}, time.Time{}, &InvalidWindowError{Granularity: g.String()}
	}
}

// FilterByWindow keeps the bookings whose date falls inside the
// inclusive [start, end] range, optionally narrowed to one status.
// Input order is preserved and the input slice is never mutated; an
// empty result is a normal answer.
func FilterByWindow(bookings []Booking, start, end time.Time, status *Status) []Booking {
	out := make([]Booking, 0)
	for _, b := range bookings {
		day := truncateDay(b.Start)
		if day.Before(truncateDay(start)) || day.After(truncateDay(end)) {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
