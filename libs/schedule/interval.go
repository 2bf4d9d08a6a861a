// Package schedule holds the pure scheduling decisions shared by the
// services: interval overlap, conflict detection, open-slot
// enumeration, calendar windows and report aggregation. It performs no
// I/O and no logging; callers supply the collections it decides over.
package schedule

import (
	"fmt"
	"time"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// InvalidIntervalError reports a booking or slot request whose
// interval cannot be formed, typically a non-positive duration or an
// unparsable start.
type InvalidIntervalError struct {
	DurationMinutes int
	Cause           error
}

func (e *InvalidIntervalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid interval: %v", e.Cause)
	}
	return fmt.Sprintf("invalid interval: duration %d minutes", e.DurationMinutes)
}

func (e *InvalidIntervalError) Unwrap() error { return e.Cause }

// NewInterval builds the half-open interval starting at start and
// lasting durationMinutes. Durations of zero or less are invalid.
func NewInterval(start time.Time, durationMinutes int) (Interval, error) {
	if durationMinutes <= 0 {
		return Interval{}, &InvalidIntervalError{DurationMinutes: durationMinutes}
	}
	return Interval{Start: start, End: start.Add(time.Duration(durationMinutes) * time.Minute)}, nil
}

// Overlaps reports whether two half-open intervals share any instant:
// a.Start < b.End && b.Start < a.End. Back-to-back intervals, where
// one ends exactly when the other starts, do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Contains reports whether p falls inside the interval. The start is
// included, the end is not.
func (iv Interval) Contains(p time.Time) bool {
	return !p.Before(iv.Start) && p.Before(iv.End)
}

// sameDay reports whether two timestamps fall on the same calendar
// day. Timestamps are naive local times in one fixed zone, so plain
// date equality is enough.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
