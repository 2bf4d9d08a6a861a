package schedule

import "time"

// BusinessHours bound a working day. Open, Close and the optional
// Break carry clock times; OpenSlots re-anchors them onto the
// requested date, so one configured set of hours serves every day.
type BusinessHours struct {
	Open  time.Time
	Close time.Time
	Break *Interval
}

// onDay keeps t's clock time and moves it onto day's date.
func onDay(day, t time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, day.Location())
}

// OpenSlots enumerates the bookable intervals of one day. Candidate
// starts step from Open by granularityMinutes while the full service
// still fits before Close; candidates touching the break or
// conflicting with an existing booking are dropped. The result is
// ascending, and an empty result means the day is fully booked, which
// is a valid answer rather than an error.
func OpenSlots(day time.Time, hours BusinessHours, serviceDurationMinutes, granularityMinutes int, existing []Booking) ([]Interval, error) {
	if serviceDurationMinutes <= 0 {
		return nil, &InvalidIntervalError{DurationMinutes: serviceDurationMinutes}
	}
	if granularityMinutes <= 0 {
		return nil, &InvalidIntervalError{DurationMinutes: granularityMinutes}
	}

	open := onDay(day, hours.Open)
	closeAt := onDay(day, hours.Close)
	var brk *Interval
	if hours.Break != nil {
		brk = &Interval{Start: onDay(day, hours.Break.Start), End: onDay(day, hours.Break.End)}
	}

	duration := time.Duration(serviceDurationMinutes) * time.Minute
	step := time.Duration(granularityMinutes) * time.Minute

	slots := make([]Interval, 0)
	for start := open; !start.Add(duration).After(closeAt); start = start.Add(step) {
		candidate := Interval{Start: start, End: start.Add(duration)}
		if brk != nil && Overlaps(candidate, *brk) {
			continue
		}
		probe := Booking{Start: candidate.Start, DurationMinutes: serviceDurationMinutes, Status: StatusScheduled}
		res, err := CheckConflict(probe, existing)
		if err != nil {
			return nil, err
		}
		if res.HasConflict {
			continue
		}
		slots = append(slots, candidate)
	}
	return slots, nil
}
