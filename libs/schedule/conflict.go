package schedule

// ConflictResult is the outcome of a conflict check. When HasConflict
// is true, Conflicting points at the first existing booking that
// overlaps the candidate, in the order the caller supplied them.
type ConflictResult struct {
	HasConflict bool
	Conflicting *Booking
}

// CheckConflict decides whether a candidate booking collides with any
// existing booking on the same calendar day. Cancelled and no-show
// rows are skipped, as are rows whose duration cannot form an
// interval. The first overlapping booking in input order wins; no
// conflict at all is a normal result, not an error.
func CheckConflict(candidate Booking, existing []Booking) (ConflictResult, error) {
	want, err := candidate.Interval()
	if err != nil {
		return ConflictResult{}, err
	}
	for i := range existing {
		b := existing[i]
		if !sameDay(b.Start, candidate.Start) {
			continue
		}
		if b.Status.Excluded() {
			continue
		}
		have, err := b.Interval()
		if err != nil {
			continue
		}
		if Overlaps(want, have) {
			return ConflictResult{HasConflict: true, Conflicting: &existing[i]}, nil
		}
	}
	return ConflictResult{}, nil
}
