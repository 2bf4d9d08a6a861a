package schedule

import (
	"fmt"
	"time"
)

// Status is the closed set of booking lifecycle states. Unknown
// labels are rejected at the adapter boundary by ParseStatus.
type Status int

const (
	StatusScheduled Status = iota
	StatusConfirmed
	StatusCompleted
	StatusCancelled
	StatusNoShow
)

var statusLabels = map[Status]string{
	StatusScheduled: "Scheduled",
	StatusConfirmed: "Confirmed",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
	StatusNoShow:    "No-show",
}

func (s Status) String() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus maps a row label to a Status. The enumeration is
// closed; anything outside it is an error, not a new state.
func ParseStatus(label string) (Status, error) {
	for s, l := range statusLabels {
		if l == label {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", label)
}

// Excluded reports whether the status removes a booking from
// conflict and slot decisions. Cancelled and no-show rows keep their
// history but no longer hold their time.
func (s Status) Excluded() bool {
	return s == StatusCancelled || s == StatusNoShow
}

// Terminal reports whether the status accepts no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// CanTransition reports whether a booking may move from one status to
// another. Active bookings may move to any other status; terminal
// ones are immutable. Bookings are never deleted, so cancellation is
// always a transition into StatusCancelled.
func CanTransition(from, to Status) bool {
	if from == to {
		return false
	}
	return !from.Terminal()
}

// Booking is one scheduled appointment. Start is a naive local time
// in the business's single fixed zone; the core never converts zones.
type Booking struct {
	ID              string
	Start           time.Time
	DurationMinutes int
	Status          Status
	Service         string

	Customer string
	Phone    string
	Email    string
	Location string
	Notes    string
}

// Interval derives the booking's half-open occupancy window.
func (b Booking) Interval() (Interval, error) {
	return NewInterval(b.Start, b.DurationMinutes)
}
