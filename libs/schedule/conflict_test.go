package schedule

import (
	"errors"
	"testing"
	"time"
)

func booking(id string, start time.Time, minutes int, status Status) Booking {
	return Booking{ID: id, Start: start, DurationMinutes: minutes, Status: status, Service: "Consultation"}
}

func TestCheckConflictOverlapping(t *testing.T) {
	existing := []Booking{booking("APT-1", at(10, 0), 45, StatusScheduled)}
	candidate := booking("APT-2", at(10, 30), 30, StatusScheduled)

	res, err := CheckConflict(candidate, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.HasConflict {
		t.Fatalf("expected a conflict")
	}
	if res.Conflicting == nil || res.Conflicting.ID != "APT-1" {
		t.Fatalf("expected APT-1 as the conflicting booking, got %+v", res.Conflicting)
	}
}

func TestCheckConflictBackToBack(t *testing.T) {
	existing := []Booking{booking("APT-1", at(10, 0), 45, StatusScheduled)}
	candidate := booking("APT-2", at(10, 45), 30, StatusScheduled)

	res, err := CheckConflict(candidate, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasConflict {
		t.Fatalf("back-to-back bookings must not conflict")
	}
}

func TestCheckConflictIgnoresInactiveStatuses(t *testing.T) {
	for _, status := range []Status{StatusCancelled, StatusNoShow} {
		existing := []Booking{booking("APT-1", at(10, 0), 60, status)}
		candidate := booking("APT-2", at(10, 15), 30, StatusScheduled)

		res, err := CheckConflict(candidate, existing)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", status, err)
		}
		if res.HasConflict {
			t.Fatalf("%v bookings must never block a slot", status)
		}
	}
}

func TestCheckConflictEmptyExisting(t *testing.T) {
	res, err := CheckConflict(booking("APT-1", at(10, 0), 30, StatusScheduled), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasConflict {
		t.Fatalf("no existing bookings, no conflict")
	}
}

func TestCheckConflictFirstMatchWins(t *testing.T) {
	// Both rows overlap the candidate; the one supplied first is
	// reported, regardless of which starts earlier.
	existing := []Booking{
		booking("APT-LATE", at(10, 30), 60, StatusConfirmed),
		booking("APT-EARLY", at(10, 0), 60, StatusScheduled),
	}
	candidate := booking("APT-NEW", at(10, 45), 30, StatusScheduled)

	res, err := CheckConflict(candidate, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.HasConflict || res.Conflicting.ID != "APT-LATE" {
		t.Fatalf("expected APT-LATE first, got %+v", res.Conflicting)
	}
}

func TestCheckConflictSkipsOtherDays(t *testing.T) {
	otherDay := time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)
	existing := []Booking{booking("APT-1", otherDay, 60, StatusScheduled)}
	candidate := booking("APT-2", at(10, 15), 30, StatusScheduled)

	res, err := CheckConflict(candidate, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasConflict {
		t.Fatalf("bookings on other days must not conflict")
	}
}

func TestCheckConflictInvalidCandidate(t *testing.T) {
	_, err := CheckConflict(booking("APT-1", at(10, 0), 0, StatusScheduled), nil)
	var invalid *InvalidIntervalError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidIntervalError", err)
	}
}

func TestCheckConflictSkipsMalformedRows(t *testing.T) {
	existing := []Booking{booking("APT-BAD", at(10, 0), 0, StatusScheduled)}
	candidate := booking("APT-2", at(10, 15), 30, StatusScheduled)

	res, err := CheckConflict(candidate, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.HasConflict {
		t.Fatalf("rows without a valid interval cannot conflict")
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusScheduled, StatusConfirmed, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusCompleted, StatusScheduled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusScheduled, false},
		{StatusScheduled, StatusScheduled, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%v, %v) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParseStatusClosedSet(t *testing.T) {
	for label, want := range map[string]Status{
		"Scheduled": StatusScheduled,
		"Confirmed": StatusConfirmed,
		"Completed": StatusCompleted,
		"Cancelled": StatusCancelled,
		"No-show":   StatusNoShow,
	} {
		got, err := ParseStatus(label)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", label, err)
		}
		if got != want {
			t.Fatalf("%s: got %v", label, got)
		}
	}
	if _, err := ParseStatus("Pending"); err == nil {
		t.Fatalf("unknown labels must be rejected")
	}
}
