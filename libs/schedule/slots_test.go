package schedule

import (
	"errors"
	"testing"
	"time"
)

func clock(hour, min int) time.Time {
	return time.Date(0, 1, 1, hour, min, 0, 0, time.UTC)
}

func workday() BusinessHours {
	return BusinessHours{
		Open:  clock(9, 0),
		Close: clock(17, 0),
		Break: &Interval{Start: clock(12, 0), End: clock(13, 0)},
	}
}

func TestOpenSlotsEmptyDay(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	slots, err := OpenSlots(day, workday(), 60, 30, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatalf("expected open slots on an empty day")
	}

	first := slots[0]
	if !first.Start.Equal(at(9, 0)) || !first.End.Equal(at(10, 0)) {
		t.Fatalf("first slot [%v, %v), want 09:00-10:00", first.Start, first.End)
	}
	last := slots[len(slots)-1]
	if !last.Start.Equal(at(16, 0)) || !last.End.Equal(at(17, 0)) {
		t.Fatalf("last slot [%v, %v), want 16:00-17:00", last.Start, last.End)
	}

	brk := Interval{Start: at(12, 0), End: at(13, 0)}
	for _, s := range slots {
		if Overlaps(s, brk) {
			t.Fatalf("slot [%v, %v) overlaps the break", s.Start, s.End)
		}
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i].Start.After(slots[i-1].Start) {
			t.Fatalf("slots out of order at %d", i)
		}
	}
}

func TestOpenSlotsSkipsBookedTime(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	existing := []Booking{booking("APT-1", at(9, 0), 60, StatusConfirmed)}

	slots, err := OpenSlots(day, workday(), 60, 30, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range slots {
		if Overlaps(s, Interval{Start: at(9, 0), End: at(10, 0)}) {
			t.Fatalf("slot [%v, %v) overlaps an existing booking", s.Start, s.End)
		}
	}
	if !slots[0].Start.Equal(at(10, 0)) {
		t.Fatalf("first free slot should be 10:00, got %v", slots[0].Start)
	}
}

func TestOpenSlotsFullyBooked(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	hours := BusinessHours{Open: clock(9, 0), Close: clock(11, 0)}
	existing := []Booking{booking("APT-1", at(9, 0), 120, StatusScheduled)}

	slots, err := OpenSlots(day, hours, 60, 30, existing)
	if err != nil {
		t.Fatalf("a fully booked day is not an error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}

func TestOpenSlotsCancelledBookingsFreeTheirTime(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	existing := []Booking{booking("APT-1", at(9, 0), 60, StatusCancelled)}

	slots, err := OpenSlots(day, workday(), 60, 30, existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slots[0].Start.Equal(at(9, 0)) {
		t.Fatalf("cancelled booking should free 09:00, first slot is %v", slots[0].Start)
	}
}

func TestOpenSlotsRejectsBadInputs(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	var invalid *InvalidIntervalError

	if _, err := OpenSlots(day, workday(), 0, 30, nil); !errors.As(err, &invalid) {
		t.Fatalf("zero duration: got %v", err)
	}
	if _, err := OpenSlots(day, workday(), 60, -5, nil); !errors.As(err, &invalid) {
		t.Fatalf("negative granularity: got %v", err)
	}
}
