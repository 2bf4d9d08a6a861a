package schedule

import (
	"testing"
	"time"
)

func TestAggregateCounts(t *testing.T) {
	monday9 := time.Date(2024, 2, 19, 9, 0, 0, 0, time.UTC)
	monday14 := time.Date(2024, 2, 19, 14, 0, 0, 0, time.UTC)
	tuesday9 := time.Date(2024, 2, 20, 9, 30, 0, 0, time.UTC)

	bookings := []Booking{
		{ID: "1", Start: monday9, DurationMinutes: 30, Status: StatusCompleted, Service: "Consultation"},
		{ID: "2", Start: monday14, DurationMinutes: 30, Status: StatusCompleted, Service: "Treatment"},
		{ID: "3", Start: tuesday9, DurationMinutes: 30, Status: StatusNoShow, Service: "Consultation"},
	}

	byStatus, err := AggregateCounts(bookings, GroupByStatus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byStatus["Completed"] != 2 || byStatus["No-show"] != 1 {
		t.Fatalf("by status: %v", byStatus)
	}

	byService, err := AggregateCounts(bookings, GroupByService)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byService["Consultation"] != 2 || byService["Treatment"] != 1 {
		t.Fatalf("by service: %v", byService)
	}

	byHour, err := AggregateCounts(bookings, GroupByHourOfDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byHour["9"] != 2 || byHour["14"] != 1 {
		t.Fatalf("by hour: %v", byHour)
	}

	byWeekday, err := AggregateCounts(bookings, GroupByDayOfWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byWeekday["Monday"] != 2 || byWeekday["Tuesday"] != 1 {
		t.Fatalf("by weekday: %v", byWeekday)
	}
}

func TestAggregateCountsEmptyInput(t *testing.T) {
	counts, err := AggregateCounts(nil, GroupByStatus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 0 {
		t.Fatalf("expected an empty map, got %v", counts)
	}
}

func TestAggregateCountsUnknownKey(t *testing.T) {
	if _, err := AggregateCounts(nil, GroupKey(42)); err == nil {
		t.Fatalf("unknown group keys must be rejected")
	}
	if _, err := ParseGroupKey("revenue"); err == nil {
		t.Fatalf("unknown labels must be rejected")
	}
}
