package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crmdesk/crmdesk/libs/schedule"
)

func TestWindowParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/appointments?view=week&date=2024-02-20", nil)
	ref, granularity, err := windowParams(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if granularity != schedule.WindowWeek {
		t.Fatalf("granularity = %v", granularity)
	}
	want := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	if !ref.Equal(want) {
		t.Fatalf("ref = %v, want %v", ref, want)
	}
}

func TestWindowParamsDefaultsToDay(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/appointments", nil)
	_, granularity, err := windowParams(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if granularity != schedule.WindowDay {
		t.Fatalf("granularity = %v, want day", granularity)
	}
}

func TestWindowParamsRejectsUnknownView(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/appointments?view=quarter", nil)
	if _, _, err := windowParams(r); err == nil {
		t.Fatalf("unknown view must be rejected")
	}

	r = httptest.NewRequest("GET", "/api/v1/appointments?date=20-02-2024", nil)
	if _, _, err := windowParams(r); err == nil {
		t.Fatalf("bad date must be rejected")
	}
}

func TestBookingItemRendersSheetFields(t *testing.T) {
	b := schedule.Booking{
		ID:              "APT-1",
		Start:           time.Date(2024, 3, 11, 10, 30, 0, 0, time.UTC),
		DurationMinutes: 45,
		Status:          schedule.StatusConfirmed,
		Service:         "Consultation",
		Customer:        "Jane Doe",
	}
	item := bookingItem(&b)
	if item.Date != "2024-03-11" || item.Time != "10:30" {
		t.Fatalf("date/time rendered wrong: %+v", item)
	}
	if item.Status != "Confirmed" {
		t.Fatalf("status rendered wrong: %q", item.Status)
	}
	if bookingItem(nil) != nil {
		t.Fatalf("nil booking must render as nil")
	}
}
