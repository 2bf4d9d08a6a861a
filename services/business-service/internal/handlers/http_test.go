package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUpdateHoursValidation(t *testing.T) {
	h := New(nil)

	cases := []struct {
		name string
		body string
	}{
		{"missing open", `{"close_time":"17:00","slot_step_minutes":30}`},
		{"bad clock", `{"open_time":"9am","close_time":"17:00","slot_step_minutes":30}`},
		{"close before open", `{"open_time":"17:00","close_time":"09:00","slot_step_minutes":30}`},
		{"break half set", `{"open_time":"09:00","close_time":"17:00","break_start":"12:00","slot_step_minutes":30}`},
		{"break outside hours", `{"open_time":"09:00","close_time":"17:00","break_start":"08:00","break_end":"08:30","slot_step_minutes":30}`},
		{"zero step", `{"open_time":"09:00","close_time":"17:00","slot_step_minutes":0}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/api/v1/business/hours", strings.NewReader(tc.body))
			req.Header.Set("X-Business-Id", "b-1")
			rec := httptest.NewRecorder()
			h.UpdateHours(rec, req)
			if rec.Code != 400 {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestCreateServiceRejectsOffCatalogDuration(t *testing.T) {
	h := New(nil)
	req := httptest.NewRequest("POST", "/api/v1/business/services", strings.NewReader(`{"name":"Consultation","duration_minutes":25}`))
	req.Header.Set("X-Business-Id", "b-1")
	rec := httptest.NewRecorder()
	h.CreateService(rec, req)
	if rec.Code != 400 {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandlersRequireBusinessHeader(t *testing.T) {
	h := New(nil)
	req := httptest.NewRequest("GET", "/api/v1/business/hours", nil)
	rec := httptest.NewRecorder()
	h.GetHours(rec, req)
	if rec.Code != 400 {
		t.Fatalf("expected 400 without X-Business-Id, got %d", rec.Code)
	}
}
