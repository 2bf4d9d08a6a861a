package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestDashboardRejectsBadParams(t *testing.T) {
	h := NewDashboard(nil, nil, 0, nil)

	cases := []struct {
		name string
		url  string
	}{
		{"unknown view", "/api/v1/dashboard?view=quarter"},
		{"bad date", "/api/v1/dashboard?view=week&date=tomorrow"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.url, nil)
			req.Header.Set("X-Business-Id", "b-1")
			rec := httptest.NewRecorder()
			h.Get(rec, req)
			if rec.Code != 400 {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestDashboardRequiresBusinessHeader(t *testing.T) {
	h := NewDashboard(nil, nil, 0, nil)
	req := httptest.NewRequest("GET", "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)
	if rec.Code != 400 {
		t.Fatalf("expected 400 without X-Business-Id, got %d", rec.Code)
	}
}
