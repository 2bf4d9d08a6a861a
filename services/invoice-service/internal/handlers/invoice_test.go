package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateInvoiceValidation(t *testing.T) {
	h := New(nil, nil, nil, Config{})

	cases := []struct {
		name string
		body string
	}{
		{"missing customer", `{"amount_cents":5000,"due_date":"2024-04-01"}`},
		{"zero amount", `{"customer":"Jane Roe","amount_cents":0,"due_date":"2024-04-01"}`},
		{"negative amount", `{"customer":"Jane Roe","amount_cents":-100,"due_date":"2024-04-01"}`},
		{"bad currency", `{"customer":"Jane Roe","amount_cents":5000,"currency":"dollars","due_date":"2024-04-01"}`},
		{"bad due date", `{"customer":"Jane Roe","amount_cents":5000,"due_date":"April 1"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/invoices/create", strings.NewReader(tc.body))
			req.Header.Set("X-Business-Id", "b-1")
			rec := httptest.NewRecorder()
			h.Create(rec, req)
			if rec.Code != 400 {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestListRejectsUnknownStatus(t *testing.T) {
	h := New(nil, nil, nil, Config{})
	req := httptest.NewRequest("GET", "/api/v1/invoices?status=refunded", nil)
	req.Header.Set("X-Business-Id", "b-1")
	rec := httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != 400 {
		t.Fatalf("expected 400 for unknown status, got %d", rec.Code)
	}
}

func TestCheckoutRequiresConfiguredStripe(t *testing.T) {
	h := New(nil, nil, nil, Config{})
	req := httptest.NewRequest("POST", "/api/v1/invoices/checkout", strings.NewReader(`{"invoice_id":"INV-1"}`))
	req.Header.Set("X-Business-Id", "b-1")
	rec := httptest.NewRecorder()
	h.Checkout(rec, req)
	if rec.Code != 501 {
		t.Fatalf("expected 501 without STRIPE_SECRET_KEY, got %d", rec.Code)
	}
}
