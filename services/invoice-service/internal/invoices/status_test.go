package invoices

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusPaid, true},
		{StatusPending, StatusOverdue, true},
		{StatusPending, StatusCancelled, true},
		{StatusOverdue, StatusPaid, true},
		{StatusOverdue, StatusCancelled, true},
		{StatusOverdue, StatusPending, false},
		{StatusPaid, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusPending, StatusPending, false},
		{"refunded", StatusPaid, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestValidStatusClosedSet(t *testing.T) {
	for _, s := range []string{StatusPending, StatusPaid, StatusOverdue, StatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"Pending", "refunded", "open", ""} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
