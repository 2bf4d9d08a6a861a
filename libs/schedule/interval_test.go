package schedule

import (
	"errors"
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 3, 11, hour, min, 0, 0, time.UTC)
}

func TestOverlapsIsSymmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"partial", Interval{at(10, 0), at(10, 45)}, Interval{at(10, 30), at(11, 0)}, true},
		{"contained", Interval{at(9, 0), at(12, 0)}, Interval{at(10, 0), at(10, 30)}, true},
		{"identical", Interval{at(10, 0), at(11, 0)}, Interval{at(10, 0), at(11, 0)}, true},
		{"back_to_back", Interval{at(10, 0), at(10, 45)}, Interval{at(10, 45), at(11, 15)}, false},
		{"disjoint", Interval{at(9, 0), at(9, 30)}, Interval{at(14, 0), at(15, 0)}, false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: Overlaps(a,b) = %v, want %v", tc.name, got, tc.want)
		}
		if got := Overlaps(tc.b, tc.a); got != tc.want {
			t.Fatalf("%s: Overlaps(b,a) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestContainsHalfOpenBounds(t *testing.T) {
	iv := Interval{Start: at(10, 0), End: at(11, 0)}
	if !iv.Contains(at(10, 0)) {
		t.Fatalf("start should be inside the interval")
	}
	if !iv.Contains(at(10, 59)) {
		t.Fatalf("10:59 should be inside the interval")
	}
	if iv.Contains(at(11, 0)) {
		t.Fatalf("end should be outside the interval")
	}
	if iv.Contains(at(9, 59)) {
		t.Fatalf("9:59 should be outside the interval")
	}
}

func TestNewIntervalRejectsNonPositiveDurations(t *testing.T) {
	for _, minutes := range []int{0, -15} {
		_, err := NewInterval(at(10, 0), minutes)
		var invalid *InvalidIntervalError
		if !errors.As(err, &invalid) {
			t.Fatalf("duration %d: got %v, want InvalidIntervalError", minutes, err)
		}
		if invalid.DurationMinutes != minutes {
			t.Fatalf("duration %d: error reports %d", minutes, invalid.DurationMinutes)
		}
	}
}

func TestNewIntervalBuildsHalfOpenRange(t *testing.T) {
	iv, err := NewInterval(at(10, 0), 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !iv.Start.Equal(at(10, 0)) || !iv.End.Equal(at(10, 45)) {
		t.Fatalf("got [%v, %v)", iv.Start, iv.End)
	}
}
