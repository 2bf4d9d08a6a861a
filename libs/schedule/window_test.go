package schedule

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveWindowDay(t *testing.T) {
	ref := time.Date(2024, 2, 20, 14, 30, 0, 0, time.UTC)
	start, end, err := ResolveWindow(ref, WindowDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(date(2024, 2, 20)) || !end.Equal(date(2024, 2, 20)) {
		t.Fatalf("got [%v, %v]", start, end)
	}
}

func TestResolveWindowWeekStartsMonday(t *testing.T) {
	// 2024-02-20 is a Tuesday.
	start, end, err := ResolveWindow(date(2024, 2, 20), WindowWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(date(2024, 2, 19)) || !end.Equal(date(2024, 2, 25)) {
		t.Fatalf("got [%v, %v], want 2024-02-19..2024-02-25", start, end)
	}

	// A Monday reference starts its own week.
	start, end, err = ResolveWindow(date(2024, 2, 19), WindowWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(date(2024, 2, 19)) || !end.Equal(date(2024, 2, 25)) {
		t.Fatalf("monday ref: got [%v, %v]", start, end)
	}

	// A Sunday reference belongs to the week that began six days back.
	start, end, err = ResolveWindow(date(2024, 2, 25), WindowWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(date(2024, 2, 19)) || !end.Equal(date(2024, 2, 25)) {
		t.Fatalf("sunday ref: got [%v, %v]", start, end)
	}
}

func TestResolveWindowMonth(t *testing.T) {
	start, end, err := ResolveWindow(date(2024, 2, 20), WindowMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(date(2024, 2, 1)) || !end.Equal(date(2024, 2, 29)) {
		t.Fatalf("leap february: got [%v, %v]", start, end)
	}
}

func TestResolveWindowDecemberRollsOver(t *testing.T) {
	start, end, err := ResolveWindow(date(2024, 12, 15), WindowMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(date(2024, 12, 1)) || !end.Equal(date(2024, 12, 31)) {
		t.Fatalf("got [%v, %v], want 2024-12-01..2024-12-31", start, end)
	}
}

func TestResolveWindowUnknownGranularity(t *testing.T) {
	_, _, err := ResolveWindow(date(2024, 2, 20), Granularity(42))
	var invalid *InvalidWindowError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidWindowError", err)
	}
}

func TestParseGranularity(t *testing.T) {
	for label, want := range map[string]Granularity{"day": WindowDay, "week": WindowWeek, "month": WindowMonth} {
		got, err := ParseGranularity(label)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", label, err)
		}
		if got != want {
			t.Fatalf("%s: got %v", label, got)
		}
	}
	_, err := ParseGranularity("quarter")
	var invalid *InvalidWindowError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidWindowError", err)
	}
}

func TestWindowsNestAroundReference(t *testing.T) {
	ref := date(2024, 2, 20)
	bookings := []Booking{
		booking("APT-SAME-DAY", ref.Add(10*time.Hour), 30, StatusScheduled),
		booking("APT-SAME-WEEK", date(2024, 2, 23).Add(9*time.Hour), 30, StatusScheduled),
		booking("APT-SAME-MONTH", date(2024, 2, 2).Add(9*time.Hour), 30, StatusScheduled),
		booking("APT-OTHER-MONTH", date(2024, 3, 2).Add(9*time.Hour), 30, StatusScheduled),
	}

	counts := map[Granularity]int{WindowDay: 1, WindowWeek: 2, WindowMonth: 3}
	prev := -1
	for _, g := range []Granularity{WindowDay, WindowWeek, WindowMonth} {
		start, end, err := ResolveWindow(ref, g)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", g, err)
		}
		got := FilterByWindow(bookings, start, end, nil)
		if len(got) != counts[g] {
			t.Fatalf("%v: got %d bookings, want %d", g, len(got), counts[g])
		}
		if len(got) < prev {
			t.Fatalf("%v window dropped bookings the narrower window kept", g)
		}
		prev = len(got)
	}
}

func TestFilterByWindowInclusiveEnds(t *testing.T) {
	bookings := []Booking{
		booking("APT-START", date(2024, 2, 19).Add(9*time.Hour), 30, StatusScheduled),
		booking("APT-END", date(2024, 2, 25).Add(16*time.Hour), 30, StatusScheduled),
		booking("APT-BEFORE", date(2024, 2, 18).Add(9*time.Hour), 30, StatusScheduled),
		booking("APT-AFTER", date(2024, 2, 26).Add(9*time.Hour), 30, StatusScheduled),
	}
	got := FilterByWindow(bookings, date(2024, 2, 19), date(2024, 2, 25), nil)
	if len(got) != 2 {
		t.Fatalf("got %d bookings, want the two boundary days", len(got))
	}
	if got[0].ID != "APT-START" || got[1].ID != "APT-END" {
		t.Fatalf("order not preserved: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFilterByWindowStatusAndIdempotence(t *testing.T) {
	bookings := []Booking{
		booking("APT-1", date(2024, 2, 20).Add(9*time.Hour), 30, StatusScheduled),
		booking("APT-2", date(2024, 2, 20).Add(11*time.Hour), 30, StatusCancelled),
	}
	want := StatusScheduled
	once := FilterByWindow(bookings, date(2024, 2, 19), date(2024, 2, 25), &want)
	if len(once) != 1 || once[0].ID != "APT-1" {
		t.Fatalf("status filter: got %+v", once)
	}
	twice := FilterByWindow(once, date(2024, 2, 19), date(2024, 2, 25), &want)
	if len(twice) != len(once) {
		t.Fatalf("filtering twice changed the result: %d vs %d", len(twice), len(once))
	}
}
