package sheetrow

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

const sampleSheet = `ID,Customer,Phone,Email,Date,Time,Service,Duration,Status,Location,Notes,Created_By
APT-20240311100000,Jane Doe,+1 555 123 4567,jane@example.com,2024-03-11,10:00,Consultation,45,Scheduled,Office,first visit,admin
APT-20240311110000,John Roe,,,2024-03-11,11:00,Treatment,60,Confirmed,,,admin
`

func TestReadCSVAcceptsWellFormedRows(t *testing.T) {
	res, err := ReadCSV(strings.NewReader(sampleSheet), "biz-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rejected) != 0 {
		t.Fatalf("rejected rows: %v", res.Rejected)
	}
	if len(res.Accepted) != 2 {
		t.Fatalf("accepted %d rows, want 2", len(res.Accepted))
	}

	first := res.Accepted[0]
	want := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)
	if !first.StartTime.Equal(want) {
		t.Fatalf("start = %v, want %v", first.StartTime, want)
	}
	if first.DurationMinutes != 45 || first.Status != "Scheduled" {
		t.Fatalf("row parsed wrong: %+v", first)
	}
	if first.BusinessID != "biz-1" {
		t.Fatalf("business id not applied: %q", first.BusinessID)
	}
}

func TestReadCSVRejectsBadRows(t *testing.T) {
	sheet := `ID,Customer,Date,Time,Duration,Status
APT-1,Jane,2024-03-11,10:00,45,Scheduled
APT-2,Jane,2024-03-11,10:00,45,Pending
APT-3,Jane,2024-03-11,10:00,0,Scheduled
APT-4,Jane,not-a-date,10:00,45,Scheduled
APT-5,,2024-03-11,10:00,45,Scheduled
`
	res, err := ReadCSV(strings.NewReader(sheet), "biz-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Accepted) != 1 {
		t.Fatalf("accepted %d rows, want 1", len(res.Accepted))
	}
	if len(res.Rejected) != 4 {
		t.Fatalf("rejected %d rows, want 4: %v", len(res.Rejected), res.Rejected)
	}
	// Unknown status, zero duration, bad date, missing customer.
	for _, re := range res.Rejected {
		if re.Line < 3 || re.Line > 6 {
			t.Fatalf("unexpected rejected line %d", re.Line)
		}
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	sheet := "ID,Customer,Date,Time,Duration\nAPT-1,Jane,2024-03-11,10:00,45\n"
	if _, err := ReadCSV(strings.NewReader(sheet), "biz-1"); err == nil {
		t.Fatalf("missing Status column must abort the import")
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	res, err := ReadCSV(strings.NewReader(sampleSheet), "biz-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, res.Accepted); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	again, err := ReadCSV(&buf, "biz-1")
	if err != nil {
		t.Fatalf("re-read failed: %v", err)
	}
	if len(again.Accepted) != len(res.Accepted) || len(again.Rejected) != 0 {
		t.Fatalf("round trip lost rows: %+v", again)
	}
}
