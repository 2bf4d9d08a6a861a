// Package sheetrow adapts loose spreadsheet-style rows into typed
// appointments. This is the boundary where dates, durations and the
// closed status set are enforced; rows that fail are reported, never
// silently coerced.
package sheetrow

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/crmdesk/crmdesk/libs/schedule"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/model"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Columns is the expected header set. Order in the file does not
// matter; unknown columns are ignored.
var Columns = []string{
	"ID", "Customer", "Phone", "Email", "Date", "Time",
	"Service", "Duration", "Status", "Location", "Notes", "Created_By",
}

// RowError describes one rejected row.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Line, e.Reason)
}

// Result carries the outcome of one import pass.
type Result struct {
	Accepted []model.Appointment
	Rejected []RowError
}

// ReadCSV parses a whole appointment sheet. The first record is the
// header. Bad rows are collected into Rejected; only I/O and header
// problems abort the pass.
func ReadCSV(r io.Reader, businessID string) (Result, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return Result{}, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Customer", "Date", "Time", "Duration", "Status"} {
		if _, ok := index[required]; !ok {
			return Result{}, fmt.Errorf("missing column %q", required)
		}
	}

	var res Result
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.Rejected = append(res.Rejected, RowError{Line: line, Reason: err.Error()})
			continue
		}
		appt, err := parseRow(record, index, businessID)
		if err != nil {
			res.Rejected = append(res.Rejected, RowError{Line: line, Reason: err.Error()})
			continue
		}
		res.Accepted = append(res.Accepted, appt)
	}
	return res, nil
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseRow(record []string, index map[string]int, businessID string) (model.Appointment, error) {
	customer := field(record, index, "Customer")
	if customer == "" {
		return model.Appointment{}, fmt.Errorf("customer is required")
	}

	start, err := ParseStart(field(record, index, "Date"), field(record, index, "Time"))
	if err != nil {
		return model.Appointment{}, err
	}

	duration, err := strconv.Atoi(field(record, index, "Duration"))
	if err != nil {
		return model.Appointment{}, fmt.Errorf("invalid duration %q", field(record, index, "Duration"))
	}
	if _, err := schedule.NewInterval(start, duration); err != nil {
		return model.Appointment{}, err
	}

	status, err := schedule.ParseStatus(field(record, index, "Status"))
	if err != nil {
		return model.Appointment{}, err
	}

	return model.Appointment{
		DisplayID:       field(record, index, "ID"),
		BusinessID:      businessID,
		Customer:        customer,
		Phone:           field(record, index, "Phone"),
		Email:           field(record, index, "Email"),
		Service:         field(record, index, "Service"),
		StartTime:       start,
		DurationMinutes: duration,
		Status:          status.String(),
		Location:        field(record, index, "Location"),
		Notes:           field(record, index, "Notes"),
		CreatedBy:       field(record, index, "Created_By"),
	}, nil
}

// ParseStart combines the sheet's separate date and time cells into
// one naive timestamp.
func ParseStart(date, clock string) (time.Time, error) {
	if clock == "" {
		clock = "00:00"
	}
	start, err := time.Parse(DateLayout+" "+TimeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, &schedule.InvalidIntervalError{Cause: err}
	}
	return start, nil
}

// WriteCSV renders appointments back into the sheet layout.
func WriteCSV(w io.Writer, appts []model.Appointment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, a := range appts {
		record := []string{
			a.DisplayID,
			a.Customer,
			a.Phone,
			a.Email,
			a.StartTime.Format(DateLayout),
			a.StartTime.Format(TimeLayout),
			a.Service,
			strconv.Itoa(a.DurationMinutes),
			a.Status,
			a.Location,
			a.Notes,
			a.CreatedBy,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
