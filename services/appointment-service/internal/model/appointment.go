package model

import (
	"time"

	"github.com/crmdesk/crmdesk/libs/schedule"
)

// Appointment is one stored calendar row. DisplayID is the
// human-facing identifier shown on the calendar (APT-...); ID is the
// storage key. StartTime is a naive local time in the business's
// fixed zone. Rows are never deleted; lifecycle changes are status
// writes.
type Appointment struct {
	ID              string
	DisplayID       string
	BusinessID      string
	Customer        string
	Phone           string
	Email           string
	Service         string
	StartTime       time.Time
	DurationMinutes int
	Status          string
	Location        string
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
}

// Booking adapts the stored row into the scheduling core's shape.
// Stored statuses were validated on the way in, so a parse failure
// here means a corrupted row.
func (a Appointment) Booking() (schedule.Booking, error) {
	status, err := schedule.ParseStatus(a.Status)
	if err != nil {
		return schedule.Booking{}, err
	}
	return schedule.Booking{
		ID:              a.DisplayID,
		Start:           a.StartTime,
		DurationMinutes: a.DurationMinutes,
		Status:          status,
		Service:         a.Service,
		Customer:        a.Customer,
		Phone:           a.Phone,
		Email:           a.Email,
		Location:        a.Location,
		Notes:           a.Notes,
	}, nil
}

// Bookings adapts a stored slice, preserving order and skipping rows
// that no longer parse.
func Bookings(appts []Appointment) []schedule.Booking {
	out := make([]schedule.Booking, 0, len(appts))
	for _, a := range appts {
		b, err := a.Booking()
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Customer is one CRM contact.
type Customer struct {
	ID         string
	BusinessID string
	Name       string
	Phone      string
	Email      string
	Notes      string
	CreatedAt  time.Time
}
