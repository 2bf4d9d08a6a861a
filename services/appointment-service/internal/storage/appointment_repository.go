package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crmdesk/crmdesk/libs/db"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/model"
)

const apptColumns = `id, display_id, business_id, customer_name, customer_phone, customer_email,
		service, start_time, duration_minutes, status, COALESCE(location, ''), COALESCE(notes, ''),
		COALESCE(created_by, ''), created_at`

type AppointmentRepository struct {
	pool *db.Pool
}

type IdempotencyRecord struct {
	BusinessID      string
	IdempotencyKey  string
	AppointmentID   string
	StatusCode      int
	ResponsePayload []byte
}

func NewAppointmentRepository(pool *db.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

func (r *AppointmentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

func (r *AppointmentRepository) LockIdempotencyKey(ctx context.Context, tx pgx.Tx, businessID, key string) (IdempotencyRecord, bool, error) {
	rec, err := r.selectIdempotencyForUpdate(ctx, tx, businessID, key)
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return IdempotencyRecord{}, false, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO appointment_idempotency_keys (business_id, idempotency_key)
		VALUES ($1, $2)
		ON CONFLICT (business_id, idempotency_key) DO NOTHING
	`, businessID, key)
	if err != nil {
		return IdempotencyRecord{}, false, err
	}

	rec, err = r.selectIdempotencyForUpdate(ctx, tx, businessID, key)
	if err != nil {
		return IdempotencyRecord{}, false, err
	}
	return rec, false, nil
}

func (r *AppointmentRepository) FinalizeIdempotency(ctx context.Context, tx pgx.Tx, businessID, key, appointmentID string, statusCode int, response []byte) error {
	_, err := tx.Exec(ctx, `
		UPDATE appointment_idempotency_keys
		SET appointment_id = $3,
			status_code = $4,
			response_payload = $5,
			updated_at = now()
		WHERE business_id = $1 AND idempotency_key = $2
	`, businessID, key, appointmentID, statusCode, response)
	return err
}

func (r *AppointmentRepository) Create(ctx context.Context, tx pgx.Tx, appt *model.Appointment) (string, error) {
	var id string
	err := tx.QueryRow(ctx, `
		INSERT INTO appointments
			(display_id, business_id, customer_name, customer_phone, customer_email,
			 service, start_time, duration_minutes, status, location, notes, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`, appt.DisplayID, appt.BusinessID, appt.Customer, appt.Phone, appt.Email,
		appt.Service, appt.StartTime, appt.DurationMinutes, appt.Status,
		appt.Location, appt.Notes, appt.CreatedBy).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *AppointmentRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, businessID, displayID string) (model.Appointment, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+apptColumns+`
		FROM appointments
		WHERE display_id = $1 AND business_id = $2
		FOR UPDATE
	`, displayID, businessID)
	return scanAppointment(row)
}

// UpdateStatus is the only mutation after creation. Rows are never
// deleted, so cancellations and no-shows land here too.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, businessID, displayID, status string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE appointments
		SET status = $3,
			updated_at = now()
		WHERE display_id = $1 AND business_id = $2
	`, displayID, businessID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListDay returns every row of one calendar day in creation order,
// the order conflict checks are defined over.
func (r *AppointmentRepository) ListDay(ctx context.Context, businessID string, day time.Time) ([]model.Appointment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return r.list(ctx, `
		SELECT `+apptColumns+`
		FROM appointments
		WHERE business_id = $1
			AND start_time >= $2
			AND start_time < $3
		ORDER BY created_at ASC, id ASC
	`, businessID, start, start.AddDate(0, 0, 1))
}

// ListRange returns rows whose start falls inside the inclusive
// [start, end] day range, ascending by start.
func (r *AppointmentRepository) ListRange(ctx context.Context, businessID string, start, end time.Time) ([]model.Appointment, error) {
	return r.list(ctx, `
		SELECT `+apptColumns+`
		FROM appointments
		WHERE business_id = $1
			AND start_time >= $2
			AND start_time < $3
		ORDER BY start_time ASC, created_at ASC
	`, businessID, start, end.AddDate(0, 0, 1))
}

func (r *AppointmentRepository) list(ctx context.Context, query string, args ...any) ([]model.Appointment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []model.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return appts, nil
}

func scanAppointment(row pgx.Row) (model.Appointment, error) {
	var appt model.Appointment
	err := row.Scan(
		&appt.ID,
		&appt.DisplayID,
		&appt.BusinessID,
		&appt.Customer,
		&appt.Phone,
		&appt.Email,
		&appt.Service,
		&appt.StartTime,
		&appt.DurationMinutes,
		&appt.Status,
		&appt.Location,
		&appt.Notes,
		&appt.CreatedBy,
		&appt.CreatedAt,
	)
	if err != nil {
		return model.Appointment{}, err
	}
	return appt, nil
}

func IsDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
