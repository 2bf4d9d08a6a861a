// Package metrics persists the per-day aggregates the dashboard reads.
// Raw events are kept alongside the rollups so numbers can be rebuilt.
package metrics

import (
	"context"
	"time"

	"github.com/crmdesk/crmdesk/libs/db"
)

type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) RecordNotification(ctx context.Context, appointmentID, businessID, channel string, at time.Time, status string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notification_metrics (appointment_id, business_id, channel, sent_at, status)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5)
	`, appointmentID, businessID, channel, at, status)
	return err
}

func (r *Repository) BumpNotificationDaily(ctx context.Context, businessID, channel string, day time.Time, sentInc, failedInc int) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO daily_notification_metrics (business_id, day, channel, sent_count, failed_count)
		VALUES ($1, $2::date, $3, $4, $5)
		ON CONFLICT (business_id, day, channel)
		DO UPDATE SET sent_count = daily_notification_metrics.sent_count + EXCLUDED.sent_count,
		              failed_count = daily_notification_metrics.failed_count + EXCLUDED.failed_count,
		              updated_at = now()
	`, businessID, day, channel, sentInc, failedInc)
	return err
}

func (r *Repository) RecordDLQEvent(ctx context.Context, appointmentID, businessID, channel, recipient string, remindAt time.Time, errorReason string, failedAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO scheduler_dlq_events (appointment_id, business_id, channel, recipient, remind_at, error_reason, failed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, appointmentID, businessID, channel, recipient, remindAt, errorReason, failedAt)
	return err
}

func (r *Repository) RecordSecurityAudit(ctx context.Context, eventType, actorID string, metadata []byte, createdAt time.Time) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO security_audit_events (event_type, actor_id, metadata, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4)
	`, eventType, actorID, metadata, createdAt)
	return err
}

// RecordAppointmentEvent writes a dedupe row keyed by the Kafka event id
// and bumps the matching daily counter. Replays commit the dedupe check
// and touch nothing else.
func (r *Repository) RecordAppointmentEvent(ctx context.Context, eventID, eventType, businessID, appointmentID string, startTime time.Time, bookedInc, cancelledInc int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		INSERT INTO appointment_events (event_id, event_type, business_id, appointment_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id) DO NOTHING
	`, eventID, eventType, businessID, appointmentID, startTime.UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return tx.Commit(ctx)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO daily_appointment_metrics (business_id, day, booked_count, cancelled_count)
		VALUES ($1, $2::date, $3, $4)
		ON CONFLICT (business_id, day)
		DO UPDATE SET booked_count = daily_appointment_metrics.booked_count + EXCLUDED.booked_count,
		              cancelled_count = daily_appointment_metrics.cancelled_count + EXCLUDED.cancelled_count,
		              updated_at = now()
	`, businessID, startTime.UTC(), bookedInc, cancelledInc); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *Repository) BumpRevenueDaily(ctx context.Context, businessID string, day time.Time, paidCents int64, paidInc, overdueInc int) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO daily_revenue_metrics (business_id, day, paid_cents, paid_count, overdue_count)
		VALUES ($1, $2::date, $3, $4, $5)
		ON CONFLICT (business_id, day)
		DO UPDATE SET paid_cents = daily_revenue_metrics.paid_cents + EXCLUDED.paid_cents,
		              paid_count = daily_revenue_metrics.paid_count + EXCLUDED.paid_count,
		              overdue_count = daily_revenue_metrics.overdue_count + EXCLUDED.overdue_count,
		              updated_at = now()
	`, businessID, day, paidCents, paidInc, overdueInc)
	return err
}

type DayBreakdown struct {
	Day       string `json:"day"`
	Booked    int    `json:"booked"`
	Cancelled int    `json:"cancelled"`
}

type Dashboard struct {
	Booked              int            `json:"booked"`
	Cancelled           int            `json:"cancelled"`
	NotificationsSent   int            `json:"notifications_sent"`
	NotificationsFailed int            `json:"notifications_failed"`
	PaidCents           int64          `json:"paid_cents"`
	PaidInvoices        int            `json:"paid_invoices"`
	OverdueInvoices     int            `json:"overdue_invoices"`
	Days                []DayBreakdown `json:"days"`
}

// DashboardTotals aggregates the daily rollups across the window,
// inclusive of both endpoint days.
func (r *Repository) DashboardTotals(ctx context.Context, businessID string, from, to time.Time) (Dashboard, error) {
	var d Dashboard

	rows, err := r.pool.Query(ctx, `
		SELECT day, booked_count, cancelled_count
		FROM daily_appointment_metrics
		WHERE business_id = $1 AND day >= $2::date AND day <= $3::date
		ORDER BY day ASC
	`, businessID, from, to)
	if err != nil {
		return Dashboard{}, err
	}
	defer rows.Close()
	d.Days = make([]DayBreakdown, 0)
	for rows.Next() {
		var day time.Time
		var booked, cancelled int
		if err := rows.Scan(&day, &booked, &cancelled); err != nil {
			return Dashboard{}, err
		}
		d.Booked += booked
		d.Cancelled += cancelled
		d.Days = append(d.Days, DayBreakdown{Day: day.Format("2006-01-02"), Booked: booked, Cancelled: cancelled})
	}
	if rows.Err() != nil {
		return Dashboard{}, rows.Err()
	}

	err = r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(sent_count), 0), COALESCE(SUM(failed_count), 0)
		FROM daily_notification_metrics
		WHERE business_id = $1 AND day >= $2::date AND day <= $3::date
	`, businessID, from, to).Scan(&d.NotificationsSent, &d.NotificationsFailed)
	if err != nil {
		return Dashboard{}, err
	}

	err = r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(paid_cents), 0), COALESCE(SUM(paid_count), 0), COALESCE(SUM(overdue_count), 0)
		FROM daily_revenue_metrics
		WHERE business_id = $1 AND day >= $2::date AND day <= $3::date
	`, businessID, from, to).Scan(&d.PaidCents, &d.PaidInvoices, &d.OverdueInvoices)
	if err != nil {
		return Dashboard{}, err
	}

	return d, nil
}
