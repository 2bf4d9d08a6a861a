package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/crmdesk/crmdesk/libs/db"
)

type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

type Invoice struct {
	ID                   string
	DisplayID            string
	BusinessID           string
	AppointmentDisplayID string
	Customer             string
	Email                string
	AmountCents          int64
	Currency             string
	Status               string
	DueDate              time.Time
	StripeSessionID      string
	CheckoutURL          string
	ReturnToken          string
	PaidAt               *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

const invoiceColumns = `id::text, display_id, business_id::text,
	COALESCE(appointment_display_id, ''), customer, COALESCE(email, ''),
	amount_cents, currency, status, due_date,
	COALESCE(stripe_session_id, ''), COALESCE(checkout_url, ''), COALESCE(return_token, ''),
	paid_at, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, tx pgx.Tx, inv Invoice) (string, error) {
	id := uuid.NewString()
	_, err := tx.Exec(ctx, `
		INSERT INTO invoices (id, display_id, business_id, appointment_display_id, customer, email, amount_cents, currency, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, id, inv.DisplayID, inv.BusinessID, nullIfEmpty(inv.AppointmentDisplayID), inv.Customer, nullIfEmpty(inv.Email), inv.AmountCents, inv.Currency, inv.Status, inv.DueDate)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) Get(ctx context.Context, businessID, displayID string) (Invoice, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE business_id = $1 AND display_id = $2
	`, businessID, displayID)
	return scanInvoice(row)
}

func (r *Repository) GetForUpdate(ctx context.Context, tx pgx.Tx, businessID, displayID string) (Invoice, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE business_id = $1 AND display_id = $2
		FOR UPDATE
	`, businessID, displayID)
	return scanInvoice(row)
}

// GetBySessionForUpdate resolves an invoice from the Stripe checkout
// session recorded on it. Used by the webhook which has no display id.
func (r *Repository) GetBySessionForUpdate(ctx context.Context, tx pgx.Tx, stripeSessionID string) (Invoice, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE stripe_session_id = $1
		FOR UPDATE
	`, stripeSessionID)
	return scanInvoice(row)
}

func (r *Repository) List(ctx context.Context, businessID string, status string, limit int) ([]Invoice, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE business_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3
	`, businessID, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, tx pgx.Tx, id string, status string, paidAt *time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE invoices
		SET status = $2,
		    paid_at = COALESCE($3, paid_at),
		    updated_at = now()
		WHERE id = $1
	`, id, status, paidAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) AttachCheckoutSession(ctx context.Context, tx pgx.Tx, id string, stripeSessionID, checkoutURL, returnToken string) error {
	_, err := tx.Exec(ctx, `
		UPDATE invoices
		SET stripe_session_id = $2,
		    checkout_url = $3,
		    return_token = $4,
		    updated_at = now()
		WHERE id = $1
	`, id, stripeSessionID, nullIfEmpty(checkoutURL), nullIfEmpty(returnToken))
	return err
}

func (r *Repository) ClearCheckoutSession(ctx context.Context, tx pgx.Tx, stripeSessionID string) error {
	_, err := tx.Exec(ctx, `
		UPDATE invoices
		SET stripe_session_id = NULL,
		    checkout_url = NULL,
		    return_token = NULL,
		    updated_at = now()
		WHERE stripe_session_id = $1 AND status <> 'paid'
	`, stripeSessionID)
	return err
}

// ListDueForUpdate locks pending invoices whose due date has passed so
// the sweeper can move them to overdue. SKIP LOCKED lets concurrent
// sweeps divide the work instead of serializing on row locks.
func (r *Repository) ListDueForUpdate(ctx context.Context, tx pgx.Tx, asOf time.Time, limit int) ([]Invoice, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := tx.Query(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE status = 'pending' AND due_date < $1
		ORDER BY due_date ASC
		LIMIT $2
		FOR UPDATE SKIP LOCKED
	`, asOf, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func scanInvoice(row pgx.Row) (Invoice, error) {
	var inv Invoice
	var paidAt *time.Time
	err := row.Scan(
		&inv.ID, &inv.DisplayID, &inv.BusinessID,
		&inv.AppointmentDisplayID, &inv.Customer, &inv.Email,
		&inv.AmountCents, &inv.Currency, &inv.Status, &inv.DueDate,
		&inv.StripeSessionID, &inv.CheckoutURL, &inv.ReturnToken,
		&paidAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return Invoice{}, err
	}
	inv.PaidAt = paidAt
	return inv, nil
}

func (r *Repository) IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

type ProviderEvent struct {
	Provider        string
	ProviderEventID string
	EventType       string
	Payload         []byte
}

var ErrDuplicateProviderEvent = errors.New("duplicate provider event")

func (r *Repository) InsertProviderEvent(ctx context.Context, tx pgx.Tx, evt ProviderEvent) error {
	var payload any
	if err := json.Unmarshal(evt.Payload, &payload); err != nil {
		// keep raw JSON error as a hard failure: webhook should be well-formed.
		return err
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO provider_events (provider, provider_event_id, event_type, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider, provider_event_id) DO NOTHING
	`, evt.Provider, evt.ProviderEventID, evt.EventType, payload)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicateProviderEvent
	}
	return nil
}

type AuditEvent struct {
	EventType  string
	ActorType  string
	ActorID    string
	BusinessID string
	Metadata   []byte
}

func (r *Repository) InsertAuditEvent(ctx context.Context, tx pgx.Tx, evt AuditEvent) error {
	var payload any
	if len(evt.Metadata) == 0 {
		payload = map[string]any{}
	} else if err := json.Unmarshal(evt.Metadata, &payload); err != nil {
		return err
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO audit_events (event_type, actor_type, actor_id, business_id, metadata)
		VALUES ($1, $2, $3, $4, $5)
	`, evt.EventType, evt.ActorType, nullIfEmpty(evt.ActorID), nullIfEmpty(evt.BusinessID), payload)
	return err
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func (r *Repository) GetBySession(ctx context.Context, stripeSessionID string) (Invoice, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE stripe_session_id = $1
	`, stripeSessionID)
	return scanInvoice(row)
}

// AckCheckoutReturn records that the customer came back from checkout.
// The token protects this public endpoint from being used to tamper
// with other sessions. A cancel return detaches the session so the
// invoice can be checked out again; paid invoices are never touched.
func (r *Repository) AckCheckoutReturn(ctx context.Context, tx pgx.Tx, stripeSessionID, token, result string) error {
	if result != "cancel" {
		_, err := tx.Exec(ctx, `
			UPDATE invoices
			SET updated_at = now()
			WHERE stripe_session_id = $1 AND return_token = $2
		`, stripeSessionID, token)
		return err
	}
	_, err := tx.Exec(ctx, `
		UPDATE invoices
		SET stripe_session_id = NULL,
		    checkout_url = NULL,
		    return_token = NULL,
		    updated_at = now()
		WHERE stripe_session_id = $1 AND return_token = $2 AND status <> 'paid'
	`, stripeSessionID, token)
	return err
}
