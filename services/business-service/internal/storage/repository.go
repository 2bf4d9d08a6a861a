package storage

import (
	"context"
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

type BusinessProfile struct {
	BusinessID  string
	Name        string
	Timezone    string
	OffsetsMins []int
}

func (r *Repository) GetOrCreateProfile(ctx context.Context, businessID string) (BusinessProfile, error) {
	// Create a default profile if missing (keeps dev UX smooth while other services mature).
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO business_profiles (business_id)
		VALUES ($1)
		ON CONFLICT (business_id) DO NOTHING
	`, businessID)
	if err != nil {
		return BusinessProfile{}, err
	}
	if tag.RowsAffected() > 0 {
		if err := r.seedDefaultServices(ctx, businessID); err != nil {
			return BusinessProfile{}, err
		}
	}

	var p BusinessProfile
	err = r.pool.QueryRow(ctx, `
		SELECT business_id::text, name, timezone, reminder_offsets_minutes
		FROM business_profiles
		WHERE business_id = $1
	`, businessID).Scan(&p.BusinessID, &p.Name, &p.Timezone, &p.OffsetsMins)
	return p, err
}

func (r *Repository) UpdateProfile(ctx context.Context, businessID string, name string, timezone string, offsetsMins []int) error {
	if len(offsetsMins) == 0 {
		offsetsMins = []int{1440, 60}
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO business_profiles (business_id, name, timezone, reminder_offsets_minutes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (business_id) DO UPDATE
		SET name = EXCLUDED.name,
			timezone = EXCLUDED.timezone,
			reminder_offsets_minutes = EXCLUDED.reminder_offsets_minutes,
			updated_at = now()
	`, businessID, name, timezone, offsetsMins)
	return err
}

// BusinessHours holds the daily opening window as HH:MM clock strings.
// BreakStart/BreakEnd are empty when the business takes no midday break.
type BusinessHours struct {
	BusinessID      string
	OpenTime        string
	CloseTime       string
	BreakStart      string
	BreakEnd        string
	SlotStepMinutes int
}

func (r *Repository) GetHours(ctx context.Context, businessID string) (BusinessHours, error) {
	var h BusinessHours
	err := r.pool.QueryRow(ctx, `
		SELECT business_id::text, open_time, close_time,
			COALESCE(break_start, ''), COALESCE(break_end, ''), slot_step_minutes
		FROM business_hours
		WHERE business_id = $1
	`, businessID).Scan(&h.BusinessID, &h.OpenTime, &h.CloseTime, &h.BreakStart, &h.BreakEnd, &h.SlotStepMinutes)
	if err == pgx.ErrNoRows {
		return BusinessHours{
			BusinessID:      businessID,
			OpenTime:        "09:00",
			CloseTime:       "17:00",
			BreakStart:      "12:00",
			BreakEnd:        "13:00",
			SlotStepMinutes: 30,
		}, nil
	}
	if err != nil {
		return BusinessHours{}, err
	}
	return h, nil
}

func (r *Repository) UpsertHours(ctx context.Context, h BusinessHours) error {
	var breakStart, breakEnd interface{}
	if h.BreakStart != "" && h.BreakEnd != "" {
		breakStart = h.BreakStart
		breakEnd = h.BreakEnd
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO business_hours (business_id, open_time, close_time, break_start, break_end, slot_step_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (business_id) DO UPDATE
		SET open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			slot_step_minutes = EXCLUDED.slot_step_minutes,
			updated_at = now()
	`, h.BusinessID, h.OpenTime, h.CloseTime, breakStart, breakEnd, h.SlotStepMinutes)
	return err
}

type BusinessService struct {
	ID           string
	BusinessID   string
	Name         string
	DurationMins int
	Price        string
	Description  string
	CreatedAt    time.Time
}

// defaultCatalog is seeded the first time a business profile is created.
var defaultCatalog = []struct {
	Name         string
	DurationMins int
}{
	{"Consultation", 30},
	{"Follow-up", 15},
	{"Treatment", 60},
	{"Assessment", 45},
	{"Meeting", 30},
	{"Training", 90},
	{"Support", 30},
	{"Other", 30},
}

func (r *Repository) seedDefaultServices(ctx context.Context, businessID string) error {
	for _, s := range defaultCatalog {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO business_services (id, business_id, name, duration_minutes, price, description)
			SELECT $1, $2, $3, $4, 0, ''
			WHERE NOT EXISTS (
				SELECT 1 FROM business_services WHERE business_id = $2 AND name = $3
			)
		`, uuid.NewString(), businessID, s.Name, s.DurationMins)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) CreateService(ctx context.Context, businessID, name string, durationMinutes int, price string, description string) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO business_services (id, business_id, name, duration_minutes, price, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, businessID, name, durationMinutes, price, description)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) ListServices(ctx context.Context, businessID string, limit int) ([]BusinessService, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, business_id::text, name, duration_minutes, price::text, description, created_at
		FROM business_services
		WHERE business_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, businessID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BusinessService
	for rows.Next() {
		var s BusinessService
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.Name, &s.DurationMins, &s.Price, &s.Description, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *Repository) GetServiceDuration(ctx context.Context, businessID, serviceName string) (int, error) {
	var mins int
	err := r.pool.QueryRow(ctx, `
		SELECT duration_minutes
		FROM business_services
		WHERE business_id = $1 AND name = $2
	`, businessID, serviceName).Scan(&mins)
	return mins, err
}

type Staff struct {
	ID         string
	BusinessID string
	Name       string
	Role       string
	IsActive   bool
}

func (r *Repository) CreateStaff(ctx context.Context, businessID, name, role string, isActive bool) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO staff (business_id, name, role, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text
	`, businessID, name, role, isActive).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) ListStaff(ctx context.Context, businessID string, limit int) ([]Staff, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, business_id::text, name, role, is_active
		FROM staff
		WHERE business_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, businessID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Staff
	for rows.Next() {
		var s Staff
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.Name, &s.Role, &s.IsActive); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
