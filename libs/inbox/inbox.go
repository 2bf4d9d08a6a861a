// Package inbox deduplicates consumed Kafka events. Each processed
// event ID is recorded once; a unique violation on replay tells the
// consumer the work already happened.
package inbox

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crmdesk/crmdesk/libs/db"
)

type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

// Record claims an event. It returns false with no error when the
// event was already seen.
func (r *Repository) Record(ctx context.Context, eventID string, eventType string) (bool, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO inbox_events (event_id, event_type)
		VALUES ($1, $2)
	`, eventID, eventType)
	if err == nil {
		return true, nil
	}

	if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
		return false, nil
	}

	return false, err
}
