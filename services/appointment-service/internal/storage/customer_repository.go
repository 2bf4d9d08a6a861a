package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/crmdesk/crmdesk/libs/db"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/model"
)

type CustomerRepository struct {
	pool *db.Pool
}

func NewCustomerRepository(pool *db.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO customers (id, business_id, name, phone, email, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, c.BusinessID, c.Name, c.Phone, c.Email, c.Notes)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *CustomerRepository) List(ctx context.Context, businessID string, limit int) ([]model.Customer, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, business_id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(notes, ''), created_at
		FROM customers
		WHERE business_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, businessID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Phone, &c.Email, &c.Notes, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return customers, nil
}
