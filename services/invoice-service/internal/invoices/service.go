package invoices

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/crmdesk/crmdesk/libs/outbox"
	"github.com/crmdesk/crmdesk/services/invoice-service/internal/storage"
)

// Service encapsulates invoice state transitions and the side effects
// (outbox events). Keeping this out of HTTP handlers makes it reusable
// for webhook and sweeper flows.
type Service struct {
	repo       *storage.Repository
	outboxRepo *outbox.Repository
}

func New(repo *storage.Repository, outboxRepo *outbox.Repository) *Service {
	return &Service{repo: repo, outboxRepo: outboxRepo}
}

func (s *Service) Create(ctx context.Context, tx pgx.Tx, inv storage.Invoice) (string, error) {
	inv.Status = StatusPending
	id, err := s.repo.Create(ctx, tx, inv)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(map[string]any{
		"invoice_id":     inv.DisplayID,
		"business_id":    inv.BusinessID,
		"appointment_id": inv.AppointmentDisplayID,
		"customer":       inv.Customer,
		"amount_cents":   inv.AmountCents,
		"currency":       inv.Currency,
		"due_date":       inv.DueDate.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}
	if err := s.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "invoice",
		AggregateID:   inv.DisplayID,
		EventType:     "crm.invoice.created.v1",
		Payload:       payload,
	}); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Service) MarkPaid(ctx context.Context, tx pgx.Tx, inv storage.Invoice, paidAt time.Time) error {
	if inv.Status == StatusPaid {
		// Replayed webhook or double ack. Nothing to do.
		return nil
	}
	if !CanTransition(inv.Status, StatusPaid) {
		return fmt.Errorf("cannot mark %s invoice %s as paid", inv.Status, inv.DisplayID)
	}
	at := paidAt.UTC()
	if err := s.repo.UpdateStatus(ctx, tx, inv.ID, StatusPaid, &at); err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]any{
		"invoice_id":   inv.DisplayID,
		"business_id":  inv.BusinessID,
		"customer":     inv.Customer,
		"amount_cents": inv.AmountCents,
		"currency":     inv.Currency,
		"paid_at":      at.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return s.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "invoice",
		AggregateID:   inv.DisplayID,
		EventType:     "crm.invoice.paid.v1",
		Payload:       payload,
	})
}

func (s *Service) MarkOverdue(ctx context.Context, tx pgx.Tx, inv storage.Invoice) error {
	if !CanTransition(inv.Status, StatusOverdue) {
		return fmt.Errorf("cannot mark %s invoice %s as overdue", inv.Status, inv.DisplayID)
	}
	if err := s.repo.UpdateStatus(ctx, tx, inv.ID, StatusOverdue, nil); err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]any{
		"invoice_id":   inv.DisplayID,
		"business_id":  inv.BusinessID,
		"customer":     inv.Customer,
		"amount_cents": inv.AmountCents,
		"currency":     inv.Currency,
		"due_date":     inv.DueDate.Format("2006-01-02"),
	})
	if err != nil {
		return err
	}
	return s.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "invoice",
		AggregateID:   inv.DisplayID,
		EventType:     "crm.invoice.overdue.v1",
		Payload:       payload,
	})
}

func (s *Service) Cancel(ctx context.Context, tx pgx.Tx, inv storage.Invoice) error {
	if !CanTransition(inv.Status, StatusCancelled) {
		return fmt.Errorf("cannot cancel %s invoice %s", inv.Status, inv.DisplayID)
	}
	if err := s.repo.UpdateStatus(ctx, tx, inv.ID, StatusCancelled, nil); err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]any{
		"invoice_id":  inv.DisplayID,
		"business_id": inv.BusinessID,
		"customer":    inv.Customer,
	})
	if err != nil {
		return err
	}
	return s.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "invoice",
		AggregateID:   inv.DisplayID,
		EventType:     "crm.invoice.cancelled.v1",
		Payload:       payload,
	})
}
