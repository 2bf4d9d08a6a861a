package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/crmdesk/crmdesk/libs/db"
	"github.com/crmdesk/crmdesk/libs/outbox"
	"github.com/crmdesk/crmdesk/services/invoice-service/internal/invoices"
	"github.com/crmdesk/crmdesk/services/invoice-service/internal/storage"
)

// OverdueSweeper periodically moves pending invoices past their due
// date to overdue and emits crm.invoice.overdue.v1 for each one.
type OverdueSweeper struct {
	pool        *db.Pool
	repo        *storage.Repository
	invSvc      *invoices.Service
	logger      *slog.Logger
	batchSize   int
	advisoryKey int64
}

type OverdueSweeperConfig struct {
	BatchSize       int
	AdvisoryLockKey int64
}

func NewOverdueSweeper(pool *db.Pool, repo *storage.Repository, outboxRepo *outbox.Repository, logger *slog.Logger, cfg OverdueSweeperConfig) *OverdueSweeper {
	bs := cfg.BatchSize
	if bs <= 0 {
		bs = 100
	}
	lockKey := cfg.AdvisoryLockKey
	if lockKey == 0 {
		// Stable-ish default; override via env if you run multiple invoice instances.
		lockKey = 4242002
	}
	return &OverdueSweeper{
		pool:        pool,
		repo:        repo,
		invSvc:      invoices.New(repo, outboxRepo),
		logger:      logger,
		batchSize:   bs,
		advisoryKey: lockKey,
	}
}

func (s *OverdueSweeper) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}

	// Best-effort leader election for multi-instance deployments.
	// Only the instance holding the advisory lock will sweep.
	for {
		if ctx.Err() != nil {
			return
		}
		var locked bool
		if err := s.pool.QueryRow(ctx, `SELECT pg_try_advisory_lock($1)`, s.advisoryKey).Scan(&locked); err != nil {
			s.logger.Error("overdue sweep: failed to acquire advisory lock", "err", err)
			time.Sleep(5 * time.Second)
			continue
		}
		if !locked {
			s.logger.Info("overdue sweep: advisory lock held by another instance", "lock_key", s.advisoryKey)
			time.Sleep(30 * time.Second)
			continue
		}
		s.logger.Info("overdue sweep: advisory lock acquired", "lock_key", s.advisoryKey)
		defer func() {
			_, _ = s.pool.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, s.advisoryKey)
		}()
		break
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run immediately on startup to self-heal faster after downtime.
	s.sweepOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *OverdueSweeper) sweepOnce(ctx context.Context) {
	for {
		n, err := s.sweepBatch(ctx)
		if err != nil {
			s.logger.Error("overdue sweep failed", "err", err)
			return
		}
		if n == 0 {
			return
		}
		s.logger.Info("invoices marked overdue", "count", n)
		if n < s.batchSize {
			return
		}
	}
}

func (s *OverdueSweeper) sweepBatch(ctx context.Context) (int, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	due, err := s.repo.ListDueForUpdate(ctx, tx, time.Now().UTC(), s.batchSize)
	if err != nil {
		return 0, err
	}
	for _, inv := range due {
		if err := s.invSvc.MarkOverdue(ctx, tx, inv); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(due), nil
}
