package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/crmdesk/crmdesk/libs/config"
	"github.com/crmdesk/crmdesk/libs/db"
	"github.com/crmdesk/crmdesk/libs/httpx"
	"github.com/crmdesk/crmdesk/libs/inbox"
	"github.com/crmdesk/crmdesk/libs/kafkax"
	otelx "github.com/crmdesk/crmdesk/libs/otel"
	"github.com/crmdesk/crmdesk/libs/runtime"
	"github.com/crmdesk/crmdesk/services/analytics-service/internal/handlers"
	"github.com/crmdesk/crmdesk/services/analytics-service/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	service := config.String("SERVICE_NAME", "analytics-service")
	port, err := config.Port("PORT", "8086")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}

	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	repo := metrics.NewRepository(pool)
	inboxRepo := inbox.NewRepository(pool)
	brokers := config.String("KAFKA_BROKERS", "")
	groupID := config.String("KAFKA_GROUP_ID", "analytics-service")

	consume := func(topic string, handler kafkax.Handler) {
		c := kafkax.NewConsumer(logger, inboxRepo, kafkax.ConsumerConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}, handler)
		go c.Run(ctx)
	}

	consume("notification.sent.v1", notificationHandler(logger, repo, "sent"))
	consume("notification.failed.v1", notificationHandler(logger, repo, "failed"))

	consume("scheduler.reminder.dlq.v1", func(ctx context.Context, msg kafka.Message) error {
		var payload struct {
			AppointmentID string `json:"appointment_id"`
			BusinessID    string `json:"business_id"`
			Channel       string `json:"channel"`
			Recipient     string `json:"recipient"`
			RemindAt      string `json:"remind_at"`
			ErrorReason   string `json:"error_reason"`
			FailedAt      string `json:"failed_at"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid dlq payload", "err", err)
			return nil
		}
		if payload.AppointmentID == "" || payload.Channel == "" || payload.ErrorReason == "" {
			logger.Error("missing dlq fields")
			return nil
		}
		remindAt, err := time.Parse(time.RFC3339, payload.RemindAt)
		if err != nil {
			logger.Error("invalid remind_at", "err", err)
			return nil
		}
		failedAt, err := time.Parse(time.RFC3339, payload.FailedAt)
		if err != nil {
			logger.Error("invalid failed_at", "err", err)
			return nil
		}
		if err := repo.RecordDLQEvent(ctx, payload.AppointmentID, payload.BusinessID, payload.Channel, payload.Recipient, remindAt, payload.ErrorReason, failedAt); err != nil {
			logger.Error("failed to write dlq event", "err", err)
			return err
		}
		logger.Warn("scheduler dlq recorded", "appointment_id", payload.AppointmentID, "channel", payload.Channel)
		return nil
	})

	consume("auth.audit.v1", func(ctx context.Context, msg kafka.Message) error {
		var payload struct {
			EventType string          `json:"event_type"`
			ActorID   string          `json:"actor_id"`
			Metadata  json.RawMessage `json:"metadata"`
			CreatedAt string          `json:"created_at"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid auth audit payload", "err", err)
			return nil
		}
		if payload.EventType == "" || payload.CreatedAt == "" {
			logger.Error("missing auth audit fields")
			return nil
		}
		createdAt, err := time.Parse(time.RFC3339, payload.CreatedAt)
		if err != nil {
			logger.Error("invalid auth audit created_at", "err", err)
			return nil
		}
		if err := repo.RecordSecurityAudit(ctx, payload.EventType, payload.ActorID, payload.Metadata, createdAt); err != nil {
			logger.Error("failed to write security audit event", "err", err)
			return err
		}
		logger.Info("security audit recorded", "event_type", payload.EventType)
		return nil
	})

	consume("crm.appointment.booked.v1", appointmentHandler(logger, repo, 1, 0))
	consume("crm.appointment.cancelled.v1", appointmentHandler(logger, repo, 0, 1))

	consume("crm.invoice.paid.v1", func(ctx context.Context, msg kafka.Message) error {
		var payload struct {
			InvoiceID   string `json:"invoice_id"`
			BusinessID  string `json:"business_id"`
			AmountCents int64  `json:"amount_cents"`
			PaidAt      string `json:"paid_at"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid invoice payload", "err", err)
			return nil
		}
		if payload.InvoiceID == "" || payload.BusinessID == "" {
			logger.Error("missing invoice fields")
			return nil
		}
		paidAt, err := time.Parse(time.RFC3339, payload.PaidAt)
		if err != nil {
			logger.Error("invalid paid_at", "err", err)
			return nil
		}
		if err := repo.BumpRevenueDaily(ctx, payload.BusinessID, paidAt.UTC(), payload.AmountCents, 1, 0); err != nil {
			logger.Error("failed to update revenue metrics", "err", err)
			return err
		}
		logger.Info("invoice payment recorded", "invoice_id", payload.InvoiceID)
		return nil
	})

	consume("crm.invoice.overdue.v1", func(ctx context.Context, msg kafka.Message) error {
		var payload struct {
			InvoiceID  string `json:"invoice_id"`
			BusinessID string `json:"business_id"`
			DueDate    string `json:"due_date"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid invoice payload", "err", err)
			return nil
		}
		if payload.InvoiceID == "" || payload.BusinessID == "" {
			logger.Error("missing invoice fields")
			return nil
		}
		if err := repo.BumpRevenueDaily(ctx, payload.BusinessID, time.Now().UTC(), 0, 0, 1); err != nil {
			logger.Error("failed to update revenue metrics", "err", err)
			return err
		}
		logger.Info("invoice overdue recorded", "invoice_id", payload.InvoiceID)
		return nil
	})

	var cache *redis.Client
	if addr := config.String("REDIS_ADDR", ""); addr != "" {
		redisDB := 0
		if v, err := strconv.Atoi(config.String("REDIS_DB", "0")); err == nil {
			redisDB = v
		}
		cache = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.String("REDIS_PASSWORD", ""),
			DB:       redisDB,
		})
		logger.Info("dashboard caching enabled (redis)", "redis_addr", addr)
	}

	cacheTTLSeconds, _ := strconv.Atoi(config.String("DASHBOARD_CACHE_TTL_SECONDS", "300"))
	dashboard := handlers.NewDashboard(repo, cache, time.Duration(cacheTTLSeconds)*time.Second, logger)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(brokers)},
	)
	mux.HandleFunc("/api/v1/dashboard", dashboard.Get)
	handler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	handler = otelhttp.NewHandler(handler, "analytics")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}

func notificationHandler(logger *slog.Logger, repo *metrics.Repository, status string) kafkax.Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		var payload struct {
			AppointmentID string `json:"appointment_id"`
			BusinessID    string `json:"business_id"`
			Channel       string `json:"channel"`
			SentAt        string `json:"sent_at"`
			FailedAt      string `json:"failed_at"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid notification payload", "err", err)
			return nil
		}
		ts := payload.SentAt
		if status == "failed" {
			ts = payload.FailedAt
		}
		if payload.AppointmentID == "" || payload.Channel == "" || ts == "" {
			logger.Error("missing notification fields")
			return nil
		}
		at, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			logger.Error("invalid notification timestamp", "err", err)
			return nil
		}

		if err := repo.RecordNotification(ctx, payload.AppointmentID, payload.BusinessID, payload.Channel, at, status); err != nil {
			logger.Error("failed to write notification metrics", "err", err)
			return err
		}
		if payload.BusinessID != "" {
			sentInc, failedInc := 1, 0
			if status == "failed" {
				sentInc, failedInc = 0, 1
			}
			if err := repo.BumpNotificationDaily(ctx, payload.BusinessID, payload.Channel, at.UTC(), sentInc, failedInc); err != nil {
				logger.Error("failed to update daily notification metrics", "err", err)
				return err
			}
		}
		logger.Info("notification metric recorded", "appointment_id", payload.AppointmentID, "channel", payload.Channel, "status", status)
		return nil
	}
}

func appointmentHandler(logger *slog.Logger, repo *metrics.Repository, bookedInc, cancelledInc int) kafkax.Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		var payload struct {
			AppointmentID string `json:"appointment_id"`
			BusinessID    string `json:"business_id"`
			StartTime     string `json:"start_time"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid appointment payload", "err", err)
			return nil
		}
		if payload.AppointmentID == "" || payload.BusinessID == "" || payload.StartTime == "" {
			logger.Error("missing appointment fields")
			return nil
		}
		startTime, err := time.Parse(time.RFC3339, payload.StartTime)
		if err != nil {
			logger.Error("invalid start_time", "err", err)
			return nil
		}

		meta := kafkax.ExtractEventMeta(msg)
		if err := repo.RecordAppointmentEvent(ctx, meta.EventID, meta.EventType, payload.BusinessID, payload.AppointmentID, startTime, bookedInc, cancelledInc); err != nil {
			logger.Error("failed to record appointment event", "err", err)
			return err
		}
		logger.Info("appointment metric recorded", "appointment_id", payload.AppointmentID, "business_id", payload.BusinessID, "event_type", meta.EventType)
		return nil
	}
}
