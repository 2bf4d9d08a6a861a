package main

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/crmdesk/crmdesk/libs/config"
	"github.com/crmdesk/crmdesk/libs/db"
	"github.com/crmdesk/crmdesk/libs/httpx"
	"github.com/crmdesk/crmdesk/libs/kafkax"
	otelx "github.com/crmdesk/crmdesk/libs/otel"
	"github.com/crmdesk/crmdesk/libs/outbox"
	"github.com/crmdesk/crmdesk/libs/runtime"
	"github.com/crmdesk/crmdesk/services/invoice-service/internal/handlers"
	"github.com/crmdesk/crmdesk/services/invoice-service/internal/reconcile"
	"github.com/crmdesk/crmdesk/services/invoice-service/internal/storage"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	service := config.String("SERVICE_NAME", "invoice-service")
	port, err := config.Port("PORT", "8084")
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

	repo := storage.NewRepository(pool)
	outboxRepo := outbox.NewRepository(pool)
	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	tolSeconds, err := strconv.Atoi(config.String("STRIPE_WEBHOOK_TOLERANCE_SECONDS", "300"))
	if err != nil || tolSeconds <= 0 {
		tolSeconds = 300
	}
	h := handlers.New(repo, outboxRepo, logger, handlers.Config{
		StripeWebhookSecret:           config.String("STRIPE_WEBHOOK_SECRET", ""),
		StripeWebhookToleranceSeconds: tolSeconds,
		StripeSecretKey:               config.String("STRIPE_SECRET_KEY", ""),
		CheckoutSuccessURL:            config.String("CHECKOUT_SUCCESS_URL", ""),
		CheckoutCancelURL:             config.String("CHECKOUT_CANCEL_URL", ""),
	})
	mux.HandleFunc("/api/v1/invoices", h.List)
	mux.HandleFunc("/api/v1/invoices/create", h.Create)
	mux.HandleFunc("/api/v1/invoices/get", h.Get)
	mux.HandleFunc("/api/v1/invoices/cancel", h.Cancel)
	mux.HandleFunc("/api/v1/invoices/checkout", h.Checkout)
	mux.HandleFunc("/api/v1/invoices/checkout/session", h.CheckoutSessionStatus)
	mux.HandleFunc("/api/v1/invoices/checkout/session/ack", h.AckCheckoutReturn)
	mux.HandleFunc("/api/v1/invoices/webhooks/stripe", h.StripeWebhook)

	handler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	handler = otelhttp.NewHandler(handler, "invoice")
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

	// Overdue sweep: pending invoices past due date become overdue.
	if isTruthy(config.String("INVOICE_OVERDUE_SWEEP_ENABLED", "true")) {
		intervalSeconds, _ := strconv.Atoi(config.String("INVOICE_OVERDUE_SWEEP_INTERVAL_SECONDS", "3600"))
		if intervalSeconds <= 0 {
			intervalSeconds = 3600
		}
		batchSize, _ := strconv.Atoi(config.String("INVOICE_OVERDUE_SWEEP_BATCH_SIZE", "100"))
		lockKey, _ := strconv.ParseInt(config.String("INVOICE_OVERDUE_SWEEP_LOCK_KEY", "4242002"), 10, 64)
		sweeper := reconcile.NewOverdueSweeper(pool, repo, outboxRepo, logger, reconcile.OverdueSweeperConfig{
			BatchSize:       batchSize,
			AdvisoryLockKey: lockKey,
		})
		go sweeper.Run(ctx, time.Duration(intervalSeconds)*time.Second)
	}

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}

func isTruthy(s string) bool {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}
