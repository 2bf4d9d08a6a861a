package main

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/crmdesk/crmdesk/libs/config"
	"github.com/crmdesk/crmdesk/libs/db"
	"github.com/crmdesk/crmdesk/libs/httpx"
	"github.com/crmdesk/crmdesk/libs/kafkax"
	otelx "github.com/crmdesk/crmdesk/libs/otel"
	"github.com/crmdesk/crmdesk/libs/outbox"
	"github.com/crmdesk/crmdesk/libs/runtime"
	"github.com/crmdesk/crmdesk/libs/schedule"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/handlers"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/hours"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/storage"
)

func parseReminderOffsets(raw string, logger *slog.Logger) []time.Duration {
	var offsets []time.Duration
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		mins, err := strconv.Atoi(part)
		if err != nil || mins <= 0 {
			logger.Warn("invalid reminder offset", "value", part)
			continue
		}
		offsets = append(offsets, time.Duration(mins)*time.Minute)
	}
	if len(offsets) == 0 {
		offsets = []time.Duration{24 * time.Hour}
	}
	return offsets
}

func hoursFromEnv(logger *slog.Logger) hours.Config {
	open, err := hours.ParseClock(config.String("BUSINESS_OPEN", "09:00"))
	if err != nil {
		logger.Warn("invalid BUSINESS_OPEN; using 09:00", "err", err)
		open, _ = hours.ParseClock("09:00")
	}
	closeAt, err := hours.ParseClock(config.String("BUSINESS_CLOSE", "17:00"))
	if err != nil {
		logger.Warn("invalid BUSINESS_CLOSE; using 17:00", "err", err)
		closeAt, _ = hours.ParseClock("17:00")
	}
	cfg := hours.Config{
		Hours:           schedule.BusinessHours{Open: open, Close: closeAt},
		SlotStepMinutes: 30,
	}
	if raw := config.String("SLOT_STEP_MINUTES", ""); raw != "" {
		if step, err := strconv.Atoi(raw); err == nil && step > 0 {
			cfg.SlotStepMinutes = step
		}
	}
	breakStart := config.String("BUSINESS_BREAK_START", "")
	breakEnd := config.String("BUSINESS_BREAK_END", "")
	if breakStart != "" && breakEnd != "" {
		bs, errStart := hours.ParseClock(breakStart)
		be, errEnd := hours.ParseClock(breakEnd)
		if errStart == nil && errEnd == nil {
			cfg.Hours.Break = &schedule.Interval{Start: bs, End: be}
		} else {
			logger.Warn("invalid break hours; ignoring", "start", breakStart, "end", breakEnd)
		}
	}
	return cfg
}

func main() {
	service := config.String("SERVICE_NAME", "appointment-service")
	port, err := config.Port("PORT", "8083")
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

	repo := storage.NewAppointmentRepository(pool)
	customerRepo := storage.NewCustomerRepository(pool)
	outboxRepo := outbox.NewRepository(pool)

	offsets := parseReminderOffsets(config.String("REMINDER_OFFSETS_MINUTES", "1440,60"), logger)
	hoursProvider, err := hours.NewBusinessHoursProvider(hoursFromEnv(logger), config.String("BUSINESS_GRPC_ADDR", ""))
	if err != nil {
		logger.Error("hours provider init failed; using static hours", "err", err)
		hoursProvider = hours.NewStaticProvider(hoursFromEnv(logger))
	}

	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	appointmentHandler := handlers.NewAppointmentHandler(repo, outboxRepo, logger, hoursProvider, offsets)
	customerHandler := handlers.NewCustomerHandler(customerRepo, logger)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	mux.HandleFunc("/api/v1/appointments/create", appointmentHandler.Create)
	mux.HandleFunc("/api/v1/appointments", appointmentHandler.List)
	mux.HandleFunc("/api/v1/appointments/slots", appointmentHandler.Slots)
	mux.HandleFunc("/api/v1/appointments/status", appointmentHandler.UpdateStatus)
	mux.HandleFunc("/api/v1/appointments/summary", appointmentHandler.Summary)
	mux.HandleFunc("/api/v1/appointments/import", appointmentHandler.Import)
	mux.HandleFunc("/api/v1/appointments/export", appointmentHandler.Export)
	mux.HandleFunc("/api/v1/customers", customerHandler.Handle)

	httpHandler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	httpHandler = otelhttp.NewHandler(httpHandler, "appointment")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
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
