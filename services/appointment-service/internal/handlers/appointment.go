package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/crmdesk/crmdesk/libs/outbox"
	"github.com/crmdesk/crmdesk/libs/schedule"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/hours"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/model"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/sheetrow"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/storage"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/validate"
)

type AppointmentHandler struct {
	repo            *storage.AppointmentRepository
	outboxRepo      *outbox.Repository
	logger          *slog.Logger
	hours           hours.Provider
	reminderOffsets []time.Duration
}

func NewAppointmentHandler(repo *storage.AppointmentRepository, outboxRepo *outbox.Repository, logger *slog.Logger, hoursProvider hours.Provider, reminderOffsets []time.Duration) *AppointmentHandler {
	return &AppointmentHandler{
		repo:            repo,
		outboxRepo:      outboxRepo,
		logger:          logger,
		hours:           hoursProvider,
		reminderOffsets: reminderOffsets,
	}
}

type createAppointmentRequest struct {
	Customer        string `json:"customer"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Service         string `json:"service"`
	DurationMinutes int    `json:"duration_minutes"`
	Location        string `json:"location"`
	Notes           string `json:"notes"`
	CreatedBy       string `json:"created_by"`
}

type createAppointmentResponse struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

type conflictResponse struct {
	Error       string           `json:"error"`
	Conflicting *appointmentItem `json:"conflicting,omitempty"`
}

type appointmentItem struct {
	AppointmentID   string `json:"appointment_id"`
	Customer        string `json:"customer"`
	Service         string `json:"service"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	Location        string `json:"location,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type updateStatusRequest struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

type updateStatusResponse struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

type slotItem struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	businessID := businessIDFrom(r)
	if businessID == "" {
		http.Error(w, "missing business id", http.StatusBadRequest)
		return
	}

	var req createAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	req.Customer = validate.Sanitize(req.Customer)
	req.Service = validate.Sanitize(req.Service)
	req.Location = validate.Sanitize(req.Location)
	req.Notes = validate.Sanitize(req.Notes)

	missing := validate.Missing([]string{"customer", "date", "time", "service"}, map[string]string{
		"customer": req.Customer,
		"date":     req.Date,
		"time":     req.Time,
		"service":  req.Service,
	})
	if len(missing) > 0 {
		http.Error(w, "missing required fields: "+strings.Join(missing, ", "), http.StatusBadRequest)
		return
	}
	if req.Email != "" && !validate.Email(req.Email) {
		http.Error(w, "invalid email", http.StatusBadRequest)
		return
	}
	if req.Phone != "" && !validate.Phone(req.Phone) {
		http.Error(w, "invalid phone", http.StatusBadRequest)
		return
	}

	start, err := sheetrow.ParseStart(strings.TrimSpace(req.Date), strings.TrimSpace(req.Time))
	if err != nil {
		http.Error(w, "invalid date or time", http.StatusBadRequest)
		return
	}
	if _, err := schedule.NewInterval(start, req.DurationMinutes); err != nil {
		http.Error(w, "duration must be positive", http.StatusBadRequest)
		return
	}

	appt := &model.Appointment{
		DisplayID:       "APT-" + time.Now().Format("20060102150405"),
		BusinessID:      businessID,
		Customer:        req.Customer,
		Phone:           strings.TrimSpace(req.Phone),
		Email:           strings.TrimSpace(req.Email),
		Service:         req.Service,
		StartTime:       start,
		DurationMinutes: req.DurationMinutes,
		Status:          schedule.StatusScheduled.String(),
		Location:        req.Location,
		Notes:           req.Notes,
		CreatedBy:       strings.TrimSpace(req.CreatedBy),
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	idempotencyKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if idempotencyKey != "" {
		rec, exists, err := h.repo.LockIdempotencyKey(ctx, tx, businessID, idempotencyKey)
		if err != nil {
			http.Error(w, "failed to lock idempotency key", http.StatusInternalServerError)
			return
		}
		if exists && rec.StatusCode > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rec.StatusCode)
			if len(rec.ResponsePayload) > 0 {
				_, _ = w.Write(rec.ResponsePayload)
				return
			}
			_ = json.NewEncoder(w).Encode(createAppointmentResponse{AppointmentID: rec.AppointmentID, Status: appt.Status})
			return
		}
	}

	// Same-day rows in creation order; the first stored overlap wins,
	// the same answer the calendar sheet always gave.
	sameDay, err := h.repo.ListDay(ctx, businessID, start)
	if err != nil {
		http.Error(w, "failed to load existing appointments", http.StatusInternalServerError)
		return
	}
	candidate, err := appt.Booking()
	if err != nil {
		http.Error(w, "invalid appointment", http.StatusBadRequest)
		return
	}
	res, err := schedule.CheckConflict(candidate, model.Bookings(sameDay))
	if err != nil {
		http.Error(w, "conflict check failed", http.StatusBadRequest)
		return
	}
	if res.HasConflict {
		body, err := json.Marshal(conflictResponse{
			Error:       "time conflicts with an existing appointment",
			Conflicting: bookingItem(res.Conflicting),
		})
		if err != nil {
			http.Error(w, "failed to build response", http.StatusInternalServerError)
			return
		}
		if idempotencyKey != "" {
			if err := h.repo.FinalizeIdempotency(ctx, tx, businessID, idempotencyKey, "", http.StatusConflict, body); err == nil {
				_ = tx.Commit(ctx)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write(body)
		return
	}

	id, err := h.repo.Create(ctx, tx, appt)
	if err != nil {
		if storage.IsDuplicate(err) {
			http.Error(w, "appointment already exists", http.StatusConflict)
			return
		}
		http.Error(w, "failed to create appointment", http.StatusInternalServerError)
		return
	}
	appt.ID = id

	evtPayload, err := json.Marshal(map[string]any{
		"appointment_id": appt.DisplayID,
		"business_id":    businessID,
		"customer":       appt.Customer,
		"customer_email": appt.Email,
		"customer_phone": appt.Phone,
		"service":        appt.Service,
		"start_time":     appt.StartTime.Format(time.RFC3339),
		"duration":       appt.DurationMinutes,
		"status":         appt.Status,
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.DisplayID,
		EventType:     "crm.appointment.booked.v1",
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	for _, offset := range h.reminderOffsets {
		remindAt := appt.StartTime.Add(-offset)
		if remindAt.Before(now) {
			continue
		}
		h.enqueueReminder(ctx, tx, appt, remindAt, "email", appt.Email)
		h.enqueueReminder(ctx, tx, appt, remindAt, "sms", appt.Phone)
	}

	respBody, err := json.Marshal(createAppointmentResponse{AppointmentID: appt.DisplayID, Status: appt.Status})
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	if idempotencyKey != "" {
		if err := h.repo.FinalizeIdempotency(ctx, tx, businessID, idempotencyKey, appt.DisplayID, http.StatusCreated, respBody); err != nil {
			http.Error(w, "failed to finalize idempotency key", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(respBody)
}

// List serves the calendar views: ?view=day|week|month&date=YYYY-MM-DD
// with an optional status filter.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	businessID := businessIDFrom(r)
	if businessID == "" {
		http.Error(w, "missing business id", http.StatusBadRequest)
		return
	}

	ref, granularity, err := windowParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	start, end, err := schedule.ResolveWindow(ref, granularity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var statusFilter *schedule.Status
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status, err := schedule.ParseStatus(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		statusFilter = &status
	}

	appts, err := h.repo.ListRange(r.Context(), businessID, start, end)
	if err != nil {
		http.Error(w, "failed to load appointments", http.StatusInternalServerError)
		return
	}

	filtered := schedule.FilterByWindow(model.Bookings(appts), start, end, statusFilter)
	items := make([]appointmentItem, 0, len(filtered))
	for i := range filtered {
		items = append(items, *bookingItem(&filtered[i]))
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"window_start": start.Format(sheetrow.DateLayout),
		"window_end":   end.Format(sheetrow.DateLayout),
		"appointments": items,
	})
}

// Slots serves the open intervals of one day for a service duration:
// ?date=YYYY-MM-DD&duration_minutes=60.
func (h *AppointmentHandler) Slots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	businessID := businessIDFrom(r)
	if businessID == "" {
		http.Error(w, "missing business id", http.StatusBadRequest)
		return
	}

	dateRaw := strings.TrimSpace(r.URL.Query().Get("date"))
	day, err := time.Parse(sheetrow.DateLayout, dateRaw)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	duration := 30
	if raw := strings.TrimSpace(r.URL.Query().Get("duration_minutes")); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid duration_minutes", http.StatusBadRequest)
			return
		}
	}

	cfg, err := h.hours.DayHours(r.Context(), businessID, dateRaw)
	if err != nil {
		http.Error(w, "business hours unavailable", http.StatusServiceUnavailable)
		return
	}

	existing, err := h.repo.ListDay(r.Context(), businessID, day)
	if err != nil {
		http.Error(w, "failed to load existing appointments", http.StatusInternalServerError)
		return
	}

	slots, err := schedule.OpenSlots(day, cfg.Hours, duration, cfg.SlotStepMinutes, model.Bookings(existing))
	if err != nil {
		var invalid *schedule.InvalidIntervalError
		if errors.As(err, &invalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to compute slots", http.StatusInternalServerError)
		return
	}

	items := make([]slotItem, 0, len(slots))
	for _, s := range slots {
		items = append(items, slotItem{
			Start: s.Start.Format(sheetrow.TimeLayout),
			End:   s.End.Format(sheetrow.TimeLayout),
		})
	}
	// An empty list is a fully booked day, still a 200.
	respondJSON(w, http.StatusOK, map[string]any{"date": dateRaw, "slots": items})
}

// UpdateStatus moves an appointment through its lifecycle. Rows are
// never deleted; cancelling and marking a no-show both land here.
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	businessID := businessIDFrom(r)
	if businessID == "" {
		http.Error(w, "missing business id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}
	target, err := schedule.ParseStatus(strings.TrimSpace(req.Status))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.repo.GetForUpdate(ctx, tx, businessID, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	current, err := schedule.ParseStatus(appt.Status)
	if err != nil {
		http.Error(w, "stored status is corrupted", http.StatusInternalServerError)
		return
	}
	if !schedule.CanTransition(current, target) {
		http.Error(w, "cannot move "+current.String()+" appointment to "+target.String(), http.StatusConflict)
		return
	}

	if err := h.repo.UpdateStatus(ctx, tx, businessID, req.AppointmentID, target.String()); err != nil {
		http.Error(w, "failed to update status", http.StatusInternalServerError)
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"appointment_id": appt.DisplayID,
		"business_id":    businessID,
		"from_status":    current.String(),
		"to_status":      target.String(),
		"start_time":     appt.StartTime.Format(time.RFC3339),
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	eventType := "crm.appointment.status_changed.v1"
	if target == schedule.StatusCancelled {
		eventType = "crm.appointment.cancelled.v1"
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.DisplayID,
		EventType:     eventType,
		Payload:       evtPayload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, updateStatusResponse{AppointmentID: appt.DisplayID, Status: target.String()})
}

// Summary buckets a window's appointments for the dashboard widgets:
// ?view=month&date=...&by=status|service|hour|weekday.
func (h *AppointmentHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	businessID := businessIDFrom(r)
	if businessID == "" {
		http.Error(w, "missing business id", http.StatusBadRequest)
		return
	}

	ref, granularity, err := windowParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	key, err := schedule.ParseGroupKey(strings.TrimSpace(r.URL.Query().Get("by")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	start, end, err := schedule.ResolveWindow(ref, granularity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	appts, err := h.repo.ListRange(r.Context(), businessID, start, end)
	if err != nil {
		http.Error(w, "failed to load appointments", http.StatusInternalServerError)
		return
	}
	bookings := schedule.FilterByWindow(model.Bookings(appts), start, end, nil)
	counts, err := schedule.AggregateCounts(bookings, key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"window_start": start.Format(sheetrow.DateLayout),
		"window_end":   end.Format(sheetrow.DateLayout),
		"by":           key.String(),
		"counts":       counts,
		"total":        len(bookings),
	})
}

// Import ingests a CSV sheet of appointments. Bad rows are rejected
// individually; good rows are stored in file order so later conflict
// checks see the sheet's own ordering.
func (h *AppointmentHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	businessID := businessIDFrom(r)
	if businessID == "" {
		http.Error(w, "missing business id", http.StatusBadRequest)
		return
	}

	res, err := sheetrow.ReadCSV(r.Body, businessID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stored := 0
	for i := range res.Accepted {
		appt := &res.Accepted[i]
		if appt.DisplayID == "" {
			appt.DisplayID = "APT-" + time.Now().Format("20060102150405") + "-" + strconv.Itoa(i)
		}
		if _, err := h.repo.Create(ctx, tx, appt); err != nil {
			if storage.IsDuplicate(err) {
				res.Rejected = append(res.Rejected, sheetrow.RowError{Line: i + 2, Reason: "duplicate id " + appt.DisplayID})
				continue
			}
			http.Error(w, "failed to store rows", http.StatusInternalServerError)
			return
		}
		stored++
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	rejected := make([]map[string]any, 0, len(res.Rejected))
	for _, re := range res.Rejected {
		rejected = append(rejected, map[string]any{"line": re.Line, "reason": re.Reason})
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"accepted": stored,
		"rejected": rejected,
	})
}

// Export renders a window of appointments back into the sheet layout.
func (h *AppointmentHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	businessID := businessIDFrom(r)
	if businessID == "" {
		http.Error(w, "missing business id", http.StatusBadRequest)
		return
	}
	ref, granularity, err := windowParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	start, end, err := schedule.ResolveWindow(ref, granularity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	appts, err := h.repo.ListRange(r.Context(), businessID, start, end)
	if err != nil {
		http.Error(w, "failed to load appointments", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="appointments.csv"`)
	if err := sheetrow.WriteCSV(w, appts); err != nil {
		h.logger.Error("csv export failed", "err", err)
	}
}

func (h *AppointmentHandler) enqueueReminder(ctx context.Context, tx pgx.Tx, appt *model.Appointment, remindAt time.Time, channel, recipient string) {
	if strings.TrimSpace(recipient) == "" {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"appointment_id": appt.DisplayID,
		"business_id":    appt.BusinessID,
		"channel":        channel,
		"recipient":      recipient,
		"remind_at":      remindAt.Format(time.RFC3339),
		"template_data": map[string]any{
			"customer":   appt.Customer,
			"service":    appt.Service,
			"start_time": appt.StartTime.Format(time.RFC3339),
		},
	})
	if err != nil {
		h.logger.Error("failed to build reminder payload", "err", err)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.DisplayID,
		EventType:     "crm.reminder.requested.v1",
		Payload:       payload,
	}); err != nil {
		h.logger.Error("failed to enqueue reminder", "err", err)
	}
}

// windowParams reads the shared ?view= and ?date= query parameters.
// Missing date means today; missing view means day.
func windowParams(r *http.Request) (time.Time, schedule.Granularity, error) {
	ref := time.Now()
	if raw := strings.TrimSpace(r.URL.Query().Get("date")); raw != "" {
		parsed, err := time.Parse(sheetrow.DateLayout, raw)
		if err != nil {
			return time.Time{}, 0, errors.New("invalid date")
		}
		ref = parsed
	}
	view := strings.TrimSpace(r.URL.Query().Get("view"))
	if view == "" {
		view = "day"
	}
	granularity, err := schedule.ParseGranularity(view)
	if err != nil {
		return time.Time{}, 0, err
	}
	return ref, granularity, nil
}

func bookingItem(b *schedule.Booking) *appointmentItem {
	if b == nil {
		return nil
	}
	return &appointmentItem{
		AppointmentID:   b.ID,
		Customer:        b.Customer,
		Service:         b.Service,
		Date:            b.Start.Format(sheetrow.DateLayout),
		Time:            b.Start.Format(sheetrow.TimeLayout),
		DurationMinutes: b.DurationMinutes,
		Status:          b.Status.String(),
		Location:        b.Location,
		Notes:           b.Notes,
	}
}

func businessIDFrom(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-Business-Id"))
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
