package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/crmdesk/crmdesk/services/business-service/internal/storage"
)

type Handler struct {
	repo *storage.Repository
}

func New(repo *storage.Repository) *Handler {
	return &Handler{repo: repo}
}

// allowedDurations is the closed set of bookable service lengths in minutes.
var allowedDurations = map[int]bool{15: true, 30: true, 45: true, 60: true, 90: true, 120: true}

func businessIDFromHeader(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-Business-Id"))
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	businessID := businessIDFromHeader(r)
	if businessID == "" {
		http.Error(w, "missing X-Business-Id", http.StatusBadRequest)
		return
	}
	p, err := h.repo.GetOrCreateProfile(r.Context(), businessID)
	if err != nil {
		http.Error(w, "failed to load profile", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"business_id":              p.BusinessID,
		"name":                     p.Name,
		"timezone":                 p.Timezone,
		"reminder_offsets_minutes": p.OffsetsMins,
	})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	businessID := businessIDFromHeader(r)
	if businessID == "" {
		http.Error(w, "missing X-Business-Id", http.StatusBadRequest)
		return
	}
	var req struct {
		Name        string `json:"name"`
		Timezone    string `json:"timezone"`
		OffsetsMins []int  `json:"reminder_offsets_minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	for _, v := range req.OffsetsMins {
		if v <= 0 || v > 365*24*60 {
			http.Error(w, "reminder offsets must be positive minutes", http.StatusBadRequest)
			return
		}
	}
	if err := h.repo.UpdateProfile(r.Context(), businessID, strings.TrimSpace(req.Name), strings.TrimSpace(req.Timezone), req.OffsetsMins); err != nil {
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseClock(value string) (time.Time, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	return t, err == nil
}

func (h *Handler) GetHours(w http.ResponseWriter, r *http.Request) {
	businessID := businessIDFromHeader(r)
	if businessID == "" {
		http.Error(w, "missing X-Business-Id", http.StatusBadRequest)
		return
	}
	hours, err := h.repo.GetHours(r.Context(), businessID)
	if err != nil {
		http.Error(w, "failed to load hours", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, hoursPayload(hours))
}

func (h *Handler) UpdateHours(w http.ResponseWriter, r *http.Request) {
	businessID := businessIDFromHeader(r)
	if businessID == "" {
		http.Error(w, "missing X-Business-Id", http.StatusBadRequest)
		return
	}
	var req struct {
		OpenTime        string `json:"open_time"`
		CloseTime       string `json:"close_time"`
		BreakStart      string `json:"break_start"`
		BreakEnd        string `json:"break_end"`
		SlotStepMinutes int    `json:"slot_step_minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	open, ok := parseClock(req.OpenTime)
	if !ok {
		http.Error(w, "open_time must be HH:MM", http.StatusBadRequest)
		return
	}
	closeAt, ok := parseClock(req.CloseTime)
	if !ok {
		http.Error(w, "close_time must be HH:MM", http.StatusBadRequest)
		return
	}
	if !closeAt.After(open) {
		http.Error(w, "close_time must be after open_time", http.StatusBadRequest)
		return
	}
	if (req.BreakStart == "") != (req.BreakEnd == "") {
		http.Error(w, "break_start and break_end must be set together", http.StatusBadRequest)
		return
	}
	if req.BreakStart != "" {
		bs, ok := parseClock(req.BreakStart)
		if !ok {
			http.Error(w, "break_start must be HH:MM", http.StatusBadRequest)
			return
		}
		be, ok := parseClock(req.BreakEnd)
		if !ok {
			http.Error(w, "break_end must be HH:MM", http.StatusBadRequest)
			return
		}
		if !be.After(bs) || bs.Before(open) || be.After(closeAt) {
			http.Error(w, "break must fall inside opening hours", http.StatusBadRequest)
			return
		}
	}
	if req.SlotStepMinutes <= 0 || req.SlotStepMinutes > 240 {
		http.Error(w, "slot_step_minutes must be between 1 and 240", http.StatusBadRequest)
		return
	}

	hours := storage.BusinessHours{
		BusinessID:      businessID,
		OpenTime:        strings.TrimSpace(req.OpenTime),
		CloseTime:       strings.TrimSpace(req.CloseTime),
		BreakStart:      strings.TrimSpace(req.BreakStart),
		BreakEnd:        strings.TrimSpace(req.BreakEnd),
		SlotStepMinutes: req.SlotStepMinutes,
	}
	if err := h.repo.UpsertHours(r.Context(), hours); err != nil {
		http.Error(w, "failed to update hours", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, hoursPayload(hours))
}

func hoursPayload(hours storage.BusinessHours) map[string]any {
	payload := map[string]any{
		"business_id":       hours.BusinessID,
		"open_time":         hours.OpenTime,
		"close_time":        hours.CloseTime,
		"slot_step_minutes": hours.SlotStepMinutes,
	}
	if hours.BreakStart != "" {
		payload["break_start"] = hours.BreakStart
		payload["break_end"] = hours.BreakEnd
	}
	return payload
}

func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	businessID := businessIDFromHeader(r)
	if businessID == "" {
		http.Error(w, "missing X-Business-Id", http.StatusBadRequest)
		return
	}
	var req struct {
		Name            string  `json:"name"`
		DurationMinutes int     `json:"duration_minutes"`
		Price           float64 `json:"price"`
		Description     string  `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if !allowedDurations[req.DurationMinutes] {
		http.Error(w, "duration_minutes must be one of 15, 30, 45, 60, 90, 120", http.StatusBadRequest)
		return
	}
	if req.Price < 0 {
		http.Error(w, "price must not be negative", http.StatusBadRequest)
		return
	}

	price := strconv.FormatFloat(req.Price, 'f', 2, 64)
	id, err := h.repo.CreateService(r.Context(), businessID, req.Name, req.DurationMinutes, price, strings.TrimSpace(req.Description))
	if err != nil {
		http.Error(w, "failed to create service", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	businessID := businessIDFromHeader(r)
	if businessID == "" {
		http.Error(w, "missing X-Business-Id", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	services, err := h.repo.ListServices(r.Context(), businessID, limit)
	if err != nil {
		http.Error(w, "failed to list services", http.StatusInternalServerError)
		return
	}
	items := make([]map[string]any, 0, len(services))
	for _, s := range services {
		items = append(items, map[string]any{
			"id":               s.ID,
			"name":             s.Name,
			"duration_minutes": s.DurationMins,
			"price":            s.Price,
			"description":      s.Description,
			"created_at":       s.CreatedAt,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"services": items})
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	businessID := businessIDFromHeader(r)
	if businessID == "" {
		http.Error(w, "missing X-Business-Id", http.StatusBadRequest)
		return
	}
	var req struct {
		Name     string `json:"name"`
		Role     string `json:"role"`
		IsActive *bool  `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	id, err := h.repo.CreateStaff(r.Context(), businessID, req.Name, strings.TrimSpace(req.Role), isActive)
	if err != nil {
		http.Error(w, "failed to create staff", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	businessID := businessIDFromHeader(r)
	if businessID == "" {
		http.Error(w, "missing X-Business-Id", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	staff, err := h.repo.ListStaff(r.Context(), businessID, limit)
	if err != nil {
		http.Error(w, "failed to list staff", http.StatusInternalServerError)
		return
	}
	items := make([]map[string]any, 0, len(staff))
	for _, s := range staff {
		items = append(items, map[string]any{
			"id":        s.ID,
			"name":      s.Name,
			"role":      s.Role,
			"is_active": s.IsActive,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"staff": items})
}
