package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/crmdesk/crmdesk/services/appointment-service/internal/model"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/storage"
	"github.com/crmdesk/crmdesk/services/appointment-service/internal/validate"
)

type CustomerHandler struct {
	repo   *storage.CustomerRepository
	logger *slog.Logger
}

func NewCustomerHandler(repo *storage.CustomerRepository, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{repo: repo, logger: logger}
}

type createCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type customerItem struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func (h *CustomerHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CustomerHandler) create(w http.ResponseWriter, r *http.Request) {
	businessID := businessIDFrom(r)
	if businessID == "" {
		http.Error(w, "missing business id", http.StatusBadRequest)
		return
	}

	var req createCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.Name = validate.Sanitize(req.Name)
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
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

	id, err := h.repo.Create(r.Context(), &model.Customer{
		BusinessID: businessID,
		Name:       req.Name,
		Phone:      strings.TrimSpace(req.Phone),
		Email:      strings.TrimSpace(req.Email),
		Notes:      validate.Sanitize(req.Notes),
	})
	if err != nil {
		http.Error(w, "failed to create customer", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"customer_id": id})
}

func (h *CustomerHandler) list(w http.ResponseWriter, r *http.Request) {
	businessID := businessIDFrom(r)
	if businessID == "" {
		http.Error(w, "missing business id", http.StatusBadRequest)
		return
	}

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	customers, err := h.repo.List(r.Context(), businessID, limit)
	if err != nil {
		http.Error(w, "failed to list customers", http.StatusInternalServerError)
		return
	}

	items := make([]customerItem, 0, len(customers))
	for _, c := range customers {
		items = append(items, customerItem{
			CustomerID: c.ID,
			Name:       c.Name,
			Phone:      c.Phone,
			Email:      c.Email,
			Notes:      c.Notes,
			CreatedAt:  c.CreatedAt.Format(time.RFC3339),
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"customers": items})
}
