package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/crmdesk/crmdesk/libs/schedule"
	"github.com/crmdesk/crmdesk/services/analytics-service/internal/metrics"
	"github.com/redis/go-redis/v9"
)

// DashboardHandler serves windowed rollups. Responses are cached in
// Redis because the dashboard is polled far more often than the
// underlying counters change.
type DashboardHandler struct {
	repo   *metrics.Repository
	cache  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewDashboard(repo *metrics.Repository, cache *redis.Client, ttl time.Duration, logger *slog.Logger) *DashboardHandler {
	if ttl <= 0 {
		ttl = 300 * time.Second
	}
	return &DashboardHandler{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	businessID := strings.TrimSpace(r.Header.Get("X-Business-Id"))
	if businessID == "" {
		http.Error(w, "missing business context", http.StatusBadRequest)
		return
	}

	view := strings.TrimSpace(r.URL.Query().Get("view"))
	if view == "" {
		view = "week"
	}
	gran, err := schedule.ParseGranularity(view)
	if err != nil {
		http.Error(w, "view must be day, week, or month", http.StatusBadRequest)
		return
	}

	ref := time.Now()
	if raw := strings.TrimSpace(r.URL.Query().Get("date")); raw != "" {
		ref, err = time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	start, end, err := schedule.ResolveWindow(ref, gran)
	if err != nil {
		http.Error(w, "invalid window", http.StatusBadRequest)
		return
	}

	cacheKey := "dashboard:" + businessID + ":" + view + ":" + start.Format("2006-01-02")
	if cached, ok := h.fromCache(r.Context(), cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		_, _ = w.Write(cached)
		return
	}

	dash, err := h.repo.DashboardTotals(r.Context(), businessID, start, end)
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(map[string]any{
		"window_start": start.Format("2006-01-02"),
		"window_end":   end.Format("2006-01-02"),
		"view":         view,
		"metrics":      dash,
	})
	if err != nil {
		http.Error(w, "failed to encode dashboard", http.StatusInternalServerError)
		return
	}
	h.toCache(r.Context(), cacheKey, body)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "miss")
	_, _ = w.Write(body)
}

func (h *DashboardHandler) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	body, err := h.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			h.logger.Warn("dashboard cache read failed", "err", err)
		}
		return nil, false
	}
	return body, true
}

func (h *DashboardHandler) toCache(ctx context.Context, key string, body []byte) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Set(ctx, key, body, h.ttl).Err(); err != nil {
		h.logger.Warn("dashboard cache write failed", "err", err)
	}
}
