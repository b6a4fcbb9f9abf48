package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tonesculpt/tonesculpt/pkg/api"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger *slog.Logger
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
	}
}

// Health обрабатывает GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthResponse{
		Status:  "ok",
		Message: "ToneSculpt AI Backend running",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
