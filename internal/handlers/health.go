package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// pingTimeout ограничивает проверку хранилища
const pingTimeout = 2 * time.Second

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	storage Pinger
	backend string
	logger  *zap.Logger
}

// NewHealthHandler создает новый HealthHandler.
// backend попадает в ответ как имя хранилища: postgres или memory.
func NewHealthHandler(storage Pinger, backend string, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		backend: backend,
		logger:  logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Backend string `json:"backend"`
}

// Health возвращает статус приложения
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:  "ok",
		Storage: "ok",
		Backend: h.backend,
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	status := http.StatusOK
	if err := h.storage.Ping(ctx); err != nil {
		response.Status = "degraded"
		response.Storage = "unavailable"
		status = http.StatusServiceUnavailable
		h.logger.Warn("health check: storage unavailable", zap.String("backend", h.backend), zap.Error(err))
	}

	writeJSON(w, h.logger, status, response)
}

// Ready возвращает готовность приложения принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed: storage unavailable", zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
