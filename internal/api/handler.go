// Package api provides the HTTP trigger surface for the aggregation job.
package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"facility-pipeline/internal/service/aggregate"
)

// Handler exposes the aggregation job behind an event-notification endpoint.
type Handler struct {
	agg    *aggregate.Service
	logger *slog.Logger
}

// NewHandler creates an API handler.
func NewHandler(agg *aggregate.Service, logger *slog.Logger) *Handler {
	return &Handler{agg: agg, logger: logger}
}

// Router builds the HTTP routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/events", h.handleEvent)

	return r
}

// handleEvent runs the aggregation job for one event notification. The
// payload is logged but not otherwise inspected.
func (h *Handler) handleEvent(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	logger := h.logger.With("request_id", requestID)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("failed to read event payload", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable payload"})
		return
	}

	result, err := h.agg.Run(r.Context(), payload)
	if err != nil {
		logger.Error("aggregation job failed", "error", err)
		writeJSON(w, httpStatusFromError(err), map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, result.StatusCode, result)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
