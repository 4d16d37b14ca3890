// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pantrysage/v2/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps application errors onto HTTP status codes
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := http.StatusInternalServerError
	message := "An unexpected error occurred"

	if appErr, ok := err.(*errors.AppError); ok {
		status = appErr.StatusCode()
		message = appErr.Message
		if appErr.Details != "" {
			message = appErr.Details
		}
	} else {
		logger.Error("Unhandled error", zap.Error(err))
	}

	writeJSON(w, logger, status, APIResponse{
		Success: false,
		Error:   message,
	})
}

// decodeJSON decodes a request body, rejecting unknown-shaped payloads early
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return errors.NewValidationError("invalid JSON payload: " + err.Error())
	}
	return nil
}

// HealthHandlers serves health and readiness probes
type HealthHandlers struct {
	version string
	logger  *zap.Logger
	ready   func() error
}

// NewHealthHandlers creates health check handlers. The ready func probes
// downstream dependencies; nil means always ready.
func NewHealthHandlers(version string, logger *zap.Logger, ready func() error) *HealthHandlers {
	return &HealthHandlers{
		version: version,
		logger:  logger,
		ready:   ready,
	}
}

// HealthCheck handles GET /health
func (h *HealthHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   h.version,
		},
		Message: "Service is healthy",
	})
}

// ReadinessCheck handles GET /ready
func (h *HealthHandlers) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(); err != nil {
			h.logger.Warn("Readiness probe failed", zap.Error(err))
			writeJSON(w, h.logger, http.StatusServiceUnavailable, APIResponse{
				Success: false,
				Error:   "dependencies unavailable",
			})
			return
		}
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]interface{}{"status": "ready"},
	})
}
