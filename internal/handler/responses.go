package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := logServiceError(r, opName, err)
	respondError(w, status, message)
}

// logServiceError logs a failed service call and returns its mapped status and message
func logServiceError(r *http.Request, opName string, err error) (int, string) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "error", err)
	}
	return status, message
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgInvalidItemError    = "Invalid item"
	ErrMsgUnclassifiedError   = "Item has no category"
	ErrMsgInvalidDayCountErr  = "Days must be between 1 and 365"
	ErrMsgNoReportError       = "No day has been advanced yet"
	ErrMsgUnavailableError    = "Service is shutting down. Please try again later."
	ErrMsgRequestTimeoutError = "Request cancelled or timed out"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and user-facing messages.
// Internal error text is never returned to the client.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNoReport):
		return http.StatusNotFound, ErrMsgNoReportError
	case errors.Is(err, domain.ErrInvalidDayCount):
		return http.StatusBadRequest, ErrMsgInvalidDayCountErr
	case errors.Is(err, domain.ErrUnclassifiedItem):
		return http.StatusBadRequest, ErrMsgUnclassifiedError
	case errors.Is(err, domain.ErrInvalidItem), errors.Is(err, domain.ErrNilItem):
		return http.StatusBadRequest, ErrMsgInvalidItemError
	case errors.Is(err, inventory.ErrShutDown):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, ErrMsgRequestTimeoutError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
