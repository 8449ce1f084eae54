package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/GildedRose_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the response has already been written and the handler should return.
//
// Example usage:
//
//	var req CreateItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgRequestTooLarge)
			return err
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// parseItemID reads the {id} URL parameter.
// If ok is false, the response has already been written.
func parseItemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.FromContext(r.Context()).Debug(fmt.Sprintf("%s: %q", ErrMsgInvalidItemID, raw))
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemID)
		return uuid.Nil, false
	}
	return id, true
}

// logRequestFields logs the parsed parameters of a request at debug level
func logRequestFields(r *http.Request, action string, keyvals ...interface{}) {
	log := logger.FromContext(r.Context())
	if len(keyvals)%2 != 0 {
		log.Warn(LogMsgOddRequestFields, "action", action)
		return
	}
	attrs := append([]interface{}{"action", action, "method", r.Method, "path", r.URL.Path}, keyvals...)
	log.Debug(LogMsgRequestDetails, attrs...)
}
