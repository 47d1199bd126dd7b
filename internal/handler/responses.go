package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/SwapMeet_Go/internal/domain"
	"github.com/osse101/SwapMeet_Go/internal/logger"
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

// encodeBufferSize fits a vendor with a handful of items without growing
const encodeBufferSize = 1024

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, encodeBufferSize))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Headers are already sent, so encoding failures can only be logged
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped user-facing error
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" failed", "error", err, "status", status)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Vendor and inventory messages
	ErrMsgVendorNotFoundError   = "Vendor not found"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgNotInInventoryError   = "That item is not in the vendor's inventory"
	ErrMsgEmptyInventoryError   = "The vendor has nothing to trade"
	ErrMsgNoQualifyingItemError = "No item matches the request"
	ErrMsgSwapRejectedError     = "The swap could not be made"
	ErrMsgSameVendorError       = "A vendor cannot swap with itself"
	ErrMsgRequestCancelledError = "The request was cancelled"
	ErrMsgRequestTimedOutError  = "The request timed out"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Wrapped details never reach the client; only the matched sentinel's message does.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrVendorNotFound):
		return http.StatusNotFound, ErrMsgVendorNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusConflict, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrEmptyInventory):
		return http.StatusConflict, ErrMsgEmptyInventoryError
	case errors.Is(err, domain.ErrNoQualifyingItem):
		return http.StatusNotFound, ErrMsgNoQualifyingItemError
	case errors.Is(err, domain.ErrSwapRejected):
		return http.StatusConflict, ErrMsgSwapRejectedError
	case errors.Is(err, domain.ErrSameVendor):
		return http.StatusBadRequest, ErrMsgSameVendorError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrMsgRequestTimedOutError
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, ErrMsgRequestCancelledError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
