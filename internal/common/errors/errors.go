// Package errors provides standardized error handling for the concierge API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeCatalogLoadFailed       ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeCatalogValidationFailed ErrorCode = "CATALOG_VALIDATION_FAILED"

	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionLimit    ErrorCode = "SESSION_LIMIT_REACHED"

	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodeUnknownEvent   ErrorCode = "UNKNOWN_EVENT_TYPE"
	ErrCodeUnknownScale   ErrorCode = "UNKNOWN_SIZE_SCALE"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
//
// Widget computations themselves never produce these for bad user input;
// malformed measurements, sizes and order codes degrade to "defaulted" or
// "not matched" outcomes. StandardError covers the infrastructure edges:
// catalog loading, session bookkeeping and request envelopes.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps an error code onto the HTTP status the API layer should
// respond with.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeSessionNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidRequest, ErrCodeUnknownEvent, ErrCodeUnknownScale:
		return http.StatusBadRequest
	case ErrCodeSessionLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 2. Error Constructors
// ==========================

// NewCatalogLoadFailedError wraps a failure to read a catalog document.
func NewCatalogLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Failed to load catalog data",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogValidationFailedError reports a catalog document that failed
// schema or invariant checks.
func NewCatalogValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogValidationFailed,
		Message:   "Catalog data failed validation",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError reports an unknown or expired chat session.
func NewSessionNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Chat session not found",
		Metadata:  map[string]interface{}{"sessionId": sessionID},
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionLimitError reports that no further sessions can be created.
func NewSessionLimitError(limit int) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionLimit,
		Message:   "Active session limit reached",
		Metadata:  map[string]interface{}{"limit": limit},
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError reports a request body or query that could not be
// decoded.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Request could not be parsed",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownEventError reports a chat event envelope with an unrecognized
// type tag.
func NewUnknownEventError(eventType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownEvent,
		Message:   "Unknown chat event type",
		Metadata:  map[string]interface{}{"type": eventType},
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownScaleError reports a size-conversion scale outside us/uk/eu.
func NewUnknownScaleError(scale string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownScale,
		Message:   "Unknown size scale",
		Metadata:  map[string]interface{}{"scale": scale},
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}
