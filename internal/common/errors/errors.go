// Package errors provides standardized error handling for the voicebot service.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidMessage      ErrorCode = "INVALID_MESSAGE"
	ErrCodeModelTrainingFailed ErrorCode = "MODEL_TRAINING_FAILED"
	ErrCodeRuleTableMalformed  ErrorCode = "RULE_TABLE_MALFORMED"

	ErrCodeRoomNotFound    ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeRoomUnavailable ErrorCode = "ROOM_UNAVAILABLE"
	ErrCodeBookingNotFound ErrorCode = "BOOKING_NOT_FOUND"

	ErrCodeAnalyticsWriteFailed ErrorCode = "ANALYTICS_WRITE_FAILED"
	ErrCodeRedisUnavailable     ErrorCode = "REDIS_UNAVAILABLE"

	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrCodeNotFound      ErrorCode = "ENDPOINT_NOT_FOUND"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidMessageError creates a non-retryable request validation error.
func NewInvalidMessageError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidMessage,
		Message:   "Invalid request. Message is required.",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelTrainingFailedError creates a fatal boot-time training error.
func NewModelTrainingFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelTrainingFailed,
		Message:   "Classifier training failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRuleTableMalformedError creates a fatal boot-time rule table error.
func NewRuleTableMalformedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRuleTableMalformed,
		Message:   "Intent rule table is malformed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRoomNotFoundError creates a non-retryable lookup error.
func NewRoomNotFoundError(roomID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRoomNotFound,
		Message:   "Room not found",
		Details:   fmt.Sprintf("roomId: %s", roomID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRoomUnavailableError creates a non-retryable inventory error.
func NewRoomUnavailableError(roomID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRoomUnavailable,
		Message:   "No units of this room are available",
		Details:   fmt.Sprintf("roomId: %s", roomID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBookingNotFoundError creates a non-retryable lookup error.
func NewBookingNotFoundError(bookingID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBookingNotFound,
		Message:   "Booking not found",
		Details:   fmt.Sprintf("bookingId: %s", bookingID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAnalyticsWriteFailedError creates a retryable analytics sink error.
func NewAnalyticsWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAnalyticsWriteFailed,
		Message:   "Failed to persist query record",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRedisUnavailableError creates a retryable connection error.
func NewRedisUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRedisUnavailable,
		Message:   "Redis connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigInvalidError creates a fatal configuration error.
func NewConfigInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigInvalid,
		Message:   "Invalid configuration",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Integration
// ==========================

// HTTPStatus maps an error code to the status the API returns for it.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidMessage:
		return http.StatusBadRequest
	case ErrCodeRoomNotFound, ErrCodeBookingNotFound, ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeRoomUnavailable:
		return http.StatusConflict
	case ErrCodeAnalyticsWriteFailed, ErrCodeRedisUnavailable, ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Normalize ensures any error is a StandardError, wrapping unknown errors
// as internal.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

// ==========================
// 4. Utility Functions
// ==========================

// IsFatal reports whether the error must abort startup.
func IsFatal(code ErrorCode) bool {
	switch code {
	case ErrCodeModelTrainingFailed, ErrCodeRuleTableMalformed, ErrCodeConfigInvalid:
		return true
	default:
		return false
	}
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "MODEL") || strings.Contains(codeStr, "RULE"):
		return "NLU"
	case strings.Contains(codeStr, "ROOM") || strings.Contains(codeStr, "BOOKING"):
		return "INVENTORY"
	case strings.Contains(codeStr, "ANALYTICS") || strings.Contains(codeStr, "REDIS"):
		return "ANALYTICS"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "CONFIG"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
