// Package errors provides standardized error handling for the webhook pipeline.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Programmer errors
	ErrCodeUnknownSetting ErrorCode = "UNKNOWN_SETTING"

	// Recoverable transform conditions. These are absorbed inside the
	// renderer/transformer and never reach a caller as errors; the codes
	// exist for metrics and log labels.
	ErrCodeMissingLocalization ErrorCode = "MISSING_LOCALIZATION"
	ErrCodeLookupMiss          ErrorCode = "LOOKUP_MISS"

	// Delivery
	ErrCodeDeliveryFailed ErrorCode = "DELIVERY_FAILED"

	// Store errors
	ErrCodeSettingsStoreFailed ErrorCode = "SETTINGS_STORE_FAILED"
	ErrCodeResponseFetchFailed ErrorCode = "RESPONSE_FETCH_FAILED"
	ErrCodeCatalogFetchFailed  ErrorCode = "CATALOG_FETCH_FAILED"
	ErrCodeTokenLookupFailed   ErrorCode = "TOKEN_LOOKUP_FAILED"

	// Inbound events
	ErrCodeEventInvalid ErrorCode = "EVENT_INVALID"
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

// NewUnknownSettingError creates a non-retryable error for an unregistered
// setting name. Requesting one is a programming mistake, not bad data.
func NewUnknownSettingError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownSetting,
		Message:   "Setting is not registered",
		Details:   fmt.Sprintf("setting: %s", name),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDeliveryFailedError creates a delivery error carrying the HTTP status
// (zero when the request never got a response). The URL passed here must
// already be scrubbed of the auth token.
func NewDeliveryFailedError(scrubbedURL string, status int, err error) *StandardError {
	details := fmt.Sprintf("url: %s, status: %d", scrubbedURL, status)
	if err != nil {
		details = fmt.Sprintf("%s, error: %s", details, err.Error())
	}
	return &StandardError{
		Code:      ErrCodeDeliveryFailed,
		Message:   "Webhook delivery failed",
		Details:   details,
		Retryable: false,
		Metadata: map[string]interface{}{
			"httpStatus": status,
		},
		Timestamp: time.Now().UTC(),
	}
}

// NewSettingsStoreFailedError creates a retryable settings store error.
func NewSettingsStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSettingsStoreFailed,
		Message:   "Settings store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewResponseFetchFailedError creates a retryable response store error.
func NewResponseFetchFailedError(surveyID, responseID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResponseFetchFailed,
		Message:   "Failed to fetch survey response",
		Details:   fmt.Sprintf("surveyId: %s, responseId: %s, error: %s", surveyID, responseID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogFetchFailedError creates a retryable question catalog error.
func NewCatalogFetchFailedError(surveyID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogFetchFailed,
		Message:   "Failed to fetch question catalog",
		Details:   fmt.Sprintf("surveyId: %s, error: %s", surveyID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTokenLookupFailedError creates a retryable token store error.
func NewTokenLookupFailedError(surveyID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTokenLookupFailed,
		Message:   "Failed to look up participant token",
		Details:   fmt.Sprintf("surveyId: %s, error: %s", surveyID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEventInvalidError creates a non-retryable inbound event error.
func NewEventInvalidError(event, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEventInvalid,
		Message:   fmt.Sprintf("Invalid %s event payload", event),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandardError unwraps err into a *StandardError when possible.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// HasCode reports whether err is a StandardError with the given code.
func HasCode(err error, code ErrorCode) bool {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr.Code == code
	}
	return false
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "SETTING"):
		return "SETTINGS"
	case strings.Contains(codeStr, "DELIVERY"):
		return "DELIVERY"
	case strings.Contains(codeStr, "FETCH") || strings.Contains(codeStr, "LOOKUP"):
		return "STORE"
	case strings.Contains(codeStr, "EVENT"):
		return "EVENT"
	default:
		return "OTHER"
	}
}
