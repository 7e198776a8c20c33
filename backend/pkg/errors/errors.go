package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypePreset represents preset resolution errors
	ErrorTypePreset ErrorType = "preset"
	// ErrorTypeCatalog represents catalog consistency errors found at load time
	ErrorTypeCatalog ErrorType = "catalog"
	// ErrorTypeDispatch represents generation backend errors
	ErrorTypeDispatch ErrorType = "dispatch"
	// ErrorTypeEnhance represents prompt enhancement errors
	ErrorTypeEnhance ErrorType = "enhance"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeContext represents context cancellation/timeout errors
	ErrorTypeContext ErrorType = "context"
)

// GenericGenerationMessage is the only text end users see when a generation cannot start.
const GenericGenerationMessage = "couldn't start generation"

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Preset Errors

// ErrUnknownPreset is returned when an identifier matches no family and no catalog entry
type ErrUnknownPreset struct {
	*BaseError
	PresetID string
}

func NewUnknownPreset(presetID string) *ErrUnknownPreset {
	return &ErrUnknownPreset{
		BaseError: NewBaseError(ErrorTypePreset, fmt.Sprintf("unknown preset: %s", presetID), nil),
		PresetID:  presetID,
	}
}

// UserMessage is safe to show to end users; it never names families or catalogs.
func (e *ErrUnknownPreset) UserMessage() string {
	return GenericGenerationMessage
}

// Catalog Errors

// ErrCatalogInvalid is returned when a catalog entry breaks a load-time invariant
type ErrCatalogInvalid struct {
	*BaseError
	PresetID string
	Reason   string
}

func NewCatalogInvalid(presetID, reason string) *ErrCatalogInvalid {
	return &ErrCatalogInvalid{
		BaseError: NewBaseError(ErrorTypeCatalog, fmt.Sprintf("invalid preset %s: %s", presetID, reason), nil),
		PresetID:  presetID,
		Reason:    reason,
	}
}

// ErrUnregisteredToken is returned when a template placeholder has no fragment generator
type ErrUnregisteredToken struct {
	*BaseError
	PresetID string
	Token    string
}

func NewUnregisteredToken(presetID, token string) *ErrUnregisteredToken {
	return &ErrUnregisteredToken{
		BaseError: NewBaseError(ErrorTypeCatalog, fmt.Sprintf("preset %s references unregistered token {%s}", presetID, token), nil),
		PresetID:  presetID,
		Token:     token,
	}
}

// Dispatch Errors

// ErrDispatchFailed is returned when the generation backend rejects or cannot take a payload
type ErrDispatchFailed struct {
	*BaseError
	StatusCode int
	Attempts   int
	Retryable  bool
}

func NewDispatchFailed(statusCode, attempts int, retryable bool, err error) *ErrDispatchFailed {
	return &ErrDispatchFailed{
		BaseError:  NewBaseError(ErrorTypeDispatch, fmt.Sprintf("dispatch failed after %d attempts", attempts), err),
		StatusCode: statusCode,
		Attempts:   attempts,
		Retryable:  retryable,
	}
}

// ErrDispatchNotConfigured is returned when no generation endpoint is configured
var ErrDispatchNotConfigured = NewBaseError(ErrorTypeDispatch, "generation endpoint not configured", nil)

// ErrJobFailed is returned when the backend reports a job as failed
type ErrJobFailed struct {
	*BaseError
	JobID string
}

func NewJobFailed(jobID, reason string) *ErrJobFailed {
	return &ErrJobFailed{
		BaseError: NewBaseError(ErrorTypeDispatch, fmt.Sprintf("job %s failed: %s", jobID, reason), nil),
		JobID:     jobID,
	}
}

// Enhance Errors

// ErrEnhanceFailed is returned when the LLM could not rewrite a prompt
type ErrEnhanceFailed struct {
	*BaseError
	Model string
}

func NewEnhanceFailed(model string, err error) *ErrEnhanceFailed {
	return &ErrEnhanceFailed{
		BaseError: NewBaseError(ErrorTypeEnhance, "prompt enhancement failed", err),
		Model:     model,
	}
}

// Context Errors

// ErrContextTimeout is returned when context times out
type ErrContextTimeout struct {
	*BaseError
	Operation string
	Timeout   time.Duration
}

func NewContextTimeout(operation string, timeout time.Duration) *ErrContextTimeout {
	return &ErrContextTimeout{
		BaseError: NewBaseError(ErrorTypeContext, fmt.Sprintf("context timeout: %s (timeout: %v)", operation, timeout), nil),
		Operation: operation,
		Timeout:   timeout,
	}
}

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

type typed interface {
	errorType() ErrorType
}

func (e *BaseError) errorType() ErrorType { return e.Type }

// IsErrorType checks if an error, or anything it wraps, is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	for err != nil {
		if t, ok := err.(typed); ok && t.errorType() == errType {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsUnknownPreset reports whether err is (or wraps) an unknown preset error
func IsUnknownPreset(err error) bool {
	var target *ErrUnknownPreset
	return errors.As(err, &target)
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	// Context errors are not retryable
	if IsErrorType(err, ErrorTypeContext) {
		return false
	}
	var dispatchErr *ErrDispatchFailed
	if errors.As(err, &dispatchErr) {
		return dispatchErr.Retryable
	}
	// Preset and catalog errors are configuration bugs, never transient
	return false
}
