package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Moderation errors
	ErrModerationRejected = errors.New("content rejected by moderation")

	// Upstream errors. Never surfaced to API callers: every AI-backed
	// path recovers through its local heuristic fallback.
	ErrUpstreamUnavailable = errors.New("ai gateway unavailable")
)

// Entity-specific not-found errors, all wrapping ErrResourceNotFound so
// callers can match on either.
var (
	ErrStudentNotFound   = wrapNotFound("student not found")
	ErrCounselorNotFound = wrapNotFound("counselor not found")
	ErrPostNotFound      = wrapNotFound("forum post not found")
	ErrContactNotFound   = wrapNotFound("chat contact not found")
	ErrMilestoneNotFound = wrapNotFound("career milestone not found")
	ErrCourseNotFound    = wrapNotFound("course not found")
	ErrFacultyNotFound   = wrapNotFound("faculty member not found")
	ErrProblemNotFound   = wrapNotFound("coding problem not found")
)

// Booking errors
var (
	ErrSlotTaken = errors.New("slot is no longer available")
)

func wrapNotFound(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewModerationError wraps a moderation rejection with the verbatim
// reason reported by the safety check.
func NewModerationError(reason string) error {
	return &CustomError{Err: ErrModerationRejected, Message: reason}
}

// NewValidationError creates a validation failure with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
