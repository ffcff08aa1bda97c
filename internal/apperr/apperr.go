// Package apperr classifies internal failures into a small set of kinds
// carrying an HTTP status and a stable user-facing message. Underlying
// causes travel with the error for server-side logging but are never
// rendered to the client.
package apperr

import "net/http"

// Kind discriminates application failures.
type Kind int

const (
	// KindStore is any persistence failure, connectivity or constraint alike.
	KindStore Kind = iota
	// KindValidation is one or more field-level payload failures.
	KindValidation
	// KindNotFound covers absent ids, absent referenced entities, and
	// writes that affected zero rows.
	KindNotFound
	// KindUnauthorized is reserved; nothing triggers it in current scope.
	KindUnauthorized
	// KindInternal is an unexpected, unclassified failure.
	KindInternal
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a classified application error. Every Error is terminal for
// the current request; nothing is retried.
type Error struct {
	Kind   Kind
	Cause  error
	Fields []FieldError
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message() + ": " + e.Cause.Error()
	}
	return e.Message()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Status maps the kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message is the stable user-visible message for the kind.
func (e *Error) Message() string {
	switch e.Kind {
	case KindStore:
		return "Database error"
	case KindValidation:
		return "Validation error"
	case KindNotFound:
		return "Resource not found"
	case KindUnauthorized:
		return "Unauthorized"
	default:
		return "Internal server error"
	}
}

// Store wraps a persistence failure.
func Store(cause error) *Error {
	return &Error{Kind: KindStore, Cause: cause}
}

// Validation builds a validation error carrying field-level detail.
func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Fields: fields}
}

// NotFound reports an absent resource or reference.
func NotFound() *Error {
	return &Error{Kind: KindNotFound}
}

// Unauthorized is reserved for future use.
func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized}
}

// Internal wraps an unexpected failure.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Cause: cause}
}
