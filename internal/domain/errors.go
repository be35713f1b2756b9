package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kinds of failure, matched with errors.Is by status code.
var (
	ErrInvalidInput   = &Error{Status: http.StatusBadRequest, Message: "invalid input"}
	ErrNotFound       = &Error{Status: http.StatusNotFound, Message: "not found"}
	ErrConflict       = &Error{Status: http.StatusConflict, Message: "conflict"}
	ErrStorageFailure = &Error{Status: http.StatusInternalServerError, Message: "storage failure"}
)

// FieldViolation describes a single failed validation rule.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the typed outcome every layer hands to the one above it.
type Error struct {
	Status  int
	Message string
	Details []FieldViolation
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Status == e.Status
}

func InvalidInput(message string, details ...FieldViolation) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Details: details}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

func StorageFailure(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// WithMessage re-maps err to the same kind with a layer-specific message.
// Errors that are not *Error become storage failures.
func WithMessage(err error, message string) *Error {
	var e *Error
	if errors.As(err, &e) {
		return &Error{Status: e.Status, Message: message, Details: e.Details, Err: e.Err}
	}
	return StorageFailure(message, err)
}

// StatusOf returns the status code carried by err, 500 for foreign errors.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the human-readable message carried by err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}
