package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewInvalidInput reports a missing or malformed required field.
func NewInvalidInput(message string, details map[string]any) error {
	return NewDomainError("INVALID_INPUT", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

// NewUnauthorized reports a missing or unresolvable bearer token.
func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

// NewForbidden reports a resolved caller without entitlement. Kept
// distinct from Unauthorized so clients can render the right message.
func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

// NewSelfInquiry reports an inquiry addressed to its own sender. The
// condition is non-retriable and carries its own code so clients can
// tell it apart from generic validation failures.
func NewSelfInquiry() error {
	return NewDomainError("SELF_INQUIRY", "cannot inquire about your own property", http.StatusBadRequest, nil)
}

// NewStoreError wraps an underlying record-store failure, surfacing the
// store's message verbatim.
func NewStoreError(err error) error {
	msg := "store error"
	if err != nil {
		msg = err.Error()
	}
	return &DomainError{
		Code:       "STORE_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	if de, ok := NewStoreError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "STORE_ERROR",
		Message:    "store error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
