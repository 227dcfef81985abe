package domain

import (
	"context"
	"errors"
)

// Resolution and assignment errors
var (
	// Not-found conditions — legitimate display states, never faults
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrRoleNotFound    = errors.New("role not found")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrAccessDenied = errors.New("access denied")

	// Assignment errors
	ErrNoTenantAvailable = errors.New("no tenant available")
	ErrInvalidReference  = errors.New("invalid tenant reference")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)

// StoreError marks a transient store or network failure. It is kept distinct
// from the not-found sentinels so callers can always tell "no such row" from
// "the store is unreachable"; the two must never be conflated.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store failure during " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps a store failure with the failing operation
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// IsTransient reports whether the error is safe to retry: a wrapped store
// failure or an expired per-call deadline.
func IsTransient(err error) bool {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// IsDisplayState reports whether the error represents a valid, displayable
// resolution state rather than a fault.
func IsDisplayState(err error) bool {
	return errors.Is(err, ErrTenantNotFound) || errors.Is(err, ErrNoTenantAvailable)
}
