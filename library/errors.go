package library

import (
	"errors"
	"fmt"
)

// The store reports failures as one of three kinds. ValidationError means the
// caller passed malformed input and can retry after correcting it.
// NotFoundError means an entity the operation requires does not exist.
// ConflictError means an integrity rule or workflow precondition blocked the
// mutation; the store is left unchanged.

// ValidationError reports malformed or missing required input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError reports that a required entity does not exist.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }

// ConflictError reports a blocked mutation, carrying the rule that fired.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func notFoundf(format string, args ...any) error {
	return &NotFoundError{Reason: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...any) error {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
