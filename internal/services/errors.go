package services

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed or missing field. Nothing was applied.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports that a referenced id did not resolve. The operation
// was aborted before any mutation.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConsistencyError reports that the second half of a two-step operation
// failed after the first half was applied. The first effect stands; the
// caller retries only the half named by Op.
type ConsistencyError struct {
	Op  string
	Err error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s not applied: %v", e.Op, e.Err)
}

func (e *ConsistencyError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

func IsConsistency(err error) bool {
	var c *ConsistencyError
	return errors.As(err, &c)
}
