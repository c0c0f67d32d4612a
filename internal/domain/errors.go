package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateCode = errors.New("product code already exists")
	ErrNotFound      = errors.New("product not found")
	ErrPersistence   = errors.New("persistence failure")
)

// ValidationError carries the field errors of a rejected candidate.
type ValidationError struct {
	Errors ErrorSet
}

func (e *ValidationError) Error() string {
	return "invalid product: " + e.Errors.String()
}

// PersistenceError reports a durable slot that could not be read, written or decoded.
// errors.Is(err, ErrPersistence) holds for every PersistenceError.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s slot %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
