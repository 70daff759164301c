package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict is returned when a write collides with a uniqueness constraint.
	ErrConflict = errors.New("conflict")
)

// NotFoundError names the entity that could not be located.
type NotFoundError struct {
	Entity string
}

func NotFound(entity string) error { return &NotFoundError{Entity: entity} }

func (e *NotFoundError) Error() string {
	if e.Entity == "" {
		return "Record not found"
	}
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError holds per-field messages for rejected input.
type ValidationError struct {
	Fields map[string]string
}

func Invalid(field, msg string) error {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidArgument }

// ConflictError describes which uniqueness rule a write violated.
type ConflictError struct {
	Msg string
}

func Conflict(msg string) error { return &ConflictError{Msg: msg} }

func (e *ConflictError) Error() string { return e.Msg }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }
