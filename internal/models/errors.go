package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound - запрошенная сущность не существует
	ErrNotFound = errors.New("not found")
	// ErrInsufficientStock - у источника недостаточно свободного остатка
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidTransition - переход не разрешён графом состояний
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrConflict - параллельная операция над той же сущностью выиграла гонку
	ErrConflict = errors.New("conflict: concurrent modification, re-fetch and retry")
	// ErrVersionConflict is returned by storage when a compare-and-swap lost.
	// Services translate it to ErrConflict after exhausting retries.
	ErrVersionConflict = errors.New("version conflict")
)

// FieldViolation describes one rejected input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError collects every violation of a payload so clients can show them together.
type ValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a violation.
func (e *ValidationError) Add(field, rule, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Rule: rule, Message: message})
}

// HasField reports whether field was rejected.
func (e *ValidationError) HasField(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns nil when nothing was collected, so callers can `return verr.OrNil()`.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

// NewValidationError builds a single-field ValidationError.
func NewValidationError(field, rule, message string) *ValidationError {
	verr := &ValidationError{}
	verr.Add(field, rule, message)
	return verr
}

// TransitionError reports a rejected state-machine move. It matches ErrInvalidTransition.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move from %q to %q", e.Entity, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
