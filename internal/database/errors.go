package database

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a primary key or scoped lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrIntegrity is returned when a write would break referential integrity,
	// e.g. deleting a book that still has chapters.
	ErrIntegrity = errors.New("integrity violation")
)

// ValidationError carries field-level messages for a rejected payload or query.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add records another field message, creating the error if needed.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e == nil {
		return NewValidationError(field, message)
	}
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
	return e
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// MissingReference is the message used for foreign keys pointing at nothing.
func MissingReference(id uint) string {
	return fmt.Sprintf("invalid pk \"%d\" - object does not exist", id)
}

// Translate maps driver and GORM errors onto the package error kinds.
// Errors that already carry a kind are returned unchanged.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrIntegrity), IsValidationError(err):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrIntegrity, err)
	default:
		return err
	}
}
