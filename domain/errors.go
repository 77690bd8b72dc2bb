// Package domain defines error types for the storefront.
package domain

import (
	"errors"
	"fmt"
)

// Entity kinds used in NotFoundError and DuplicateError.
const (
	KindProduct    = "product"
	KindCartItem   = "cart item"
	KindOrder      = "order"
	KindSocialLink = "social link"
)

// NotFoundError is returned when a record with the given ID does not
// exist in the aggregate.
type NotFoundError struct {
	Kind string
	ID   string
}

// Error implements the error interface for NotFoundError
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: id=%s", e.Kind, e.ID)
}

// Is allows proper error type checking with errors.Is()
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// ValidationError is returned when a record fails field validation.
type ValidationError struct {
	Field  string
	Reason string
	Value  interface{}
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s (value=%v)", e.Field, e.Reason, e.Value)
}

// Is allows proper error type checking with errors.Is()
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// DuplicateError is returned when creating a record whose ID already
// exists.
type DuplicateError struct {
	Kind string
	ID   string
}

// Error implements the error interface for DuplicateError
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s: id=%s already exists", e.Kind, e.ID)
}

// Is allows proper error type checking with errors.Is()
func (e *DuplicateError) Is(target error) bool {
	_, ok := target.(*DuplicateError)
	return ok
}

// ImportError is returned when an import payload is rejected. The
// aggregate is never partially mutated by a failed import.
type ImportError struct {
	Reason string
}

// Error implements the error interface for ImportError
func (e *ImportError) Error() string {
	return fmt.Sprintf("import rejected: %s", e.Reason)
}

// Is allows proper error type checking with errors.Is()
func (e *ImportError) Is(target error) bool {
	_, ok := target.(*ImportError)
	return ok
}

// Helper constructors

// NewNotFoundError creates a NotFoundError for the given entity kind.
func NewNotFoundError(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, reason string, value interface{}) error {
	return &ValidationError{Field: field, Reason: reason, Value: value}
}

// NewDuplicateError creates a DuplicateError for the given entity kind.
func NewDuplicateError(kind, id string) error {
	return &DuplicateError{Kind: kind, ID: id}
}

// NewImportError creates a new ImportError.
func NewImportError(reason string) error {
	return &ImportError{Reason: reason}
}

// Type assertion helpers for use with errors.As()

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation checks if an error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicate checks if an error is a DuplicateError.
func IsDuplicate(err error) bool {
	var de *DuplicateError
	return errors.As(err, &de)
}

// IsImportError checks if an error is an ImportError.
func IsImportError(err error) bool {
	var ie *ImportError
	return errors.As(err, &ie)
}
