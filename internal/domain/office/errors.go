package office

import (
	"errors"
	"fmt"
)

// Entity names carried by DuplicateKeyError and ReferenceError.
const (
	EntityClient  = "cliente"
	EntityCase    = "processo"
	EntityPayment = "pagamento"
	EntityHearing = "audiência"
)

// ErrNotFound is returned by point lookups when no record matches the key.
var ErrNotFound = errors.New("not found")

// ===============================
// Error codes
// ===============================

const (
	CodeValidation         = "validation_error"
	CodeDuplicateKey       = "duplicate_key"
	CodeReferenceNotFound  = "reference_not_found"
	CodeStorageUnavailable = "storage_unavailable"
)

// ValidationError reports malformed or out-of-range input. It is always
// raised before any storage access.
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

func (e *ValidationError) Code() string { return CodeValidation }

// DuplicateKeyError reports a natural-key collision on create.
type DuplicateKeyError struct {
	Entity string
	Key    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.Key)
}

func (e *DuplicateKeyError) Code() string { return CodeDuplicateKey }

// ReferenceError reports a foreign key that does not resolve.
type ReferenceError struct {
	Entity string
	Key    string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("referenced %s %q does not exist", e.Entity, e.Key)
}

func (e *ReferenceError) Code() string { return CodeReferenceNotFound }

// StorageUnavailableError wraps a failure of the backing store.
type StorageUnavailableError struct {
	Op  string
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Op, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error { return e.Err }

func (e *StorageUnavailableError) Code() string { return CodeStorageUnavailable }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsDuplicate reports whether err is (or wraps) a DuplicateKeyError.
func IsDuplicate(err error) bool {
	var de *DuplicateKeyError
	return errors.As(err, &de)
}

// IsReference reports whether err is (or wraps) a ReferenceError.
func IsReference(err error) bool {
	var re *ReferenceError
	return errors.As(err, &re)
}

// IsStorageUnavailable reports whether err is (or wraps) a StorageUnavailableError.
func IsStorageUnavailable(err error) bool {
	var se *StorageUnavailableError
	return errors.As(err, &se)
}
