package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
)

// writeTarget tells translateWriteError which key a constraint violation
// refers to.
type writeTarget struct {
	entity string
	key    string

	refEntity string
	refKey    string
}

// translateWriteError maps a driver error from a single INSERT into the
// domain taxonomy. Constraint errors are recognised through gorm's
// TranslateError sentinels, with a message fallback for drivers that do not
// translate.
func translateWriteError(op string, err error, t writeTarget) error {
	if err == nil {
		return nil
	}

	switch {
	case isDuplicateKey(err):
		return &office.DuplicateKeyError{Entity: t.entity, Key: t.key}
	case isForeignKey(err) && t.refEntity != "":
		return &office.ReferenceError{Entity: t.refEntity, Key: t.refKey}
	default:
		return &office.StorageUnavailableError{Op: op, Err: err}
	}
}

// translateReadError maps a lookup error; gorm.ErrRecordNotFound becomes
// office.ErrNotFound.
func translateReadError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return office.ErrNotFound
	}
	return &office.StorageUnavailableError{Op: op, Err: err}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}

func isForeignKey(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
