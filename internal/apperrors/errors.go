// Package apperrors defines the error taxonomy shared by services and
// handlers. Services wrap the sentinels with a message; handlers map
// them onto HTTP status codes with errors.Is.
package apperrors

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
)

// Error carries a caller-facing message on top of a taxonomy sentinel.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func Validationf(format string, args ...interface{}) error {
	return &Error{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) error {
	return &Error{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &Error{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...interface{}) error {
	return &Error{kind: ErrForbidden, msg: fmt.Sprintf(format, args...)}
}

// FromStore translates gorm errors into the taxonomy. The unique
// indexes are the authority on duplicate edges: a concurrent insert
// that slips past a pre-check still surfaces as a conflict here, never
// as a second row.
func FromStore(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFoundf("record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflictf("record already exists")
	default:
		return err
	}
}
