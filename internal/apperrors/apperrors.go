// Package apperrors defines the error taxonomy every operation reports
// through: validation failures detected before the store is touched,
// missing referenced entities, store-enforced uniqueness conflicts, and
// everything else as internal. Store errors are translated here so no
// driver detail leaks past the operation boundary.
package apperrors

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
)

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindInternal
)

// HTTPStatus maps an error kind to the status reported to the caller.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a terminal operation failure. Fields is populated for
// validation errors only, keyed per offending input field.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%d field error(s)", len(e.Fields))
}

// Validation wraps a non-empty field→message map from a validator.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Code: "validation_error", Fields: fields}
}

// NotFound reports a referenced entity that does not exist. The message
// should name the offending identifier.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Code: "not_found", Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a store-enforced uniqueness violation.
func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// Internal reports an unexpected failure. The caller keeps running; the
// error is surfaced, never panicked.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Code: "internal_error", Message: err.Error()}
}

// Postgres error classes that signal a constraint rejecting the mutation.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromStore translates a store-layer error into the taxonomy. Unique and
// foreign-key violations become conflicts, missing rows become not-found,
// anything else is internal.
func FromStore(err error) *Error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation, pgForeignKeyViolation:
			return Conflict(pqErr.Code.Name(), pqErr.Message)
		}
		return &Error{Kind: KindInternal, Code: pqErr.Code.Name(), Message: pqErr.Message}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NotFound("requested entity does not exist")
	}
	return Internal(err)
}
