package apperrors

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Error kinds. Handlers never branch on message text; they wrap one of these
// sentinels and let Status/Message translate at the edge.
var (
	ErrValidation   = errors.New("invalid input")
	ErrConflict     = errors.New("duplicate value for a unique field")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
	ErrNotFound     = errors.New("not found")
)

// Error pairs an error kind with a client-facing message.
type Error struct {
	kind    error
	message string
}

// New wraps kind with a message that is safe to return to clients.
func New(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.kind }

// Postgres error codes translated for clients.
const (
	pqUniqueViolation = "23505"
	pqCheckViolation  = "23514"
	pqInvalidText     = "22P02" // bad UUID or enum cast in input
)

// FromPq maps constraint and cast failures from the store onto the error
// taxonomy. Anything unrecognized passes through untouched and surfaces as a
// 500. This is the authoritative guard behind advisory pre-checks such as the
// signup duplicate-email lookup.
func FromPq(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch string(pqErr.Code) {
	case pqUniqueViolation:
		return New(ErrConflict, "Duplicate value for a unique field")
	case pqCheckViolation:
		return New(ErrValidation, "Invalid value for a constrained field")
	case pqInvalidText:
		return New(ErrValidation, "Invalid identifier")
	default:
		return err
	}
}

// Status maps an error kind to an HTTP status code. Conflicts map to 400 to
// preserve the wire contract of the original service.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrTokenExpired), errors.Is(err, ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err. Unclassified errors get
// a generic body so internals never leak.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.message
	}
	if Status(err) == http.StatusInternalServerError {
		return "Internal Server Error"
	}
	return err.Error()
}
