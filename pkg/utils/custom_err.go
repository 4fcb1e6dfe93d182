package utils

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrCityNotFound       = errors.New("city not found")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrDatabaseError      = errors.New("database error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAuthDisabled       = errors.New("token issuing disabled")
)

// Wrap tags err with kind so errors.Is matches both, keeping err's message.
func Wrap(kind, err error) error {
	return &taggedError{kind: kind, err: err}
}

type taggedError struct {
	kind error
	err  error
}

func (e *taggedError) Error() string {
	return e.err.Error()
}

func (e *taggedError) Unwrap() []error {
	return []error{e.kind, e.err}
}
