package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("already exists")
	ErrValidation = errors.New("invalid input")
)

// kindError carries a user facing message while still matching one
// of the sentinel errors above with errors.Is
type kindError struct {
	kind    error
	message string
}

func (e kindError) Error() string {
	return e.message
}

func (e kindError) Unwrap() error {
	return e.kind
}

func NewError(kind error, format string, args ...interface{}) error {
	return kindError{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
	}
}
