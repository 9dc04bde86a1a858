package common

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("requested resource not found")
	ErrUnauthorized  = errors.New("unauthorized access")
	ErrForbidden     = errors.New("forbidden access")
	ErrBadRequest    = errors.New("bad request")
	ErrConflict      = errors.New("resource conflict") // e.g., username already exists
	ErrCorruptRecord = errors.New("corrupt durable record")
)

// Errorf creates a new error with formatting, useful for wrapping.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
