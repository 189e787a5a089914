package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations. Typed errors below unwrap
// to one of these so callers can test with errors.Is.
var (
	ErrSettingNotFound  = errors.New("setting not found")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrValidationFailed = errors.New("validation failed")

	// ErrFileNotFound is returned when the file named by WithConfigFile
	// does not exist. A missing file in the user config directory is not
	// an error.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidPath is returned by Set for an empty path or one that
	// runs through a non-table value.
	ErrInvalidPath = errors.New("invalid setting path")
)

// ValidationError reports a setting whose value is out of range.
type ValidationError struct {
	Path    string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s = %v: %s", e.Path, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// TypeError reports a setting holding a value of the wrong type.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: want %s, have %s", e.Path, e.Expected, e.Actual)
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}
