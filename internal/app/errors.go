// Package app wires configuration, logging, the terminal backend and an
// editing session together and runs the event loop.
package app

import (
	"errors"
	"strings"

	"github.com/dshills/linedit/internal/editor"
)

var (
	// ErrQuit ends the event loop without error.
	ErrQuit = editor.ErrQuit

	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend is returned by Run before SetBackend was called.
	ErrNoBackend = errors.New("no backend set")

	ErrNoFile = errors.New("no file specified")
)

// OperationError wraps a failure of a file operation such as "open".
type OperationError struct {
	Op     string
	Target string
	Err    error
}

func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{Op: op, Target: target, Err: err}
}

// Error formats as "op target: err", omitting empty parts. A nil
// *OperationError yields "".
func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Target != "" {
		b.WriteByte(' ')
		b.WriteString(e.Target)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InitError reports which part of the application failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string { return "init " + e.Component + ": " + e.Err.Error() }

func (e *InitError) Unwrap() error { return e.Err }
