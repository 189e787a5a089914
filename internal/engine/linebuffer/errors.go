package linebuffer

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a row or column index that is not valid for the
// current buffer state. It signals a contract violation by the caller.
var ErrOutOfRange = errors.New("index out of range")

// RangeError describes the operation and indices that failed validation.
type RangeError struct {
	Op     string // Operation name (e.g., "insert", "split")
	Row    int
	Column int
	Lines  int // Line count at the time of the call
}

func newRangeError(op string, row, col, lines int) *RangeError {
	return &RangeError{Op: op, Row: row, Column: col, Lines: lines}
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s at (%d, %d) with %d lines: %v", e.Op, e.Row, e.Column, e.Lines, ErrOutOfRange)
}

func (e *RangeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrOutOfRange
}
