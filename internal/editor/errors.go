package editor

import "errors"

var (
	// ErrQuit is returned by Dispatch when the user asks to exit.
	ErrQuit = errors.New("quit requested")

	// ErrUnknownAction is returned for actions Dispatch does not handle.
	ErrUnknownAction = errors.New("unknown action")
)
