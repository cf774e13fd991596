package app

import (
	"errors"
	"fmt"
)

// Sentinel errors for command dispatch and lifecycle failures.
var (
	// ErrMissingCommand indicates Run was invoked with no command.
	ErrMissingCommand = errors.New("missing command")

	// ErrUnknownCommand indicates an unrecognized command name.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingFile indicates a command that requires a file argument
	// was invoked without one.
	ErrMissingFile = errors.New("missing file argument")

	// ErrInitialization indicates the application failed to start.
	ErrInitialization = errors.New("initialization failed")
)

// CommandError wraps a failure from a single command run with enough
// context to report it usefully.
type CommandError struct {
	// Command is the command that failed.
	Command string

	// Target is the file or resource being operated on, if any.
	Target string

	// Err is the underlying error.
	Err error
}

// NewCommandError creates a command error.
func NewCommandError(command, target string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Target:  target,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Target != "" {
		return fmt.Sprintf("%s %s: %v", e.Command, e.Target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
