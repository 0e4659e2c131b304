package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Skipped archive entries still exit with success.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, storage errors, interrupted imports,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Archive not found, unknown principal, card not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Archives that cannot be read as ZIP files.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid email addresses, empty names, negative card numbers.
	ExitValidation = 5
)

// CommandError carries the exit code a failed command should end with
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	if err == nil {
		err = fmt.Errorf("exit status %d", code)
	}
	return &CommandError{Code: code, Err: err}
}

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}

// IsReported reports whether err was already printed by an OutputFormatter
func IsReported(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr)
}
