package runall

import (
	"errors"
	"fmt"
)

// Exit codes for CLI front ends wrapping this library.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (task not found, etc.)
	ExitUsageError   = 2 // Usage error (invalid option, bad manifest, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindInvalidOption
	KindTaskNotFound
	KindManifest
)

// RunAllError is the error type returned by Parse, MatchTasks and the
// project loader.
type RunAllError struct {
	Kind    ErrorKind
	Token   string // Offending token or pattern if applicable
	Message string
	Cause   error // Underlying error
}

func (e *RunAllError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RunAllError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *RunAllError) ExitCode() int {
	switch e.Kind {
	case KindInvalidOption, KindManifest:
		return ExitUsageError
	default:
		return ExitRuntimeError
	}
}

// invalidOption creates the error for an unrecognized or forbidden
// flag token.
func invalidOption(token string) *RunAllError {
	return &RunAllError{
		Kind:    KindInvalidOption,
		Token:   token,
		Message: fmt.Sprintf("Invalid Option: %s", token),
	}
}

// taskNotFound creates the error for a pattern matching no script.
func taskNotFound(pattern string) *RunAllError {
	return &RunAllError{
		Kind:    KindTaskNotFound,
		Token:   pattern,
		Message: fmt.Sprintf("Task not found: %s", pattern),
	}
}

// ManifestError creates an error for an unreadable or invalid
// package.json.
func ManifestError(message string, cause error) *RunAllError {
	return &RunAllError{
		Kind:    KindManifest,
		Message: message,
		Cause:   cause,
	}
}

// IsInvalidOption reports whether err is an Invalid Option error.
func IsInvalidOption(err error) bool {
	var re *RunAllError
	return errors.As(err, &re) && re.Kind == KindInvalidOption
}

// IsTaskNotFound reports whether err is a Task not found error.
func IsTaskNotFound(err error) bool {
	var re *RunAllError
	return errors.As(err, &re) && re.Kind == KindTaskNotFound
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var re *RunAllError
	if errors.As(err, &re) {
		return re.ExitCode()
	}
	return ExitRuntimeError
}
