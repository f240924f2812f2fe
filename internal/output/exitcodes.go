package output

import (
	"errors"

	"github.com/gitdock/gitdock/internal/gitcmd"
)

// Exit codes:
// 0 = Success
// 1 = User error (bad args, unknown ref, not a repository)
// 2 = System error (git failed, I/O error, network)
// 3 = Conflict (merge or rebase stopped on conflicts)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitConflict    = 3
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
// Use for: bad arguments, unknown refs, running outside a repository.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewSystemError creates an error for system failures (exit code 2).
// Use for: git invocation failures, I/O errors.
func NewSystemError(message string) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
	}
}

// NewConflictError creates an error for conflict situations (exit code 3).
func NewConflictError(message string) *ExitError {
	return &ExitError{
		Code:    ExitConflict,
		Message: message,
	}
}

// FromGit converts a classified git operation error into an ExitError.
// Reference and repository problems are user errors; conflicts carry their
// own code; everything else is a system failure.
func FromGit(err error) *ExitError {
	var opErr *gitcmd.OpError
	if !errors.As(err, &opErr) {
		return &ExitError{Code: ExitUserError, Message: err.Error(), Cause: err}
	}
	code := ExitSystemError
	switch opErr.Kind {
	case gitcmd.NotARepository, gitcmd.AmbiguousReference:
		code = ExitUserError
	case gitcmd.MergeOrRebaseConflict:
		code = ExitConflict
	}
	return &ExitError{Code: code, Message: opErr.Error(), Cause: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitUserError
}
