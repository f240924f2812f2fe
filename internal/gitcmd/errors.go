package gitcmd

import (
	"errors"
	"strings"
)

// ErrorKind is the closed taxonomy of classified git failures.
type ErrorKind int

const (
	// UnknownFailure covers diagnostics that match no known phrasing.
	UnknownFailure ErrorKind = iota
	// NotARepository means the working directory is not inside a git repository.
	NotARepository
	// AmbiguousReference means a ref did not resolve to a known object.
	AmbiguousReference
	// MergeOrRebaseConflict means the operation stopped on unmerged paths.
	MergeOrRebaseConflict
	// PermissionDenied covers filesystem and remote authorization failures.
	PermissionDenied
	// NetworkUnavailable means a remote could not be reached.
	NetworkUnavailable
)

// String returns the stable name of the kind, as surfaced to callers.
func (k ErrorKind) String() string {
	switch k {
	case NotARepository:
		return "not_a_repository"
	case AmbiguousReference:
		return "ambiguous_reference"
	case MergeOrRebaseConflict:
		return "merge_or_rebase_conflict"
	case PermissionDenied:
		return "permission_denied"
	case NetworkUnavailable:
		return "network_unavailable"
	default:
		return "unknown_failure"
	}
}

// OpError is a classified git failure attached to the operation that issued it.
// Callers receive the stable kind and operation name, never a raw exit code.
type OpError struct {
	Op      string
	Kind    ErrorKind
	Message string
	cause   error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return e.Op + ": " + e.Message
}

// Unwrap returns the underlying failure for errors.Is/errors.As support.
func (e *OpError) Unwrap() error {
	return e.cause
}

// diagnosticPatterns maps known git diagnostic phrasings to taxonomy kinds.
// Matched case-insensitively, first hit wins.
var diagnosticPatterns = []struct {
	substr string
	kind   ErrorKind
}{
	{"not a git repository", NotARepository},
	{"ambiguous argument", AmbiguousReference},
	{"unknown revision", AmbiguousReference},
	{"bad revision", AmbiguousReference},
	{"needs merge", MergeOrRebaseConflict},
	{"unmerged", MergeOrRebaseConflict},
	{"conflict", MergeOrRebaseConflict},
	{"permission denied", PermissionDenied},
	{"insufficient permission", PermissionDenied},
	{"authentication failed", PermissionDenied},
	{"could not read username", PermissionDenied},
	{"could not resolve host", NetworkUnavailable},
	{"unable to access", NetworkUnavailable},
	{"connection refused", NetworkUnavailable},
	{"connection timed out", NetworkUnavailable},
	{"network is unreachable", NetworkUnavailable},
}

// Classify maps a failed invocation onto the closed taxonomy, attaching the
// operation name for caller-side diagnostics. The diagnostic text is taken
// from stderr when the failure is a nonzero exit, falling back to stdout and
// then to the error text itself. Pure classification; no I/O.
func Classify(op string, err error) *OpError {
	if err == nil {
		return nil
	}

	// Already classified upstream; keep the original kind, re-tag the op.
	var opErr *OpError
	if errors.As(err, &opErr) {
		if opErr.Op == op {
			return opErr
		}
		return &OpError{Op: op, Kind: opErr.Kind, Message: opErr.Message, cause: opErr}
	}

	diag := err.Error()
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if s := strings.TrimSpace(exitErr.Outcome.Stderr); s != "" {
			diag = s
		} else if s := strings.TrimSpace(exitErr.Outcome.Stdout); s != "" {
			diag = s
		}
	}

	return &OpError{
		Op:      op,
		Kind:    classifyDiagnostic(diag),
		Message: diag,
		cause:   err,
	}
}

// classifyDiagnostic matches diagnostic text against known phrasings.
func classifyDiagnostic(diag string) ErrorKind {
	lower := strings.ToLower(diag)
	for _, p := range diagnosticPatterns {
		if strings.Contains(lower, p.substr) {
			return p.kind
		}
	}
	return UnknownFailure
}
