package gitcmd

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		stderr   string
		wantKind ErrorKind
	}{
		{
			name:     "not a repository",
			stderr:   "fatal: not a git repository (or any of the parent directories): .git",
			wantKind: NotARepository,
		},
		{
			name:     "ambiguous argument",
			stderr:   "fatal: ambiguous argument 'nope': unknown revision or path not in the working tree.",
			wantKind: AmbiguousReference,
		},
		{
			name:     "bad revision",
			stderr:   "fatal: bad revision 'HEAD~99'",
			wantKind: AmbiguousReference,
		},
		{
			name:     "merge conflict",
			stderr:   "error: Merging is not possible because you have unmerged files.",
			wantKind: MergeOrRebaseConflict,
		},
		{
			name:     "conflict phrasing",
			stderr:   "CONFLICT (content): Merge conflict in main.go",
			wantKind: MergeOrRebaseConflict,
		},
		{
			name:     "permission denied",
			stderr:   "error: insufficient permission for adding an object to repository database .git/objects",
			wantKind: PermissionDenied,
		},
		{
			name:     "ssh permission denied",
			stderr:   "git@github.com: Permission denied (publickey).",
			wantKind: PermissionDenied,
		},
		{
			name:     "unreachable host",
			stderr:   "fatal: unable to access 'https://example.com/repo.git/': Could not resolve host: example.com",
			wantKind: NetworkUnavailable,
		},
		{
			name:     "unmatched diagnostic",
			stderr:   "fatal: something entirely unexpected",
			wantKind: UnknownFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ExitError{
				Spec:    Build("diff", nil, nil, nil),
				Outcome: Outcome{Stderr: tt.stderr, ExitCode: 128},
			}
			got := Classify("diff", err)
			if got.Kind != tt.wantKind {
				t.Errorf("Classify() kind = %s, want %s", got.Kind, tt.wantKind)
			}
			if got.Op != "diff" {
				t.Errorf("Classify() op = %q, want %q", got.Op, "diff")
			}
			if got.Message == "" {
				t.Error("Classify() message is empty")
			}
		})
	}
}

func TestClassifyFallsBackToStdout(t *testing.T) {
	err := &ExitError{
		Spec:    Build("status", nil, nil, nil),
		Outcome: Outcome{Stdout: "fatal: not a git repository", ExitCode: 128},
	}
	got := Classify("status", err)
	if got.Kind != NotARepository {
		t.Errorf("Classify() kind = %s, want %s", got.Kind, NotARepository)
	}
}

func TestClassifyNonExitError(t *testing.T) {
	got := Classify("log", errors.New("git not found: ensure git is installed and in PATH"))
	if got.Kind != UnknownFailure {
		t.Errorf("Classify() kind = %s, want %s", got.Kind, UnknownFailure)
	}
	if got.Op != "log" {
		t.Errorf("Classify() op = %q, want %q", got.Op, "log")
	}
}

func TestClassifyNil(t *testing.T) {
	if got := Classify("diff", nil); got != nil {
		t.Errorf("Classify(nil) = %v, want nil", got)
	}
}

func TestClassifyPreservesExistingKind(t *testing.T) {
	inner := &OpError{Op: "resolve", Kind: AmbiguousReference, Message: "cannot resolve revision nope"}
	got := Classify("diff", inner)
	if got.Kind != AmbiguousReference {
		t.Errorf("Classify() kind = %s, want %s", got.Kind, AmbiguousReference)
	}
	if got.Op != "diff" {
		t.Errorf("Classify() op = %q, want %q", got.Op, "diff")
	}
}

func TestOpErrorUnwrap(t *testing.T) {
	cause := &ExitError{Spec: Build("diff", nil, nil, nil), Outcome: Outcome{ExitCode: 1}}
	opErr := Classify("diff", cause)

	var exitErr *ExitError
	if !errors.As(opErr, &exitErr) {
		t.Error("errors.As() failed to recover the underlying ExitError")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{NotARepository, "not_a_repository"},
		{AmbiguousReference, "ambiguous_reference"},
		{MergeOrRebaseConflict, "merge_or_rebase_conflict"},
		{PermissionDenied, "permission_denied"},
		{NetworkUnavailable, "network_unavailable"},
		{UnknownFailure, "unknown_failure"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
