package ops

import (
	"context"
	"testing"

	"github.com/gitdock/gitdock/internal/gitcmd"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantBranch     string
		wantAhead      int
		wantBehind     int
		wantStaged     int
		wantUnstaged   int
		wantUntracked  int
		wantConflicted int
		wantClean      bool
	}{
		{
			name:       "clean tree",
			input:      "## main...origin/main\n",
			wantBranch: "main",
			wantClean:  true,
		},
		{
			name:       "ahead and behind",
			input:      "## feature...origin/feature [ahead 2, behind 1]\n",
			wantBranch: "feature",
			wantAhead:  2,
			wantBehind: 1,
			wantClean:  true,
		},
		{
			name: "mixed changes",
			input: "## main\n" +
				"M  staged.go\n" +
				" M unstaged.go\n" +
				"MM both.go\n" +
				"?? new.txt\n",
			wantBranch:    "main",
			wantStaged:    2, // staged.go and both.go
			wantUnstaged:  2, // unstaged.go and both.go
			wantUntracked: 1,
		},
		{
			name: "conflicted paths",
			input: "## main\n" +
				"UU conflicted.go\n" +
				"AA also.go\n",
			wantBranch:     "main",
			wantConflicted: 2,
		},
		{
			name: "rename keeps new path",
			input: "## main\n" +
				"R  old.go -> new.go\n",
			wantBranch: "main",
			wantStaged: 1,
		},
		{
			name:      "empty input",
			input:     "",
			wantClean: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseStatus(tt.input)
			if got.Branch != tt.wantBranch {
				t.Errorf("Branch = %q, want %q", got.Branch, tt.wantBranch)
			}
			if got.Ahead != tt.wantAhead || got.Behind != tt.wantBehind {
				t.Errorf("Ahead/Behind = %d/%d, want %d/%d", got.Ahead, got.Behind, tt.wantAhead, tt.wantBehind)
			}
			if len(got.Staged) != tt.wantStaged {
				t.Errorf("len(Staged) = %d, want %d", len(got.Staged), tt.wantStaged)
			}
			if len(got.Unstaged) != tt.wantUnstaged {
				t.Errorf("len(Unstaged) = %d, want %d", len(got.Unstaged), tt.wantUnstaged)
			}
			if len(got.Untracked) != tt.wantUntracked {
				t.Errorf("len(Untracked) = %d, want %d", len(got.Untracked), tt.wantUntracked)
			}
			if len(got.Conflicted) != tt.wantConflicted {
				t.Errorf("len(Conflicted) = %d, want %d", len(got.Conflicted), tt.wantConflicted)
			}
			if got.Clean != tt.wantClean {
				t.Errorf("Clean = %v, want %v", got.Clean, tt.wantClean)
			}
		})
	}
}

func TestStatusRenameTargetPath(t *testing.T) {
	got := parseStatus("## main\nR  old.go -> new.go\n")
	if len(got.Staged) != 1 {
		t.Fatalf("len(Staged) = %d, want 1", len(got.Staged))
	}
	if got.Staged[0].Path != "new.go" {
		t.Errorf("Path = %q, want %q", got.Staged[0].Path, "new.go")
	}
}

func TestStatusIssuesPorcelainCall(t *testing.T) {
	runner := &fakeRunner{}
	svc := newTestService(runner)

	if _, err := svc.Status(context.Background(), testCtx()); err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("issued %d calls, want 1", len(runner.calls))
	}
	if got := argv(runner.calls[0]); got != "status --porcelain --branch" {
		t.Errorf("call = %q, want %q", got, "status --porcelain --branch")
	}
}

func TestStatusFailureIsClassified(t *testing.T) {
	runner := &fakeRunner{
		respond: func(spec gitcmd.Spec) (gitcmd.Outcome, error) {
			out := gitcmd.Outcome{Stderr: "fatal: not a git repository", ExitCode: 128}
			return out, &gitcmd.ExitError{Spec: spec, Outcome: out}
		},
	}
	svc := newTestService(runner)

	_, err := svc.Status(context.Background(), testCtx())
	opErr, ok := err.(*gitcmd.OpError)
	if !ok {
		t.Fatalf("Status() error type = %T, want *gitcmd.OpError", err)
	}
	if opErr.Kind != gitcmd.NotARepository {
		t.Errorf("Kind = %s, want %s", opErr.Kind, gitcmd.NotARepository)
	}
	if opErr.Op != "status" {
		t.Errorf("Op = %q, want %q", opErr.Op, "status")
	}
}
