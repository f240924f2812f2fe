package mcp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gitdock/gitdock/internal/gitcmd"
	"github.com/gitdock/gitdock/internal/ops"
)

// fakeRunner scripts git responses and records every spec it was asked to run.
type fakeRunner struct {
	calls   []gitcmd.Spec
	respond func(spec gitcmd.Spec) (gitcmd.Outcome, error)
}

func (f *fakeRunner) Run(_ context.Context, _ string, spec gitcmd.Spec) (gitcmd.Outcome, error) {
	f.calls = append(f.calls, spec)
	if f.respond != nil {
		return f.respond(spec)
	}
	return gitcmd.Outcome{}, nil
}

// initBareFixture lays down the minimal .git skeleton that repository
// detection accepts, without requiring a git binary.
func initBareFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	for _, sub := range []string{"objects", "refs"} {
		if err := os.MkdirAll(filepath.Join(gitDir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	head := []byte("ref: refs/heads/main\n")
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), head, 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func newTestServer(t *testing.T, runner gitcmd.Runner) (*server, string) {
	t.Helper()
	dir := initBareFixture(t)
	svc := ops.NewService(runner, nil)
	return &server{svc: svc, defaultDir: dir, tenant: "t1"}, dir
}

func TestOpContextDefaultsToServerDir(t *testing.T) {
	s, dir := newTestServer(t, &fakeRunner{})
	oc, err := s.opContext(RepoInput{Meta: map[string]string{"req": "42"}}, true)
	if err != nil {
		t.Fatalf("opContext: %v", err)
	}
	if oc.Dir != dir {
		t.Errorf("dir = %q, want %q", oc.Dir, dir)
	}
	if oc.Tenant != "t1" {
		t.Errorf("tenant = %q, want t1", oc.Tenant)
	}
	if oc.Meta["req"] != "42" {
		t.Errorf("meta not carried through: %v", oc.Meta)
	}
}

func TestOpContextRejectsNonRepository(t *testing.T) {
	s, _ := newTestServer(t, &fakeRunner{})
	_, err := s.opContext(RepoInput{Dir: t.TempDir()}, true)
	if err == nil {
		t.Fatal("expected error for non-repository dir")
	}
	var opErr *gitcmd.OpError
	if !errors.As(err, &opErr) || opErr.Kind != gitcmd.NotARepository {
		t.Errorf("error = %v, want not_a_repository", err)
	}
}

func TestOpContextSkipsValidationForRepoCreation(t *testing.T) {
	s, _ := newTestServer(t, &fakeRunner{})
	target := t.TempDir()
	oc, err := s.opContext(RepoInput{Dir: target}, false)
	if err != nil {
		t.Fatalf("opContext: %v", err)
	}
	if oc.Dir != target {
		t.Errorf("dir = %q, want %q", oc.Dir, target)
	}
}

func TestAnnotationsFollowRegistry(t *testing.T) {
	tests := []struct {
		op          string
		readOnly    bool
		destructive bool
	}{
		{"diff", true, false},
		{"status", true, false},
		{"commit", false, false},
		{"reset", false, true},
		{"branch-delete", false, true},
	}
	for _, tt := range tests {
		ann := annotationsFor(tt.op)
		if ann.ReadOnlyHint != tt.readOnly {
			t.Errorf("%s: ReadOnlyHint = %v, want %v", tt.op, ann.ReadOnlyHint, tt.readOnly)
		}
		if !tt.readOnly {
			if ann.DestructiveHint == nil || *ann.DestructiveHint != tt.destructive {
				t.Errorf("%s: DestructiveHint = %v, want %v", tt.op, ann.DestructiveHint, tt.destructive)
			}
		}
	}
}

func TestDescribeComesFromRegistry(t *testing.T) {
	if describe("diff") == "" {
		t.Error("diff has no description")
	}
	if describe("clone") == "" {
		t.Error("clone has no description")
	}
}

func TestNewServerRegistersTools(t *testing.T) {
	svc := ops.NewService(&fakeRunner{}, nil)
	srv := NewServer("test", svc, t.TempDir(), "")
	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestDiffHandlerMapsOptions(t *testing.T) {
	runner := &fakeRunner{
		respond: func(spec gitcmd.Spec) (gitcmd.Outcome, error) {
			if len(spec.Args) > 0 && spec.Args[0] == "--cached" && !hasArg(spec, "--stat") {
				return gitcmd.Outcome{Stdout: "diff --git a/x b/x\n+one\n"}, nil
			}
			return gitcmd.Outcome{Stdout: " 1 file changed, 1 insertion(+)\n"}, nil
		},
	}
	s, _ := newTestServer(t, runner)
	handler := handleDiff(s)

	five := 5
	_, out, err := handler(context.Background(), nil, DiffInput{
		Staged:  true,
		Unified: &five,
		Paths:   []string{"x"},
	})
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if out.FilesChanged != 1 {
		t.Errorf("files changed = %d, want 1", out.FilesChanged)
	}
	if out.Insertions == nil || *out.Insertions != 1 {
		t.Errorf("insertions = %v, want 1", out.Insertions)
	}

	first := runner.calls[0]
	want := []string{"diff", "--cached", "-U5", "--", "x"}
	if got := first.Argv(); !equalSlices(got, want) {
		t.Errorf("argv = %v, want %v", got, want)
	}
}

func TestCommitHandlerReturnsNewHead(t *testing.T) {
	runner := &fakeRunner{
		respond: func(spec gitcmd.Spec) (gitcmd.Outcome, error) {
			switch spec.Subcommand {
			case "rev-parse":
				return gitcmd.Outcome{Stdout: "deadbeef\n"}, nil
			case "show":
				return gitcmd.Outcome{Stdout: " 2 files changed, 3 insertions(+), 1 deletion(-)\n"}, nil
			default:
				return gitcmd.Outcome{}, nil
			}
		},
	}
	s, _ := newTestServer(t, runner)
	handler := handleCommit(s)

	_, out, err := handler(context.Background(), nil, CommitInput{Message: "fix parser"})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if out.SHA != "deadbeef" {
		t.Errorf("sha = %q, want deadbeef", out.SHA)
	}
	if out.FilesChanged != 2 || out.Insertions != 3 || out.Deletions != 1 {
		t.Errorf("stats = %d/%d/%d, want 2/3/1", out.FilesChanged, out.Insertions, out.Deletions)
	}
}

func TestInitHandlerWorksOutsideRepository(t *testing.T) {
	runner := &fakeRunner{}
	s, _ := newTestServer(t, runner)
	handler := handleInit(s)

	_, out, err := handler(context.Background(), nil, InitInput{
		RepoInput:     RepoInput{Dir: t.TempDir()},
		InitialBranch: "main",
	})
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !out.OK {
		t.Error("init did not report success")
	}
	want := []string{"init", "--initial-branch", "main"}
	if got := runner.calls[0].Argv(); !equalSlices(got, want) {
		t.Errorf("argv = %v, want %v", got, want)
	}
}

func TestReadHandlerRejectsNonRepository(t *testing.T) {
	s, _ := newTestServer(t, &fakeRunner{})
	handler := handleStatus(s)

	_, _, err := handler(context.Background(), nil, RepoInput{Dir: t.TempDir()})
	var opErr *gitcmd.OpError
	if !errors.As(err, &opErr) || opErr.Kind != gitcmd.NotARepository {
		t.Errorf("error = %v, want not_a_repository", err)
	}
}

func hasArg(spec gitcmd.Spec, arg string) bool {
	for _, a := range spec.Args {
		if a == arg {
			return true
		}
	}
	return false
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
