package gitcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Outcome carries everything a git invocation produced.
// ExitCode is zero on success.
type Outcome struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ExitError reports a nonzero git exit without discarding its output.
// Some invocations (notably diff --no-index) use a nonzero exit as the
// normal "inputs differ" signal; only the orchestrator that issued the
// call knows which reading applies, so the full Outcome travels with
// the error.
type ExitError struct {
	Spec    Spec
	Outcome Outcome
	cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Outcome.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Outcome.Stdout)
	}
	if msg == "" {
		return fmt.Sprintf("%s: exit status %d", e.Spec, e.Outcome.ExitCode)
	}
	return fmt.Sprintf("%s: %s", e.Spec, msg)
}

// Unwrap returns the underlying exec error for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.cause
}

// Runner executes git invocations in a working directory.
type Runner interface {
	Run(ctx context.Context, dir string, spec Spec) (Outcome, error)
}

// ExecRunner runs the git binary via os/exec.
// Each call launches an independent process; the runner itself holds no
// mutable state and is safe for concurrent use.
type ExecRunner struct {
	bin string
	log *slog.Logger
}

// NewExecRunner creates a runner for the given git binary.
// An empty bin falls back to "git" resolved from PATH.
func NewExecRunner(bin string, log *slog.Logger) *ExecRunner {
	if bin == "" {
		bin = "git"
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ExecRunner{bin: bin, log: log.With(slog.String("component", "gitcmd"))}
}

// Run executes the spec with the given working directory.
//
// On exit 0 the captured stdout/stderr are returned. On a nonzero exit the
// Outcome is returned alongside an *ExitError that carries the same payload.
// Cancelling the context aborts the subprocess and returns the context error.
func (r *ExecRunner) Run(ctx context.Context, dir string, spec Spec) (Outcome, error) {
	cmd := exec.CommandContext(ctx, r.bin, spec.Argv()...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.log.Debug("running git", slog.String("subcommand", spec.Subcommand), slog.String("dir", dir))
	err := cmd.Run()

	out := Outcome{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return out, nil
	}

	if ctx.Err() != nil {
		return out, ctx.Err()
	}

	var notFound *exec.Error
	if errors.As(err, &notFound) {
		return out, fmt.Errorf("git not found: ensure git is installed and in PATH: %w", err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		r.log.Debug("git exited nonzero",
			slog.String("subcommand", spec.Subcommand),
			slog.Int("code", out.ExitCode))
		return out, &ExitError{Spec: spec, Outcome: out, cause: err}
	}

	return out, fmt.Errorf("running %s: %w", spec, err)
}
