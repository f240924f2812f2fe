package ops

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gitdock/gitdock/internal/gitcmd"
)

// Service orchestrates git operations through a runner.
// It holds no per-call state and is safe for concurrent use.
type Service struct {
	runner gitcmd.Runner
	log    *slog.Logger
}

// NewService creates an operation service backed by the given runner.
func NewService(runner gitcmd.Runner, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{runner: runner, log: log.With(slog.String("component", "ops"))}
}

// run executes a spec and classifies any failure under the given operation
// name. The single exception to "nonzero exit is a failure" — the no-index
// comparison — is handled where it is issued, in the diff orchestrator.
func (s *Service) run(ctx context.Context, op string, oc Context, spec gitcmd.Spec) (gitcmd.Outcome, error) {
	out, err := s.runner.Run(ctx, oc.Dir, spec)
	if err != nil {
		return out, gitcmd.Classify(op, err)
	}
	return out, nil
}

// nonBlankLines splits text into trimmed non-blank lines.
func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// joinSections concatenates two output blocks, keeping exactly one newline
// between them. Order is caller-determined and must be deterministic.
func joinSections(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if !strings.HasSuffix(a, "\n") {
		a += "\n"
	}
	return a + b
}
