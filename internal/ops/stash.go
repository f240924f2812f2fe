package ops

import (
	"context"

	"github.com/gitdock/gitdock/internal/gitcmd"
)

// StashList lists stash entries, newest first.
func (s *Service) StashList(ctx context.Context, oc Context) ([]string, error) {
	spec := gitcmd.Build("stash", []string{"list"}, nil, nil)
	out, err := s.run(ctx, "stash-list", oc, spec)
	if err != nil {
		return nil, err
	}
	return nonBlankLines(out.Stdout), nil
}

// StashPush stashes working tree changes. IncludeUntracked also stashes
// files not yet tracked.
func (s *Service) StashPush(ctx context.Context, oc Context, message string, includeUntracked bool) error {
	flags := []string{"push"}
	if includeUntracked {
		flags = append(flags, "--include-untracked")
	}
	if message != "" {
		flags = append(flags, "--message", message)
	}
	spec := gitcmd.Build("stash", flags, nil, nil)
	_, err := s.run(ctx, "stash-push", oc, spec)
	return err
}

// StashPop applies and drops the most recent stash entry.
func (s *Service) StashPop(ctx context.Context, oc Context) error {
	spec := gitcmd.Build("stash", []string{"pop"}, nil, nil)
	_, err := s.run(ctx, "stash-pop", oc, spec)
	return err
}
