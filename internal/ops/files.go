package ops

import (
	"context"
	"strings"

	"github.com/gitdock/gitdock/internal/gitcmd"
)

// LsFiles lists tracked files, or untracked non-ignored files when
// untracked is set.
func (s *Service) LsFiles(ctx context.Context, oc Context, untracked bool, paths []string) ([]string, error) {
	var flags []string
	if untracked {
		flags = append(flags, "--others", "--exclude-standard")
	}
	spec := gitcmd.Build("ls-files", flags, nil, paths)
	out, err := s.run(ctx, "ls-files", oc, spec)
	if err != nil {
		return nil, err
	}
	return nonBlankLines(out.Stdout), nil
}

// Clean reports which untracked files and directories a clean would remove.
// Always a dry run; this layer never deletes on its own.
func (s *Service) Clean(ctx context.Context, oc Context, paths []string) ([]string, error) {
	spec := gitcmd.Build("clean", []string{"--dry-run", "-d"}, nil, paths)
	out, err := s.run(ctx, "clean", oc, spec)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range nonBlankLines(out.Stdout) {
		files = append(files, strings.TrimPrefix(line, "Would remove "))
	}
	return files, nil
}
