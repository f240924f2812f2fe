package ops

import (
	"context"
	"strings"

	"github.com/gitdock/gitdock/internal/gitcmd"
)

// AddOptions controls staging.
type AddOptions struct {
	Paths []string
	All   bool
}

// AddResult reports what is staged after the add.
type AddResult struct {
	Staged []string `json:"staged"`
}

// Add stages files and reports the resulting staged set.
func (s *Service) Add(ctx context.Context, oc Context, opts AddOptions) (*AddResult, error) {
	var flags []string
	if opts.All {
		flags = append(flags, "--all")
	}
	spec := gitcmd.Build("add", flags, nil, opts.Paths)
	if _, err := s.run(ctx, "add", oc, spec); err != nil {
		return nil, err
	}

	listSpec := gitcmd.Build("diff", []string{"--cached", "--name-only"}, nil, nil)
	out, err := s.run(ctx, "add", oc, listSpec)
	if err != nil {
		return nil, err
	}
	return &AddResult{Staged: nonBlankLines(out.Stdout)}, nil
}

// CommitOptions controls commit creation.
type CommitOptions struct {
	Message    string
	All        bool
	Amend      bool
	AllowEmpty bool
}

// CommitResult identifies the created commit and its change summary.
type CommitResult struct {
	SHA          string `json:"sha"`
	FilesChanged int    `json:"files_changed"`
	Insertions   int    `json:"insertions"`
	Deletions    int    `json:"deletions"`
}

// Commit records staged changes, then reads back the new HEAD and its stat
// summary. Two follow-up calls; both are reads.
func (s *Service) Commit(ctx context.Context, oc Context, opts CommitOptions) (*CommitResult, error) {
	flags := []string{"--message", opts.Message}
	if opts.All {
		flags = append(flags, "--all")
	}
	if opts.Amend {
		flags = append(flags, "--amend")
	}
	if opts.AllowEmpty {
		flags = append(flags, "--allow-empty")
	}

	spec := gitcmd.Build("commit", flags, nil, nil)
	if _, err := s.run(ctx, "commit", oc, spec); err != nil {
		return nil, err
	}

	headSpec := gitcmd.Build("rev-parse", nil, []string{"HEAD"}, nil)
	headOut, err := s.run(ctx, "commit", oc, headSpec)
	if err != nil {
		return nil, err
	}

	statSpec := gitcmd.Build("show", []string{"--stat", "--format="}, []string{"HEAD"}, nil)
	statOut, err := s.run(ctx, "commit", oc, statSpec)
	if err != nil {
		return nil, err
	}
	stats := gitcmd.ParseStat(statOut.Stdout)

	return &CommitResult{
		SHA:          strings.TrimSpace(headOut.Stdout),
		FilesChanged: stats.FilesChanged,
		Insertions:   stats.Insertions,
		Deletions:    stats.Deletions,
	}, nil
}

// ResetOptions controls reset.
type ResetOptions struct {
	Ref   string
	Hard  bool
	Paths []string
}

// Reset moves the index, and with Hard the working tree, to a commit.
func (s *Service) Reset(ctx context.Context, oc Context, opts ResetOptions) error {
	var flags []string
	if opts.Hard {
		flags = append(flags, "--hard")
	}
	var refs []string
	if opts.Ref != "" {
		refs = append(refs, opts.Ref)
	}
	spec := gitcmd.Build("reset", flags, refs, opts.Paths)
	_, err := s.run(ctx, "reset", oc, spec)
	return err
}

// CherryPick applies an existing commit on top of the current branch.
func (s *Service) CherryPick(ctx context.Context, oc Context, ref string) error {
	spec := gitcmd.Build("cherry-pick", nil, []string{ref}, nil)
	_, err := s.run(ctx, "cherry-pick", oc, spec)
	return err
}

// Revert creates a commit undoing an existing commit.
func (s *Service) Revert(ctx context.Context, oc Context, ref string) error {
	spec := gitcmd.Build("revert", []string{"--no-edit"}, []string{ref}, nil)
	_, err := s.run(ctx, "revert", oc, spec)
	return err
}
