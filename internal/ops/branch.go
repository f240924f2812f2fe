package ops

import (
	"context"
	"strings"

	"github.com/gitdock/gitdock/internal/gitcmd"
)

// Branch is one local branch.
type Branch struct {
	Name    string `json:"name"`
	Current bool   `json:"current"`
}

// Branches lists local branches, marking the checked-out one.
func (s *Service) Branches(ctx context.Context, oc Context) ([]Branch, error) {
	spec := gitcmd.Build("branch", []string{"--list"}, nil, nil)
	out, err := s.run(ctx, "branch-list", oc, spec)
	if err != nil {
		return nil, err
	}

	var branches []Branch
	for _, line := range nonBlankLines(out.Stdout) {
		current := strings.HasPrefix(line, "* ")
		name := strings.TrimSpace(strings.TrimPrefix(line, "* "))
		if name == "" || strings.HasPrefix(name, "(") {
			// Detached HEAD marker line, not a branch.
			continue
		}
		branches = append(branches, Branch{Name: name, Current: current})
	}
	return branches, nil
}

// BranchCreate creates a branch at the given start point (HEAD when empty).
func (s *Service) BranchCreate(ctx context.Context, oc Context, name, startPoint string) error {
	refs := []string{name}
	if startPoint != "" {
		refs = append(refs, startPoint)
	}
	spec := gitcmd.Build("branch", nil, refs, nil)
	_, err := s.run(ctx, "branch-create", oc, spec)
	return err
}

// BranchDelete deletes a branch. Force deletes unmerged branches too.
func (s *Service) BranchDelete(ctx context.Context, oc Context, name string, force bool) error {
	flag := "--delete"
	if force {
		flag = "-D"
	}
	spec := gitcmd.Build("branch", []string{flag}, []string{name}, nil)
	_, err := s.run(ctx, "branch-delete", oc, spec)
	return err
}

// CheckoutOptions controls checkout.
type CheckoutOptions struct {
	Ref    string
	Create bool
	Paths  []string
}

// Checkout switches branches or restores paths.
func (s *Service) Checkout(ctx context.Context, oc Context, opts CheckoutOptions) error {
	var flags []string
	if opts.Create {
		flags = append(flags, "-b")
	}
	var refs []string
	if opts.Ref != "" {
		refs = append(refs, opts.Ref)
	}
	spec := gitcmd.Build("checkout", flags, refs, opts.Paths)
	_, err := s.run(ctx, "checkout", oc, spec)
	return err
}

// MergeOptions controls merge.
type MergeOptions struct {
	Ref     string
	NoFF    bool
	Message string
}

// Merge merges a ref into the current branch. Conflicts surface as
// MergeOrRebaseConflict through classification.
func (s *Service) Merge(ctx context.Context, oc Context, opts MergeOptions) error {
	var flags []string
	if opts.NoFF {
		flags = append(flags, "--no-ff")
	}
	if opts.Message != "" {
		flags = append(flags, "--message", opts.Message)
	}
	spec := gitcmd.Build("merge", flags, []string{opts.Ref}, nil)
	_, err := s.run(ctx, "merge", oc, spec)
	return err
}

// Tags lists tags.
func (s *Service) Tags(ctx context.Context, oc Context) ([]string, error) {
	spec := gitcmd.Build("tag", []string{"--list"}, nil, nil)
	out, err := s.run(ctx, "tag-list", oc, spec)
	if err != nil {
		return nil, err
	}
	return nonBlankLines(out.Stdout), nil
}

// TagCreate creates a tag at the given ref (HEAD when empty). A non-empty
// message makes it an annotated tag.
func (s *Service) TagCreate(ctx context.Context, oc Context, name, ref, message string) error {
	var flags []string
	if message != "" {
		flags = append(flags, "--annotate", "--message", message)
	}
	refs := []string{name}
	if ref != "" {
		refs = append(refs, ref)
	}
	spec := gitcmd.Build("tag", flags, refs, nil)
	_, err := s.run(ctx, "tag-create", oc, spec)
	return err
}
