package ops

import (
	"context"
	"strings"

	"github.com/gitdock/gitdock/internal/gitcmd"
)

// Remote is one configured remote.
type Remote struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Remotes lists configured remotes with their fetch URLs.
func (s *Service) Remotes(ctx context.Context, oc Context) ([]Remote, error) {
	spec := gitcmd.Build("remote", []string{"--verbose"}, nil, nil)
	out, err := s.run(ctx, "remote-list", oc, spec)
	if err != nil {
		return nil, err
	}

	var remotes []Remote
	seen := map[string]bool{}
	for _, line := range nonBlankLines(out.Stdout) {
		fields := strings.Fields(line)
		if len(fields) < 2 || seen[fields[0]] {
			continue
		}
		seen[fields[0]] = true
		remotes = append(remotes, Remote{Name: fields[0], URL: fields[1]})
	}
	return remotes, nil
}

// Fetch downloads objects and refs from a remote (all remotes when empty).
func (s *Service) Fetch(ctx context.Context, oc Context, remote string) error {
	var refs []string
	if remote != "" {
		refs = append(refs, remote)
	}
	spec := gitcmd.Build("fetch", []string{"--prune"}, refs, nil)
	_, err := s.run(ctx, "fetch", oc, spec)
	return err
}

// Pull fetches and integrates into the current branch.
func (s *Service) Pull(ctx context.Context, oc Context, remote, branch string) error {
	var refs []string
	if remote != "" {
		refs = append(refs, remote)
		if branch != "" {
			refs = append(refs, branch)
		}
	}
	spec := gitcmd.Build("pull", nil, refs, nil)
	_, err := s.run(ctx, "pull", oc, spec)
	return err
}

// PushOptions controls push.
type PushOptions struct {
	Remote      string
	Branch      string
	SetUpstream bool
}

// Push updates a remote with local commits.
func (s *Service) Push(ctx context.Context, oc Context, opts PushOptions) error {
	var flags []string
	if opts.SetUpstream {
		flags = append(flags, "--set-upstream")
	}
	var refs []string
	if opts.Remote != "" {
		refs = append(refs, opts.Remote)
		if opts.Branch != "" {
			refs = append(refs, opts.Branch)
		}
	}
	spec := gitcmd.Build("push", flags, refs, nil)
	_, err := s.run(ctx, "push", oc, spec)
	return err
}

// Init creates an empty repository in the context directory.
func (s *Service) Init(ctx context.Context, oc Context, initialBranch string) error {
	var flags []string
	if initialBranch != "" {
		flags = append(flags, "--initial-branch", initialBranch)
	}
	spec := gitcmd.Build("init", flags, nil, nil)
	_, err := s.run(ctx, "init", oc, spec)
	return err
}

// Clone clones a repository into target under the context directory.
func (s *Service) Clone(ctx context.Context, oc Context, url, target string) error {
	refs := []string{url}
	if target != "" {
		refs = append(refs, target)
	}
	spec := gitcmd.Build("clone", nil, refs, nil)
	_, err := s.run(ctx, "clone", oc, spec)
	return err
}
