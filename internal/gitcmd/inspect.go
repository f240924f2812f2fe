package gitcmd

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// IsRepository reports whether dir is inside a git work tree.
// Uses go-git directly so callers can validate an operation context without
// spawning a process.
func IsRepository(dir string) bool {
	_, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// ResolveRevision resolves a revision expression to a full object hash
// without invoking the git binary. Failures are classified: a missing
// repository and an unresolvable revision map to their taxonomy kinds.
func ResolveRevision(dir, rev string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", &OpError{
			Op:      "resolve",
			Kind:    NotARepository,
			Message: "not a git repository: " + dir,
			cause:   err,
		}
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", &OpError{
			Op:      "resolve",
			Kind:    AmbiguousReference,
			Message: "cannot resolve revision " + rev,
			cause:   err,
		}
	}
	return hash.String(), nil
}
