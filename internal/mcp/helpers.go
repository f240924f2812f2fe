package mcp

import (
	"path/filepath"

	"github.com/gitdock/gitdock/internal/gitcmd"
	"github.com/gitdock/gitdock/internal/ops"
)

// RepoInput is embedded by every tool input that targets a repository.
type RepoInput struct {
	Dir  string            `json:"dir,omitempty"  jsonschema:"repository directory (defaults to the server's repository)"`
	Meta map[string]string `json:"meta,omitempty" jsonschema:"opaque correlation metadata, passed through unchanged"`
}

// opContext builds the operation context for a call, validating that the
// target directory is a repository. requireRepo is false only for the
// operations that create one (init, clone).
func (s *server) opContext(in RepoInput, requireRepo bool) (ops.Context, error) {
	dir := in.Dir
	if dir == "" {
		dir = s.defaultDir
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ops.Context{}, err
	}
	if requireRepo && !gitcmd.IsRepository(abs) {
		return ops.Context{}, &gitcmd.OpError{
			Op:      "context",
			Kind:    gitcmd.NotARepository,
			Message: "not a git repository: " + abs,
		}
	}
	return ops.Context{Dir: abs, Tenant: s.tenant, Meta: in.Meta}, nil
}
