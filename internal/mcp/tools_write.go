package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gitdock/gitdock/internal/ops"
)

// registerWriteTools adds the mutating repository tools to the server.
func registerWriteTools(srv *mcp.Server, s *server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "add",
		Description: describe("add"),
		Annotations: annotationsFor("add"),
	}, handleAdd(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "commit",
		Description: describe("commit"),
		Annotations: annotationsFor("commit"),
	}, handleCommit(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "checkout",
		Description: describe("checkout"),
		Annotations: annotationsFor("checkout"),
	}, handleCheckout(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "branch_create",
		Description: describe("branch-create"),
		Annotations: annotationsFor("branch-create"),
	}, handleBranchCreate(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "branch_delete",
		Description: describe("branch-delete"),
		Annotations: annotationsFor("branch-delete"),
	}, handleBranchDelete(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "merge",
		Description: describe("merge"),
		Annotations: annotationsFor("merge"),
	}, handleMerge(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "cherry_pick",
		Description: describe("cherry-pick"),
		Annotations: annotationsFor("cherry-pick"),
	}, handleCherryPick(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "revert",
		Description: describe("revert"),
		Annotations: annotationsFor("revert"),
	}, handleRevert(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "reset",
		Description: describe("reset"),
		Annotations: annotationsFor("reset"),
	}, handleReset(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "tag_create",
		Description: describe("tag-create"),
		Annotations: annotationsFor("tag-create"),
	}, handleTagCreate(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "stash_push",
		Description: describe("stash-push"),
		Annotations: annotationsFor("stash-push"),
	}, handleStashPush(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "stash_pop",
		Description: describe("stash-pop"),
		Annotations: annotationsFor("stash-pop"),
	}, handleStashPop(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "fetch",
		Description: describe("fetch"),
		Annotations: annotationsFor("fetch"),
	}, handleFetch(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "pull",
		Description: describe("pull"),
		Annotations: annotationsFor("pull"),
	}, handlePull(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "push",
		Description: describe("push"),
		Annotations: annotationsFor("push"),
	}, handlePush(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "init",
		Description: describe("init"),
		Annotations: annotationsFor("init"),
	}, handleInit(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "clone",
		Description: describe("clone"),
		Annotations: annotationsFor("clone"),
	}, handleClone(s))
}

// OKOutput is the output for tools that only report success.
type OKOutput struct {
	OK bool `json:"ok" jsonschema:"whether the operation succeeded"`
}

// AddInput is the input for the add tool.
type AddInput struct {
	RepoInput
	Paths []string `json:"paths,omitempty" jsonschema:"paths to stage"`
	All   bool     `json:"all,omitempty"   jsonschema:"stage all tracked and untracked changes"`
}

// AddOutput is the output for the add tool.
type AddOutput struct {
	Staged []string `json:"staged" jsonschema:"paths staged after the operation"`
}

func handleAdd(s *server) mcp.ToolHandlerFor[AddInput, AddOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddInput) (*mcp.CallToolResult, AddOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, AddOutput{}, err
		}
		result, err := s.svc.Add(ctx, oc, ops.AddOptions{Paths: input.Paths, All: input.All})
		if err != nil {
			return nil, AddOutput{}, err
		}
		return nil, AddOutput{Staged: result.Staged}, nil
	}
}

// CommitInput is the input for the commit tool.
type CommitInput struct {
	RepoInput
	Message    string `json:"message"               jsonschema:"commit message"`
	All        bool   `json:"all,omitempty"         jsonschema:"also stage modified tracked files"`
	Amend      bool   `json:"amend,omitempty"       jsonschema:"amend the previous commit"`
	AllowEmpty bool   `json:"allow_empty,omitempty" jsonschema:"permit a commit with no changes"`
}

// CommitOutput is the output for the commit tool.
type CommitOutput struct {
	SHA          string `json:"sha"           jsonschema:"SHA of the created commit"`
	FilesChanged int    `json:"files_changed" jsonschema:"number of changed files"`
	Insertions   int    `json:"insertions"    jsonschema:"inserted lines"`
	Deletions    int    `json:"deletions"     jsonschema:"deleted lines"`
}

func handleCommit(s *server) mcp.ToolHandlerFor[CommitInput, CommitOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CommitInput) (*mcp.CallToolResult, CommitOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, CommitOutput{}, err
		}
		result, err := s.svc.Commit(ctx, oc, ops.CommitOptions{
			Message:    input.Message,
			All:        input.All,
			Amend:      input.Amend,
			AllowEmpty: input.AllowEmpty,
		})
		if err != nil {
			return nil, CommitOutput{}, err
		}
		return nil, CommitOutput{
			SHA:          result.SHA,
			FilesChanged: result.FilesChanged,
			Insertions:   result.Insertions,
			Deletions:    result.Deletions,
		}, nil
	}
}

// CheckoutInput is the input for the checkout tool.
type CheckoutInput struct {
	RepoInput
	Ref    string   `json:"ref"              jsonschema:"branch, tag, or commit to check out"`
	Create bool     `json:"create,omitempty" jsonschema:"create the branch before switching"`
	Paths  []string `json:"paths,omitempty"  jsonschema:"restore these paths instead of switching"`
}

func handleCheckout(s *server) mcp.ToolHandlerFor[CheckoutInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CheckoutInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.Checkout(ctx, oc, ops.CheckoutOptions{
			Ref:    input.Ref,
			Create: input.Create,
			Paths:  input.Paths,
		}); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

// BranchCreateInput is the input for the branch_create tool.
type BranchCreateInput struct {
	RepoInput
	Name       string `json:"name"                  jsonschema:"name of the new branch"`
	StartPoint string `json:"start_point,omitempty" jsonschema:"commit to branch from (defaults to HEAD)"`
}

func handleBranchCreate(s *server) mcp.ToolHandlerFor[BranchCreateInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BranchCreateInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.BranchCreate(ctx, oc, input.Name, input.StartPoint); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

// BranchDeleteInput is the input for the branch_delete tool.
type BranchDeleteInput struct {
	RepoInput
	Name  string `json:"name"            jsonschema:"branch to delete"`
	Force bool   `json:"force,omitempty" jsonschema:"delete even if not merged"`
}

func handleBranchDelete(s *server) mcp.ToolHandlerFor[BranchDeleteInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BranchDeleteInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.BranchDelete(ctx, oc, input.Name, input.Force); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

// MergeInput is the input for the merge tool.
type MergeInput struct {
	RepoInput
	Ref     string `json:"ref"               jsonschema:"ref to merge into the current branch"`
	NoFF    bool   `json:"no_ff,omitempty"   jsonschema:"always create a merge commit"`
	Message string `json:"message,omitempty" jsonschema:"merge commit message"`
}

func handleMerge(s *server) mcp.ToolHandlerFor[MergeInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MergeInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.Merge(ctx, oc, ops.MergeOptions{
			Ref:     input.Ref,
			NoFF:    input.NoFF,
			Message: input.Message,
		}); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

// RefInput names a single commit for cherry_pick and revert.
type RefInput struct {
	RepoInput
	Ref string `json:"ref" jsonschema:"commit to apply"`
}

func handleCherryPick(s *server) mcp.ToolHandlerFor[RefInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RefInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.CherryPick(ctx, oc, input.Ref); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

func handleRevert(s *server) mcp.ToolHandlerFor[RefInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RefInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.Revert(ctx, oc, input.Ref); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

// ResetInput is the input for the reset tool.
type ResetInput struct {
	RepoInput
	Ref   string   `json:"ref,omitempty"   jsonschema:"commit to reset to (defaults to HEAD)"`
	Hard  bool     `json:"hard,omitempty"  jsonschema:"discard working tree changes as well"`
	Paths []string `json:"paths,omitempty" jsonschema:"unstage only these paths"`
}

func handleReset(s *server) mcp.ToolHandlerFor[ResetInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ResetInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.Reset(ctx, oc, ops.ResetOptions{
			Ref:   input.Ref,
			Hard:  input.Hard,
			Paths: input.Paths,
		}); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

// TagCreateInput is the input for the tag_create tool.
type TagCreateInput struct {
	RepoInput
	Name    string `json:"name"              jsonschema:"tag name"`
	Ref     string `json:"ref,omitempty"     jsonschema:"commit to tag (defaults to HEAD)"`
	Message string `json:"message,omitempty" jsonschema:"create an annotated tag with this message"`
}

func handleTagCreate(s *server) mcp.ToolHandlerFor[TagCreateInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TagCreateInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.TagCreate(ctx, oc, input.Name, input.Ref, input.Message); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

// StashPushInput is the input for the stash_push tool.
type StashPushInput struct {
	RepoInput
	Message          string `json:"message,omitempty"           jsonschema:"stash entry description"`
	IncludeUntracked bool   `json:"include_untracked,omitempty" jsonschema:"stash untracked files too"`
}

func handleStashPush(s *server) mcp.ToolHandlerFor[StashPushInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StashPushInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.StashPush(ctx, oc, input.Message, input.IncludeUntracked); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

func handleStashPop(s *server) mcp.ToolHandlerFor[RepoInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RepoInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.StashPop(ctx, oc); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

// FetchInput is the input for the fetch tool.
type FetchInput struct {
	RepoInput
	Remote string `json:"remote,omitempty" jsonschema:"remote to fetch from (defaults to origin)"`
}

func handleFetch(s *server) mcp.ToolHandlerFor[FetchInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FetchInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.Fetch(ctx, oc, input.Remote); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

// PullInput is the input for the pull tool.
type PullInput struct {
	RepoInput
	Remote string `json:"remote,omitempty" jsonschema:"remote to pull from (defaults to origin)"`
	Branch string `json:"branch,omitempty" jsonschema:"branch to pull (defaults to the tracked branch)"`
}

func handlePull(s *server) mcp.ToolHandlerFor[PullInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PullInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.Pull(ctx, oc, input.Remote, input.Branch); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

// PushInput is the input for the push tool.
type PushInput struct {
	RepoInput
	Remote      string `json:"remote,omitempty"       jsonschema:"remote to push to (defaults to origin)"`
	Branch      string `json:"branch,omitempty"       jsonschema:"branch to push (defaults to the current branch)"`
	SetUpstream bool   `json:"set_upstream,omitempty" jsonschema:"record the remote branch as upstream"`
}

func handlePush(s *server) mcp.ToolHandlerFor[PushInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PushInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.Push(ctx, oc, ops.PushOptions{
			Remote:      input.Remote,
			Branch:      input.Branch,
			SetUpstream: input.SetUpstream,
		}); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

// InitInput is the input for the init tool.
type InitInput struct {
	RepoInput
	InitialBranch string `json:"initial_branch,omitempty" jsonschema:"name of the initial branch"`
}

func handleInit(s *server) mcp.ToolHandlerFor[InitInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input InitInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, false)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.Init(ctx, oc, input.InitialBranch); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}

// CloneInput is the input for the clone tool.
type CloneInput struct {
	RepoInput
	URL    string `json:"url"              jsonschema:"repository URL to clone"`
	Target string `json:"target,omitempty" jsonschema:"directory to clone into"`
}

func handleClone(s *server) mcp.ToolHandlerFor[CloneInput, OKOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CloneInput) (*mcp.CallToolResult, OKOutput, error) {
		oc, err := s.opContext(input.RepoInput, false)
		if err != nil {
			return nil, OKOutput{}, err
		}
		if err := s.svc.Clone(ctx, oc, input.URL, input.Target); err != nil {
			return nil, OKOutput{}, err
		}
		return nil, OKOutput{OK: true}, nil
	}
}
