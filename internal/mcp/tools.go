package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gitdock/gitdock/internal/ops"
)

// registerReadTools adds the read-only repository tools to the server.
func registerReadTools(srv *mcp.Server, s *server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "diff",
		Description: describe("diff"),
		Annotations: annotationsFor("diff"),
	}, handleDiff(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "status",
		Description: describe("status"),
		Annotations: annotationsFor("status"),
	}, handleStatus(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "log",
		Description: describe("log"),
		Annotations: annotationsFor("log"),
	}, handleLog(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "show",
		Description: describe("show"),
		Annotations: annotationsFor("show"),
	}, handleShow(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "blame",
		Description: describe("blame"),
		Annotations: annotationsFor("blame"),
	}, handleBlame(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "resolve",
		Description: describe("resolve"),
		Annotations: annotationsFor("resolve"),
	}, handleResolve(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "ls_files",
		Description: describe("ls-files"),
		Annotations: annotationsFor("ls-files"),
	}, handleLsFiles(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "branch_list",
		Description: describe("branch-list"),
		Annotations: annotationsFor("branch-list"),
	}, handleBranchList(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "tag_list",
		Description: describe("tag-list"),
		Annotations: annotationsFor("tag-list"),
	}, handleTagList(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "stash_list",
		Description: describe("stash-list"),
		Annotations: annotationsFor("stash-list"),
	}, handleStashList(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "remote_list",
		Description: describe("remote-list"),
		Annotations: annotationsFor("remote-list"),
	}, handleRemoteList(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "rebase_status",
		Description: describe("rebase-status"),
		Annotations: annotationsFor("rebase-status"),
	}, handleRebaseStatus(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "shortstat",
		Description: describe("shortstat"),
		Annotations: annotationsFor("shortstat"),
	}, handleShortstat(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "describe",
		Description: describe("describe"),
		Annotations: annotationsFor("describe"),
	}, handleDescribe(s))

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "clean_preview",
		Description: describe("clean"),
		Annotations: annotationsFor("clean"),
	}, handleCleanPreview(s))
}

// --- Diff tool ---

// DiffInput is the input for the diff tool.
type DiffInput struct {
	RepoInput
	Staged           bool     `json:"staged,omitempty"            jsonschema:"compare the staged index instead of the working tree"`
	NameOnly         bool     `json:"name_only,omitempty"         jsonschema:"list changed file names only"`
	Unified          *int     `json:"unified,omitempty"           jsonschema:"context lines around each change (0 is honored)"`
	Commit1          string   `json:"commit1,omitempty"           jsonschema:"first commit reference"`
	Commit2          string   `json:"commit2,omitempty"           jsonschema:"second commit reference (requires commit1)"`
	Stat             bool     `json:"stat,omitempty"              jsonschema:"return change statistics instead of content"`
	Paths            []string `json:"paths,omitempty"             jsonschema:"limit the diff to these paths"`
	IncludeUntracked bool     `json:"include_untracked,omitempty" jsonschema:"include untracked files as new content"`
}

// DiffOutput is the output for the diff tool.
type DiffOutput struct {
	Diff         string `json:"diff"                 jsonschema:"diff text"`
	FilesChanged int    `json:"files_changed"        jsonschema:"number of changed files"`
	Insertions   *int   `json:"insertions,omitempty" jsonschema:"inserted lines (absent in name-only mode)"`
	Deletions    *int   `json:"deletions,omitempty"  jsonschema:"deleted lines (absent in name-only mode)"`
	Binary       bool   `json:"binary"               jsonschema:"whether binary content was detected"`
}

func handleDiff(s *server) mcp.ToolHandlerFor[DiffInput, DiffOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DiffInput) (*mcp.CallToolResult, DiffOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, DiffOutput{}, err
		}
		result, err := s.svc.Diff(ctx, oc, ops.DiffOptions{
			Staged:           input.Staged,
			NameOnly:         input.NameOnly,
			Unified:          input.Unified,
			Commit1:          input.Commit1,
			Commit2:          input.Commit2,
			Stat:             input.Stat,
			Paths:            input.Paths,
			IncludeUntracked: input.IncludeUntracked,
		})
		if err != nil {
			return nil, DiffOutput{}, err
		}
		return nil, DiffOutput{
			Diff:         result.Diff,
			FilesChanged: result.FilesChanged,
			Insertions:   result.Insertions,
			Deletions:    result.Deletions,
			Binary:       result.Binary,
		}, nil
	}
}

// --- Status tool ---

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Branch     string           `json:"branch"               jsonschema:"current branch"`
	Ahead      int              `json:"ahead"                jsonschema:"commits ahead of upstream"`
	Behind     int              `json:"behind"               jsonschema:"commits behind upstream"`
	Staged     []ops.FileChange `json:"staged,omitempty"     jsonschema:"staged changes"`
	Unstaged   []ops.FileChange `json:"unstaged,omitempty"   jsonschema:"unstaged changes"`
	Untracked  []string         `json:"untracked,omitempty"  jsonschema:"untracked files"`
	Conflicted []string         `json:"conflicted,omitempty" jsonschema:"unmerged paths"`
	Clean      bool             `json:"clean"                jsonschema:"whether the working tree is clean"`
}

func handleStatus(s *server) mcp.ToolHandlerFor[RepoInput, StatusOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RepoInput) (*mcp.CallToolResult, StatusOutput, error) {
		oc, err := s.opContext(input, true)
		if err != nil {
			return nil, StatusOutput{}, err
		}
		result, err := s.svc.Status(ctx, oc)
		if err != nil {
			return nil, StatusOutput{}, err
		}
		return nil, StatusOutput{
			Branch:     result.Branch,
			Ahead:      result.Ahead,
			Behind:     result.Behind,
			Staged:     result.Staged,
			Unstaged:   result.Unstaged,
			Untracked:  result.Untracked,
			Conflicted: result.Conflicted,
			Clean:      result.Clean,
		}, nil
	}
}

// --- Log tool ---

// LogInput is the input for the log tool.
type LogInput struct {
	RepoInput
	MaxCount int      `json:"max_count,omitempty" jsonschema:"maximum number of commits to return"`
	Ref      string   `json:"ref,omitempty"       jsonschema:"ref to start from (defaults to HEAD)"`
	Author   string   `json:"author,omitempty"    jsonschema:"filter by author"`
	Since    string   `json:"since,omitempty"     jsonschema:"only commits after this date"`
	Until    string   `json:"until,omitempty"     jsonschema:"only commits before this date"`
	Paths    []string `json:"paths,omitempty"     jsonschema:"limit to commits touching these paths"`
}

// LogOutput is the output for the log tool.
type LogOutput struct {
	Commits []ops.Commit `json:"commits" jsonschema:"matching commits, newest first"`
}

func handleLog(s *server) mcp.ToolHandlerFor[LogInput, LogOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LogInput) (*mcp.CallToolResult, LogOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, LogOutput{}, err
		}
		commits, err := s.svc.Log(ctx, oc, ops.LogOptions{
			MaxCount: input.MaxCount,
			Ref:      input.Ref,
			Author:   input.Author,
			Since:    input.Since,
			Until:    input.Until,
			Paths:    input.Paths,
		})
		if err != nil {
			return nil, LogOutput{}, err
		}
		return nil, LogOutput{Commits: commits}, nil
	}
}

// --- Show tool ---

// ShowInput is the input for the show tool.
type ShowInput struct {
	RepoInput
	Ref string `json:"ref,omitempty" jsonschema:"commit to show (defaults to HEAD)"`
}

// ShowOutput is the output for the show tool.
type ShowOutput struct {
	Commit       ops.Commit `json:"commit"        jsonschema:"commit metadata"`
	Diff         string     `json:"diff"          jsonschema:"stat summary of the commit"`
	FilesChanged int        `json:"files_changed" jsonschema:"number of changed files"`
	Insertions   int        `json:"insertions"    jsonschema:"inserted lines"`
	Deletions    int        `json:"deletions"     jsonschema:"deleted lines"`
}

func handleShow(s *server) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, ShowOutput{}, err
		}
		result, err := s.svc.Show(ctx, oc, input.Ref)
		if err != nil {
			return nil, ShowOutput{}, err
		}
		return nil, ShowOutput{
			Commit:       result.Commit,
			Diff:         result.Diff,
			FilesChanged: result.FilesChanged,
			Insertions:   result.Insertions,
			Deletions:    result.Deletions,
		}, nil
	}
}

// --- Blame tool ---

// BlameInput is the input for the blame tool.
type BlameInput struct {
	RepoInput
	Path string `json:"path"          jsonschema:"file to annotate"`
	Ref  string `json:"ref,omitempty" jsonschema:"revision to annotate at (defaults to HEAD)"`
}

// BlameOutput is the output for the blame tool.
type BlameOutput struct {
	Path  string   `json:"path"  jsonschema:"annotated file"`
	Lines []string `json:"lines" jsonschema:"annotated lines"`
}

func handleBlame(s *server) mcp.ToolHandlerFor[BlameInput, BlameOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BlameInput) (*mcp.CallToolResult, BlameOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, BlameOutput{}, err
		}
		result, err := s.svc.Blame(ctx, oc, input.Path, input.Ref)
		if err != nil {
			return nil, BlameOutput{}, err
		}
		return nil, BlameOutput{Path: result.Path, Lines: result.Lines}, nil
	}
}

// --- Resolve tool ---

// ResolveInput is the input for the resolve tool.
type ResolveInput struct {
	RepoInput
	Rev string `json:"rev" jsonschema:"revision expression to resolve"`
}

// ResolveOutput is the output for the resolve tool.
type ResolveOutput struct {
	SHA string `json:"sha" jsonschema:"full commit SHA"`
}

func handleResolve(s *server) mcp.ToolHandlerFor[ResolveInput, ResolveOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ResolveInput) (*mcp.CallToolResult, ResolveOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, ResolveOutput{}, err
		}
		sha, err := s.svc.Resolve(ctx, oc, input.Rev)
		if err != nil {
			return nil, ResolveOutput{}, err
		}
		return nil, ResolveOutput{SHA: sha}, nil
	}
}

// RebaseStatusOutput is the output for the rebase_status tool.
type RebaseStatusOutput struct {
	Rebase     bool `json:"rebase"      jsonschema:"whether a rebase is in progress"`
	Merge      bool `json:"merge"       jsonschema:"whether a merge is in progress"`
	CherryPick bool `json:"cherry_pick" jsonschema:"whether a cherry-pick is in progress"`
}

func handleRebaseStatus(s *server) mcp.ToolHandlerFor[RepoInput, RebaseStatusOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RepoInput) (*mcp.CallToolResult, RebaseStatusOutput, error) {
		oc, err := s.opContext(input, true)
		if err != nil {
			return nil, RebaseStatusOutput{}, err
		}
		state, err := s.svc.RebaseStatus(ctx, oc)
		if err != nil {
			return nil, RebaseStatusOutput{}, err
		}
		return nil, RebaseStatusOutput{
			Rebase:     state.Rebase,
			Merge:      state.Merge,
			CherryPick: state.CherryPick,
		}, nil
	}
}

// ShortstatInput is the input for the shortstat tool.
type ShortstatInput struct {
	RepoInput
	Commit1 string   `json:"commit1,omitempty" jsonschema:"first commit reference"`
	Commit2 string   `json:"commit2,omitempty" jsonschema:"second commit reference (requires commit1)"`
	Paths   []string `json:"paths,omitempty"   jsonschema:"limit counts to these paths"`
}

// ShortstatOutput is the output for the shortstat tool.
type ShortstatOutput struct {
	FilesChanged int `json:"files_changed" jsonschema:"number of changed files"`
	Insertions   int `json:"insertions"    jsonschema:"inserted lines"`
	Deletions    int `json:"deletions"     jsonschema:"deleted lines"`
}

func handleShortstat(s *server) mcp.ToolHandlerFor[ShortstatInput, ShortstatOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ShortstatInput) (*mcp.CallToolResult, ShortstatOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, ShortstatOutput{}, err
		}
		result, err := s.svc.Shortstat(ctx, oc, input.Commit1, input.Commit2, input.Paths)
		if err != nil {
			return nil, ShortstatOutput{}, err
		}
		return nil, ShortstatOutput{
			FilesChanged: result.FilesChanged,
			Insertions:   result.Insertions,
			Deletions:    result.Deletions,
		}, nil
	}
}

// DescribeOutput is the output for the describe tool.
type DescribeOutput struct {
	Description string `json:"description" jsonschema:"human-readable name for the current commit"`
}

func handleDescribe(s *server) mcp.ToolHandlerFor[RepoInput, DescribeOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RepoInput) (*mcp.CallToolResult, DescribeOutput, error) {
		oc, err := s.opContext(input, true)
		if err != nil {
			return nil, DescribeOutput{}, err
		}
		desc, err := s.svc.Describe(ctx, oc)
		if err != nil {
			return nil, DescribeOutput{}, err
		}
		return nil, DescribeOutput{Description: desc}, nil
	}
}

// --- File listing tools ---

// LsFilesInput is the input for the ls_files tool.
type LsFilesInput struct {
	RepoInput
	Untracked bool     `json:"untracked,omitempty" jsonschema:"list untracked non-ignored files instead of tracked files"`
	Paths     []string `json:"paths,omitempty"     jsonschema:"limit to these paths"`
}

// FileListOutput lists file paths.
type FileListOutput struct {
	Files []string `json:"files" jsonschema:"file paths"`
}

func handleLsFiles(s *server) mcp.ToolHandlerFor[LsFilesInput, FileListOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LsFilesInput) (*mcp.CallToolResult, FileListOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, FileListOutput{}, err
		}
		files, err := s.svc.LsFiles(ctx, oc, input.Untracked, input.Paths)
		if err != nil {
			return nil, FileListOutput{}, err
		}
		return nil, FileListOutput{Files: files}, nil
	}
}

// CleanPreviewInput is the input for the clean_preview tool.
type CleanPreviewInput struct {
	RepoInput
	Paths []string `json:"paths,omitempty" jsonschema:"limit to these paths"`
}

func handleCleanPreview(s *server) mcp.ToolHandlerFor[CleanPreviewInput, FileListOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CleanPreviewInput) (*mcp.CallToolResult, FileListOutput, error) {
		oc, err := s.opContext(input.RepoInput, true)
		if err != nil {
			return nil, FileListOutput{}, err
		}
		files, err := s.svc.Clean(ctx, oc, input.Paths)
		if err != nil {
			return nil, FileListOutput{}, err
		}
		return nil, FileListOutput{Files: files}, nil
	}
}

// --- Listing tools ---

// BranchListOutput is the output for the branch_list tool.
type BranchListOutput struct {
	Branches []ops.Branch `json:"branches" jsonschema:"local branches"`
}

func handleBranchList(s *server) mcp.ToolHandlerFor[RepoInput, BranchListOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RepoInput) (*mcp.CallToolResult, BranchListOutput, error) {
		oc, err := s.opContext(input, true)
		if err != nil {
			return nil, BranchListOutput{}, err
		}
		branches, err := s.svc.Branches(ctx, oc)
		if err != nil {
			return nil, BranchListOutput{}, err
		}
		return nil, BranchListOutput{Branches: branches}, nil
	}
}

// NameListOutput lists plain names (tags, stash entries).
type NameListOutput struct {
	Names []string `json:"names" jsonschema:"entry names"`
}

func handleTagList(s *server) mcp.ToolHandlerFor[RepoInput, NameListOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RepoInput) (*mcp.CallToolResult, NameListOutput, error) {
		oc, err := s.opContext(input, true)
		if err != nil {
			return nil, NameListOutput{}, err
		}
		tags, err := s.svc.Tags(ctx, oc)
		if err != nil {
			return nil, NameListOutput{}, err
		}
		return nil, NameListOutput{Names: tags}, nil
	}
}

func handleStashList(s *server) mcp.ToolHandlerFor[RepoInput, NameListOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RepoInput) (*mcp.CallToolResult, NameListOutput, error) {
		oc, err := s.opContext(input, true)
		if err != nil {
			return nil, NameListOutput{}, err
		}
		entries, err := s.svc.StashList(ctx, oc)
		if err != nil {
			return nil, NameListOutput{}, err
		}
		return nil, NameListOutput{Names: entries}, nil
	}
}

// RemoteListOutput is the output for the remote_list tool.
type RemoteListOutput struct {
	Remotes []ops.Remote `json:"remotes" jsonschema:"configured remotes"`
}

func handleRemoteList(s *server) mcp.ToolHandlerFor[RepoInput, RemoteListOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RepoInput) (*mcp.CallToolResult, RemoteListOutput, error) {
		oc, err := s.opContext(input, true)
		if err != nil {
			return nil, RemoteListOutput{}, err
		}
		remotes, err := s.svc.Remotes(ctx, oc)
		if err != nil {
			return nil, RemoteListOutput{}, err
		}
		return nil, RemoteListOutput{Remotes: remotes}, nil
	}
}
