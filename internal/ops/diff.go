package ops

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gitdock/gitdock/internal/gitcmd"
)

// DiffOptions controls the diff operation. No field excludes another by
// construction; when both Stat and NameOnly are set, Stat wins and NameOnly
// is ignored.
type DiffOptions struct {
	Staged           bool
	NameOnly         bool
	Unified          *int
	Commit1          string
	Commit2          string
	Stat             bool
	Paths            []string
	IncludeUntracked bool
}

// DiffResult is the normalized outcome of a diff operation.
// Insertions and Deletions are nil in name-only mode, where no content was
// inspected and line counts would be meaningless.
type DiffResult struct {
	Diff         string `json:"diff"`
	FilesChanged int    `json:"files_changed"`
	Insertions   *int   `json:"insertions,omitempty"`
	Deletions    *int   `json:"deletions,omitempty"`
	Binary       bool   `json:"binary"`
}

// Diff runs the diff operation.
//
// Stat mode issues a single stats invocation (plus per-file no-index
// comparisons for untracked files when requested) and returns aggregate
// counts. Content mode issues the primary content invocation, appends
// untracked content in enumeration order, and finalizes counts either from
// the combined output (name-only) or from a second stats invocation.
func (s *Service) Diff(ctx context.Context, oc Context, opts DiffOptions) (*DiffResult, error) {
	flags, refs := diffArgs(opts)

	if opts.Stat {
		return s.diffStat(ctx, oc, opts, refs)
	}

	spec := gitcmd.Build("diff", flags, refs, opts.Paths)
	out, err := s.run(ctx, "diff", oc, spec)
	if err != nil {
		return nil, err
	}
	combined := out.Stdout

	var untracked []string
	if opts.IncludeUntracked {
		untracked, err = s.untrackedFiles(ctx, oc)
		if err != nil {
			return nil, err
		}
		for _, file := range untracked {
			if opts.NameOnly {
				// An untracked file is by definition new and entirely
				// changed; its name is the whole answer.
				combined = joinSections(combined, file+"\n")
				continue
			}
			text, uerr := s.untrackedDiff(ctx, oc, file, opts.Unified, false)
			if uerr != nil {
				return nil, uerr
			}
			combined = joinSections(combined, text)
		}
	}

	if opts.NameOnly {
		// Every changed path is already a line of the combined output, so a
		// stats call would add nothing. No content was inspected, so binary
		// stays false.
		return &DiffResult{
			Diff:         combined,
			FilesChanged: len(nonBlankLines(combined)),
		}, nil
	}

	statSpec := gitcmd.Build("diff", statFlags(opts), refs, opts.Paths)
	statOut, err := s.run(ctx, "diff", oc, statSpec)
	if err != nil {
		return nil, err
	}
	stats := gitcmd.ParseStat(statOut.Stdout)

	insertions := stats.Insertions
	deletions := stats.Deletions
	return &DiffResult{
		Diff:         combined,
		FilesChanged: stats.FilesChanged + len(untracked),
		Insertions:   &insertions,
		Deletions:    &deletions,
		Binary:       stats.Binary || gitcmd.ContainsBinaryMarker(combined),
	}, nil
}

// diffStat implements the stats-only branch: one stats invocation for
// tracked changes, plus per-file no-index stat comparisons for untracked
// files whose outputs are concatenated, re-parsed, and added to the totals.
func (s *Service) diffStat(ctx context.Context, oc Context, opts DiffOptions, refs []string) (*DiffResult, error) {
	spec := gitcmd.Build("diff", statFlags(opts), refs, opts.Paths)
	out, err := s.run(ctx, "diff", oc, spec)
	if err != nil {
		return nil, err
	}

	stats := gitcmd.ParseStat(out.Stdout)
	text := out.Stdout
	filesChanged := stats.FilesChanged
	insertions := stats.Insertions
	deletions := stats.Deletions
	binary := stats.Binary

	if opts.IncludeUntracked {
		untracked, uerr := s.untrackedFiles(ctx, oc)
		if uerr != nil {
			return nil, uerr
		}
		var merged strings.Builder
		for _, file := range untracked {
			section, derr := s.untrackedDiff(ctx, oc, file, nil, true)
			if derr != nil {
				return nil, derr
			}
			merged.WriteString(section)
			text = joinSections(text, section)
		}
		ustats := gitcmd.ParseStat(merged.String())
		filesChanged += len(untracked)
		insertions += ustats.Insertions
		deletions += ustats.Deletions
		binary = binary || ustats.Binary
	}

	return &DiffResult{
		Diff:         text,
		FilesChanged: filesChanged,
		Insertions:   &insertions,
		Deletions:    &deletions,
		Binary:       binary,
	}, nil
}

// diffArgs assembles the content-mode flags and refs for a diff invocation.
// Flag order is fixed: staged, context width, name-only. A zero context
// width is still emitted explicitly. Commit refs keep caller order.
func diffArgs(opts DiffOptions) (flags, refs []string) {
	if opts.Staged {
		flags = append(flags, "--cached")
	}
	if opts.Unified != nil {
		flags = append(flags, fmt.Sprintf("-U%d", *opts.Unified))
	}
	if opts.NameOnly {
		flags = append(flags, "--name-only")
	}
	if opts.Commit1 != "" {
		refs = append(refs, opts.Commit1)
	}
	if opts.Commit2 != "" {
		refs = append(refs, opts.Commit2)
	}
	return flags, refs
}

// statFlags assembles the flags for a stats invocation: the content-producing
// flags (name-only, context width) are stripped, --stat is added.
func statFlags(opts DiffOptions) []string {
	var flags []string
	if opts.Staged {
		flags = append(flags, "--cached")
	}
	return append(flags, "--stat")
}

// untrackedFiles enumerates files that are neither tracked nor ignored.
// A single call; order is git's enumeration order and determines the
// concatenation order of everything downstream.
func (s *Service) untrackedFiles(ctx context.Context, oc Context) ([]string, error) {
	spec := gitcmd.Build("ls-files", []string{"--others", "--exclude-standard"}, nil, nil)
	out, err := s.run(ctx, "diff", oc, spec)
	if err != nil {
		return nil, err
	}
	return nonBlankLines(out.Stdout), nil
}

// untrackedDiff compares one untracked file against an empty baseline with
// diff --no-index. Exit 1 is the normal "inputs differ" signal for this
// invocation kind, and its stdout is the payload; higher exit codes are real
// failures and go through classification.
func (s *Service) untrackedDiff(ctx context.Context, oc Context, path string, unified *int, stat bool) (string, error) {
	flags := []string{"--no-index"}
	if stat {
		flags = append(flags, "--stat")
	} else if unified != nil {
		flags = append(flags, fmt.Sprintf("-U%d", *unified))
	}

	spec := gitcmd.Build("diff", flags, nil, []string{os.DevNull, path})
	out, err := s.runner.Run(ctx, oc.Dir, spec)
	if err != nil {
		var exitErr *gitcmd.ExitError
		if errors.As(err, &exitErr) && exitErr.Outcome.ExitCode == 1 {
			return exitErr.Outcome.Stdout, nil
		}
		return "", gitcmd.Classify("diff", err)
	}
	return out.Stdout, nil
}
