package ops

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gitdock/gitdock/internal/gitcmd"
)

// Commit is one parsed commit.
type Commit struct {
	SHA         string    `json:"sha"`
	Short       string    `json:"short"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body,omitempty"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"author_email"`
	Date        time.Time `json:"date"`
}

// Field and record separators for log parsing. Unit-separator style control
// characters cannot appear in commit messages, unlike any printable marker.
const (
	logFieldSep  = "\x1f"
	logRecordSep = "\x1e"
)

// logFormat is the --pretty format matching parseCommits.
// Fields: full SHA, short SHA, subject, body, author name, author email,
// unix timestamp.
var logFormat = strings.Join([]string{"%H", "%h", "%s", "%b", "%an", "%ae", "%at"}, logFieldSep) + logRecordSep

// LogOptions controls the log operation.
type LogOptions struct {
	MaxCount int
	Ref      string
	Author   string
	Since    string
	Until    string
	Paths    []string
}

// Log lists commits, newest first.
func (s *Service) Log(ctx context.Context, oc Context, opts LogOptions) ([]Commit, error) {
	flags := []string{"--pretty=format:" + logFormat}
	if opts.MaxCount > 0 {
		flags = append(flags, fmt.Sprintf("--max-count=%d", opts.MaxCount))
	}
	if opts.Author != "" {
		flags = append(flags, "--author="+opts.Author)
	}
	if opts.Since != "" {
		flags = append(flags, "--since="+opts.Since)
	}
	if opts.Until != "" {
		flags = append(flags, "--until="+opts.Until)
	}

	var refs []string
	if opts.Ref != "" {
		refs = append(refs, opts.Ref)
	}

	spec := gitcmd.Build("log", flags, refs, opts.Paths)
	out, err := s.run(ctx, "log", oc, spec)
	if err != nil {
		return nil, err
	}
	return parseCommits(out.Stdout), nil
}

// parseCommits parses separator-delimited log output. Records with missing
// fields are skipped rather than failing the whole parse.
func parseCommits(text string) []Commit {
	if text == "" {
		return nil
	}

	var commits []Commit
	for _, record := range strings.Split(text, logRecordSep) {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}
		fields := strings.Split(record, logFieldSep)
		if len(fields) < 7 {
			continue
		}
		timestamp, err := strconv.ParseInt(strings.TrimSpace(fields[6]), 10, 64)
		if err != nil {
			timestamp = 0
		}
		commits = append(commits, Commit{
			SHA:         strings.TrimSpace(fields[0]),
			Short:       strings.TrimSpace(fields[1]),
			Subject:     strings.TrimSpace(fields[2]),
			Body:        strings.TrimSpace(fields[3]),
			Author:      strings.TrimSpace(fields[4]),
			AuthorEmail: strings.TrimSpace(fields[5]),
			Date:        time.Unix(timestamp, 0).UTC(),
		})
	}
	return commits
}

// ShowResult is a single commit with its change summary.
type ShowResult struct {
	Commit       Commit `json:"commit"`
	Diff         string `json:"diff"`
	FilesChanged int    `json:"files_changed"`
	Insertions   int    `json:"insertions"`
	Deletions    int    `json:"deletions"`
}

// Show returns one commit's metadata and stat summary.
func (s *Service) Show(ctx context.Context, oc Context, ref string) (*ShowResult, error) {
	if ref == "" {
		ref = "HEAD"
	}

	metaSpec := gitcmd.Build("log", []string{"--pretty=format:" + logFormat, "--max-count=1"}, []string{ref}, nil)
	metaOut, err := s.run(ctx, "show", oc, metaSpec)
	if err != nil {
		return nil, err
	}
	commits := parseCommits(metaOut.Stdout)
	if len(commits) == 0 {
		return nil, &gitcmd.OpError{Op: "show", Kind: gitcmd.AmbiguousReference, Message: "no commit found for " + ref}
	}

	statSpec := gitcmd.Build("show", []string{"--stat", "--format="}, []string{ref}, nil)
	statOut, err := s.run(ctx, "show", oc, statSpec)
	if err != nil {
		return nil, err
	}
	stats := gitcmd.ParseStat(statOut.Stdout)

	return &ShowResult{
		Commit:       commits[0],
		Diff:         statOut.Stdout,
		FilesChanged: stats.FilesChanged,
		Insertions:   stats.Insertions,
		Deletions:    stats.Deletions,
	}, nil
}

// BlameResult is an annotated file.
type BlameResult struct {
	Path  string   `json:"path"`
	Lines []string `json:"lines"`
}

// Blame annotates a file, optionally at a given revision.
func (s *Service) Blame(ctx context.Context, oc Context, path, ref string) (*BlameResult, error) {
	var refs []string
	if ref != "" {
		refs = append(refs, ref)
	}
	spec := gitcmd.Build("blame", nil, refs, []string{path})
	out, err := s.run(ctx, "blame", oc, spec)
	if err != nil {
		return nil, err
	}
	return &BlameResult{Path: path, Lines: nonBlankLines(out.Stdout)}, nil
}

// Describe names the current commit relative to the nearest tag.
func (s *Service) Describe(ctx context.Context, oc Context) (string, error) {
	spec := gitcmd.Build("describe", []string{"--tags", "--always"}, nil, nil)
	out, err := s.run(ctx, "describe", oc, spec)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Stdout), nil
}

// Resolve resolves a revision expression to a full SHA.
// The in-process inspector answers first; expressions outside its revision
// grammar fall back to rev-parse, which understands all of them.
func (s *Service) Resolve(ctx context.Context, oc Context, rev string) (string, error) {
	if sha, err := gitcmd.ResolveRevision(oc.Dir, rev); err == nil {
		return sha, nil
	}
	spec := gitcmd.Build("rev-parse", []string{"--verify"}, []string{rev}, nil)
	out, err := s.run(ctx, "resolve", oc, spec)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Stdout), nil
}
