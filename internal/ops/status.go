package ops

import (
	"context"
	"strings"

	"github.com/gitdock/gitdock/internal/gitcmd"
)

// FileChange is one changed path as reported by status.
type FileChange struct {
	Path string `json:"path"`
	// Code is the two-character porcelain status code, e.g. "M ", "??".
	Code string `json:"code"`
}

// StatusResult is the normalized working tree status.
type StatusResult struct {
	Branch     string       `json:"branch"`
	Ahead      int          `json:"ahead"`
	Behind     int          `json:"behind"`
	Staged     []FileChange `json:"staged,omitempty"`
	Unstaged   []FileChange `json:"unstaged,omitempty"`
	Untracked  []string     `json:"untracked,omitempty"`
	Conflicted []string     `json:"conflicted,omitempty"`
	Clean      bool         `json:"clean"`
}

// Status reports the working tree state from porcelain v1 output with a
// branch header.
func (s *Service) Status(ctx context.Context, oc Context) (*StatusResult, error) {
	spec := gitcmd.Build("status", []string{"--porcelain", "--branch"}, nil, nil)
	out, err := s.run(ctx, "status", oc, spec)
	if err != nil {
		return nil, err
	}
	result := parseStatus(out.Stdout)
	return result, nil
}

// parseStatus parses `git status --porcelain --branch` output.
// Unrecognized lines are skipped.
func parseStatus(text string) *StatusResult {
	result := &StatusResult{}
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "## ") {
			parseBranchHeader(line[3:], result)
			continue
		}
		if len(line) < 4 {
			continue
		}
		code := line[:2]
		path := strings.TrimSpace(line[3:])
		// Renames report "old -> new"; the new path is the one that exists.
		if idx := strings.Index(path, " -> "); idx >= 0 {
			path = path[idx+4:]
		}

		switch {
		case code == "??":
			result.Untracked = append(result.Untracked, path)
		case isConflictCode(code):
			result.Conflicted = append(result.Conflicted, path)
		default:
			if code[0] != ' ' {
				result.Staged = append(result.Staged, FileChange{Path: path, Code: code})
			}
			if code[1] != ' ' {
				result.Unstaged = append(result.Unstaged, FileChange{Path: path, Code: code})
			}
		}
	}
	result.Clean = len(result.Staged) == 0 && len(result.Unstaged) == 0 &&
		len(result.Untracked) == 0 && len(result.Conflicted) == 0
	return result
}

// parseBranchHeader parses the "## branch...upstream [ahead N, behind M]" line.
func parseBranchHeader(header string, result *StatusResult) {
	branch := header
	if idx := strings.Index(branch, "..."); idx >= 0 {
		branch = branch[:idx]
	}
	if idx := strings.Index(branch, " "); idx >= 0 {
		branch = branch[:idx]
	}
	result.Branch = branch

	if open := strings.Index(header, "["); open >= 0 {
		trailer := strings.TrimSuffix(header[open+1:], "]")
		for _, part := range strings.Split(trailer, ",") {
			part = strings.TrimSpace(part)
			switch {
			case strings.HasPrefix(part, "ahead "):
				result.Ahead = atoiOrZero(strings.TrimPrefix(part, "ahead "))
			case strings.HasPrefix(part, "behind "):
				result.Behind = atoiOrZero(strings.TrimPrefix(part, "behind "))
			}
		}
	}
}

// isConflictCode reports whether a porcelain code marks an unmerged path.
func isConflictCode(code string) bool {
	switch code {
	case "DD", "AU", "UD", "UA", "DU", "AA", "UU":
		return true
	}
	return false
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
