package ops

import (
	"context"
	"errors"

	"github.com/gitdock/gitdock/internal/gitcmd"
)

// ProgressState reports which multi-step operation, if any, is mid-flight in
// the repository. At most one of the fields is normally true.
type ProgressState struct {
	Rebase     bool `json:"rebase"`
	Merge      bool `json:"merge"`
	CherryPick bool `json:"cherry_pick"`
}

// RebaseStatus reports whether a rebase, merge, or cherry-pick is in
// progress. Each probe resolves the sentinel ref git maintains during the
// operation; an absent ref exits nonzero, which here means "not in
// progress", not a failure.
func (s *Service) RebaseStatus(ctx context.Context, oc Context) (*ProgressState, error) {
	state := &ProgressState{}
	probes := []struct {
		ref  string
		flag *bool
	}{
		{"REBASE_HEAD", &state.Rebase},
		{"MERGE_HEAD", &state.Merge},
		{"CHERRY_PICK_HEAD", &state.CherryPick},
	}
	for _, probe := range probes {
		present, err := s.refExists(ctx, oc, probe.ref)
		if err != nil {
			return nil, err
		}
		*probe.flag = present
	}
	return state, nil
}

// refExists probes a ref with rev-parse. Exit 1 is the expected "absent"
// answer for a --verify --quiet probe; any other failure (exit 128 for a
// missing repository, a corrupt object store) is real and classified.
func (s *Service) refExists(ctx context.Context, oc Context, ref string) (bool, error) {
	spec := gitcmd.Build("rev-parse", []string{"--verify", "--quiet"}, []string{ref}, nil)
	_, err := s.runner.Run(ctx, oc.Dir, spec)
	if err != nil {
		var exitErr *gitcmd.ExitError
		if errors.As(err, &exitErr) && exitErr.Outcome.ExitCode == 1 {
			return false, nil
		}
		return false, gitcmd.Classify("rebase-status", err)
	}
	return true, nil
}

// ShortstatResult carries aggregate change counts without any content.
type ShortstatResult struct {
	FilesChanged int `json:"files_changed"`
	Insertions   int `json:"insertions"`
	Deletions    int `json:"deletions"`
}

// Shortstat returns aggregate change counts between two points, or against
// the working tree when refs are omitted. One invocation, summary line only.
func (s *Service) Shortstat(ctx context.Context, oc Context, commit1, commit2 string, paths []string) (*ShortstatResult, error) {
	var refs []string
	if commit1 != "" {
		refs = append(refs, commit1)
	}
	if commit2 != "" {
		refs = append(refs, commit2)
	}
	spec := gitcmd.Build("diff", []string{"--shortstat"}, refs, paths)
	out, err := s.run(ctx, "shortstat", oc, spec)
	if err != nil {
		return nil, err
	}
	stats := gitcmd.ParseStat(out.Stdout)
	return &ShortstatResult{
		FilesChanged: stats.FilesChanged,
		Insertions:   stats.Insertions,
		Deletions:    stats.Deletions,
	}, nil
}
