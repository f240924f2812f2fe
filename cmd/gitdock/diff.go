package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitdock/gitdock/internal/ops"
)

// newDiffCmd creates the diff command.
func newDiffCmd() *cobra.Command {
	var (
		staged           bool
		nameOnly         bool
		stat             bool
		includeUntracked bool
		unified          int
	)

	cmd := &cobra.Command{
		Use:   "diff [commit1 [commit2]] [-- path...]",
		Short: "Show changes between commits, the index, and the working tree",
		Long: `Show changes in the repository, normalized into structured output.

With no arguments, compares the working tree against the index. With
--staged, compares the index against HEAD. One commit compares that commit
against the working tree; two commits compare them directly.

Paths after -- restrict the comparison. --include-untracked folds untracked
files in as additions against an empty baseline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRuntimeEnv(cmd)
			if err != nil {
				return err
			}

			refs, paths := splitDashArgs(cmd, args)
			if len(refs) > 2 {
				return env.fail(fmt.Errorf("at most two commits may be compared"))
			}

			opts := ops.DiffOptions{
				Staged:           staged,
				NameOnly:         nameOnly,
				Stat:             stat,
				Paths:            paths,
				IncludeUntracked: includeUntracked,
			}
			if cmd.Flags().Changed("unified") {
				opts.Unified = &unified
			}
			if len(refs) > 0 {
				opts.Commit1 = refs[0]
			}
			if len(refs) > 1 {
				opts.Commit2 = refs[1]
			}

			result, err := env.svc.Diff(cmd.Context(), env.oc, opts)
			if err != nil {
				return env.fail(err)
			}

			if env.printer.IsJSON() {
				return env.printer.WriteJSON(result)
			}
			env.printer.Diff(result.Diff)
			if result.Binary {
				env.printer.Warn("binary content detected")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, "Compare the index against HEAD")
	cmd.Flags().BoolVar(&nameOnly, "name-only", false, "List changed file names only")
	cmd.Flags().BoolVar(&stat, "stat", false, "Show change statistics instead of content")
	cmd.Flags().BoolVar(&includeUntracked, "include-untracked", false, "Include untracked files as new content")
	cmd.Flags().IntVarP(&unified, "unified", "U", 3, "Context lines around each change")

	return cmd
}

// splitDashArgs separates positional args into refs (before --) and paths
// (after --). Without a -- marker every arg is a ref.
func splitDashArgs(cmd *cobra.Command, args []string) (refs, paths []string) {
	at := cmd.ArgsLenAtDash()
	if at < 0 {
		return args, nil
	}
	return args[:at], args[at:]
}
