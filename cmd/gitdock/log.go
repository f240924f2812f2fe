package main

import (
	"github.com/spf13/cobra"

	"github.com/gitdock/gitdock/internal/ops"
)

// newLogCmd creates the log command.
func newLogCmd() *cobra.Command {
	var (
		maxCount int
		author   string
		since    string
		until    string
	)

	cmd := &cobra.Command{
		Use:   "log [ref] [-- path...]",
		Short: "List commits as structured records",
		Long: `List commit history, newest first, parsed into structured records.

Starts from HEAD unless a ref is given. Paths after -- restrict the history
to commits touching those paths.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newRuntimeEnv(cmd)
			if err != nil {
				return err
			}

			refs, paths := splitDashArgs(cmd, args)
			opts := ops.LogOptions{
				MaxCount: maxCount,
				Author:   author,
				Since:    since,
				Until:    until,
				Paths:    paths,
			}
			if len(refs) > 0 {
				opts.Ref = refs[0]
			}

			commits, err := env.svc.Log(cmd.Context(), env.oc, opts)
			if err != nil {
				return env.fail(err)
			}

			if env.printer.IsJSON() {
				return env.printer.WriteJSON(commits)
			}
			rows := make([][]string, 0, len(commits))
			for _, c := range commits {
				rows = append(rows, []string{
					c.Short,
					c.Date.Format("2006-01-02"),
					c.Author,
					c.Subject,
				})
			}
			env.printer.Table([]string{"COMMIT", "DATE", "AUTHOR", "SUBJECT"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxCount, "max-count", "n", 20, "Maximum number of commits")
	cmd.Flags().StringVar(&author, "author", "", "Filter by author")
	cmd.Flags().StringVar(&since, "since", "", "Only commits after this date")
	cmd.Flags().StringVar(&until, "until", "", "Only commits before this date")

	return cmd
}
