package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitdock/gitdock/internal/ops"
	"github.com/gitdock/gitdock/internal/output"
)

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the working tree status",
		Long: `Show the branch, upstream divergence, and every pending change in the
working tree, grouped into staged, unstaged, untracked, and conflicted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newRuntimeEnv(cmd)
			if err != nil {
				return err
			}

			result, err := env.svc.Status(cmd.Context(), env.oc)
			if err != nil {
				return env.fail(err)
			}

			if env.printer.IsJSON() {
				return env.printer.WriteJSON(result)
			}
			printStatus(env, result)
			return nil
		},
	}
}

func printStatus(env *runtimeEnv, result *ops.StatusResult) {
	p := env.printer
	p.KeyValue("Branch", result.Branch)
	if result.Ahead > 0 || result.Behind > 0 {
		p.KeyValue("Upstream", fmt.Sprintf("ahead %d, behind %d", result.Ahead, result.Behind))
	}
	if result.Clean {
		p.Println("Working tree clean")
		return
	}

	printChangeSection(p, "Staged", result.Staged)
	printChangeSection(p, "Unstaged", result.Unstaged)
	printPathSection(p, "Untracked", result.Untracked)
	printPathSection(p, "Conflicted", result.Conflicted)
}

func printChangeSection(p *output.Printer, title string, changes []ops.FileChange) {
	if len(changes) == 0 {
		return
	}
	p.Section(title)
	rows := make([][]string, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, []string{c.Code, c.Path})
	}
	p.Table([]string{"STATE", "PATH"}, rows)
}

func printPathSection(p *output.Printer, title string, paths []string) {
	if len(paths) == 0 {
		return
	}
	p.Section(title)
	for _, path := range paths {
		p.Println(" ", path)
	}
}
