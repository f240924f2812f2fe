// Package output provides structured output and error handling for the
// gitdock CLI.
//
// The Printer is the primary interface for command output. It switches
// between human-readable and JSON formats based on the --json flag and TTY
// detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.WriteJSON(result)
//	printer.Error(err)
//
// In JSON mode errors are structured as {"error": "message", "code": N};
// in human mode they are styled with lipgloss and written to stderr.
//
// The package also defines the CLI exit codes and the ExitError type that
// carries them:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, unknown ref)
//	output.ExitSystemError // 2: System error (git failed, I/O error)
//	output.ExitConflict    // 3: Conflict (merge stopped on conflicts)
//
// FromGit maps classified git operation errors onto these codes so every
// command reports failures the same way.
package output
