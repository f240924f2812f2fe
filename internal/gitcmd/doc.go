// Package gitcmd builds, executes, and normalizes git invocations for gitdock.
//
// This package is the lowest layer of the operation stack. It knows how to
// assemble an argument vector that obeys git's grammar, run the git binary
// with a working directory and a cancellable context, and turn its
// heterogeneous textual output into structured values.
//
// # Building Commands
//
// Build assembles an argument vector with a fixed segment order:
//
//	spec := gitcmd.Build("diff", []string{"--cached"}, []string{"HEAD~1"}, []string{"docs/"})
//	spec.Argv() // ["diff", "--cached", "HEAD~1", "--", "docs/"]
//
// # Running Commands
//
// A Runner executes a Spec and returns an Outcome. Nonzero exits never discard
// output: the returned *ExitError carries the full Outcome, because some
// invocations (diff --no-index in particular) use a nonzero exit as a normal
// signal rather than a failure. The caller decides what the exit means.
//
//	out, err := runner.Run(ctx, dir, spec)
//
// # Parsing Output
//
// ParseStat reads `git diff --stat` style summaries into Stats, tolerating
// empty and malformed input:
//
//	stats := gitcmd.ParseStat(out.Stdout)
//
// # Classifying Failures
//
// Classify maps a failed invocation's diagnostics onto a closed taxonomy and
// attaches the operation name:
//
//	return nil, gitcmd.Classify("diff", err)
package gitcmd
