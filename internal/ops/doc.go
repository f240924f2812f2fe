// Package ops implements the gitdock operation orchestrators.
//
// Each operation is a method on Service that sequences one or more git
// invocations through a gitcmd.Runner, normalizes the output, and returns a
// typed result. Operations are pure orchestration: they hold no state between
// calls and never write outside the repository git already writes to.
//
// A name-keyed registry describes every operation (read-only vs write,
// destructive or not) so the MCP layer and the CLI can expose the same family
// uniformly:
//
//	desc, ok := ops.Lookup("diff")
//
// The diff orchestrator is the most involved member: it aggregates tracked
// and untracked changes across multiple calls, recovering the payload of
// diff --no-index invocations that signal "inputs differ" through a nonzero
// exit. See Service.Diff.
package ops
