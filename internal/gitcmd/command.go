package gitcmd

// Spec is a fully assembled git invocation: a subcommand plus its arguments.
// Specs are value objects, built fresh per call and never cached.
type Spec struct {
	Subcommand string
	Args       []string
}

// Build assembles the argument vector for a git subcommand.
//
// Segment order is fixed: flags, then refs, then "--" followed by paths.
// The "--" separator appears only when paths are present, and paths are
// always the final segment. Caller-supplied order within each segment is
// preserved. Build does no semantic validation of the flags.
func Build(subcommand string, flags, refs, paths []string) Spec {
	args := make([]string, 0, len(flags)+len(refs)+len(paths)+1)
	args = append(args, flags...)
	args = append(args, refs...)
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	return Spec{Subcommand: subcommand, Args: args}
}

// Argv returns the complete argument list passed to the git binary.
func (s Spec) Argv() []string {
	argv := make([]string, 0, len(s.Args)+1)
	argv = append(argv, s.Subcommand)
	argv = append(argv, s.Args...)
	return argv
}

// String renders the invocation as it would appear on a command line.
func (s Spec) String() string {
	out := "git " + s.Subcommand
	for _, a := range s.Args {
		out += " " + a
	}
	return out
}
