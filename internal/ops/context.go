package ops

// Context identifies the repository and caller for a single operation call.
// It is supplied by the serving layer, immutable for the duration of the
// call, and never mutated by an orchestrator. Meta is opaque correlation
// metadata passed through unchanged for caller-side tracing.
type Context struct {
	Dir    string
	Tenant string
	Meta   map[string]string
}
