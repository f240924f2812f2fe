package ops

// Descriptor describes one operation for registry-driven dispatch.
// The serving layers use it to derive tool annotations and help text
// without duplicating per-operation knowledge.
type Descriptor struct {
	Name        string
	Description string
	ReadOnly    bool
	Destructive bool
}

// registry lists every operation the service implements, keyed by name.
var registry = map[string]Descriptor{
	"diff":          {Name: "diff", Description: "Show changes between commits, the index, and the working tree. Supports staged, name-only, stat, and untracked aggregation modes.", ReadOnly: true},
	"status":        {Name: "status", Description: "Show the working tree status: branch, staged, unstaged, untracked, and conflicted files.", ReadOnly: true},
	"log":           {Name: "log", Description: "List commits with author, date, and message, newest first.", ReadOnly: true},
	"show":          {Name: "show", Description: "Show a single commit: metadata plus its change summary.", ReadOnly: true},
	"blame":         {Name: "blame", Description: "Annotate each line of a file with the commit that last changed it.", ReadOnly: true},
	"describe":      {Name: "describe", Description: "Describe the current commit in terms of the nearest tag.", ReadOnly: true},
	"resolve":       {Name: "resolve", Description: "Resolve a revision expression to a full commit SHA.", ReadOnly: true},
	"ls-files":      {Name: "ls-files", Description: "List tracked or untracked files in the repository.", ReadOnly: true},
	"branch-list":   {Name: "branch-list", Description: "List local branches and mark the current one.", ReadOnly: true},
	"tag-list":      {Name: "tag-list", Description: "List tags.", ReadOnly: true},
	"stash-list":    {Name: "stash-list", Description: "List stash entries.", ReadOnly: true},
	"remote-list":   {Name: "remote-list", Description: "List configured remotes with their fetch URLs.", ReadOnly: true},
	"rebase-status": {Name: "rebase-status", Description: "Report whether a rebase, merge, or cherry-pick is in progress.", ReadOnly: true},
	"shortstat":     {Name: "shortstat", Description: "Report aggregate change counts without diff content.", ReadOnly: true},
	"add":           {Name: "add", Description: "Stage files for commit."},
	"commit":        {Name: "commit", Description: "Record staged changes as a new commit."},
	"reset":         {Name: "reset", Description: "Reset the index, and optionally the working tree, to a commit.", Destructive: true},
	"checkout":      {Name: "checkout", Description: "Switch branches or restore working tree files."},
	"branch-create": {Name: "branch-create", Description: "Create a branch."},
	"branch-delete": {Name: "branch-delete", Description: "Delete a branch.", Destructive: true},
	"merge":         {Name: "merge", Description: "Merge a branch into the current branch."},
	"cherry-pick":   {Name: "cherry-pick", Description: "Apply an existing commit on top of the current branch."},
	"revert":        {Name: "revert", Description: "Create a commit that undoes an existing commit."},
	"tag-create":    {Name: "tag-create", Description: "Create a tag."},
	"stash-push":    {Name: "stash-push", Description: "Stash working tree changes."},
	"stash-pop":     {Name: "stash-pop", Description: "Apply and drop the most recent stash entry."},
	"fetch":         {Name: "fetch", Description: "Download objects and refs from a remote."},
	"pull":          {Name: "pull", Description: "Fetch from a remote and integrate into the current branch."},
	"push":          {Name: "push", Description: "Update a remote with local commits."},
	"clean":         {Name: "clean", Description: "Report which untracked files a clean would remove (dry run only).", ReadOnly: true},
	"init":          {Name: "init", Description: "Create an empty repository."},
	"clone":         {Name: "clone", Description: "Clone a repository into a new directory."},
}

// Lookup returns the descriptor for an operation name.
func Lookup(name string) (Descriptor, bool) {
	d, ok := registry[name]
	return d, ok
}

// Catalog returns descriptors for every registered operation.
// Order is unspecified; callers sort as needed.
func Catalog() []Descriptor {
	out := make([]Descriptor, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	return out
}
