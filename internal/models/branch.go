package models

// Kind distinguishes local branches from remote-tracking branches.
type Kind int

const (
	KindLocal Kind = iota
	KindRemote
)

// Branch is a single catalog entry. Local and remote branches with the
// same short name are distinct entries, never merged.
type Branch struct {
	Name      string // short name, remote prefix stripped for remote branches
	Kind      Kind
	Remote    string // remote name, e.g. "origin"; set only for remote branches
	IsCurrent bool   // the branch currently checked out; local branches only
	Upstream  string // configured upstream ref, e.g. "origin/main"; local branches only

	// HasLocalTracking is computed by the catalog: true when some local
	// branch has this remote branch as its upstream.
	HasLocalTracking bool
}

// Ref returns the fully-qualified reference used for git commands:
// the plain name for locals, "remote/name" for remotes.
func (b Branch) Ref() string {
	if b.Kind == KindRemote {
		return b.Remote + "/" + b.Name
	}
	return b.Name
}

// DisplayName is the name shown in the picker and matched by the
// filter query. The remote prefix is rendered separately.
func (b Branch) DisplayName() string {
	return b.Name
}
