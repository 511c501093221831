package catalog

// The catalog is the immutable, visibility-filtered list of branches
// the picker navigates. It is built once per invocation from a fresh
// adapter query and never mutated afterwards.

import (
	"branchout/internal/models"
)

// Visibility selects which branch kinds the catalog keeps.
type Visibility int

const (
	Both Visibility = iota
	LocalOnly
	RemoteOnly
)

func (v Visibility) String() string {
	switch v {
	case LocalOnly:
		return "local"
	case RemoteOnly:
		return "remote"
	default:
		return "all"
	}
}

// EmptyError reports that the visibility filter left nothing to show.
// It is an informational condition, not a crash.
type EmptyError struct {
	Visibility Visibility
}

func (e *EmptyError) Error() string {
	if e.Visibility == Both {
		return "no branches to show"
	}
	return "no " + e.Visibility.String() + " branches to show"
}

// Catalog is an ordered, immutable sequence of branches.
type Catalog struct {
	entries []models.Branch
}

// Build filters branches by visibility and computes the
// HasLocalTracking flag on remote entries from the locals' upstream
// metadata. Input order is preserved. Pure; no side effects.
func Build(branches []models.Branch, v Visibility) (Catalog, error) {
	tracked := make(map[string]bool)
	for _, b := range branches {
		if b.Kind == models.KindLocal && b.Upstream != "" {
			tracked[b.Upstream] = true
		}
	}

	var entries []models.Branch
	for _, b := range branches {
		switch v {
		case LocalOnly:
			if b.Kind != models.KindLocal {
				continue
			}
		case RemoteOnly:
			if b.Kind != models.KindRemote {
				continue
			}
		}
		if b.Kind == models.KindRemote {
			b.HasLocalTracking = tracked[b.Ref()]
		}
		entries = append(entries, b)
	}

	if len(entries) == 0 {
		return Catalog{}, &EmptyError{Visibility: v}
	}
	return Catalog{entries: entries}, nil
}

func (c Catalog) Entries() []models.Branch {
	return c.entries
}

func (c Catalog) Len() int {
	return len(c.entries)
}

// CurrentIndex returns the position of the checked-out branch, or -1
// when the visibility filter excludes it.
func (c Catalog) CurrentIndex() int {
	for i, b := range c.entries {
		if b.IsCurrent {
			return i
		}
	}
	return -1
}
