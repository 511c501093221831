package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branchout/internal/models"
)

func sampleBranches() []models.Branch {
	return []models.Branch{
		{Name: "main", Kind: models.KindLocal, IsCurrent: true, Upstream: "origin/main"},
		{Name: "dev", Kind: models.KindLocal},
		{Name: "main", Kind: models.KindRemote, Remote: "origin"},
		{Name: "feature", Kind: models.KindRemote, Remote: "origin"},
	}
}

func TestBuildBoth(t *testing.T) {
	cat, err := Build(sampleBranches(), Both)
	require.NoError(t, err)
	assert.Equal(t, 4, cat.Len())
	assert.Equal(t, 0, cat.CurrentIndex())
}

func TestBuildLocalOnly(t *testing.T) {
	cat, err := Build(sampleBranches(), LocalOnly)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())
	for _, b := range cat.Entries() {
		assert.Equal(t, models.KindLocal, b.Kind)
	}
}

func TestBuildRemoteOnly(t *testing.T) {
	cat, err := Build(sampleBranches(), RemoteOnly)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())
	for _, b := range cat.Entries() {
		assert.Equal(t, models.KindRemote, b.Kind)
	}
	// The current (local) branch is simply absent, never force-included.
	assert.Equal(t, -1, cat.CurrentIndex())
}

func TestBuildComputesTracking(t *testing.T) {
	cat, err := Build(sampleBranches(), Both)
	require.NoError(t, err)

	entries := cat.Entries()
	require.Equal(t, "main", entries[2].Name)
	assert.True(t, entries[2].HasLocalTracking, "origin/main is tracked by main")
	assert.False(t, entries[3].HasLocalTracking, "origin/feature has no tracking branch")
}

func TestBuildPreservesOrder(t *testing.T) {
	cat, err := Build(sampleBranches(), Both)
	require.NoError(t, err)

	names := make([]string, 0, cat.Len())
	for _, b := range cat.Entries() {
		names = append(names, b.Ref())
	}
	assert.Equal(t, []string{"main", "dev", "origin/main", "origin/feature"}, names)
}

func TestBuildSameNameStaysDistinct(t *testing.T) {
	cat, err := Build(sampleBranches(), Both)
	require.NoError(t, err)

	var mains int
	for _, b := range cat.Entries() {
		if b.Name == "main" {
			mains++
		}
	}
	assert.Equal(t, 2, mains, "local and remote main are separate rows")
}

func TestBuildEmpty(t *testing.T) {
	locals := []models.Branch{{Name: "main", Kind: models.KindLocal, IsCurrent: true}}

	_, err := Build(locals, RemoteOnly)
	var emptyErr *EmptyError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, RemoteOnly, emptyErr.Visibility)
	assert.Equal(t, "no remote branches to show", err.Error())

	_, err = Build(nil, Both)
	assert.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "no branches to show", err.Error())
}
