package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branchout/internal/git"
	"branchout/internal/models"
)

// fakeClient records checkout calls and serves canned tracking data.
type fakeClient struct {
	tracking    map[string][]string
	checkedOut  []string
	created     [][2]string
	checkoutErr error
}

func (f *fakeClient) CheckoutLocal(name string) error {
	if f.checkoutErr != nil {
		return f.checkoutErr
	}
	f.checkedOut = append(f.checkedOut, name)
	return nil
}

func (f *fakeClient) CheckoutNewTracking(local, remoteRef string) error {
	if f.checkoutErr != nil {
		return f.checkoutErr
	}
	f.created = append(f.created, [2]string{local, remoteRef})
	return nil
}

func (f *fakeClient) FindLocalTracking(remoteRef string) ([]string, error) {
	return f.tracking[remoteRef], nil
}

func TestResolveLocal(t *testing.T) {
	c := &fakeClient{}

	out, err := Resolve(c, models.Branch{Name: "dev", Kind: models.KindLocal})
	require.NoError(t, err)

	assert.Equal(t, Outcome{Branch: "dev"}, out)
	assert.Equal(t, []string{"dev"}, c.checkedOut)
	assert.Empty(t, c.created, "a local checkout must not create branches")
}

func TestResolveRemoteCreatesTracking(t *testing.T) {
	c := &fakeClient{tracking: map[string][]string{}}

	out, err := Resolve(c, models.Branch{Name: "feature", Kind: models.KindRemote, Remote: "origin"})
	require.NoError(t, err)

	assert.Equal(t, Outcome{Branch: "feature", Created: true}, out)
	require.Len(t, c.created, 1)
	assert.Equal(t, [2]string{"feature", "origin/feature"}, c.created[0])
	assert.Empty(t, c.checkedOut)
}

func TestResolveRemoteReusesTracking(t *testing.T) {
	c := &fakeClient{tracking: map[string][]string{
		"origin/feature": {"my-feature"},
	}}

	out, err := Resolve(c, models.Branch{Name: "feature", Kind: models.KindRemote, Remote: "origin"})
	require.NoError(t, err)

	assert.Equal(t, Outcome{Branch: "my-feature"}, out)
	assert.Equal(t, []string{"my-feature"}, c.checkedOut)
	assert.Empty(t, c.created, "an existing tracking branch must be reused, not duplicated")
}

func TestResolveRemoteAmbiguousTracking(t *testing.T) {
	c := &fakeClient{tracking: map[string][]string{
		"origin/feature": {"feature", "feature-copy"},
	}}

	_, err := Resolve(c, models.Branch{Name: "feature", Kind: models.KindRemote, Remote: "origin"})

	var ambErr *AmbiguousTrackingError
	require.ErrorAs(t, err, &ambErr)
	assert.Equal(t, "origin/feature", ambErr.RemoteRef)
	assert.Equal(t, []string{"feature", "feature-copy"}, ambErr.Locals)
	assert.Empty(t, c.checkedOut, "ambiguity must not be silently resolved")
	assert.Empty(t, c.created)
}

func TestResolvePassesCheckoutErrorThrough(t *testing.T) {
	wantErr := &git.CheckoutError{Ref: "dev", Output: "error: your local changes would be overwritten"}
	c := &fakeClient{checkoutErr: wantErr}

	_, err := Resolve(c, models.Branch{Name: "dev", Kind: models.KindLocal})

	require.Error(t, err)
	assert.Equal(t, "error: your local changes would be overwritten", err.Error())
}
