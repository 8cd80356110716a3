package nanogit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antgroup/nanogit/internal/pathmatch"
)

func TestCheckoutRevisionOffsetWalksParentChain(t *testing.T) {
	r := Init("checkout-offset")
	r.PutWorkingAreaContent("/a.txt", []byte("1"))
	r.AddAll(true)
	c1, err := r.CommitAll("c1", "A", "A", true)
	require.NoError(t, err)

	r.PutWorkingAreaContent("/a.txt", []byte("2"))
	r.AddAll(true)
	_, err = r.CommitAll("c2", "A", "A", true)
	require.NoError(t, err)

	r.PutWorkingAreaContent("/a.txt", []byte("3"))
	r.AddAll(true)
	c3, err := r.CommitAll("c3", "A", "A", true)
	require.NoError(t, err)

	require.NoError(t, r.Checkout(c3.Hash().String(), -2))

	got, ok := r.Committed.GetContent("/a.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("1"), got.Bytes())

	_, ok = r.Database.Store.Get(c1.Hash())
	require.True(t, ok)
}

func TestCheckoutPositiveOffsetBeyondRootFails(t *testing.T) {
	r := Init("checkout-offset-fail")
	r.PutWorkingAreaContent("/a.txt", []byte("1"))
	r.AddAll(true)
	c1, err := r.CommitAll("c1", "A", "A", true)
	require.NoError(t, err)

	err = r.Checkout(c1.Hash().String(), 1)
	assert.True(t, IsErrCommitsNotFound(err))
}

func TestCheckoutByDetachedHashDoesNotUpdateHeads(t *testing.T) {
	r := Init("checkout-detached")
	r.PutWorkingAreaContent("/a.txt", []byte("1"))
	r.AddAll(true)
	c1, err := r.CommitAll("c1", "A", "A", true)
	require.NoError(t, err)

	require.NoError(t, r.Checkout(c1.Hash().String(), 0))

	name, ok := r.CurrentBranchName()
	require.True(t, ok)
	assert.Equal(t, c1.Hash().String(), name)

	_, found := r.Database.Heads.Get("master")
	assert.True(t, found)
}

func TestCheckoutPathRestoresSinglePath(t *testing.T) {
	r := Init("checkout-path")
	r.PutWorkingAreaContent("/a.txt", []byte("committed"))
	r.AddAll(true)
	_, err := r.CommitAll("c1", "A", "A", true)
	require.NoError(t, err)

	r.PutWorkingAreaContent("/a.txt", []byte("dirty"))
	require.NoError(t, r.CheckoutPath("/a.txt"))

	got, ok := r.GetWorkingAreaContent("/a.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("committed"), got)
}

func TestCheckoutPatternRestoresMatchingPaths(t *testing.T) {
	r := Init("checkout-pattern")
	r.PutWorkingAreaContent("/keep/a.txt", []byte("A"))
	r.PutWorkingAreaContent("/skip/b.txt", []byte("B"))
	r.AddAll(true)
	_, err := r.CommitAll("c1", "A", "A", true)
	require.NoError(t, err)

	r.PutWorkingAreaContent("/keep/a.txt", []byte("dirty-a"))
	r.PutWorkingAreaContent("/skip/b.txt", []byte("dirty-b"))

	require.NoError(t, r.CheckoutPattern(func(p string) bool {
		return p == "/keep/a.txt"
	}))

	got, ok := r.GetWorkingAreaContent("/keep/a.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("A"), got)

	got, ok = r.GetWorkingAreaContent("/skip/b.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("dirty-b"), got)
}

func TestCheckoutPatternWithGlobPredicate(t *testing.T) {
	r := Init("checkout-pattern-glob")
	r.PutWorkingAreaContent("/src/a.go", []byte("A"))
	r.PutWorkingAreaContent("/docs/readme.md", []byte("D"))
	r.AddAll(true)
	_, err := r.CommitAll("c1", "A", "A", true)
	require.NoError(t, err)

	r.PutWorkingAreaContent("/src/a.go", []byte("dirty"))
	r.PutWorkingAreaContent("/docs/readme.md", []byte("dirty"))

	require.NoError(t, r.CheckoutPattern(pathmatch.Predicate("*.go")))

	got, ok := r.GetWorkingAreaContent("/src/a.go")
	require.True(t, ok)
	assert.Equal(t, []byte("A"), got)

	got, ok = r.GetWorkingAreaContent("/docs/readme.md")
	require.True(t, ok)
	assert.Equal(t, []byte("dirty"), got)
}
