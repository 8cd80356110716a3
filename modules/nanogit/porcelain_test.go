package nanogit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antgroup/nanogit/modules/nanogit/content"
	"github.com/antgroup/nanogit/modules/nanogit/object"
)

// S1: new + commit.
func TestScenarioNewAndCommit(t *testing.T) {
	r := Init("s1")
	r.PutWorkingAreaContent("/path.txt", []byte("Hello World"))
	r.AddAll(true)

	c, err := r.CommitAll("Commit", "A <a@example.com>", "A <a@example.com>", true)
	require.NoError(t, err)

	assert.Empty(t, c.Parents)

	commits, err := r.RevList(c.Hash())
	require.NoError(t, err)
	assert.Len(t, commits, 1)

	got, ok := r.Committed.GetContent("/path.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("Hello World"), got.Bytes())
	assert.True(t, r.Committed.Frozen())
}

// S2: modify + commit chain.
func TestScenarioModifyAndCommitChain(t *testing.T) {
	r := Init("s2")
	r.PutWorkingAreaContent("/path.txt", []byte("Hello World"))
	r.AddAll(true)
	c1, err := r.CommitAll("Commit", "A", "A", true)
	require.NoError(t, err)

	r.PutWorkingAreaContent("/path.txt", []byte("Hello Again World"))
	r.AddAll(true)
	c2, err := r.CommitAll("Commit", "A", "A", true)
	require.NoError(t, err)

	require.Len(t, c2.Parents, 1)
	assert.Equal(t, c1.Hash(), c2.Parents[0])

	commits, err := r.RevList(c2.Hash())
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, c2.Hash(), commits[0].Hash())
	assert.Equal(t, c1.Hash(), commits[1].Hash())

	ref, ok := r.Database.Heads.Get("master")
	require.True(t, ok)
	assert.Equal(t, c2.Hash(), ref.Hash())
}

// S3: delete + commit.
func TestScenarioDeleteAndCommit(t *testing.T) {
	r := Init("s3")
	r.PutWorkingAreaContent("/path.txt", []byte("Hello World"))
	r.AddAll(true)
	_, err := r.CommitAll("Commit", "A", "A", true)
	require.NoError(t, err)

	r.Working.RemoveContent("/path.txt")
	r.Staging.RemoveContent("/path.txt")
	r.AddAll(true)
	c3, err := r.CommitAll("Commit", "A", "A", true)
	require.NoError(t, err)

	snap := r.Committed.SnapshotAsMap()
	assert.Empty(t, snap)

	obj, ok := r.Database.Store.Get(c3.Tree)
	require.True(t, ok)
	tree, ok := obj.(*object.Tree)
	require.True(t, ok)
	assert.Empty(t, tree.Entries)
}

// S4: branch + checkout.
func TestScenarioBranchAndCheckout(t *testing.T) {
	r := Init("s4")
	r.PutWorkingAreaContent("/path.txt", []byte("Hello World"))
	r.AddAll(true)
	_, err := r.CommitAll("Commit", "A", "A", true)
	require.NoError(t, err)

	r.Branch("Branch1")
	require.NoError(t, r.Checkout("Branch1", 0))

	r.PutWorkingAreaContent("/path.txt", []byte("Modified"))
	r.AddAll(true)
	cb, err := r.CommitAll("Commit", "A", "A", true)
	require.NoError(t, err)

	name, ok := r.CurrentBranchName()
	require.True(t, ok)
	assert.Equal(t, "Branch1", name)

	ref, ok := r.Database.Heads.Get("Branch1")
	require.True(t, ok)
	assert.Equal(t, cb.Hash(), ref.Hash())

	masterRef, ok := r.Database.Heads.Get("master")
	require.True(t, ok)
	assert.NotEqual(t, cb.Hash(), masterRef.Hash())
}

// S6: idempotent object store.
func TestScenarioIdempotentObjectStore(t *testing.T) {
	r := Init("s6")
	h1 := r.HashObjectWriteBlob([]byte("same payload"))
	h2 := r.HashObjectWriteBlob([]byte("same payload"))

	assert.Equal(t, h1, h2)
	assert.Equal(t, 1, r.Database.Store.Len())
}

func TestCheckoutFidelityInvariant(t *testing.T) {
	r := Init("checkout-fidelity")
	r.PutWorkingAreaContent("/a.txt", []byte("A"))
	r.PutWorkingAreaContent("/dir/b.txt", []byte("B"))
	r.AddAll(true)
	_, err := r.CommitAll("Commit", "A", "A", true)
	require.NoError(t, err)

	require.NoError(t, r.Checkout("HEAD", 0))

	for _, p := range []content.Path{"/a.txt", "/dir/b.txt"} {
		w, ok := r.Working.GetContent(p)
		require.True(t, ok)
		c, ok := r.Committed.GetContent(p)
		require.True(t, ok)
		assert.Equal(t, c.Bytes(), w.Bytes())
	}
}

func TestBranchRejectsInvalidName(t *testing.T) {
	r := Init("branch-invalid")
	r.PutWorkingAreaContent("/a.txt", []byte("A"))
	r.AddAll(true)
	_, err := r.CommitAll("c1", "A", "A", true)
	require.NoError(t, err)

	r.Branch("-bad-name")

	_, ok := r.Database.Heads.Get("-bad-name")
	assert.False(t, ok)
}

func TestListBranchesRespectsLimit(t *testing.T) {
	r := Init("list-branches")
	r.PutWorkingAreaContent("/a.txt", []byte("A"))
	r.AddAll(true)
	_, err := r.CommitAll("c1", "A", "A", true)
	require.NoError(t, err)

	r.Branch("one")
	r.Branch("two")
	r.Branch("three")

	all := r.ListBranches(0)
	assert.Len(t, all, 4) // master + one + two + three

	limited := r.ListBranches(2)
	assert.Len(t, limited, 2)
}

func TestFreezeSafetyInvariant(t *testing.T) {
	r := Init("freeze-safety")
	r.PutWorkingAreaContent("/a.txt", []byte("A"))
	r.AddAll(true)
	_, err := r.CommitAll("Commit", "A", "A", true)
	require.NoError(t, err)

	err = r.Committed.PutContent("/new.txt", []byte("x"))
	assert.True(t, content.IsErrImmutableContentModified(err))
}
