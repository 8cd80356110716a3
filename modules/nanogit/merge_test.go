package nanogit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antgroup/nanogit/modules/nanogit/content"
)

// S5: three-way merge, disjoint changes from both sides survive.
func TestScenarioThreeWayMergeDisjointChanges(t *testing.T) {
	r := Init("s5")
	r.PutWorkingAreaContent("/base.txt", []byte("base"))
	r.AddAll(true)
	base, err := r.CommitAll("base", "A", "A", true)
	require.NoError(t, err)

	r.Branch("feature")
	require.NoError(t, r.Checkout("feature", 0))

	r.PutWorkingAreaContent("/left.txt", []byte("left"))
	r.AddAll(true)
	left, err := r.CommitAll("left change", "A", "A", true)
	require.NoError(t, err)

	require.NoError(t, r.Checkout("master", 0))
	r.PutWorkingAreaContent("/right.txt", []byte("right"))
	r.AddAll(true)
	right, err := r.CommitAll("right change", "A", "A", true)
	require.NoError(t, err)

	ancestor, ok, err := r.CommonAncestor(left.Hash(), right.Hash())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, base.Hash(), ancestor)

	merged, err := r.Merge(left.Hash(), right.Hash(), "master", "merge", "A", "A")
	require.NoError(t, err)
	require.Len(t, merged.Parents, 2)
	assert.Equal(t, left.Hash(), merged.Parents[0])
	assert.Equal(t, right.Hash(), merged.Parents[1])

	snap := r.Committed.SnapshotAsMap()
	assert.Contains(t, snap, content.Path("/base.txt"))
	assert.Contains(t, snap, content.Path("/left.txt"))
	assert.Contains(t, snap, content.Path("/right.txt"))
}

func TestMergeConflictLastWriterWins(t *testing.T) {
	r := Init("merge-conflict")
	r.PutWorkingAreaContent("/f.txt", []byte("base"))
	r.AddAll(true)
	_, err := r.CommitAll("base", "A", "A", true)
	require.NoError(t, err)

	r.Branch("feature")
	require.NoError(t, r.Checkout("feature", 0))
	r.PutWorkingAreaContent("/f.txt", []byte("from-left"))
	r.AddAll(true)
	left, err := r.CommitAll("left", "A", "A", true)
	require.NoError(t, err)

	require.NoError(t, r.Checkout("master", 0))
	r.PutWorkingAreaContent("/f.txt", []byte("from-right"))
	r.AddAll(true)
	right, err := r.CommitAll("right", "A", "A", true)
	require.NoError(t, err)

	_, err = r.Merge(left.Hash(), right.Hash(), "master", "merge", "A", "A")
	require.NoError(t, err)

	got, ok := r.Committed.GetContent("/f.txt")
	require.True(t, ok)
	// b (right) is applied after a (left): b wins.
	assert.Equal(t, []byte("from-right"), got.Bytes())
}

func TestCommonAncestorDisjointHistoriesReturnsFalse(t *testing.T) {
	r1 := Init("disjoint-1")
	r1.PutWorkingAreaContent("/a.txt", []byte("a"))
	r1.AddAll(true)
	c1, err := r1.CommitAll("c1", "A", "A", true)
	require.NoError(t, err)

	r2 := Init("disjoint-2")
	r2.PutWorkingAreaContent("/b.txt", []byte("b"))
	r2.AddAll(true)
	c2, err := r2.CommitAll("c2", "A", "A", true)
	require.NoError(t, err)

	// Use r1's store for both hashes even though c2 was never inserted there
	// — CommonAncestor must surface the lookup failure, not find a false
	// ancestor.
	_, ok, err := r1.CommonAncestor(c1.Hash(), c2.Hash())
	assert.False(t, ok)
	assert.Error(t, err)
}
