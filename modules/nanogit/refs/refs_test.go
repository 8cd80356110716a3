package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antgroup/nanogit/modules/plumbing"
)

func TestCollectionUpdateCreatesOrOverwrites(t *testing.T) {
	c := NewCollection()
	h1 := plumbing.NewHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	h2 := plumbing.NewHash("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	c.Update("master", h1)
	got, ok := c.Get("master")
	require.True(t, ok)
	assert.Equal(t, h1, got.Hash())

	c.Update("master", h2)
	got, ok = c.Get("master")
	require.True(t, ok)
	assert.Equal(t, h2, got.Hash())

	assert.Equal(t, []plumbing.ReferenceName{"master"}, c.Names())
}

func TestCollectionDeleteRemovesFromOrder(t *testing.T) {
	c := NewCollection()
	c.Update("a", plumbing.ZeroHash)
	c.Update("b", plumbing.ZeroHash)
	c.Delete("a")

	assert.Equal(t, []plumbing.ReferenceName{"b"}, c.Names())
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCollectionForEachStopsOnErrStop(t *testing.T) {
	c := NewCollection()
	c.Update("a", plumbing.ZeroHash)
	c.Update("b", plumbing.ZeroHash)
	c.Update("c", plumbing.ZeroHash)

	var visited []plumbing.ReferenceName
	err := c.ForEach(func(ref *plumbing.Reference) error {
		visited = append(visited, ref.Name())
		if ref.Name() == "b" {
			return plumbing.ErrStop
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []plumbing.ReferenceName{"a", "b"}, visited)
}

func TestCollectionForEachPropagatesOtherErrors(t *testing.T) {
	c := NewCollection()
	c.Update("a", plumbing.ZeroHash)

	sentinel := assert.AnError
	err := c.ForEach(func(ref *plumbing.Reference) error {
		return sentinel
	})
	assert.Equal(t, sentinel, err)
}

func TestHEADSymbolicRefSetsOnFirstCall(t *testing.T) {
	var head HEAD
	assert.False(t, head.IsSet())

	head.SymbolicRef("master")
	assert.True(t, head.IsSet())
	assert.Equal(t, "master", head.ReferenceName)
}
