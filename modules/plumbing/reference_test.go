package plumbing

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceStringFormat(t *testing.T) {
	h := NewHash("0123456789abcdef0123456789abcdef01234567")
	ref := NewReference("master", h)
	assert.Equal(t, h.String()+" master", ref.String())
	assert.Equal(t, ReferenceName("master"), ref.Name())
	assert.Equal(t, h, ref.Hash())
}

func TestReferenceSliceSortsByName(t *testing.T) {
	a := NewReference("b-branch", ZeroHash)
	b := NewReference("a-branch", ZeroHash)
	refs := ReferenceSlice{a, b}
	sort.Sort(refs)
	assert.Equal(t, ReferenceName("a-branch"), refs[0].Name())
	assert.Equal(t, ReferenceName("b-branch"), refs[1].Name())
}
