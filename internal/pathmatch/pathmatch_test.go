package pathmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicateMatchesAnywhereInHierarchy(t *testing.T) {
	pred := Predicate("*.txt")
	assert.True(t, pred("a.txt"))
	assert.True(t, pred("dir/sub/b.txt"))
	assert.False(t, pred("dir/sub/b.go"))
}

func TestPredicateMatchesDirectoryContents(t *testing.T) {
	pred := Predicate("dir")
	assert.True(t, pred("dir/a.txt"))
	assert.True(t, pred("dir/sub/b.txt"))
	assert.False(t, pred("other/a.txt"))
}

func TestPredicateAnyUnionsPatterns(t *testing.T) {
	pred := PredicateAny("*.txt", "*.md")
	assert.True(t, pred("a.txt"))
	assert.True(t, pred("readme.md"))
	assert.False(t, pred("main.go"))
}
