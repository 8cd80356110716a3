// Package refs implements the named reference collections (heads, tags)
// and the HEAD symbolic pointer.
package refs

import (
	"sort"

	"github.com/antgroup/nanogit/modules/plumbing"
)

// Collection is an ordered set of named references, used for both the
// heads and tags namespaces.
type Collection struct {
	byName map[plumbing.ReferenceName]*plumbing.Reference
	order  []plumbing.ReferenceName
}

func NewCollection() *Collection {
	return &Collection{byName: make(map[plumbing.ReferenceName]*plumbing.Reference)}
}

// Update creates name if absent, or overwrites its hash if present.
func (c *Collection) Update(name plumbing.ReferenceName, hash plumbing.Hash) {
	if _, ok := c.byName[name]; !ok {
		c.order = append(c.order, name)
	}
	c.byName[name] = plumbing.NewReference(name, hash)
}

func (c *Collection) Get(name plumbing.ReferenceName) (*plumbing.Reference, bool) {
	r, ok := c.byName[name]
	return r, ok
}

func (c *Collection) Delete(name plumbing.ReferenceName) {
	if _, ok := c.byName[name]; !ok {
		return
	}
	delete(c.byName, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Names returns every reference name, in the order first created.
func (c *Collection) Names() []plumbing.ReferenceName {
	out := make([]plumbing.ReferenceName, len(c.order))
	copy(out, c.order)
	return out
}

// References returns every reference sorted by name, for deterministic
// listings.
func (c *Collection) References() plumbing.ReferenceSlice {
	out := make(plumbing.ReferenceSlice, 0, len(c.byName))
	for _, r := range c.byName {
		out = append(out, r)
	}
	sort.Sort(out)
	return out
}

// ForEach visits every reference in creation order, stopping early without
// error if fn returns plumbing.ErrStop.
func (c *Collection) ForEach(fn func(ref *plumbing.Reference) error) error {
	for _, name := range c.order {
		if err := fn(c.byName[name]); err != nil {
			if err == plumbing.ErrStop {
				return nil
			}
			return err
		}
	}
	return nil
}

// HEAD is the symbolic pointer to the current branch. ReferenceName holds
// whatever name was most recently passed to SymbolicRef — including,
// should a caller do something unusual, the literal string "HEAD" itself,
// which resolve_reference treats as a cycle and refuses to follow.
type HEAD struct {
	ReferenceName string
	set           bool
}

// SymbolicRef points HEAD at name, creating HEAD on first call.
func (h *HEAD) SymbolicRef(name string) {
	h.ReferenceName = name
	h.set = true
}

// IsSet reports whether SymbolicRef has ever been called.
func (h *HEAD) IsSet() bool { return h.set }
