// Package store implements the content-addressed object store: the single
// map every Blob, Tree and Commit in a repo is idempotently inserted into,
// plus the two-level hash-prefix index (first two hex characters, then the
// remaining 38) a real loose-object store would use as its fan-out
// directory layout — kept here purely as an in-memory index structure.
//
// Store is not safe for concurrent use. Each Repo owns one Store; run
// multiple repos on separate goroutines rather than sharing one.
package store

import (
	"github.com/antgroup/nanogit/modules/nanogit/object"
	"github.com/antgroup/nanogit/modules/plumbing"
)

// Store is the object store: total, unordered, content-addressed. All
// operations are total — none of them fail.
type Store struct {
	primary map[plumbing.Hash]object.RepoObject
	prefix  map[string]map[string]plumbing.Hash
}

func New() *Store {
	return &Store{
		primary: make(map[plumbing.Hash]object.RepoObject),
		prefix:  make(map[string]map[string]plumbing.Hash),
	}
}

// Put inserts obj under obj.Hash(), unless a value is already present for
// that hash — the first writer wins, which is what makes hash_object_write
// idempotent.
func (s *Store) Put(obj object.RepoObject) {
	h := obj.Hash()
	if _, ok := s.primary[h]; ok {
		return
	}
	s.primary[h] = obj

	p, suf := h.Prefix(), h.Suffix()
	bucket, ok := s.prefix[p]
	if !ok {
		bucket = make(map[string]plumbing.Hash)
		s.prefix[p] = bucket
	}
	bucket[suf] = h
}

// Get returns the object stored under hash, or (nil, false).
func (s *Store) Get(hash plumbing.Hash) (object.RepoObject, bool) {
	obj, ok := s.primary[hash]
	return obj, ok
}

// Has reports whether hash is present without returning the object.
func (s *Store) Has(hash plumbing.Hash) bool {
	_, ok := s.primary[hash]
	return ok
}

// Remove deletes hash from both the primary map and the prefix index,
// pruning the prefix bucket if it becomes empty.
func (s *Store) Remove(hash plumbing.Hash) {
	delete(s.primary, hash)

	p, suf := hash.Prefix(), hash.Suffix()
	if bucket, ok := s.prefix[p]; ok {
		delete(bucket, suf)
		if len(bucket) == 0 {
			delete(s.prefix, p)
		}
	}
}

// Clear empties both structures.
func (s *Store) Clear() {
	s.primary = make(map[plumbing.Hash]object.RepoObject)
	s.prefix = make(map[string]map[string]plumbing.Hash)
}

// Len returns the number of distinct objects currently stored.
func (s *Store) Len() int {
	return len(s.primary)
}
