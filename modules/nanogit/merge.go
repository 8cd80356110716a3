package nanogit

import (
	"bytes"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/antgroup/nanogit/modules/nanogit/content"
	"github.com/antgroup/nanogit/modules/nanogit/object"
	"github.com/antgroup/nanogit/modules/plumbing"
)

// ChangeKind classifies one path's difference between a commit and its
// common ancestor.
type ChangeKind int

const (
	Added ChangeKind = iota
	Deleted
	Changed
)

// PathDiff is one path's change relative to a baseline snapshot.
type PathDiff struct {
	Path content.Path
	Kind ChangeKind
	Data []byte // unset (nil) for Deleted
}

// ancestorHashes returns the DFS pre-order, deduplicated set of hashes
// reachable from start by parent edges — start itself included.
func (r *Repo) ancestorHashes(start plumbing.Hash) (*linkedhashset.Set, error) {
	commits, err := r.RevList(start)
	if err != nil {
		return nil, err
	}
	set := linkedhashset.New()
	for _, c := range commits {
		set.Add(c.Hash())
	}
	return set, nil
}

// CommonAncestor finds the first hash in a's ancestor set (in DFS
// pre-order) that also appears in b's ancestor set. Returns (zero, false)
// if the two histories are disjoint.
func (r *Repo) CommonAncestor(a, b plumbing.Hash) (plumbing.Hash, bool, error) {
	aCommits, err := r.RevList(a)
	if err != nil {
		return plumbing.Hash{}, false, err
	}
	bSet, err := r.ancestorHashes(b)
	if err != nil {
		return plumbing.Hash{}, false, err
	}
	for _, c := range aCommits {
		if bSet.Contains(c.Hash()) {
			return c.Hash(), true, nil
		}
	}
	return plumbing.Hash{}, false, nil
}

// diffAgainst checks out commitHash, snapshots the committed area, and
// returns one PathDiff per path that differs from baseline (Added if
// absent from baseline, Changed if present but byte-unequal) plus one
// Deleted PathDiff per baseline path absent from the new snapshot.
func (r *Repo) diffAgainst(commitHash string, baseline map[content.Path][]byte) ([]PathDiff, error) {
	if err := r.Checkout(commitHash, 0); err != nil {
		return nil, err
	}
	snapshot := r.Committed.SnapshotAsMap()

	var diffs []PathDiff
	for path, data := range snapshot {
		base, ok := baseline[path]
		switch {
		case !ok:
			diffs = append(diffs, PathDiff{Path: path, Kind: Added, Data: data})
		case !bytes.Equal(base, data):
			diffs = append(diffs, PathDiff{Path: path, Kind: Changed, Data: data})
		}
	}
	for path := range baseline {
		if _, ok := snapshot[path]; !ok {
			diffs = append(diffs, PathDiff{Path: path, Kind: Deleted})
		}
	}
	return diffs, nil
}

// applyDiff applies one side's diff to the working area: Added/Changed
// write bytes, Deleted removes the path.
func (r *Repo) applyDiff(diffs []PathDiff) {
	for _, d := range diffs {
		switch d.Kind {
		case Added, Changed:
			r.Working.PutContent(d.Path, d.Data)
		case Deleted:
			r.Working.RemoveContent(d.Path)
		}
	}
}

// Merge performs a three-way merge of commits a and b into branch dest:
// it finds their common ancestor, diffs each side against it, checks out
// dest, applies a's diff then b's diff (b wins on overlapping paths, a
// last-writer-wins conflict policy — no conflict markers are produced),
// and commits the result onto dest.
func (r *Repo) Merge(a, b plumbing.Hash, dest, message, author, committer string) (*object.Commit, error) {
	ancestor, ok, err := r.CommonAncestor(a, b)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ErrCommitNotFound{Name: "common ancestor of " + a.String() + " and " + b.String()}
	}

	if err := r.Checkout(ancestor.String(), 0); err != nil {
		return nil, err
	}
	baseline := r.Committed.SnapshotAsMap()

	diffA, err := r.diffAgainst(a.String(), baseline)
	if err != nil {
		return nil, err
	}
	diffB, err := r.diffAgainst(b.String(), baseline)
	if err != nil {
		return nil, err
	}

	if err := r.Checkout(dest, 0); err != nil {
		return nil, err
	}
	r.applyDiff(diffA)
	r.applyDiff(diffB)

	r.AddAll(true)
	return r.CommitAllUseCommitParentHashes(message, author, committer, true, a, b)
}
