package nanogit

import (
	"time"

	"github.com/antgroup/nanogit/modules/nanogit/content"
	"github.com/antgroup/nanogit/modules/nanogit/object"
	"github.com/antgroup/nanogit/modules/plumbing"
)

// PutWorkingAreaContent is a thin facade over the working area.
func (r *Repo) PutWorkingAreaContent(path string, data []byte) {
	r.Working.PutContent(content.Path(path), data)
}

// GetWorkingAreaContent is a thin facade over the working area.
func (r *Repo) GetWorkingAreaContent(path string) ([]byte, bool) {
	handle, ok := r.Working.GetContent(content.Path(path))
	if !ok {
		return nil, false
	}
	return handle.Bytes(), true
}

// Stage bypasses the working area and places content directly in the
// staging area.
func (r *Repo) Stage(path string, data []byte) {
	r.Staging.PutContent(content.Path(path), data)
}

// AddAll iterates every working-area item and writes it to the staging
// area. If createSnapshots is true each payload is deep-copied; otherwise
// the byte slice is shared between the two areas.
func (r *Repo) AddAll(createSnapshots bool) {
	for _, item := range r.Working.SnapshotAsList() {
		data := item.Data
		if createSnapshots {
			data = content.Clone(data)
		}
		r.Staging.PutContent(item.Path, data)
	}
}

// CommitAll composes write_tree + commit_tree + a ref update. If HEAD
// currently points at an existing head, that head's hash becomes the new
// commit's sole parent.
func (r *Repo) CommitAll(message, author, committer string, createSnapshots bool) (*object.Commit, error) {
	var parents []plumbing.Hash
	if ref, ok := r.ResolveReference(string(plumbing.HEAD)); ok {
		parents = []plumbing.Hash{ref.Hash()}
	}
	return r.commitAllWithParents(message, author, committer, createSnapshots, parents...)
}

// CommitAllUseCommitParentHashes is CommitAll without HEAD-derived parent
// inference, taking explicit parents instead — used by the merge driver.
func (r *Repo) CommitAllUseCommitParentHashes(message, author, committer string, createSnapshots bool, parents ...plumbing.Hash) (*object.Commit, error) {
	return r.commitAllWithParents(message, author, committer, createSnapshots, parents...)
}

func (r *Repo) commitAllWithParents(message, author, committer string, createSnapshots bool, parents ...plumbing.Hash) (*object.Commit, error) {
	tree := r.WriteTree()

	r.Committed.Clear()
	for _, item := range r.Staging.SnapshotAsList() {
		data := item.Data
		if createSnapshots {
			data = content.Clone(data)
		}
		if err := r.Committed.PutContent(item.Path, data); err != nil {
			return nil, err
		}
	}
	r.Committed.Freeze()

	now := time.Now()
	commit := r.CommitTree(tree.Hash(), message, author, now, committer, now, parents...)

	if r.Database.HEAD.IsSet() {
		r.Database.Heads.Update(plumbing.ReferenceName(r.Database.HEAD.ReferenceName), commit.Hash())
	}

	r.log.Op("commit_all", map[string]any{
		"hash":    commit.Hash().String(),
		"parents": len(parents),
	})
	return commit, nil
}

// Branch resolves HEAD's ref and, if present, records it under name in the
// heads collection. No-op if HEAD doesn't resolve to anything yet, or if
// name fails the same reference-name validation git applies to branches
// (no leading "-", no control characters, no ".."  component, etc).
func (r *Repo) Branch(name string) {
	if !plumbing.ValidateBranchName([]byte(name)) {
		r.log.Op("branch_rejected", map[string]any{"name": name})
		return
	}
	ref, ok := r.ResolveReference(string(plumbing.HEAD))
	if !ok {
		return
	}
	r.Database.Heads.Update(plumbing.ReferenceName(name), ref.Hash())
	r.log.Op("branch", map[string]any{"name": name, "hash": ref.Hash().String()})
}

// BranchDelete removes matching entries from heads; absent names are
// silently skipped.
func (r *Repo) BranchDelete(names ...string) {
	for _, n := range names {
		r.Database.Heads.Delete(plumbing.ReferenceName(n))
	}
	r.log.Op("branch_delete", map[string]any{"names": names})
}

// CurrentBranchName returns HEAD's reference name, or false if HEAD has
// never been set.
func (r *Repo) CurrentBranchName() (string, bool) {
	if !r.Database.HEAD.IsSet() {
		return "", false
	}
	return r.Database.HEAD.ReferenceName, true
}

// ListBranches returns every head name, in creation order, up to limit
// entries (0 means unlimited).
func (r *Repo) ListBranches(limit int) []string {
	var names []string
	_ = r.Database.Heads.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, string(ref.Name()))
		if limit > 0 && len(names) >= limit {
			return plumbing.ErrStop
		}
		return nil
	})
	return names
}
