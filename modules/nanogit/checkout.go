package nanogit

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/antgroup/nanogit/modules/nanogit/content"
	"github.com/antgroup/nanogit/modules/nanogit/object"
	"github.com/antgroup/nanogit/modules/plumbing"
)

type treeWalkFrame struct {
	hash   plumbing.Hash
	prefix content.Path
}

// materializeTree walks rootHash's tree with an explicit stack (recursion
// would work just as well; path depth bounds either), writing every Blob
// entry's bytes into the committed, staging and working areas at its
// absolute path.
func (r *Repo) materializeTree(rootHash plumbing.Hash, prefix content.Path) error {
	stack := arraystack.New()
	stack.Push(treeWalkFrame{hash: rootHash, prefix: prefix})

	for !stack.Empty() {
		v, _ := stack.Pop()
		fr := v.(treeWalkFrame)

		obj, ok := r.Database.Store.Get(fr.hash)
		if !ok {
			return &ErrInvalidTree{Hash: fr.hash.String()}
		}
		tree, ok := obj.(*object.Tree)
		if !ok {
			return &ErrInvalidTree{Hash: fr.hash.String()}
		}

		for _, e := range tree.Entries {
			path := fr.prefix.Resolve(e.Name)
			switch e.Type {
			case object.BlobObject:
				childObj, ok := r.Database.Store.Get(e.Hash)
				if !ok {
					return &ErrUnexpectedTreeEntry{Path: string(path)}
				}
				blob, ok := childObj.(*object.Blob)
				if !ok {
					return &ErrUnexpectedTreeEntry{Path: string(path)}
				}
				absPath := path.ToAbsolute()
				if err := r.Committed.PutContent(absPath, blob.Data); err != nil {
					return err
				}
				r.Staging.PutContent(absPath, blob.Data)
				r.Working.PutContent(absPath, blob.Data)
			case object.TreeObject:
				stack.Push(treeWalkFrame{hash: e.Hash, prefix: path})
			default:
				return &ErrUnexpectedTreeEntry{Path: string(path)}
			}
		}
	}
	return nil
}

func (r *Repo) resolveCheckoutStart(nameOrHashOrHEAD string) (*object.Commit, error) {
	c, err := r.ResolveCommit(nameOrHashOrHEAD)
	if err != nil {
		return nil, &ErrCommitNotFound{Name: nameOrHashOrHEAD}
	}
	return c, nil
}

// Checkout resolves the starting commit, walks its parent chain with
// depth_limit = -revisionOffset, restores the last commit visited into all
// three areas, and — unless the target was literally "HEAD" — repoints
// HEAD's reference name at the raw identifier supplied (which may be a
// branch name or a hash, per the source engine's detached-HEAD quirk).
func (r *Repo) Checkout(nameOrHashOrHEAD string, revisionOffset int) error {
	start, err := r.resolveCheckoutStart(nameOrHashOrHEAD)
	if err != nil {
		return err
	}

	depthLimit := -revisionOffset
	commits, err := r.revListDFS(start.Hash(), &depthLimit)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		return &ErrCommitsNotFound{Name: nameOrHashOrHEAD, RevisionOffset: revisionOffset}
	}
	target := commits[len(commits)-1]

	r.Working.Clear()
	r.Staging.Clear()
	r.Committed.Clear()

	if err := r.materializeTree(target.Tree, content.Path("/")); err != nil {
		return err
	}
	r.Committed.Freeze()

	if nameOrHashOrHEAD != string(plumbing.HEAD) {
		r.Database.HEAD.SymbolicRef(nameOrHashOrHEAD)
	}

	r.log.Op("checkout", map[string]any{
		"target": nameOrHashOrHEAD,
		"commit": target.Hash().String(),
	})
	return nil
}

// CheckoutPath deep-copies a single committed-area entry back into the
// working area.
func (r *Repo) CheckoutPath(path string) error {
	p := content.Path(path)
	c, ok := r.Committed.GetContent(p)
	if !ok {
		return nil
	}
	r.Working.PutContent(p, content.Clone(c.Bytes()))
	return nil
}

// CheckoutPattern does the same as CheckoutPath for every committed-area
// entry whose path satisfies pred.
func (r *Repo) CheckoutPattern(pred func(path string) bool) error {
	for p, data := range r.Committed.SnapshotAsMap() {
		if pred(string(p)) {
			r.Working.PutContent(p, content.Clone(data))
		}
	}
	return nil
}
