package nanogit

import (
	"time"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/antgroup/nanogit/modules/nanogit/object"
	"github.com/antgroup/nanogit/modules/plumbing"
)

// LogEntry projects a Commit down to the fields log() reports.
type LogEntry struct {
	Hash      plumbing.Hash
	Author    string
	AuthorAt  time.Time
	Committer string
	CommitAt  time.Time
	Message   string
}

func newLogEntry(c *object.Commit) *LogEntry {
	return &LogEntry{
		Hash:      c.Hash(),
		Author:    c.Author,
		AuthorAt:  c.AuthorAt,
		Committer: c.Committer,
		CommitAt:  c.CommitAt,
		Message:   c.Message,
	}
}

// CommitTree constructs a Commit from the given tree and parents and
// inserts it into the store.
func (r *Repo) CommitTree(treeHash plumbing.Hash, message, author string, authorAt time.Time, committer string, committerAt time.Time, parents ...plumbing.Hash) *object.Commit {
	c := object.NewCommit(object.Commit{
		Tree:      treeHash,
		Parents:   parents,
		Author:    author,
		AuthorAt:  authorAt,
		Committer: committer,
		CommitAt:  committerAt,
		Message:   message,
	})
	r.HashObjectWrite(c)
	return c
}

// revListFrame is one unit of DFS work: a commit hash and the depth at
// which it was reached from the traversal root.
type revListFrame struct {
	hash  plumbing.Hash
	depth int
}

// revListDFS walks the parent DAG from start in pre-order of first visit,
// each commit emitted once. depthLimit, when non-nil, bounds how deep the
// walk goes (a negative limit visits nothing, matching checkout's
// depth_limit = -revision_offset contract); nil means unlimited.
func (r *Repo) revListDFS(start plumbing.Hash, depthLimit *int) ([]*object.Commit, error) {
	if depthLimit != nil && *depthLimit < 0 {
		return nil, nil
	}

	visited := linkedhashset.New()
	stack := arraystack.New()
	stack.Push(revListFrame{hash: start, depth: 0})

	var commits []*object.Commit
	for !stack.Empty() {
		v, _ := stack.Pop()
		fr := v.(revListFrame)

		if depthLimit != nil && fr.depth > *depthLimit {
			continue
		}
		if visited.Contains(fr.hash) {
			continue
		}
		visited.Add(fr.hash)

		obj, ok := r.Database.Store.Get(fr.hash)
		if !ok {
			return nil, &ErrInvalidCommit{Hash: fr.hash.String()}
		}
		c, ok := obj.(*object.Commit)
		if !ok {
			return nil, &ErrInvalidCommit{Hash: fr.hash.String()}
		}
		commits = append(commits, c)

		for i := len(c.Parents) - 1; i >= 0; i-- {
			stack.Push(revListFrame{hash: c.Parents[i], depth: fr.depth + 1})
		}
	}
	return commits, nil
}

// RevList returns every commit reachable from hash by DFS over parent
// links, pre-order of first visit, each emitted once.
func (r *Repo) RevList(hash plumbing.Hash) ([]*object.Commit, error) {
	return r.revListDFS(hash, nil)
}

// LogFromCommitHash maps RevList to the LogEntry projection.
func (r *Repo) LogFromCommitHash(hash plumbing.Hash) ([]*LogEntry, error) {
	commits, err := r.RevList(hash)
	if err != nil {
		return nil, err
	}
	entries := make([]*LogEntry, len(commits))
	for i, c := range commits {
		entries[i] = newLogEntry(c)
	}
	return entries, nil
}

// LogFromReferenceName looks up name in the heads collection and logs
// from its hash.
func (r *Repo) LogFromReferenceName(name string) ([]*LogEntry, error) {
	ref, ok := r.Database.Heads.Get(plumbing.ReferenceName(name))
	if !ok {
		return nil, &ErrReferenceNotFound{Name: name}
	}
	return r.LogFromCommitHash(ref.Hash())
}

// Log dispatches: if nameOrHash resolves to a Commit in the store, log
// from that hash; otherwise log from the head ref of that name.
func (r *Repo) Log(nameOrHash string) ([]*LogEntry, error) {
	if hash, err := plumbing.NewHashEx(nameOrHash); err == nil {
		if obj, ok := r.Database.Store.Get(hash); ok {
			if _, ok := obj.(*object.Commit); ok {
				return r.LogFromCommitHash(hash)
			}
		}
	}
	return r.LogFromReferenceName(nameOrHash)
}
