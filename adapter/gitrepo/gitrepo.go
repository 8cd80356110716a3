// Package gitrepo is a parallel adapter: it mirrors most of
// nanogit.Porcelain's methods against a real on-disk-capable Git backend
// instead of the in-memory engine. It does not satisfy nanogit.Porcelain:
// Log returns BackendCommit values rather than nanogit log entries, and
// ResolveCommit, ResolveReference and Status are not provided.
//
// The pack this module was built from never imports go-git — its own
// disk-Git implementation (modules/zeta) is hand-rolled — so this adapter
// is written against a minimal Backend interface shaped like go-git's
// storer.Storer-backed *git.Repository rather than importing go-git
// directly. A caller who has go-git available implements Backend with a
// few lines wrapping *git.Repository/*git.Worktree and passes it to New;
// without one, this package still compiles, it just has no constructed
// Adapters in the program.
package gitrepo

import (
	"fmt"
	"time"

	"github.com/antgroup/nanogit/modules/nanogit/object"
	"github.com/antgroup/nanogit/modules/plumbing"
)

// Backend is the subset of a real Git implementation's surface this
// adapter needs. A go-git-backed implementation wraps *git.Repository and
// *git.Worktree; every method here has a direct go-git counterpart
// (Worktree.Add, Worktree.Commit, Worktree.Checkout, Repository.Log,
// Repository.CreateBranch/DeleteBranch/Head).
type Backend interface {
	// StageAll indexes every modified path in the working tree, the way
	// git-add does for "-A".
	StageAll() error
	// WriteFile materializes data at path in the working tree.
	WriteFile(path string, data []byte) error
	// ReadFile reads path back out of the working tree.
	ReadFile(path string) ([]byte, bool, error)
	// Commit commits the index with the given message and author/committer
	// identities, returning the new commit's hash.
	Commit(message, author, committer string, at time.Time) (plumbing.Hash, error)
	// Checkout switches the working tree to refOrHash, optionally walking
	// back revisionOffset commits along first-parent history.
	Checkout(refOrHash string, revisionOffset int) error
	// CreateBranch records name pointing at the current HEAD.
	CreateBranch(name string) error
	// DeleteBranch removes name, if present.
	DeleteBranch(name string) error
	// CurrentBranch returns the branch HEAD currently points to, or false
	// if HEAD is detached.
	CurrentBranch() (string, bool)
	// Log returns commit metadata reachable from refOrHash, most recent
	// first.
	Log(refOrHash string) ([]BackendCommit, error)
}

// BackendCommit is the subset of a real commit's metadata the adapter
// projects into a nanogit.LogEntry.
type BackendCommit struct {
	Hash      string
	Author    string
	AuthorAt  time.Time
	Committer string
	CommitAt  time.Time
	Message   string
}

// Adapter maps the porcelain-style methods it shares with nanogit.Repo
// onto a Backend. It never touches a Repo or Database directly — every
// method is a pure translation into Backend calls.
type Adapter struct {
	backend Backend
}

// New wraps backend in an Adapter.
func New(backend Backend) *Adapter {
	return &Adapter{backend: backend}
}

func (a *Adapter) AddAll(createSnapshots bool) {
	// createSnapshots has no meaning for a disk-backed index; git's index
	// always holds its own copy.
	_ = a.backend.StageAll()
}

func (a *Adapter) Stage(path string, data []byte) {
	_ = a.backend.WriteFile(path, data)
	_ = a.backend.StageAll()
}

func (a *Adapter) PutWorkingAreaContent(path string, data []byte) {
	_ = a.backend.WriteFile(path, data)
}

func (a *Adapter) GetWorkingAreaContent(path string) ([]byte, bool) {
	data, ok, err := a.backend.ReadFile(path)
	if err != nil || !ok {
		return nil, false
	}
	return data, true
}

func (a *Adapter) CommitAll(message, author, committer string, createSnapshots bool) (*object.Commit, error) {
	hash, err := a.backend.Commit(message, author, committer, time.Now())
	if err != nil {
		return nil, fmt.Errorf("gitrepo: commit: %w", err)
	}
	return object.NewCommit(object.Commit{
		Tree:      hash, // the backend owns the real tree hash; this adapter surfaces only the commit hash
		Author:    author,
		Committer: committer,
		Message:   message,
	}), nil
}

func (a *Adapter) Log(nameOrHash string) ([]BackendCommit, error) {
	return a.backend.Log(nameOrHash)
}

func (a *Adapter) Checkout(nameOrHashOrHEAD string, revisionOffset int) error {
	return a.backend.Checkout(nameOrHashOrHEAD, revisionOffset)
}

func (a *Adapter) CheckoutPath(path string) error {
	data, ok, err := a.backend.ReadFile(path)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return a.backend.WriteFile(path, data)
}

func (a *Adapter) CheckoutPattern(pred func(path string) bool) error {
	// A disk-backed implementation would need to enumerate tracked paths
	// from the backend to apply pred; Backend doesn't expose that yet.
	return fmt.Errorf("gitrepo: CheckoutPattern requires a path-listing Backend method, not yet implemented")
}

func (a *Adapter) Branch(name string) {
	_ = a.backend.CreateBranch(name)
}

func (a *Adapter) BranchDelete(names ...string) {
	for _, n := range names {
		_ = a.backend.DeleteBranch(n)
	}
}

func (a *Adapter) CurrentBranchName() (string, bool) {
	return a.backend.CurrentBranch()
}
