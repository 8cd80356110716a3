// Package nanogit is an in-memory, content-addressed version control
// engine: a small reimagining of Git's object model and porcelain
// operating entirely over process memory.
package nanogit

import (
	"github.com/antgroup/nanogit/modules/nanogit/content"
	"github.com/antgroup/nanogit/modules/nanogit/object"
	"github.com/antgroup/nanogit/modules/nanogit/refs"
	"github.com/antgroup/nanogit/modules/nanogit/store"
	"github.com/antgroup/nanogit/modules/nanogit/telemetry"
	"github.com/antgroup/nanogit/modules/plumbing"
)

// masterBranch is the name init() points the initial HEAD symbolic
// reference at. The head itself isn't created in Heads until the first
// commit.
const masterBranch = "master"

// Database groups the parts of a Repo that a real Git repository would
// keep on disk under .git: description, format config, the HEAD pointer,
// the heads/tags namespaces, the object store, and the hook/ignore
// aggregates. Only Store, HEAD and Heads are load-bearing for the engine;
// the rest round-trip for callers that inspect or persist them elsewhere.
type Database struct {
	Description string
	Config      Config
	HEAD        refs.HEAD
	Heads       *refs.Collection
	Tags        *refs.Collection
	Store       *store.Store

	// Hooks and Info mirror .git/hooks/* and .git/info/exclude: content
	// the core never executes or interprets, just carries.
	Hooks map[string][]byte
	Info  map[string][]byte
}

// Repo is one independent, in-memory version-controlled entity: three
// content areas plus the database backing them.
type Repo struct {
	Working   *content.MutableArea
	Staging   *content.MutableArea
	Committed *content.CommittedArea
	Database  *Database

	log *telemetry.Logger
}

// Init constructs a fresh Repo with HEAD symbolically pointing at
// "master" — the branch itself is created lazily on the first commit.
func Init(name string) *Repo {
	r := &Repo{
		Working:   content.NewMutableArea(),
		Staging:   content.NewMutableArea(),
		Committed: content.NewCommittedArea(),
		Database: &Database{
			Heads: refs.NewCollection(),
			Tags:  refs.NewCollection(),
			Store: store.New(),
			Hooks: make(map[string][]byte),
			Info:  make(map[string][]byte),
		},
		log: telemetry.New(name),
	}
	r.Database.HEAD.SymbolicRef(masterBranch)
	return r
}

// SetDescription sets the Database's free-form description field.
func (r *Repo) SetDescription(desc string) {
	r.Database.Description = desc
}

// Porcelain is the high-level operation surface a caller drives a Repo
// through. adapter/gitrepo mirrors part of it against a different backend
// but does not implement it in full.
type Porcelain interface {
	AddAll(createSnapshots bool)
	Stage(path string, data []byte)
	PutWorkingAreaContent(path string, data []byte)
	GetWorkingAreaContent(path string) ([]byte, bool)
	CommitAll(message, author, committer string, createSnapshots bool) (*object.Commit, error)
	Log(nameOrHash string) ([]*LogEntry, error)
	Checkout(nameOrHashOrHEAD string, revisionOffset int) error
	CheckoutPath(path string) error
	CheckoutPattern(pred func(path string) bool) error
	Branch(name string)
	BranchDelete(names ...string)
	CurrentBranchName() (string, bool)
	ResolveCommit(nameOrHashOrHEAD string) (*object.Commit, error)
	ResolveReference(nameOrHEAD string) (*plumbing.Reference, bool)
	Status() *Status
}

var _ Porcelain = (*Repo)(nil)
