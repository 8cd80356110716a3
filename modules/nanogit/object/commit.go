package object

import (
	"fmt"
	"io"
	"time"

	"github.com/antgroup/nanogit/modules/plumbing"
	"github.com/antgroup/nanogit/modules/streamio"
)

// Commit points at a tree snapshot, zero or more parent commits, and the
// authorship metadata describing who made the snapshot and why.
type Commit struct {
	hash plumbing.Hash

	Tree      plumbing.Hash
	Parents   []plumbing.Hash
	Author    string
	AuthorAt  time.Time
	Committer string
	CommitAt  time.Time
	Message   string
}

func NewCommit(c Commit) *Commit {
	out := c
	payload, _ := EncodeBody(&out)
	out.hash = HashObject(CommitObject, payload)
	return &out
}

func (c *Commit) Type() ObjectType        { return CommitObject }
func (c *Commit) Hash() plumbing.Hash     { return c.hash }
func (c *Commit) SetHash(h plumbing.Hash) { c.hash = h }

// IsRoot reports whether c has no parents.
func (c *Commit) IsRoot() bool { return len(c.Parents) == 0 }

// Encode writes: parent_count (4 bytes), each parent's hex hash
// (length-prefixed), the tree's hex hash, author, an RFC3339 author
// timestamp, committer, an RFC3339 committer timestamp, and the message —
// each of the string fields length-prefixed.
func (c *Commit) Encode(w io.Writer) error {
	if err := writeUint32(w, uint32(len(c.Parents))); err != nil {
		return err
	}
	for _, p := range c.Parents {
		if err := writeString(w, p.String()); err != nil {
			return err
		}
	}
	if err := writeString(w, c.Tree.String()); err != nil {
		return err
	}
	if err := writeString(w, c.Author); err != nil {
		return err
	}
	if err := writeString(w, c.AuthorAt.Format(time.RFC3339)); err != nil {
		return err
	}
	if err := writeString(w, c.Committer); err != nil {
		return err
	}
	if err := writeString(w, c.CommitAt.Format(time.RFC3339)); err != nil {
		return err
	}
	return writeString(w, c.Message)
}

// Decode is the inverse of Encode.
func (c *Commit) Decode(r io.Reader) error {
	br := streamio.GetBufioReader(r)
	defer streamio.PutBufioReader(br)
	parentCount, err := readUint32(br)
	if err != nil {
		return fmt.Errorf("nanogit: decode commit parent count: %w", err)
	}
	parents := make([]plumbing.Hash, 0, parentCount)
	for i := uint32(0); i < parentCount; i++ {
		s, err := readString(br)
		if err != nil {
			return fmt.Errorf("nanogit: decode commit parent %d: %w", i, err)
		}
		h, err := plumbing.NewHashEx(s)
		if err != nil {
			return fmt.Errorf("nanogit: decode commit parent %d: %w", i, err)
		}
		parents = append(parents, h)
	}
	treeStr, err := readString(br)
	if err != nil {
		return fmt.Errorf("nanogit: decode commit tree: %w", err)
	}
	tree, err := plumbing.NewHashEx(treeStr)
	if err != nil {
		return fmt.Errorf("nanogit: decode commit tree: %w", err)
	}
	author, err := readString(br)
	if err != nil {
		return fmt.Errorf("nanogit: decode commit author: %w", err)
	}
	authorAtStr, err := readString(br)
	if err != nil {
		return fmt.Errorf("nanogit: decode commit author timestamp: %w", err)
	}
	authorAt, err := time.Parse(time.RFC3339, authorAtStr)
	if err != nil {
		return fmt.Errorf("nanogit: decode commit author timestamp: %w", err)
	}
	committer, err := readString(br)
	if err != nil {
		return fmt.Errorf("nanogit: decode commit committer: %w", err)
	}
	commitAtStr, err := readString(br)
	if err != nil {
		return fmt.Errorf("nanogit: decode commit committer timestamp: %w", err)
	}
	commitAt, err := time.Parse(time.RFC3339, commitAtStr)
	if err != nil {
		return fmt.Errorf("nanogit: decode commit committer timestamp: %w", err)
	}
	message, err := readString(br)
	if err != nil {
		return fmt.Errorf("nanogit: decode commit message: %w", err)
	}

	c.Parents = parents
	c.Tree = tree
	c.Author = author
	c.AuthorAt = authorAt
	c.Committer = committer
	c.CommitAt = commitAt
	c.Message = message
	return nil
}
