package object

import (
	"fmt"
	"io"

	"github.com/antgroup/nanogit/modules/plumbing"
	"github.com/antgroup/nanogit/modules/streamio"
)

// TreeEntry is a single (name, type, hash) line in a Tree's entry list.
type TreeEntry struct {
	Name string
	Type ObjectType
	Hash plumbing.Hash
}

// Tree maps names to the hashes of Blob or Tree objects, building the
// hierarchical namespace a commit points at.
type Tree struct {
	hash    plumbing.Hash
	Entries []TreeEntry
}

func NewTree(entries []TreeEntry) *Tree {
	t := &Tree{Entries: entries}
	payload, _ := EncodeBody(t)
	t.hash = HashObject(TreeObject, payload)
	return t
}

func (t *Tree) Type() ObjectType        { return TreeObject }
func (t *Tree) Hash() plumbing.Hash     { return t.hash }
func (t *Tree) SetHash(h plumbing.Hash) { t.hash = h }

// Get returns the entry for name and whether it was found.
func (t *Tree) Get(name string) (TreeEntry, bool) {
	for _, e := range t.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return TreeEntry{}, false
}

// Encode writes entry_count as a fixed 4-byte integer, followed by each
// entry as: a single type tag byte, then the length-prefixed name, then
// the length-prefixed hex hash string.
func (t *Tree) Encode(w io.Writer) error {
	if err := writeUint32(w, uint32(len(t.Entries))); err != nil {
		return err
	}
	for _, e := range t.Entries {
		if _, err := w.Write([]byte{e.Type.Tag()}); err != nil {
			return err
		}
		if err := writeString(w, e.Name); err != nil {
			return err
		}
		if err := writeString(w, e.Hash.String()); err != nil {
			return err
		}
	}
	return nil
}

// Decode is the inverse of Encode.
func (t *Tree) Decode(r io.Reader) error {
	br := streamio.GetBufioReader(r)
	defer streamio.PutBufioReader(br)
	count, err := readUint32(br)
	if err != nil {
		return fmt.Errorf("nanogit: decode tree entry count: %w", err)
	}
	entries := make([]TreeEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		tagByte, err := br.ReadByte()
		if err != nil {
			return fmt.Errorf("nanogit: decode tree entry %d tag: %w", i, err)
		}
		name, err := readString(br)
		if err != nil {
			return fmt.Errorf("nanogit: decode tree entry %d name: %w", i, err)
		}
		hashStr, err := readString(br)
		if err != nil {
			return fmt.Errorf("nanogit: decode tree entry %d hash: %w", i, err)
		}
		hash, err := plumbing.NewHashEx(hashStr)
		if err != nil {
			return fmt.Errorf("nanogit: decode tree entry %d hash: %w", i, err)
		}
		entries = append(entries, TreeEntry{
			Name: name,
			Type: ObjectTypeFromTag(tagByte),
			Hash: hash,
		})
	}
	t.Entries = entries
	return nil
}
