// Package object implements the three repo object kinds — Blob, Tree and
// Commit — and the binary framing used to hash and store them. It mirrors
// the layered shape of a production object-store package (encode/decode per
// kind, a tagged ObjectType, a shared hashing entry point) without any of
// the on-disk compression or packfile machinery a real one needs, because
// nanogit never touches a disk.
package object

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/antgroup/nanogit/modules/plumbing"
	"github.com/antgroup/nanogit/modules/streamio"
)

// ObjectType tags a RepoObject with its kind. The String form is also the
// ASCII tag hashed into the object's content address (see HashObject).
type ObjectType int8

const (
	InvalidObject ObjectType = 0
	BlobObject    ObjectType = 1
	TreeObject    ObjectType = 2
	CommitObject  ObjectType = 3
)

func (t ObjectType) String() string {
	switch t {
	case BlobObject:
		return "blob"
	case TreeObject:
		return "tree"
	case CommitObject:
		return "commit"
	default:
		return "invalid"
	}
}

// ObjectTypeFromTag maps a byte tag used in a Tree entry to an ObjectType.
// An unrecognized tag decodes to InvalidObject rather than panicking.
func ObjectTypeFromTag(tag byte) ObjectType {
	switch tag {
	case 'b':
		return BlobObject
	case 'c':
		return CommitObject
	case 't':
		return TreeObject
	default:
		return InvalidObject
	}
}

// Tag returns the single-byte tag used inside a Tree entry for this type.
func (t ObjectType) Tag() byte {
	switch t {
	case BlobObject:
		return 'b'
	case CommitObject:
		return 'c'
	case TreeObject:
		return 't'
	default:
		return '?'
	}
}

var ErrUnsupportedObject = errors.New("nanogit: unsupported object type")

// RepoObject is satisfied by *Blob, *Tree and *Commit.
type RepoObject interface {
	Type() ObjectType
	Hash() plumbing.Hash
	SetHash(plumbing.Hash)
	// Encode writes the object's body (everything hashed and stored,
	// excluding the type/length header computed by HashObject) to w.
	Encode(w io.Writer) error
	// Decode reads a body previously written by Encode.
	Decode(r io.Reader) error
}

// EncodeBody serializes obj's body using the binary framing defined for
// its type. The intermediate buffer is pooled — the returned slice is a
// fresh copy, safe to retain after the call.
func EncodeBody(obj RepoObject) ([]byte, error) {
	buf := streamio.GetBytesBuffer()
	defer streamio.PutBytesBuffer(buf)
	if err := obj.Encode(buf); err != nil {
		return nil, fmt.Errorf("nanogit: encode %s: %w", obj.Type(), err)
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// HashObject computes the content address of an object body: SHA-1 over
// "<tag> <length_marker>\0<payload>" where length_marker is the literal
// byte '0' when payload is empty, and the ASCII decimal digits of
// len(payload) otherwise. The byte '0' is also what decimal formatting of a
// zero length yields, so both branches give the same header for an empty
// payload — see DESIGN.md Open Question 1.
func HashObject(t ObjectType, payload []byte) plumbing.Hash {
	h := plumbing.NewHasher()
	_, _ = h.Write([]byte(t.String()))
	_, _ = h.Write([]byte{' '})
	if len(payload) == 0 {
		_, _ = h.Write([]byte{'0'})
	} else {
		_, _ = h.Write([]byte(fmt.Sprintf("%d", len(payload))))
	}
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(payload)
	return h.Sum()
}

// writeUint32 writes v as a fixed 4-byte big-endian integer.
func writeUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// readUint32 reads a fixed 4-byte big-endian integer.
func readUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// writeString writes a length-prefixed UTF-8 string: a 2-byte big-endian
// length followed by the string's bytes.
func writeString(w io.Writer, s string) error {
	if len(s) > 0xffff {
		return fmt.Errorf("nanogit: string too long to encode (%d bytes)", len(s))
	}
	var lb [2]byte
	binary.BigEndian.PutUint16(lb[:], uint16(len(s)))
	if _, err := w.Write(lb[:]); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// readString is the inverse of writeString.
func readString(r io.Reader) (string, error) {
	var lb [2]byte
	if _, err := io.ReadFull(r, lb[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint16(lb[:])
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
