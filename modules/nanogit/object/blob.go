package object

import (
	"fmt"
	"io"

	"github.com/antgroup/nanogit/modules/plumbing"
	"github.com/antgroup/nanogit/modules/streamio"
)

// Blob stores an opaque byte payload — the content of a single file.
type Blob struct {
	hash plumbing.Hash
	Data []byte
}

func NewBlob(data []byte) *Blob {
	b := &Blob{Data: data}
	payload, _ := EncodeBody(b)
	b.hash = HashObject(BlobObject, payload)
	return b
}

func (b *Blob) Type() ObjectType        { return BlobObject }
func (b *Blob) Hash() plumbing.Hash     { return b.hash }
func (b *Blob) SetHash(h plumbing.Hash) { b.hash = h }

// Encode writes the blob body: a fixed 4-byte length followed by the raw
// payload bytes.
func (b *Blob) Encode(w io.Writer) error {
	if err := writeUint32(w, uint32(len(b.Data))); err != nil {
		return err
	}
	if len(b.Data) == 0 {
		return nil
	}
	_, err := w.Write(b.Data)
	return err
}

// Decode is the inverse of Encode.
func (b *Blob) Decode(r io.Reader) error {
	n, err := readUint32(r)
	if err != nil {
		return fmt.Errorf("nanogit: decode blob length: %w", err)
	}
	if n == 0 {
		b.Data = nil
		return nil
	}

	buf := streamio.GetBytesBuffer()
	defer streamio.PutBytesBuffer(buf)
	if _, err := streamio.Copy(buf, io.LimitReader(r, int64(n))); err != nil {
		return fmt.Errorf("nanogit: decode blob payload: %w", err)
	}
	if uint32(buf.Len()) != n {
		return fmt.Errorf("nanogit: decode blob payload: got %d bytes, want %d", buf.Len(), n)
	}
	data := make([]byte, buf.Len())
	copy(data, buf.Bytes())
	b.Data = data
	return nil
}
