package content

// Content is a stored byte payload. It comes in two flavors: Mutable,
// whose Bytes() can change under an existing handle, and Immutable, whose
// Bytes() never changes once constructed.
type Content interface {
	Bytes() []byte
}

// Mutable wraps a byte slice that can be swapped out in place. A caller
// holding a *Mutable from an earlier Get sees the latest bytes after a
// subsequent Put to the same path — that's the "callers with a prior
// handle see the new bytes" behavior the working and staging areas need.
type Mutable struct {
	data []byte
}

func NewMutable(data []byte) *Mutable {
	return &Mutable{data: data}
}

func (c *Mutable) Bytes() []byte { return c.data }

// Set replaces this handle's bytes in place.
func (c *Mutable) Set(data []byte) { c.data = data }

// Immutable wraps a byte slice that never changes after construction. The
// committed area creates a fresh Immutable on every put rather than
// mutating one in place.
type Immutable struct {
	data []byte
}

func NewImmutable(data []byte) *Immutable {
	return &Immutable{data: data}
}

func (c *Immutable) Bytes() []byte { return c.data }

// Clone deep-copies data so the result shares no backing array with src —
// used by add_all(create_snapshots=true).
func Clone(data []byte) []byte {
	if data == nil {
		return nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
