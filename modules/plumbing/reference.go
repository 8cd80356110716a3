package plumbing

// HEAD is the reserved name that dereferences once through a repo's
// symbolic HEAD slot instead of naming a ref directly.
const HEAD ReferenceName = "HEAD"

// ReferenceName is the name half of a (name, hash) Reference — a plain
// name such as "master" or "Branch1", not a qualified path.
type ReferenceName string

func (r ReferenceName) String() string { return string(r) }

// Reference is a (name, hash) pair living in a repo's heads or tags
// collection.
type Reference struct {
	name ReferenceName
	hash Hash
}

func NewReference(name ReferenceName, hash Hash) *Reference {
	return &Reference{name: name, hash: hash}
}

func (r *Reference) Name() ReferenceName { return r.name }
func (r *Reference) Hash() Hash          { return r.hash }

func (r *Reference) String() string {
	return r.hash.String() + " " + string(r.name)
}

// ReferenceSlice sorts references by name, used when a caller wants a
// deterministic listing of a heads/tags collection.
type ReferenceSlice []*Reference

func (p ReferenceSlice) Len() int           { return len(p) }
func (p ReferenceSlice) Less(i, j int) bool { return p[i].name < p[j].name }
func (p ReferenceSlice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
