package nanogit

import (
	"github.com/antgroup/nanogit/modules/nanogit/content"
	"github.com/antgroup/nanogit/modules/nanogit/object"
	"github.com/antgroup/nanogit/modules/nanogit/telemetry"
	"github.com/antgroup/nanogit/modules/plumbing"
)

// CatFile returns the object stored under hash.
func (r *Repo) CatFile(hash plumbing.Hash) (object.RepoObject, bool) {
	return r.Database.Store.Get(hash)
}

// CatFileType returns the type of the object stored under hash.
func (r *Repo) CatFileType(hash plumbing.Hash) (object.ObjectType, bool) {
	obj, ok := r.Database.Store.Get(hash)
	if !ok {
		return object.InvalidObject, false
	}
	return obj.Type(), true
}

// HashObject computes the content address of payload under t without
// touching the store. Pure.
func (r *Repo) HashObject(t object.ObjectType, payload []byte) plumbing.Hash {
	return object.HashObject(t, payload)
}

// HashObjectWrite idempotently inserts obj — already carrying its final
// hash from construction — into the object store.
func (r *Repo) HashObjectWrite(obj object.RepoObject) plumbing.Hash {
	r.Database.Store.Put(obj)
	return obj.Hash()
}

// HashObjectWriteBlob constructs a Blob from data and inserts it.
func (r *Repo) HashObjectWriteBlob(data []byte) plumbing.Hash {
	return r.HashObjectWrite(object.NewBlob(data))
}

// HashObjectWriteString is HashObjectWriteBlob over a UTF-8 string's bytes.
func (r *Repo) HashObjectWriteString(s string) plumbing.Hash {
	return r.HashObjectWriteBlob([]byte(s))
}

// UpdateIndexAdd copies working-area content at path to the same path in
// the staging area by reference — no byte copy.
func (r *Repo) UpdateIndexAdd(path string) {
	handle, ok := r.Working.GetContent(content.Path(path))
	if !ok {
		return
	}
	r.Staging.PutHandle(content.Path(path), handle)
}

// UpdateIndexAddCacheInfo fetches the object stored under hash and places
// its bytes at stagingPath in the staging area. A Blob contributes its raw
// payload; any other object contributes its encoded body. Encoding a Tree
// or Commit can fail (e.g. a name too long for the 2-byte length prefix in
// §4.3's framing), in which case the failure is logged and returned as an
// ErrEncodingFailure rather than silently staging nothing.
func (r *Repo) UpdateIndexAddCacheInfo(hash plumbing.Hash, stagingPath string) error {
	obj, ok := r.Database.Store.Get(hash)
	if !ok {
		return &ErrReferenceNotFound{Name: hash.String()}
	}
	var data []byte
	if blob, ok := obj.(*object.Blob); ok {
		data = blob.Data
	} else {
		var err error
		data, err = object.EncodeBody(obj)
		if err != nil {
			_ = telemetry.Errorf("update_index_add_cacheinfo: encode %s %s: %v", obj.Type(), hash.String(), err)
			return &ErrEncodingFailure{Err: err}
		}
	}
	r.Staging.PutContent(content.Path(stagingPath), data)
	return nil
}

// UpdateRefInHeads creates or overwrites name's hash in the heads
// collection.
func (r *Repo) UpdateRefInHeads(name string, hash plumbing.Hash) {
	r.Database.Heads.Update(plumbing.ReferenceName(name), hash)
}

// UpdateRefInTags creates or overwrites name's hash in the tags
// collection. Malformed names (the same rules checkReferenceNameComponent
// applies to branches) are silently ignored.
func (r *Repo) UpdateRefInTags(name string, hash plumbing.Hash) {
	if !plumbing.ValidateTagName([]byte(name)) {
		return
	}
	r.Database.Tags.Update(plumbing.ReferenceName(name), hash)
}

// SymbolicRef points HEAD at name, creating HEAD on first call.
func (r *Repo) SymbolicRef(name string) {
	r.Database.HEAD.SymbolicRef(name)
}

// ResolveReference returns the head ref for name. Passing "HEAD"
// dereferences once through HEAD's reference name; if that name is
// literally "HEAD", this is a self-cycle and resolution fails.
func (r *Repo) ResolveReference(nameOrHEAD string) (*plumbing.Reference, bool) {
	name := nameOrHEAD
	if name == string(plumbing.HEAD) {
		if !r.Database.HEAD.IsSet() {
			return nil, false
		}
		if r.Database.HEAD.ReferenceName == string(plumbing.HEAD) {
			return nil, false
		}
		name = r.Database.HEAD.ReferenceName
	}
	return r.Database.Heads.Get(plumbing.ReferenceName(name))
}

// ResolveCommit resolves nameOrHashOrHEAD to a Commit: "HEAD" dereferences
// and recurses; a string that parses as a hash and resolves to a Commit in
// the store wins; otherwise it's looked up as a head ref and that ref's
// hash is dereferenced. Fails with ErrReferenceNotFound otherwise.
func (r *Repo) ResolveCommit(nameOrHashOrHEAD string) (*object.Commit, error) {
	if nameOrHashOrHEAD == string(plumbing.HEAD) {
		if !r.Database.HEAD.IsSet() {
			return nil, &ErrReferenceNotFound{Name: nameOrHashOrHEAD}
		}
		return r.ResolveCommit(r.Database.HEAD.ReferenceName)
	}
	if hash, err := plumbing.NewHashEx(nameOrHashOrHEAD); err == nil {
		if obj, ok := r.Database.Store.Get(hash); ok {
			if c, ok := obj.(*object.Commit); ok {
				return c, nil
			}
		}
	}
	if ref, ok := r.Database.Heads.Get(plumbing.ReferenceName(nameOrHashOrHEAD)); ok {
		if obj, ok := r.Database.Store.Get(ref.Hash()); ok {
			if c, ok := obj.(*object.Commit); ok {
				return c, nil
			}
		}
	}
	return nil, &ErrReferenceNotFound{Name: nameOrHashOrHEAD}
}
