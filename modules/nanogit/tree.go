package nanogit

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/antgroup/nanogit/modules/nanogit/content"
	"github.com/antgroup/nanogit/modules/nanogit/object"
	"github.com/antgroup/nanogit/modules/plumbing"
)

// builderEntry is a tree entry still under construction: its Hash field is
// filled in once the object it names has itself been hashed and written.
type builderEntry struct {
	name string
	typ  object.ObjectType
	hash plumbing.Hash
}

// builderNode is one Tree under construction by WriteTree.
type builderNode struct {
	path        string
	entries     []*builderEntry
	parentEntry *builderEntry // nil for the root
}

type pendingBlob struct {
	entry *builderEntry
	data  []byte
}

// WriteTree folds the staging area into a single root Tree, returning it
// with its hash already assigned and inserted into the store.
//
// It walks every staging path segment by segment, lazily creating an
// intermediate Tree (and a Tree-typed entry on its parent) for each
// directory component and a Blob-typed entry for the leaf, then hashes
// bottom-up: blobs first, then trees from deepest to shallowest, so every
// hash a tree entry names already resolves in the store by the time its
// enclosing tree is written.
func (r *Repo) WriteTree() *object.Tree {
	root := &builderNode{path: "/"}
	nodes := map[string]*builderNode{"/": root}
	order := arraystack.New()
	order.Push("/")

	var pending []pendingBlob

	for _, item := range r.Staging.SnapshotAsList() {
		parts := content.Path(item.Path).SplitIntoParts()
		if len(parts) == 0 {
			continue
		}
		cur := content.Path("/")
		curNode := root
		for i, seg := range parts {
			childPath := cur.Resolve(seg)
			if i == len(parts)-1 {
				be := &builderEntry{name: seg, typ: object.BlobObject}
				curNode.entries = append(curNode.entries, be)
				pending = append(pending, pendingBlob{entry: be, data: item.Data})
				continue
			}
			child, ok := nodes[string(childPath)]
			if !ok {
				parentEntry := &builderEntry{name: seg, typ: object.TreeObject}
				curNode.entries = append(curNode.entries, parentEntry)
				child = &builderNode{path: string(childPath), parentEntry: parentEntry}
				nodes[string(childPath)] = child
				order.Push(string(childPath))
			}
			curNode = child
			cur = childPath
		}
	}

	for _, pb := range pending {
		hash := r.HashObjectWriteBlob(pb.data)
		pb.entry.hash = hash
	}

	var rootTree *object.Tree
	for !order.Empty() {
		v, _ := order.Pop()
		node := nodes[v.(string)]
		entries := make([]object.TreeEntry, len(node.entries))
		for j, be := range node.entries {
			entries[j] = object.TreeEntry{Name: be.name, Type: be.typ, Hash: be.hash}
		}
		tree := object.NewTree(entries)
		hash := r.HashObjectWrite(tree)
		if node.parentEntry != nil {
			node.parentEntry.hash = hash
		}
		if node.path == "/" {
			rootTree = tree
		}
	}
	return rootTree
}

// ReadTreeEntry is a single (path, bytes) pair materialized by ReadTree.
type ReadTreeEntry struct {
	Path content.Path
	Data []byte
}

type readTreeFrame struct {
	tree   *object.Tree
	prefix content.Path
}

// ReadTree expands the tree at hash into the staging area, overwriting
// whatever was there at each path it touches, and returns every Blob entry
// it found as an absolute path. Uses an explicit stack, like checkout's
// materializeTree, rather than recursion.
func (r *Repo) ReadTree(hash plumbing.Hash, prefix string) ([]ReadTreeEntry, error) {
	obj, ok := r.Database.Store.Get(hash)
	if !ok {
		return nil, &ErrInvalidTree{Hash: hash.String()}
	}
	root, ok := obj.(*object.Tree)
	if !ok {
		return nil, &ErrInvalidTree{Hash: hash.String()}
	}

	var result []ReadTreeEntry
	stack := arraystack.New()
	stack.Push(readTreeFrame{tree: root, prefix: content.Path(prefix).ToAbsolute()})

	for !stack.Empty() {
		v, _ := stack.Pop()
		fr := v.(readTreeFrame)

		for _, e := range fr.tree.Entries {
			entryPath := fr.prefix.Resolve(e.Name)
			switch e.Type {
			case object.BlobObject:
				childObj, ok := r.Database.Store.Get(e.Hash)
				if !ok {
					continue
				}
				blob, ok := childObj.(*object.Blob)
				if !ok {
					continue
				}
				absPath := entryPath.ToAbsolute()
				r.Staging.PutContent(absPath, blob.Data)
				result = append(result, ReadTreeEntry{Path: absPath, Data: blob.Data})
			case object.TreeObject:
				childObj, ok := r.Database.Store.Get(e.Hash)
				if !ok {
					return nil, &ErrInvalidTree{Hash: e.Hash.String()}
				}
				childTree, ok := childObj.(*object.Tree)
				if !ok {
					return nil, &ErrInvalidTree{Hash: e.Hash.String()}
				}
				stack.Push(readTreeFrame{tree: childTree, prefix: entryPath})
			default:
				// Commit entries are ignored, as are unknown tags.
			}
		}
	}
	return result, nil
}
