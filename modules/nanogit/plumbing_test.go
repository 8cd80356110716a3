package nanogit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antgroup/nanogit/modules/nanogit/object"
)

func TestUpdateIndexAddCopiesWorkingContentByReference(t *testing.T) {
	r := Init("update-index-add")
	r.PutWorkingAreaContent("/a.txt", []byte("A"))

	r.UpdateIndexAdd("/a.txt")

	staged, ok := r.Staging.GetContent("/a.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("A"), staged.Bytes())

	working, ok := r.Working.GetContent("/a.txt")
	require.True(t, ok)
	assert.Same(t, working, staged)
}

func TestUpdateIndexAddCacheInfoStagesBlobBytes(t *testing.T) {
	r := Init("cache-info-blob")
	hash := r.HashObjectWriteBlob([]byte("payload"))

	err := r.UpdateIndexAddCacheInfo(hash, "/staged.txt")
	require.NoError(t, err)

	data, ok := r.Staging.GetContent("/staged.txt")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), data.Bytes())
}

func TestUpdateIndexAddCacheInfoUnknownHashFails(t *testing.T) {
	r := Init("cache-info-unknown")

	err := r.UpdateIndexAddCacheInfo(r.HashObject(object.BlobObject, nil), "/staged.txt")
	assert.True(t, IsErrReferenceNotFound(err))
}

func TestUpdateIndexAddCacheInfoEncodingFailureIsReported(t *testing.T) {
	r := Init("cache-info-encode-fail")

	longName := strings.Repeat("x", 0x10000)
	tree := object.NewTree([]object.TreeEntry{
		{Name: longName, Type: object.BlobObject, Hash: r.HashObjectWriteBlob([]byte("a"))},
	})
	r.HashObjectWrite(tree)

	err := r.UpdateIndexAddCacheInfo(tree.Hash(), "/wont-stage")
	require.Error(t, err)
	assert.True(t, IsErrEncodingFailure(err))

	_, ok := r.Staging.GetContent("/wont-stage")
	assert.False(t, ok)
}
