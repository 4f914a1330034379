package rbmap

import (
	"testing"

	"github.com/scottcagno/rbmap/pkg/logger"
	"github.com/scottcagno/rbmap/pkg/rbtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	var m OrderedMap = New(&rbtree.RBTreeConfig{Logger: logger.Discard()})
	defer m.Release()

	require.NoError(t, m.Insert([]byte("b"), []byte("2")))
	require.NoError(t, m.Insert([]byte("a"), []byte("1")))
	require.NoError(t, m.Insert([]byte("b"), []byte("3")))

	n, ok := m.Search([]byte("b"))
	require.True(t, ok)
	assert.Equal(t, []byte("3"), n.Value())

	var keys []string
	it := m.Iter()
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		keys = append(keys, string(n.Key()))
	}
	assert.Equal(t, []string{"a", "b"}, keys)
	assert.Equal(t, 2, m.(Stats).Len())
}
