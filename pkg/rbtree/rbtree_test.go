package rbtree

import (
	"strconv"
	"strings"
	"testing"

	"github.com/scottcagno/rbmap/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const thousand = 1000

func newTestTree(t *testing.T) *RBTree {
	t.Helper()
	tree := NewRBTree(&RBTreeConfig{
		Logger:          logger.Discard(),
		CheckInvariants: true,
	})
	t.Cleanup(tree.Release)
	return tree
}

func makeKey(i int) []byte {
	return []byte("key-" + strconv.Itoa(i))
}

func makeVal(i int) []byte {
	return []byte("val-" + strconv.Itoa(i))
}

func leaf(key string, c Color) *Shape {
	return &Shape{Key: []byte(key), Color: c}
}

func TestNewRBTree(t *testing.T) {
	tree := NewRBTree(nil)
	require.NotNil(t, tree)
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, int64(0), tree.Size())
	assert.Nil(t, tree.Root())
	assert.Nil(t, tree.Shape())
	assert.NoError(t, tree.Verify())
	tree.Release()
}

func TestCheckRBTreeConfig(t *testing.T) {
	conf := checkRBTreeConfig(nil)
	assert.Equal(t, HeapAllocator, conf.Allocator)
	assert.Equal(t, logger.DefaultLogger, conf.Logger)
	assert.False(t, conf.CheckInvariants)

	user := &RBTreeConfig{CheckInvariants: true}
	conf = checkRBTreeConfig(user)
	assert.Nil(t, user.Allocator, "caller config must not be modified")
	assert.Equal(t, HeapAllocator, conf.Allocator)
	assert.True(t, conf.CheckInvariants)
	assert.Contains(t, conf.String(), "CheckInvariants: true")
	assert.Contains(t, conf.String(), "Level=Warn")
}

func TestInsertIntoEmptyTree(t *testing.T) {
	tree := newTestTree(t)
	require.NoError(t, tree.Insert([]byte("7"), []byte("seven")))

	assert.Equal(t, 1, tree.Len())
	root := tree.Root()
	require.NotNil(t, root)
	assert.Equal(t, []byte("7"), root.Key())
	assert.Equal(t, []byte("seven"), root.Value())
	assert.Equal(t, Black, root.Color())
	assert.Nil(t, root.Parent())
	assert.Nil(t, root.Left())
	assert.Nil(t, root.Right())
}

func TestInsertShape(t *testing.T) {
	tree := newTestTree(t)
	for _, k := range []string{"h", "r", "e", "o", "q", "y", "z"} {
		require.NoError(t, tree.Insert([]byte(k), []byte(strings.ToUpper(k))))
	}

	y := leaf("y", Black)
	y.Left = leaf("r", Red)
	y.Right = leaf("z", Red)
	q := leaf("q", Red)
	q.Left = leaf("o", Black)
	q.Right = y
	want := leaf("h", Black)
	want.Left = leaf("e", Black)
	want.Right = q

	assert.Equal(t, want, tree.Shape(), "got:\n%s", tree.Shape())
}

func TestSearchNotFound(t *testing.T) {
	tree := newTestTree(t)
	n, ok := tree.Search([]byte("missing"))
	assert.False(t, ok)
	assert.Nil(t, n)

	for i := 0; i < 100; i++ {
		require.NoError(t, tree.Insert(makeKey(i), makeVal(i)))
	}
	for _, k := range []string{"missing", "", "key-", "key-100", "key-99x"} {
		_, ok := tree.Search([]byte(k))
		assert.False(t, ok, "key %q", k)
		assert.False(t, tree.Has([]byte(k)), "key %q", k)
	}
}

func TestSearch(t *testing.T) {
	tree := newTestTree(t)
	for i := 0; i < thousand; i++ {
		require.NoError(t, tree.Insert(makeKey(i), makeVal(i)))
	}
	assert.Equal(t, thousand, tree.Len())
	for i := 0; i < thousand; i++ {
		n, ok := tree.Search(makeKey(i))
		require.True(t, ok, "key %d", i)
		assert.Equal(t, makeKey(i), n.Key())
		assert.Equal(t, makeVal(i), n.Value())

		v, ok := tree.Get(makeKey(i))
		require.True(t, ok)
		assert.Equal(t, makeVal(i), v)
	}
}

func TestInsertCopiesInput(t *testing.T) {
	tree := newTestTree(t)
	key, val := []byte("abc"), []byte("123")
	require.NoError(t, tree.Insert(key, val))
	key[0], val[0] = 'x', '9'

	v, ok := tree.Get([]byte("abc"))
	require.True(t, ok)
	assert.Equal(t, []byte("123"), v)
	assert.False(t, tree.Has([]byte("xbc")))
}

func TestUpdate(t *testing.T) {
	tree := newTestTree(t)
	for i := 0; i < 64; i++ {
		require.NoError(t, tree.Insert(makeKey(i), makeVal(i)))
	}
	before := tree.Shape()
	size := tree.Size()

	require.NoError(t, tree.Insert(makeKey(10), []byte("a much longer replacement value")))
	require.NoError(t, tree.Insert(makeKey(20), nil))

	assert.Equal(t, 64, tree.Len())
	assert.Equal(t, before, tree.Shape(), "update must not change the tree shape")
	v, ok := tree.Get(makeKey(10))
	require.True(t, ok)
	assert.Equal(t, []byte("a much longer replacement value"), v)
	v, ok = tree.Get(makeKey(20))
	require.True(t, ok)
	assert.Empty(t, v)

	want := size - int64(len(makeVal(10))+len(makeVal(20))) + int64(len("a much longer replacement value"))
	assert.Equal(t, want, tree.Size())
}

func TestEmptyKey(t *testing.T) {
	tree := newTestTree(t)
	require.NoError(t, tree.Insert([]byte("b"), []byte("2")))
	require.NoError(t, tree.Insert(nil, []byte("empty")))
	require.NoError(t, tree.Insert([]byte("a"), []byte("1")))

	v, ok := tree.Get([]byte{})
	require.True(t, ok)
	assert.Equal(t, []byte("empty"), v)

	min, ok := tree.Min()
	require.True(t, ok)
	assert.Empty(t, min.Key())
}

func TestMinMax(t *testing.T) {
	tree := newTestTree(t)
	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)

	for _, k := range []string{"m", "c", "x", "a", "z", "k"} {
		require.NoError(t, tree.Insert([]byte(k), nil))
	}
	min, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, []byte("a"), min.Key())
	max, ok := tree.Max()
	require.True(t, ok)
	assert.Equal(t, []byte("z"), max.Key())
}

func TestLenAndSize(t *testing.T) {
	tree := newTestTree(t)
	var numBytes int64
	for i := 0; i < thousand; i++ {
		numBytes += int64(len(makeKey(i)) + len(makeVal(i)))
		require.NoError(t, tree.Insert(makeKey(i), makeVal(i)))
	}
	assert.Equal(t, thousand, tree.Len())
	assert.Equal(t, numBytes, tree.Size())
}

func TestString(t *testing.T) {
	tree := newTestTree(t)
	require.NoError(t, tree.Insert([]byte("b"), []byte("2")))
	require.NoError(t, tree.Insert([]byte("a"), []byte("1")))
	assert.Equal(t,
		"node.key=\"a\", node.value=\"1\", node.color=red\n"+
			"node.key=\"b\", node.value=\"2\", node.color=black\n",
		tree.String())
}
