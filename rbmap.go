package rbmap

import "github.com/scottcagno/rbmap/pkg/rbtree"

// OrderedMap is an in-memory map from byte-string keys to byte-string
// values that iterates in key order
type OrderedMap interface {
	Insert(key, value []byte) error
	Search(key []byte) (*rbtree.Node, bool)
	Iter() *rbtree.Iterator
	Release()
}

// Stats is implemented by maps that can report their footprint
type Stats interface {
	Len() int
	Size() int64
}

var (
	_ OrderedMap = (*rbtree.RBTree)(nil)
	_ Stats      = (*rbtree.RBTree)(nil)
)

// New returns an OrderedMap backed by a red-black tree.
func New(conf *rbtree.RBTreeConfig) *rbtree.RBTree {
	return rbtree.NewRBTree(conf)
}
