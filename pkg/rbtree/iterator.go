package rbtree

// Iterator walks a tree in ascending key order using parent links only.
// It must not be used across an Insert or Release on the same tree.
type Iterator struct {
	t       *RBTree
	cur     *Node
	started bool
}

// Iter returns a fresh iterator positioned before the smallest key.
func (t *RBTree) Iter() *Iterator {
	return &Iterator{t: t}
}

// Next returns the next node in key order. Once it returns false it keeps
// returning false.
func (it *Iterator) Next() (*Node, bool) {
	if !it.started {
		it.started = true
		if it.t.root != nil {
			it.cur = leftmost(it.t.root)
		}
	} else if it.cur != nil {
		it.cur = successor(it.cur)
	}
	return it.cur, it.cur != nil
}

func successor(x *Node) *Node {
	if x.right != nil {
		return leftmost(x.right)
	}
	y := x.parent
	for y != nil && x == y.right {
		x = y
		y = y.parent
	}
	return y
}

// Scan calls fn for every node in ascending key order until fn returns
// false.
func (t *RBTree) Scan(fn func(n *Node) bool) {
	it := t.Iter()
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		if !fn(n) {
			return
		}
	}
}
