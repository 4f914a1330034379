package rbtree

import (
	"bytes"
	"fmt"
)

// Verify walks the whole tree and reports the first broken red-black or
// ordering invariant, wrapped in ErrCorrupt. It is O(n) and meant for tests
// and debugging.
func (t *RBTree) Verify() error {
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree with count %d", ErrCorrupt, t.count)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %q has a parent", ErrCorrupt, t.root.key)
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: root %q is red", ErrCorrupt, t.root.key)
	}
	var count int
	var size int64
	if _, err := verifyNode(t.root, nil, nil, &count, &size); err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: counted %d nodes, tree says %d", ErrCorrupt, count, t.count)
	}
	if size != t.size {
		return fmt.Errorf("%w: counted %d bytes, tree says %d", ErrCorrupt, size, t.size)
	}
	return nil
}

// verifyNode checks the subtree at n, whose keys must lie strictly between
// lo and hi (nil meaning unbounded), and returns its black height.
func verifyNode(n *Node, lo, hi *Node, count *int, size *int64) (int, error) {
	if n == nil {
		return 1, nil
	}
	*count++
	*size += int64(len(n.key) + len(n.value))
	if lo != nil && bytes.Compare(lo.key, n.key) >= 0 {
		return 0, fmt.Errorf("%w: key %q not greater than %q", ErrCorrupt, n.key, lo.key)
	}
	if hi != nil && bytes.Compare(n.key, hi.key) >= 0 {
		return 0, fmt.Errorf("%w: key %q not less than %q", ErrCorrupt, n.key, hi.key)
	}
	for _, c := range []*Node{n.left, n.right} {
		if c == nil {
			continue
		}
		if c.parent != n {
			return 0, fmt.Errorf("%w: child %q does not point back to %q", ErrCorrupt, c.key, n.key)
		}
		if n.color == Red && c.color == Red {
			return 0, fmt.Errorf("%w: red %q has red child %q", ErrCorrupt, n.key, c.key)
		}
	}
	lh, err := verifyNode(n.left, lo, n, count, size)
	if err != nil {
		return 0, err
	}
	rh, err := verifyNode(n.right, n, hi, count, size)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black height %d left vs %d right under %q", ErrCorrupt, lh, rh, n.key)
	}
	if n.color == Black {
		lh++
	}
	return lh, nil
}
