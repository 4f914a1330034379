package rbtree

import (
	"bytes"
	"fmt"
)

type side uint8

const (
	leftSide side = iota
	rightSide
)

// slot is where a key lives or would live. Exactly one of node and parent
// is meaningful: node is set when the key matched; otherwise parent and
// side name the empty child link to fill (parent is nil for an empty tree).
type slot struct {
	node   *Node
	parent *Node
	side   side
}

func (t *RBTree) locate(key []byte) slot {
	var s slot
	x := t.root
	for x != nil {
		c := bytes.Compare(key, x.key)
		if c == 0 {
			return slot{node: x}
		}
		s.parent = x
		if c < 0 {
			s.side = leftSide
			x = x.left
		} else {
			s.side = rightSide
			x = x.right
		}
	}
	return s
}

// Insert stores value under key, replacing any value already there. The
// tree keeps its own copies of both slices. The only error is one wrapping
// ErrAllocation, in which case the tree is unchanged.
func (t *RBTree) Insert(key, value []byte) error {
	s := t.locate(key)
	if s.node != nil {
		return t.update(s.node, value)
	}
	z, err := t.newNode(key, value)
	if err != nil {
		t.log.Warnf("rbtree: insert of %d byte key failed: %v", len(key), err)
		return err
	}
	z.parent = s.parent
	switch {
	case s.parent == nil:
		z.color = Black
		t.root = z
	case s.side == leftSide:
		s.parent.left = z
	default:
		s.parent.right = z
	}
	t.count++
	t.size += int64(len(z.key) + len(z.value))
	if z.parent != nil {
		t.insertFixup(z)
	}
	t.check()
	return nil
}

// update swaps in a copy of value. The tree shape does not change so no
// rebalancing is needed.
func (t *RBTree) update(n *Node, value []byte) error {
	v, err := t.alloc.Dup(value)
	if err != nil {
		t.log.Warnf("rbtree: update of %d byte value failed: %v", len(value), err)
		return err
	}
	old := n.value
	n.value = v
	t.size += int64(len(v) - len(old))
	t.alloc.Free(old)
	t.check()
	return nil
}

// newNode allocates an unlinked red node. On failure everything allocated
// so far is handed back.
func (t *RBTree) newNode(key, value []byte) (*Node, error) {
	n, err := t.alloc.NewNode()
	if err != nil {
		return nil, err
	}
	k, err := t.alloc.Dup(key)
	if err != nil {
		t.alloc.FreeNode(n)
		return nil, err
	}
	v, err := t.alloc.Dup(value)
	if err != nil {
		t.alloc.Free(k)
		t.alloc.FreeNode(n)
		return nil, err
	}
	*n = Node{key: k, value: v, color: Red}
	return n, nil
}

func (t *RBTree) insertFixup(z *Node) {
	for isRed(z.parent) {
		// a red parent is never the root, so the grandparent exists
		gp := z.parent.parent
		if gp == nil {
			panic("rbtree: red node has no grandparent")
		}
		if z.parent == gp.left {
			y := gp.right // uncle
			if isRed(y) {
				z.parent.color = Black
				y.color = Black
				gp.color = Red
				z = gp
				continue
			}
			if z == z.parent.right {
				z = z.parent
				t.leftRotate(z)
			}
			z.parent.color = Black
			z.parent.parent.color = Red
			t.rightRotate(z.parent.parent)
			break
		}
		y := gp.left // uncle
		if isRed(y) {
			z.parent.color = Black
			y.color = Black
			gp.color = Red
			z = gp
			continue
		}
		if z == z.parent.left {
			z = z.parent
			t.rightRotate(z)
		}
		z.parent.color = Black
		z.parent.parent.color = Red
		t.leftRotate(z.parent.parent)
		break
	}
	t.root.color = Black
}

func (t *RBTree) check() {
	if !t.verify {
		return
	}
	if err := t.Verify(); err != nil {
		panic(fmt.Sprintf("rbtree: %v", err))
	}
}
