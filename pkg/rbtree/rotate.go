package rbtree

// leftRotate pivots x down to the left, lifting x.right into its place.
func (t *RBTree) leftRotate(x *Node) {
	y := x.right
	if y == nil {
		panic("rbtree: left rotation without a right child")
	}
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceChild(x, y)
	y.left = x
	x.parent = y
}

// rightRotate pivots x down to the right, lifting x.left into its place.
func (t *RBTree) rightRotate(x *Node) {
	y := x.left
	if y == nil {
		panic("rbtree: right rotation without a left child")
	}
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.replaceChild(x, y)
	y.right = x
	x.parent = y
}

// replaceChild hangs y where x hangs now, including the root link.
func (t *RBTree) replaceChild(x, y *Node) {
	p := x.parent
	y.parent = p
	switch {
	case p == nil:
		t.root = y
	case x == p.left:
		p.left = y
	default:
		p.right = y
	}
}
