package rbtree

// Release hands every node and buffer back to the allocator, children
// before parents, and leaves the tree empty. It uses neither recursion nor
// an auxiliary stack, so tree depth is irrelevant.
func (t *RBTree) Release() {
	var nodes int
	bytes := t.size
	n := t.root
	for n != nil {
		if n.left != nil {
			n = n.left
			continue
		}
		if n.right != nil {
			n = n.right
			continue
		}
		p := n.parent
		if p != nil {
			if p.left == n {
				p.left = nil
			} else {
				p.right = nil
			}
		}
		t.alloc.Free(n.key)
		t.alloc.Free(n.value)
		t.alloc.FreeNode(n)
		nodes++
		n = p
	}
	t.root = nil
	t.count = 0
	t.size = 0
	t.log.Debugf("rbtree: released %d nodes (%d bytes)", nodes, bytes)
}
