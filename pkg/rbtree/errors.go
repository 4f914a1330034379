package rbtree

import "errors"

var (
	// ErrAllocation is the only error Insert returns. The tree is left
	// exactly as it was before the call.
	ErrAllocation = errors.New("rbtree: allocation failed")

	// ErrCorrupt wraps every invariant violation reported by Verify.
	ErrCorrupt = errors.New("rbtree: invariant violated")
)
