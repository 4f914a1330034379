package rbtree

import "fmt"

// Allocator creates and destroys nodes and the byte buffers they own.
// Dup must return a buffer the caller owns exclusively; Free and FreeNode
// receive exactly what Dup and NewNode returned.
type Allocator interface {
	NewNode() (*Node, error)
	FreeNode(n *Node)
	Dup(b []byte) ([]byte, error)
	Free(b []byte)
}

// HeapAllocator allocates from the Go heap. It never fails.
var HeapAllocator Allocator = heapAllocator{}

type heapAllocator struct{}

func (heapAllocator) NewNode() (*Node, error) {
	return new(Node), nil
}

func (heapAllocator) FreeNode(n *Node) {
	*n = Node{}
}

func (heapAllocator) Dup(b []byte) ([]byte, error) {
	return dup(b), nil
}

func (heapAllocator) Free([]byte) {}

func dup(b []byte) []byte {
	p := make([]byte, len(b))
	copy(p, b)
	return p
}

// LimitAllocator is a heap allocator with a budget. It counts live nodes
// and bytes, which makes leaks visible, and fails with ErrAllocation once
// a budget would be exceeded. A zero budget means unlimited.
type LimitAllocator struct {
	MaxNodes int
	MaxBytes int64

	nodes     int
	bytes     int64
	remaining int // allocations left before forced failure, -1 for no limit
}

func NewLimitAllocator(maxNodes int, maxBytes int64) *LimitAllocator {
	return &LimitAllocator{
		MaxNodes:  maxNodes,
		MaxBytes:  maxBytes,
		remaining: -1,
	}
}

// FailAfter lets the next n allocations through and refuses every one
// after that, whatever the budget. A negative n clears it.
func (a *LimitAllocator) FailAfter(n int) {
	if n < 0 {
		n = -1
	}
	a.remaining = n
}

func (a *LimitAllocator) take() bool {
	if a.remaining == 0 {
		return false
	}
	if a.remaining > 0 {
		a.remaining--
	}
	return true
}

func (a *LimitAllocator) NewNode() (*Node, error) {
	if a.MaxNodes > 0 && a.nodes >= a.MaxNodes {
		return nil, fmt.Errorf("%w: node limit %d reached", ErrAllocation, a.MaxNodes)
	}
	if !a.take() {
		return nil, fmt.Errorf("%w: node allocation refused", ErrAllocation)
	}
	a.nodes++
	return new(Node), nil
}

func (a *LimitAllocator) FreeNode(n *Node) {
	*n = Node{}
	a.nodes--
}

func (a *LimitAllocator) Dup(b []byte) ([]byte, error) {
	if a.MaxBytes > 0 && a.bytes+int64(len(b)) > a.MaxBytes {
		return nil, fmt.Errorf("%w: byte limit %d reached (live=%d, want=%d)",
			ErrAllocation, a.MaxBytes, a.bytes, len(b))
	}
	if !a.take() {
		return nil, fmt.Errorf("%w: buffer allocation refused", ErrAllocation)
	}
	a.bytes += int64(len(b))
	return dup(b), nil
}

func (a *LimitAllocator) Free(b []byte) {
	a.bytes -= int64(len(b))
}

// Live reports the nodes and bytes handed out and not yet freed.
func (a *LimitAllocator) Live() (nodes int, bytes int64) {
	return a.nodes, a.bytes
}
