// Package rbtree implements an ordered map from byte-string keys to
// byte-string values on top of a red-black tree.
//
// Keys are ordered by bytes.Compare. The tree is not safe for concurrent
// use; callers must serialize Insert and Release against each other and
// against any live Iterator.
package rbtree

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/scottcagno/rbmap/pkg/logger"
)

type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "red"
}

// Node holds one key/value pair. Nodes handed out by Search, Min, Max and
// Iterator are borrowed from the tree: they are valid until the next Insert
// or Release, and the slices they return must not be modified.
type Node struct {
	key    []byte
	value  []byte
	color  Color
	parent *Node // back-reference only, never owning
	left   *Node
	right  *Node
}

func (n *Node) Key() []byte   { return n.key }
func (n *Node) Value() []byte { return n.value }
func (n *Node) Color() Color  { return n.color }
func (n *Node) Parent() *Node { return n.parent }
func (n *Node) Left() *Node   { return n.left }
func (n *Node) Right() *Node  { return n.right }

func (n *Node) String() string {
	return fmt.Sprintf("node.key=%q, node.value=%q, node.color=%s", n.key, n.value, n.color)
}

func isRed(n *Node) bool {
	return n != nil && n.color == Red
}

// RBTree is a red-black tree keyed by byte strings.
type RBTree struct {
	root   *Node
	count  int
	size   int64
	alloc  Allocator
	log    *logger.Logger
	verify bool
}

// NewRBTree returns an empty tree. A nil conf selects the heap allocator
// and the default logger.
func NewRBTree(conf *RBTreeConfig) *RBTree {
	conf = checkRBTreeConfig(conf)
	return &RBTree{
		alloc:  conf.Allocator,
		log:    conf.Logger,
		verify: conf.CheckInvariants,
	}
}

// Len returns the number of entries in the tree.
func (t *RBTree) Len() int {
	return t.count
}

// Size returns the number of key and value bytes held by the tree.
func (t *RBTree) Size() int64 {
	return t.size
}

// Root returns the root node, or nil when the tree is empty.
func (t *RBTree) Root() *Node {
	return t.root
}

// Search returns the node stored under key.
func (t *RBTree) Search(key []byte) (*Node, bool) {
	n := t.root
	for n != nil {
		switch c := bytes.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n, true
		}
	}
	return nil, false
}

// Get returns the value stored under key.
func (t *RBTree) Get(key []byte) ([]byte, bool) {
	n, ok := t.Search(key)
	if !ok {
		return nil, false
	}
	return n.value, true
}

func (t *RBTree) Has(key []byte) bool {
	_, ok := t.Search(key)
	return ok
}

// Min returns the node with the smallest key.
func (t *RBTree) Min() (*Node, bool) {
	if t.root == nil {
		return nil, false
	}
	return leftmost(t.root), true
}

// Max returns the node with the largest key.
func (t *RBTree) Max() (*Node, bool) {
	if t.root == nil {
		return nil, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n, true
}

func leftmost(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (t *RBTree) String() string {
	var sb strings.Builder
	t.Scan(func(n *Node) bool {
		sb.WriteString(n.String())
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}
