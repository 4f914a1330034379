package rbtree

import (
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Shape is a detached copy of a tree's structure: keys and colors only.
// It exists for inspection and for comparing structures in tests.
type Shape struct {
	Key   []byte `cbor:"1,keyasint"`
	Color Color  `cbor:"2,keyasint"`
	Left  *Shape `cbor:"3,keyasint,omitempty"`
	Right *Shape `cbor:"4,keyasint,omitempty"`
}

var shapeEncMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Shape copies the current structure. An empty tree yields nil.
func (t *RBTree) Shape() *Shape {
	return shapeOf(t.root)
}

func shapeOf(n *Node) *Shape {
	if n == nil {
		return nil
	}
	return &Shape{
		Key:   dup(n.key),
		Color: n.color,
		Left:  shapeOf(n.left),
		Right: shapeOf(n.right),
	}
}

// EncodeShape encodes s as deterministic CBOR.
func EncodeShape(s *Shape) ([]byte, error) {
	return shapeEncMode.Marshal(s)
}

func DecodeShape(data []byte) (*Shape, error) {
	var s *Shape
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("rbtree: decoding shape: %w", err)
	}
	return s, nil
}

// String draws the shape sideways, one node per line, children indented
// under their parent with the left child first.
func (s *Shape) String() string {
	if s == nil {
		return "(empty)\n"
	}
	var sb strings.Builder
	s.write(&sb, "", "")
	return sb.String()
}

func (s *Shape) write(sb *strings.Builder, label, indent string) {
	fmt.Fprintf(sb, "%s%s%q (%s)\n", indent, label, s.Key, s.Color)
	if s.Left == nil && s.Right == nil {
		return
	}
	for _, c := range []struct {
		label string
		s     *Shape
	}{{"L: ", s.Left}, {"R: ", s.Right}} {
		if c.s == nil {
			fmt.Fprintf(sb, "%s  %s-\n", indent, c.label)
			continue
		}
		c.s.write(sb, c.label, indent+"  ")
	}
}
