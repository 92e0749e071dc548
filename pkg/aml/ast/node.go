package ast

import (
	"fmt"
	"strings"
)

// Node is a single element of the decoded AML tree. A node owns its payload
// (a private copy of the matched input span, empty for purely structural
// nodes) and its ordered children. Nodes form a tree: no node is reachable
// through more than one parent and there are no cycles.
type Node struct {
	Tag      Tag
	Payload  []byte
	Children []*Node
}

// AttachChild appends child to the end of n's child list. A nil node or a
// nil child makes this a no-op.
func (n *Node) AttachChild(child *Node) {
	if n == nil || child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

// AttachChildren appends every non-nil node in children, in order.
func (n *Node) AttachChildren(children []*Node) {
	for _, child := range children {
		n.AttachChild(child)
	}
}

// Leaf reports whether the node has no children.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}

// Count returns the number of nodes in the subtree rooted at n, including
// n itself. A nil node counts zero.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}

// Depth returns the height of the subtree rooted at n. A leaf has depth 1;
// a nil node has depth 0.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	max := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// String returns a one-line summary of the node (tag, payload size, arity).
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(payload=%d children=%d)", n.Tag, len(n.Payload), len(n.Children))
}

// Dump writes an indented rendering of the subtree to sb. Payloads are shown
// as hex, truncated past eight bytes.
func (n *Node) Dump(sb *strings.Builder, indent int) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(n.Tag.String())
	if len(n.Payload) > 0 {
		sb.WriteString(" [")
		limit := len(n.Payload)
		truncated := false
		if limit > 8 {
			limit = 8
			truncated = true
		}
		for i := 0; i < limit; i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(sb, "%02x", n.Payload[i])
		}
		if truncated {
			sb.WriteString(" ...")
		}
		sb.WriteString("]")
	}
	sb.WriteByte('\n')
	for _, child := range n.Children {
		child.Dump(sb, indent+1)
	}
}
