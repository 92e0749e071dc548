package ast

// Visitor provides an interface for traversing decoded AML trees. Implement
// this interface to perform operations on tree nodes (statistics,
// pretty-printing, interpretation, etc.).
type Visitor interface {
	Visit(node *Node, depth int) error
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(node *Node, depth int) error

// Visit implements Visitor.
func (f VisitorFunc) Visit(node *Node, depth int) error {
	return f(node, depth)
}

// Walk traverses the tree rooted at node in pre-order, calling the visitor
// for each node with its depth below the root. It returns the first error
// encountered, or nil if traversal completes. Walking a nil tree is a no-op.
func Walk(node *Node, visitor Visitor) error {
	return walk(node, visitor, 0)
}

func walk(node *Node, visitor Visitor, depth int) error {
	if node == nil {
		return nil
	}
	if err := visitor.Visit(node, depth); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := walk(child, visitor, depth+1); err != nil {
			return err
		}
	}
	return nil
}
