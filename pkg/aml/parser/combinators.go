package parser

import (
	"mercator-hq/ganymede/pkg/aml/ast"
)

// Sequence runs each production in order against cur, all-or-nothing. On
// success the results become, in order, the children of a fresh node tagged
// tag. On the first failing production every node already produced is
// deep-released, the cursor is restored to its value at entry, and the
// failure (mismatch or fatal, unchanged) is reported.
func (p *Parser) Sequence(tag ast.Tag, cur *Cursor, prods ...Production) (*ast.Node, error) {
	mark := cur.Mark()

	children, err := p.SequenceFlat(cur, prods...)
	if err != nil {
		return nil, err
	}

	node, err := p.alloc.Allocate(tag, nil)
	if err != nil {
		ast.ReleaseAll(p.alloc, children)
		cur.ResetTo(mark)
		return nil, err
	}
	node.AttachChildren(children)
	return node, nil
}

// SequenceFlat is Sequence without the wrapping node: the same all-or-nothing
// semantics, returning the matched nodes in order for the caller to attach
// under its own tag.
func (p *Parser) SequenceFlat(cur *Cursor, prods ...Production) ([]*ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	mark := cur.Mark()
	nodes := make([]*ast.Node, 0, len(prods))

	for _, prod := range prods {
		node, err := prod(p, cur)
		if err != nil {
			ast.ReleaseAll(p.alloc, nodes)
			cur.ResetTo(mark)
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// ZeroOrMore applies prod repeatedly. Each matched item is wrapped in a node
// tagged tag forming a right-leaning chain: every wrapper holds the item and,
// as its second child, the wrapper for the rest of the repetition. A mismatch
// from prod terminates the repetition successfully; zero matches yields a
// childless tag node and is not an error. Allocation failure or a fatal
// outcome from prod unwinds everything accumulated and restores the cursor to
// where the repetition began.
func (p *Parser) ZeroOrMore(tag ast.Tag, cur *Cursor, prod Production) (*ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	mark := cur.Mark()

	root, err := p.alloc.Allocate(tag, nil)
	if err != nil {
		return nil, err
	}

	prev := root
	for {
		item, err := prod(p, cur)
		if err != nil {
			if IsMismatch(err) {
				// The failed attempt left the cursor where prod found it.
				return root, nil
			}
			ast.ReleaseDeep(p.alloc, root)
			cur.ResetTo(mark)
			return nil, err
		}

		if prev == root && root.Leaf() {
			root.AttachChild(item)
			continue
		}

		wrapper, aerr := p.alloc.Allocate(tag, nil)
		if aerr != nil {
			ast.ReleaseDeep(p.alloc, item)
			ast.ReleaseDeep(p.alloc, root)
			cur.ResetTo(mark)
			return nil, aerr
		}
		wrapper.AttachChild(item)
		prev.AttachChild(wrapper)
		prev = wrapper
	}
}

// Repeat applies prod up to max times, collecting the results in order.
// Unlike ZeroOrMore, a failing call here fails the whole operation: the
// repetition count is an upper bound, not an optional continuation. The
// repetition early-exits without error when a matched item carries an empty
// payload, the null-terminator convention used by fixed-length name strings.
// On failure everything accumulated is deep-released and the cursor is
// restored to where the repetition began.
func (p *Parser) Repeat(cur *Cursor, max int, prod Production) ([]*ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	mark := cur.Mark()
	var nodes []*ast.Node

	for i := 0; i < max; i++ {
		node, err := prod(p, cur)
		if err != nil {
			ast.ReleaseAll(p.alloc, nodes)
			cur.ResetTo(mark)
			return nil, err
		}
		nodes = append(nodes, node)
		if len(node.Payload) == 0 {
			break
		}
	}
	return nodes, nil
}

// Choose tries each production in order and returns the first success. A
// mismatch moves on to the next alternative over the same unconsumed bytes
// (the failed production is required to leave the cursor as it found it). A
// fatal outcome stops immediately: the cursor is restored to the start of
// the whole Choose and the fault propagates instead of being retried, so
// resource exhaustion is never misreported as a syntax mismatch. If every
// alternative mismatches, Choose itself reports a mismatch.
func (p *Parser) Choose(cur *Cursor, prods ...Production) (*ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	mark := cur.Mark()
	for _, prod := range prods {
		node, err := prod(p, cur)
		if err == nil {
			return node, nil
		}
		if !IsMismatch(err) {
			cur.ResetTo(mark)
			return nil, err
		}
	}
	return nil, ErrNoMatch
}
