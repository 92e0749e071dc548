package grammar

import (
	"mercator-hq/ganymede/pkg/aml/ast"
	"mercator-hq/ganymede/pkg/aml/parser"
)

// NameSeg matches a four-character name segment: a lead character (A-Z or
// underscore) followed by three name characters. The whole segment is the
// node payload.
func NameSeg(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	span, ok := cur.PeekN(4)
	if !ok {
		return nil, parser.ErrNoMatch
	}
	if !isLeadNameChar(span[0]) || !isNameChar(span[1]) || !isNameChar(span[2]) || !isNameChar(span[3]) {
		return nil, parser.ErrNoMatch
	}
	node, err := p.Allocator().Allocate(ast.TagNameSeg, span)
	if err != nil {
		return nil, err
	}
	cur.Take(4)
	return node, nil
}

// DualNamePath matches the dual-name prefix (0x2e) followed by exactly two
// name segments.
func DualNamePath(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	mark := cur.Mark()
	b, ok := cur.Peek()
	if !ok || b != dualNamePrefix {
		return nil, parser.ErrNoMatch
	}
	cur.ReadByte()

	segs, err := p.SequenceFlat(cur, NameSeg, NameSeg)
	if err != nil {
		cur.ResetTo(mark)
		return nil, err
	}

	node, err := p.Allocator().Allocate(ast.TagDualNamePath, nil)
	if err != nil {
		ast.ReleaseAll(p.Allocator(), segs)
		cur.ResetTo(mark)
		return nil, err
	}
	node.AttachChildren(segs)
	return node, nil
}

// MultiNamePath matches the multi-name prefix (0x2f), a segment count byte
// and that many name segments.
func MultiNamePath(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	mark := cur.Mark()
	b, ok := cur.Peek()
	if !ok || b != multiNamePrefix {
		return nil, parser.ErrNoMatch
	}
	cur.ReadByte()

	count, ok := cur.ReadByte()
	if !ok {
		cur.ResetTo(mark)
		return nil, parser.ErrNoMatch
	}
	countNode, err := p.Allocator().Allocate(ast.TagSegCount, []byte{count})
	if err != nil {
		cur.ResetTo(mark)
		return nil, err
	}

	// NameSeg payloads are never empty, so the bounded repetition matches
	// exactly count segments or fails.
	segs, err := p.Repeat(cur, int(count), NameSeg)
	if err != nil {
		ast.ReleaseShallow(p.Allocator(), countNode)
		cur.ResetTo(mark)
		return nil, err
	}

	node, err := p.Allocator().Allocate(ast.TagMultiNamePath, nil)
	if err != nil {
		ast.ReleaseShallow(p.Allocator(), countNode)
		ast.ReleaseAll(p.Allocator(), segs)
		cur.ResetTo(mark)
		return nil, err
	}
	node.AttachChild(countNode)
	node.AttachChildren(segs)
	return node, nil
}

// NullName matches the empty name (a single null byte).
var NullName = matchByte(ast.TagNullName, nullName)

// NamePath matches a name segment, a dual or multi name path, or the null
// name.
func NamePath(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagNamePath, cur, oneOf(
		NameSeg,
		DualNamePath,
		MultiNamePath,
		NullName,
	))
}

// prefixChar matches one '^' parent-scope prefix character.
var prefixChar = matchByte(ast.TagPrefixPath, parentPrefix)

// PrefixPath matches zero or more '^' parent-scope prefixes.
func PrefixPath(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.ZeroOrMore(ast.TagPrefixPath, cur, prefixChar)
}

// RootChar matches the '\' root-scope character.
var RootChar = matchByte(ast.TagRootChar, rootChar)

// NameString matches a fully qualified name: either the root character or a
// run of parent prefixes, followed by a name path.
func NameString(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Choose(cur,
		wrap(ast.TagNameString, RootChar, NamePath),
		wrap(ast.TagNameString, PrefixPath, NamePath),
	)
}
