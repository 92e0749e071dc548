package grammar

import (
	"mercator-hq/ganymede/pkg/aml/ast"
	"mercator-hq/ganymede/pkg/aml/parser"
)

// matchByte returns a production matching exactly one literal byte, captured
// as the node payload.
func matchByte(tag ast.Tag, want byte) parser.Production {
	return func(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
		b, ok := cur.Peek()
		if !ok || b != want {
			return nil, parser.ErrNoMatch
		}
		node, err := p.Allocator().Allocate(tag, []byte{want})
		if err != nil {
			return nil, err
		}
		cur.ReadByte()
		return node, nil
	}
}

// matchBytes returns a production matching a fixed literal byte sequence,
// captured whole as the node payload. Used for two-byte extended opcodes.
// Each byte is checked before it is consumed so the cursor's high-water mark
// only ever covers accepted input.
func matchBytes(tag ast.Tag, want ...byte) parser.Production {
	return func(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
		mark := cur.Mark()
		for _, w := range want {
			b, ok := cur.Peek()
			if !ok || b != w {
				cur.ResetTo(mark)
				return nil, parser.ErrNoMatch
			}
			cur.ReadByte()
		}
		node, err := p.Allocator().Allocate(tag, want)
		if err != nil {
			cur.ResetTo(mark)
			return nil, err
		}
		return node, nil
	}
}

// matchClass returns a production matching any single byte accepted by ok.
func matchClass(tag ast.Tag, ok func(byte) bool) parser.Production {
	return func(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
		b, found := cur.Peek()
		if !found || !ok(b) {
			return nil, parser.ErrNoMatch
		}
		node, err := p.Allocator().Allocate(tag, []byte{b})
		if err != nil {
			return nil, err
		}
		cur.ReadByte()
		return node, nil
	}
}

// oneOf lifts an ordered choice over alternatives into a single production.
func oneOf(prods ...parser.Production) parser.Production {
	return func(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
		return p.Choose(cur, prods...)
	}
}

// wrap returns a production running the sub-productions in sequence under a
// fresh node tagged tag.
func wrap(tag ast.Tag, prods ...parser.Production) parser.Production {
	return func(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
		return p.Sequence(tag, cur, prods...)
	}
}

// ByteData matches any single byte.
func ByteData(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	b, ok := cur.Peek()
	if !ok {
		return nil, parser.ErrNoMatch
	}
	node, err := p.Allocator().Allocate(ast.TagByteData, []byte{b})
	if err != nil {
		return nil, err
	}
	cur.ReadByte()
	return node, nil
}

// WordData matches two bytes, least significant first.
func WordData(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagWordData, cur, ByteData, ByteData)
}

// DWordData matches four bytes as two words.
func DWordData(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagDWordData, cur, WordData, WordData)
}

// QWordData matches eight bytes as two double words.
func QWordData(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagQWordData, cur, DWordData, DWordData)
}
