package grammar

import (
	"mercator-hq/ganymede/pkg/aml/ast"
	"mercator-hq/ganymede/pkg/aml/parser"
)

// PkgLength matches the variable-length package length encoding. Bits 7-6 of
// the lead byte give the number of following bytes (0-3). With no following
// bytes, bits 5-0 of the lead byte hold the length; otherwise bits 3-0 of
// the lead byte are the least significant nibble and the following bytes
// supply the rest, least significant first. The whole encoding is captured
// as the node payload; DecodePkgLength recovers the value.
func PkgLength(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	mark := cur.Mark()

	lead, ok := cur.ReadByte()
	if !ok {
		return nil, parser.ErrNoMatch
	}

	extra := int(lead >> 6)
	if extra > 0 && lead&0x30 != 0 {
		// Bits 5-4 must be zero in the multi-byte form.
		cur.ResetTo(mark)
		return nil, parser.ErrNoMatch
	}

	span := make([]byte, 0, 1+extra)
	span = append(span, lead)
	for i := 0; i < extra; i++ {
		b, ok := cur.ReadByte()
		if !ok {
			cur.ResetTo(mark)
			return nil, parser.ErrNoMatch
		}
		span = append(span, b)
	}

	node, err := p.Allocator().Allocate(ast.TagPkgLength, span)
	if err != nil {
		cur.ResetTo(mark)
		return nil, err
	}
	return node, nil
}

// DecodePkgLength returns the length value held by a package length payload
// as captured by PkgLength. The second return value is false when the
// payload is not a valid encoding.
func DecodePkgLength(payload []byte) (uint32, bool) {
	if len(payload) == 0 || len(payload) > 4 {
		return 0, false
	}

	lead := payload[0]
	extra := int(lead >> 6)
	if extra != len(payload)-1 {
		return 0, false
	}
	if extra == 0 {
		return uint32(lead & 0x3f), true
	}

	value := uint32(lead & 0x0f)
	for i := 1; i < len(payload); i++ {
		value |= uint32(payload[i]) << uint(4+8*(i-1))
	}
	return value, true
}
