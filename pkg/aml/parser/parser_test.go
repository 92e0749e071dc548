package parser

import (
	"errors"
	"testing"

	"mercator-hq/ganymede/pkg/aml/ast"
	amlErrors "mercator-hq/ganymede/pkg/aml/errors"
)

// byteConst matches a byte-constant encoding: the 0x0a opcode followed by
// one data byte.
func byteConst(p *Parser, cur *Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagByteConst, cur,
		lit(ast.TagBytePrefix, 0x0a),
		anyByte(ast.TagByteData),
	)
}

func errorType(t *testing.T, err error) amlErrors.ErrorType {
	t.Helper()
	var typed *amlErrors.Error
	if !errors.As(err, &typed) {
		t.Fatalf("error %v is not an *amlErrors.Error", err)
	}
	return typed.Type
}

func TestParse_EndToEnd(t *testing.T) {
	p, _ := newTestParser()
	input := []byte{0x0a, 0x42}

	node, err := p.Parse(input, byteConst)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if node.Tag != ast.TagByteConst {
		t.Errorf("Tag = %s, want ByteConst", node.Tag)
	}
	if len(node.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(node.Children))
	}
	data := node.Children[1]
	if len(data.Payload) != 1 || data.Payload[0] != 0x42 {
		t.Errorf("data payload = %v, want [42]", data.Payload)
	}
}

func TestParse_PayloadSurvivesBufferReuse(t *testing.T) {
	p, _ := newTestParser()
	input := []byte{0x0a, 0x42}

	node, err := p.Parse(input, byteConst)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	// Clobber the source buffer; the tree must be unaffected.
	for i := range input {
		input[i] = 0xee
	}

	if got := node.Children[1].Payload[0]; got != 0x42 {
		t.Errorf("payload byte = %#x after buffer reuse, want 0x42", got)
	}
}

func TestParse_TruncatedInput(t *testing.T) {
	p, alloc := newTestParser()

	// Matches the first element of the sequence, then runs out of bytes.
	_, err := p.Parse([]byte{0x0a}, byteConst)
	if err == nil {
		t.Fatal("Parse() should fail on truncated input")
	}
	if got := errorType(t, err); got != amlErrors.ErrorTypeTruncated {
		t.Errorf("error type = %s, want truncated", got)
	}
	if alloc.Live() != 0 {
		t.Errorf("%d nodes leaked by failed parse", alloc.Live())
	}
}

func TestParse_TrailingBytes(t *testing.T) {
	p, alloc := newTestParser()

	_, err := p.Parse([]byte{0x0a, 0x42, 0x99}, byteConst)
	if err == nil {
		t.Fatal("Parse() should reject trailing input")
	}
	if got := errorType(t, err); got != amlErrors.ErrorTypeSyntax {
		t.Errorf("error type = %s, want syntax", got)
	}
	if alloc.Live() != 0 {
		t.Errorf("%d nodes leaked when trailing bytes rejected the tree", alloc.Live())
	}
}

func TestParse_MismatchReportsSyntax(t *testing.T) {
	p, _ := newTestParser()

	_, err := p.Parse([]byte{0xff, 0x00}, byteConst)
	if got := errorType(t, err); got != amlErrors.ErrorTypeSyntax {
		t.Errorf("error type = %s, want syntax", got)
	}
}

func TestParse_TruncatedStreamItem(t *testing.T) {
	p, alloc := newTestParser()

	stream := func(p *Parser, cur *Cursor) (*ast.Node, error) {
		return p.ZeroOrMore(ast.TagTermList, cur, byteConst)
	}

	// One complete item, then an item cut off after its opcode. The failed
	// item consumed up to end of input, so the leftover byte is reported
	// as truncation rather than trailing garbage.
	_, err := p.Parse([]byte{0x0a, 0x42, 0x0a}, stream)
	if err == nil {
		t.Fatal("Parse() should fail on a cut-off stream item")
	}
	if got := errorType(t, err); got != amlErrors.ErrorTypeTruncated {
		t.Errorf("error type = %s, want truncated", got)
	}
	if alloc.Live() != 0 {
		t.Errorf("%d nodes leaked by failed parse", alloc.Live())
	}
}

func TestParse_AllocFailureReportsResource(t *testing.T) {
	p, alloc := newTestParser()
	alloc.FailAfter(1)

	_, err := p.Parse([]byte{0x0a, 0x42}, byteConst)
	if got := errorType(t, err); got != amlErrors.ErrorTypeResource {
		t.Errorf("error type = %s, want resource", got)
	}
	if alloc.Live() != 0 {
		t.Errorf("%d nodes leaked after allocation failure", alloc.Live())
	}
}

func TestParse_DepthLimit(t *testing.T) {
	p, _ := newTestParser()
	p.WithMaxDepth(8)

	// A pathologically recursive production: nests one combinator level
	// per input byte.
	var nested Production
	nested = func(p *Parser, cur *Cursor) (*ast.Node, error) {
		return p.Choose(cur, func(p *Parser, cur *Cursor) (*ast.Node, error) {
			return nested(p, cur)
		})
	}

	_, err := p.Parse(make([]byte, 4), nested)
	if err == nil {
		t.Fatal("Parse() should fail on unbounded recursion")
	}
	if got := errorType(t, err); got != amlErrors.ErrorTypeDepth {
		t.Errorf("error type = %s, want depth", got)
	}
}

func TestParse_InputSizeLimit(t *testing.T) {
	p, _ := newTestParser()
	p.WithMaxInput(4)

	_, err := p.Parse(make([]byte, 8), byteConst)
	if got := errorType(t, err); got != amlErrors.ErrorTypeIO {
		t.Errorf("error type = %s, want io", got)
	}
}

func TestParse_EmptyStreamStart(t *testing.T) {
	p, _ := newTestParser()

	stream := func(p *Parser, cur *Cursor) (*ast.Node, error) {
		return p.ZeroOrMore(ast.TagTermList, cur, byteConst)
	}

	node, err := p.Parse(nil, stream)
	if err != nil {
		t.Fatalf("Parse() of empty input failed: %v", err)
	}
	if !node.Leaf() {
		t.Errorf("empty stream produced %d children, want 0", len(node.Children))
	}
}

func TestParseNamed_LocationCarriesSource(t *testing.T) {
	p, _ := newTestParser()

	_, err := p.ParseNamed([]byte{0xff}, "dsdt.aml", byteConst)
	var typed *amlErrors.Error
	if !errors.As(err, &typed) {
		t.Fatalf("error %v is not typed", err)
	}
	if typed.Location.File != "dsdt.aml" {
		t.Errorf("Location.File = %q, want %q", typed.Location.File, "dsdt.aml")
	}
}
