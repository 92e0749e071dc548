package grammar

import (
	"mercator-hq/ganymede/pkg/aml/ast"
	"mercator-hq/ganymede/pkg/aml/parser"
)

// ByteConst matches the byte prefix (0x0a) followed by one data byte.
func ByteConst(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagByteConst, cur,
		matchByte(ast.TagBytePrefix, opBytePrefix),
		ByteData,
	)
}

// WordConst matches the word prefix (0x0b) followed by two data bytes.
func WordConst(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagWordConst, cur,
		matchByte(ast.TagWordPrefix, opWordPrefix),
		WordData,
	)
}

// DWordConst matches the dword prefix (0x0c) followed by four data bytes.
func DWordConst(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagDWordConst, cur,
		matchByte(ast.TagDWordPrefix, opDWordPrefix),
		DWordData,
	)
}

// QWordConst matches the qword prefix (0x0e) followed by eight data bytes.
func QWordConst(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagQWordConst, cur,
		matchByte(ast.TagQWordPrefix, opQWordPrefix),
		QWordData,
	)
}

// asciiChar matches one printable character of a string literal.
var asciiChar = matchClass(ast.TagASCIIChar, func(c byte) bool {
	return c >= 0x01 && c <= 0x7f
})

// StringLiteral matches the string prefix (0x0d), a possibly empty run of
// ASCII characters and the terminating null.
func StringLiteral(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagString, cur,
		matchByte(ast.TagStringPrefix, opStringPrefix),
		func(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
			return p.ZeroOrMore(ast.TagASCIICharList, cur, asciiChar)
		},
		matchByte(ast.TagNullChar, 0x00),
	)
}

// ConstObj matches one of the constant objects: Zero, One or Ones.
func ConstObj(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagConstObj, cur, oneOf(
		matchByte(ast.TagZeroOp, opZero),
		matchByte(ast.TagOneOp, opOne),
		matchByte(ast.TagOnesOp, opOnes),
	))
}

// RevisionOp matches the two-byte extended revision opcode.
func RevisionOp(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return matchBytes(ast.TagRevisionOp, opExtPrefix, opRevision)(p, cur)
}

// ComputationalData matches any of the self-describing data encodings:
// prefixed integer constants, string literals, constant objects and the
// revision opcode.
func ComputationalData(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagComputationalData, cur, oneOf(
		ByteConst,
		WordConst,
		DWordConst,
		QWordConst,
		StringLiteral,
		RevisionOp,
		ConstObj,
	))
}

// DataObject matches a data object. The toolkit's built-in grammar covers
// the computational subset; packages are part of the full opcode catalog
// supplied by downstream grammars.
func DataObject(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.Sequence(ast.TagDataObject, cur, oneOf(ComputationalData))
}

// DataStream matches a whole buffer of consecutive data objects. It is the
// start symbol the command line tools use: zero objects is a valid, empty
// stream.
func DataStream(p *parser.Parser, cur *parser.Cursor) (*ast.Node, error) {
	return p.ZeroOrMore(ast.TagTermList, cur, DataObject)
}
