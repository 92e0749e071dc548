package grammar

// AML encoding constants for the productions this package ships.
const (
	opZero         = 0x00
	opOne          = 0x01
	opBytePrefix   = 0x0a
	opWordPrefix   = 0x0b
	opDWordPrefix  = 0x0c
	opStringPrefix = 0x0d
	opQWordPrefix  = 0x0e
	opExtPrefix    = 0x5b
	opRevision     = 0x30 // follows opExtPrefix
	opOnes         = 0xff

	dualNamePrefix  = 0x2e
	multiNamePrefix = 0x2f
	rootChar        = '\\'
	parentPrefix    = '^'
	nullName        = 0x00
)

func isLeadNameChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigitChar(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameChar(c byte) bool {
	return isLeadNameChar(c) || isDigitChar(c)
}
