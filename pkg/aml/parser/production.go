package parser

import (
	"errors"

	"mercator-hq/ganymede/pkg/aml/ast"
)

// ErrNoMatch is the mismatch outcome: the production does not describe the
// bytes at the current cursor. It is always recoverable by a containing
// Choose and must be paired with an unmodified cursor. Any other non-nil
// error returned by a production is fatal and aborts the whole parse.
var ErrNoMatch = errors.New("aml: production does not match")

// ErrDepthExceeded is the fatal outcome reported when grammar nesting
// exceeds the engine's recursion limit. The input is untrusted firmware
// data, so unbounded recursion is treated as an attack, not a grammar
// mismatch.
var ErrDepthExceeded = errors.New("aml: maximum recursion depth exceeded")

// Production is one grammar rule: a function from a cursor to either a
// fully-formed node (cursor advanced past the matched span), a mismatch
// (ErrNoMatch, cursor byte-for-byte as given), or a fatal error (cursor as
// given, parse aborts). The engine invokes productions polymorphically
// through this contract; it knows nothing about the grammar itself.
type Production func(p *Parser, cur *Cursor) (*ast.Node, error)

// IsMismatch reports whether err is the recoverable mismatch outcome, as
// opposed to a fatal fault. Choose uses this to tell retry-worthy
// alternatives from abort-worthy failures.
func IsMismatch(err error) bool {
	return errors.Is(err, ErrNoMatch)
}
