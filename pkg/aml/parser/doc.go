// Package parser implements the generic AML decoding engine: the cursor over
// the input buffer, the production-function contract, and the small set of
// combinators every grammar rule is composed from.
//
// # Outcomes
//
// A production returns one of three outcomes:
//
//   - a node and a nil error: success, cursor advanced past the matched span
//   - ErrNoMatch: recoverable mismatch, cursor byte-for-byte as given
//   - any other error: fatal, cursor as given, the whole parse aborts
//
// The distinction matters: without it an allocation failure inside one
// alternative of a Choose would be silently swallowed and misreported as
// "this alternative doesn't apply".
//
// # Combinators
//
// Sequence / SequenceFlat: fixed, ordered, all-or-nothing concatenation.
//
// ZeroOrMore: open-ended repetition; a mismatch terminates it successfully
// and zero matches is a valid result.
//
// Repeat: bounded repetition; a mismatch is a failure, and an item with an
// empty payload terminates early (the null-terminator convention for
// fixed-length name strings). The two termination policies are deliberately
// separate combinators.
//
// Choose: ordered choice with fatal short-circuiting.
//
// # Invariants
//
// Every combinator restores the cursor to its entry position and returns all
// partially built nodes to the allocator before reporting a failure, so a
// failed parse never leaks nodes and never exposes a partial tree.
//
// The engine is strictly recursive-descent and single-threaded; recursion
// depth is bounded (WithMaxDepth) because the input is untrusted firmware
// data.
package parser
