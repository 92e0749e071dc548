// Package grammar provides the primitive AML grammar productions the
// toolkit ships with: raw data bytes, prefixed integer constants, string
// literals, constant objects, name segments and paths, and the package
// length encoding.
//
// Every production here satisfies the engine's production contract and is a
// thin composition of the parser package's combinators, the same way the
// full opcode catalog of a downstream grammar is built. The catalog itself
// (named objects, control flow, operators) is deliberately not part of the
// toolkit; DataStream is the start symbol the bundled tools use for the
// data-level subset.
package grammar
