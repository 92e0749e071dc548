// Package ast defines the tree produced by decoding ACPI Machine Language
// (AML) bytecode.
//
// Every node carries a Tag naming the grammar production it was built from,
// an owned byte payload copied verbatim from the matched input span (empty
// for purely structural nodes), and an ordered list of owned children.
//
// # Core Types
//
// Tag: closed enumeration of AML grammar productions
//
// Node: one tree element (tag, payload, children)
//
// Allocator: node creation/reclamation collaborator, with a counting and
// failure-injecting wrapper for instrumentation
//
// Visitor: pre-order tree traversal
//
// # Ownership
//
// The tree returned by a successful parse is owned by the caller, who is
// responsible for returning it to the allocator with ReleaseDeep. Payloads
// are private copies: the source buffer may be freed or overwritten after
// parsing without invalidating the tree.
package ast
