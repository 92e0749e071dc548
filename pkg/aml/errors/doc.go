// Package errors provides the typed error surface for AML decoding.
//
// Top-level operations (parsing a buffer, scanning files) report failures
// through Error values that carry a category, a byte-offset location and an
// optional suggestion. ErrorList accumulates errors across batch operations.
//
// The engine-internal distinction between a recoverable grammar mismatch and
// a fatal fault lives in the parser package; by the time a failure reaches
// this surface it is terminal for the parse attempt.
package errors
