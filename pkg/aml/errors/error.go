package errors

import (
	"fmt"
	"strings"
)

// ErrorType categorizes the type of error encountered while decoding AML.
type ErrorType string

const (
	ErrorTypeSyntax    ErrorType = "syntax"    // Input does not match the grammar
	ErrorTypeTruncated ErrorType = "truncated" // Input ended inside a production
	ErrorTypeResource  ErrorType = "resource"  // Allocation failure during decoding
	ErrorTypeDepth     ErrorType = "depth"     // Recursion depth limit exceeded
	ErrorTypeIO        ErrorType = "io"        // File I/O error
)

// Location identifies a byte position in an AML input.
type Location struct {
	File   string // Source file, empty for in-memory buffers
	Offset int    // Byte offset from the start of the input
}

// IsValid reports whether the location carries any information.
func (l Location) IsValid() bool {
	return l.File != "" || l.Offset > 0
}

// String returns "file@offset", omitting whichever part is absent.
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("offset %d", l.Offset)
	}
	return fmt.Sprintf("%s@%d", l.File, l.Offset)
}

// Error represents a rich decoding error with location and an optional
// suggestion. It is the surface reported by top-level operations; the
// engine-internal mismatch/fatal distinction never leaks past them.
type Error struct {
	Type       ErrorType // Category of error
	Message    string    // Error message
	Location   Location  // Byte position in the input
	Suggestion string    // Suggested fix (optional)
	Err        error     // Underlying cause (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))
	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf(" (at %s)", e.Location))
	}
	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("; suggestion: %s", e.Suggestion))
	}
	return sb.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorList represents a collection of errors accumulated across a batch
// operation (e.g. scanning a directory of tables) instead of failing on
// the first one.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{Errors: make([]*Error, 0)}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error with the given parameters.
func (el *ErrorList) AddError(errType ErrorType, message string, location Location) {
	el.Add(&Error{Type: errType, Message: message, Location: location})
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// ByType returns all errors of the given type.
func (el *ErrorList) ByType(errType ErrorType) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Type == errType {
			result = append(result, err)
		}
	}
	return result
}

// Error implements the error interface.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d error(s):\n", el.Count()))
	for i, err := range el.Errors {
		sb.WriteString(fmt.Sprintf("  %d: %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ToError returns nil if the error list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}
