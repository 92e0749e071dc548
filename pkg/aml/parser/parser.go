package parser

import (
	"errors"
	"fmt"

	"mercator-hq/ganymede/pkg/aml/ast"
	amlErrors "mercator-hq/ganymede/pkg/aml/errors"
)

const (
	// DefaultMaxDepth bounds grammar nesting. Well-formed firmware tables
	// stay far below this; pathological input hits it and fails fatally.
	DefaultMaxDepth = 128

	// DefaultMaxInput bounds the input buffer size. AML blocks in real
	// firmware are at most a few hundred KiB.
	DefaultMaxInput = 16 * 1024 * 1024
)

// Parser drives AML decoding. It owns the engine configuration (recursion
// and input limits, the node allocator) and the combinators productions are
// composed from. A Parser is single-threaded: one parse runs to completion
// before another may start, and the cursor is never shared across calls.
type Parser struct {
	alloc    ast.Allocator
	maxDepth int
	maxInput int

	depth int
}

// NewParser creates a new parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		alloc:    ast.NewAllocator(),
		maxDepth: DefaultMaxDepth,
		maxInput: DefaultMaxInput,
	}
}

// WithMaxDepth sets the recursion depth limit.
func (p *Parser) WithMaxDepth(depth int) *Parser {
	p.maxDepth = depth
	return p
}

// WithMaxInput sets the maximum input buffer size in bytes.
func (p *Parser) WithMaxInput(size int) *Parser {
	p.maxInput = size
	return p
}

// WithAllocator sets the node allocator used by the combinators.
func (p *Parser) WithAllocator(alloc ast.Allocator) *Parser {
	p.alloc = alloc
	return p
}

// Allocator returns the node allocator the engine creates nodes through.
// Productions that build nodes directly (leaf matchers) must use it so that
// allocation accounting and failure injection see every node.
func (p *Parser) Allocator() ast.Allocator {
	return p.alloc
}

// enter records one level of combinator nesting, failing fatally when the
// configured limit is exceeded.
func (p *Parser) enter() error {
	if p.depth >= p.maxDepth {
		return ErrDepthExceeded
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// Parse decodes data by running the start production over the whole buffer.
// On success the returned root node is owned by the caller, who is
// responsible for returning it to the allocator with ast.ReleaseDeep. On
// failure no partial tree is ever returned: the result is a typed error
// reporting either that the buffer is not valid AML or that a resource
// limit was hit.
func (p *Parser) Parse(data []byte, start Production) (*ast.Node, error) {
	return p.parse(data, "", start)
}

// ParseNamed is Parse with a source name attached to error locations.
func (p *Parser) ParseNamed(data []byte, source string, start Production) (*ast.Node, error) {
	return p.parse(data, source, start)
}

func (p *Parser) parse(data []byte, source string, start Production) (*ast.Node, error) {
	if p.maxInput > 0 && len(data) > p.maxInput {
		return nil, &amlErrors.Error{
			Type:     amlErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("input size %d exceeds maximum %d bytes", len(data), p.maxInput),
			Location: amlErrors.Location{File: source},
		}
	}

	p.depth = 0
	cur := NewCursor(data)

	node, err := start(p, cur)
	if err != nil {
		return nil, p.describeFailure(err, source, cur)
	}

	if !cur.EOF() {
		off := cur.Offset()
		ast.ReleaseDeep(p.alloc, node)
		if cur.HighWater() == len(data) {
			// A production consumed the remainder and still failed, so
			// the buffer ends mid-encoding rather than holding garbage.
			return nil, &amlErrors.Error{
				Type:       amlErrors.ErrorTypeTruncated,
				Message:    fmt.Sprintf("input ends inside an encoding, %d byte(s) before completion was possible", len(data)-off),
				Location:   amlErrors.Location{File: source, Offset: off},
				Suggestion: "the table may have been cut short while dumping",
			}
		}
		return nil, &amlErrors.Error{
			Type:       amlErrors.ErrorTypeSyntax,
			Message:    fmt.Sprintf("%d trailing byte(s) after the last matched production", len(data)-off),
			Location:   amlErrors.Location{File: source, Offset: off},
			Suggestion: "check that the buffer holds exactly one definition block",
		}
	}

	return node, nil
}

// describeFailure maps an engine outcome to the typed error surface.
func (p *Parser) describeFailure(err error, source string, cur *Cursor) error {
	loc := amlErrors.Location{File: source, Offset: cur.Offset()}

	switch {
	case IsMismatch(err):
		if cur.HighWater() == cur.Len() && cur.Len() > 0 {
			return &amlErrors.Error{
				Type:       amlErrors.ErrorTypeTruncated,
				Message:    "input ends in the middle of an encoding",
				Location:   amlErrors.Location{File: source, Offset: cur.HighWater()},
				Suggestion: "the table may have been cut short while dumping",
				Err:        err,
			}
		}
		return &amlErrors.Error{
			Type:     amlErrors.ErrorTypeSyntax,
			Message:  "input is not valid AML",
			Location: loc,
			Err:      err,
		}
	case errors.Is(err, ErrDepthExceeded):
		return &amlErrors.Error{
			Type:       amlErrors.ErrorTypeDepth,
			Message:    fmt.Sprintf("grammar nesting exceeds the limit of %d", p.maxDepth),
			Location:   loc,
			Suggestion: "raise the depth limit only for inputs from a trusted source",
			Err:        err,
		}
	case errors.Is(err, ast.ErrAllocFailed):
		return &amlErrors.Error{
			Type:     amlErrors.ErrorTypeResource,
			Message:  "node allocation failed during decoding",
			Location: loc,
			Err:      err,
		}
	default:
		return &amlErrors.Error{
			Type:     amlErrors.ErrorTypeSyntax,
			Message:  fmt.Sprintf("decoding aborted: %v", err),
			Location: loc,
			Err:      err,
		}
	}
}
