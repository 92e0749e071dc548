package ast

import "errors"

// ErrAllocFailed is returned by an Allocator that cannot produce a node.
// The decoding engine treats it as fatal: it is never retried as an
// alternative and unwinds the whole parse.
var ErrAllocFailed = errors.New("ast: node allocation failed")

// Allocator produces and reclaims nodes. The decoding engine creates every
// node through an Allocator so that callers can account for allocations,
// inject failures, or pool storage. Implementations must deep-copy the
// payload: the returned node must stay valid after the source buffer is
// reused or freed.
type Allocator interface {
	// Allocate returns a fresh node with the given tag and an owned copy
	// of payload. A nil or empty payload yields an empty owned payload.
	Allocate(tag Tag, payload []byte) (*Node, error)

	// Free reclaims a single node. It does not touch the node's children;
	// use ReleaseDeep to reclaim a whole subtree.
	Free(*Node)
}

// heapAllocator is the default Allocator backed by the Go heap.
type heapAllocator struct{}

// NewAllocator returns the default heap-backed allocator.
func NewAllocator() Allocator {
	return heapAllocator{}
}

func (heapAllocator) Allocate(tag Tag, payload []byte) (*Node, error) {
	node := &Node{Tag: tag}
	if len(payload) > 0 {
		node.Payload = make([]byte, len(payload))
		copy(node.Payload, payload)
	}
	return node, nil
}

func (heapAllocator) Free(node *Node) {
	if node == nil {
		return
	}
	// Sever edges so a stale reference cannot resurrect the subtree.
	node.Payload = nil
	node.Children = nil
}

// ReleaseShallow returns a single node to the allocator without touching its
// subtree. Only valid when the caller can prove no children are attached;
// the standard cleanup path once a node owns children is ReleaseDeep.
func ReleaseShallow(alloc Allocator, node *Node) {
	if node == nil {
		return
	}
	alloc.Free(node)
}

// ReleaseDeep returns the entire subtree rooted at node to the allocator,
// children first. Safe to call on nil.
func ReleaseDeep(alloc Allocator, node *Node) {
	if node == nil {
		return
	}
	for _, child := range node.Children {
		ReleaseDeep(alloc, child)
	}
	alloc.Free(node)
}

// ReleaseAll deep-releases every node in the slice. Used by the engine to
// unwind a partially accumulated child list.
func ReleaseAll(alloc Allocator, nodes []*Node) {
	for _, node := range nodes {
		ReleaseDeep(alloc, node)
	}
}

// CountingAllocator wraps another Allocator and tracks the number of live
// nodes. It can also be armed to fail after a set number of allocations,
// which the tests use to exercise the engine's fatal unwind paths.
type CountingAllocator struct {
	inner Allocator

	allocated int
	freed     int

	// failAfter < 0 disables failure injection.
	failAfter int
}

// NewCountingAllocator returns a CountingAllocator wrapping inner, or the
// default allocator when inner is nil.
func NewCountingAllocator(inner Allocator) *CountingAllocator {
	if inner == nil {
		inner = NewAllocator()
	}
	return &CountingAllocator{inner: inner, failAfter: -1}
}

// FailAfter arms the allocator to fail once n further allocations have
// succeeded. FailAfter(0) makes the next Allocate fail.
func (c *CountingAllocator) FailAfter(n int) {
	c.failAfter = n
}

// Allocated returns the total number of successful allocations.
func (c *CountingAllocator) Allocated() int { return c.allocated }

// Freed returns the total number of nodes returned via Free.
func (c *CountingAllocator) Freed() int { return c.freed }

// Live returns the number of allocated nodes not yet freed.
func (c *CountingAllocator) Live() int { return c.allocated - c.freed }

func (c *CountingAllocator) Allocate(tag Tag, payload []byte) (*Node, error) {
	if c.failAfter == 0 {
		return nil, ErrAllocFailed
	}
	if c.failAfter > 0 {
		c.failAfter--
	}
	node, err := c.inner.Allocate(tag, payload)
	if err != nil {
		return nil, err
	}
	c.allocated++
	return node, nil
}

func (c *CountingAllocator) Free(node *Node) {
	if node == nil {
		return
	}
	c.freed++
	c.inner.Free(node)
}
