package ast

import (
	"errors"
	"testing"
)

func TestAllocator_PayloadIsOwnedCopy(t *testing.T) {
	alloc := NewAllocator()
	src := []byte{0x10, 0x20, 0x30}

	node, err := alloc.Allocate(TagByteData, src)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}

	src[0] = 0xff
	src[1] = 0xff

	if node.Payload[0] != 0x10 || node.Payload[1] != 0x20 {
		t.Errorf("payload = %v, want owned copy of {10 20 30}", node.Payload)
	}
}

func TestAllocator_EmptyPayload(t *testing.T) {
	alloc := NewAllocator()

	for _, payload := range [][]byte{nil, {}} {
		node, err := alloc.Allocate(TagTermList, payload)
		if err != nil {
			t.Fatalf("Allocate() failed: %v", err)
		}
		if len(node.Payload) != 0 {
			t.Errorf("len(Payload) = %d, want 0", len(node.Payload))
		}
	}
}

// buildTree allocates a complete tree of the given depth and branching
// factor and returns the root and the number of nodes allocated.
func buildTree(t *testing.T, alloc Allocator, depth, branch int) (*Node, int) {
	t.Helper()
	if depth == 0 {
		return nil, 0
	}
	root, err := alloc.Allocate(TagTermList, nil)
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}
	total := 1
	for i := 0; i < branch; i++ {
		child, n := buildTree(t, alloc, depth-1, branch)
		if child != nil {
			root.AttachChild(child)
			total += n
		}
	}
	return root, total
}

func TestReleaseDeep_ExactCount(t *testing.T) {
	tests := []struct {
		depth, branch int
	}{
		{1, 0},
		{2, 3},
		{4, 2},
	}

	for _, tt := range tests {
		alloc := NewCountingAllocator(nil)
		root, total := buildTree(t, alloc, tt.depth, tt.branch)

		if alloc.Allocated() != total {
			t.Fatalf("depth=%d branch=%d: allocated %d, want %d", tt.depth, tt.branch, alloc.Allocated(), total)
		}

		ReleaseDeep(alloc, root)

		if alloc.Freed() != total {
			t.Errorf("depth=%d branch=%d: freed %d, want %d (no leaks, no double release)",
				tt.depth, tt.branch, alloc.Freed(), total)
		}
		if alloc.Live() != 0 {
			t.Errorf("depth=%d branch=%d: %d nodes still live", tt.depth, tt.branch, alloc.Live())
		}
	}
}

func TestReleaseShallow_SingleNode(t *testing.T) {
	alloc := NewCountingAllocator(nil)
	node, err := alloc.Allocate(TagPkgLength, []byte{0x05})
	if err != nil {
		t.Fatalf("Allocate() failed: %v", err)
	}

	ReleaseShallow(alloc, node)

	if alloc.Freed() != 1 {
		t.Errorf("Freed() = %d, want 1", alloc.Freed())
	}
}

func TestReleaseDeep_NilIsNoop(t *testing.T) {
	alloc := NewCountingAllocator(nil)
	ReleaseDeep(alloc, nil)
	ReleaseShallow(alloc, nil)
	if alloc.Freed() != 0 {
		t.Errorf("Freed() = %d, want 0", alloc.Freed())
	}
}

func TestCountingAllocator_FailAfter(t *testing.T) {
	alloc := NewCountingAllocator(nil)
	alloc.FailAfter(2)

	for i := 0; i < 2; i++ {
		if _, err := alloc.Allocate(TagByteData, nil); err != nil {
			t.Fatalf("allocation %d failed early: %v", i, err)
		}
	}

	_, err := alloc.Allocate(TagByteData, nil)
	if !errors.Is(err, ErrAllocFailed) {
		t.Fatalf("Allocate() error = %v, want ErrAllocFailed", err)
	}
	if alloc.Allocated() != 2 {
		t.Errorf("Allocated() = %d, want 2", alloc.Allocated())
	}
}
