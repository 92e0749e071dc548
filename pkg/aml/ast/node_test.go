package ast

import (
	"strings"
	"testing"
)

func TestNode_AttachChild(t *testing.T) {
	parent := &Node{Tag: TagTermList}
	first := &Node{Tag: TagByteData}
	second := &Node{Tag: TagWordData}

	parent.AttachChild(first)
	parent.AttachChild(second)

	if len(parent.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(parent.Children))
	}
	if parent.Children[0] != first || parent.Children[1] != second {
		t.Error("children attached out of order")
	}
}

func TestNode_AttachChild_NilSafe(t *testing.T) {
	parent := &Node{Tag: TagTermList}
	parent.AttachChild(nil)
	if len(parent.Children) != 0 {
		t.Errorf("len(Children) = %d, want 0 after attaching nil", len(parent.Children))
	}

	var absent *Node
	absent.AttachChild(&Node{Tag: TagByteData}) // must not panic
}

func TestNode_CountAndDepth(t *testing.T) {
	tests := []struct {
		name      string
		build     func() *Node
		wantCount int
		wantDepth int
	}{
		{
			name:      "nil tree",
			build:     func() *Node { return nil },
			wantCount: 0,
			wantDepth: 0,
		},
		{
			name:      "single leaf",
			build:     func() *Node { return &Node{Tag: TagByteData} },
			wantCount: 1,
			wantDepth: 1,
		},
		{
			name: "branching",
			build: func() *Node {
				root := &Node{Tag: TagTermList}
				for i := 0; i < 3; i++ {
					child := &Node{Tag: TagDataObject}
					child.AttachChild(&Node{Tag: TagByteData})
					root.AttachChild(child)
				}
				return root
			},
			wantCount: 7,
			wantDepth: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := tt.build()
			if got := root.Count(); got != tt.wantCount {
				t.Errorf("Count() = %d, want %d", got, tt.wantCount)
			}
			if got := root.Depth(); got != tt.wantDepth {
				t.Errorf("Depth() = %d, want %d", got, tt.wantDepth)
			}
		})
	}
}

func TestNode_Dump(t *testing.T) {
	root := &Node{Tag: TagByteConst}
	root.AttachChild(&Node{Tag: TagByteData, Payload: []byte{0x42}})

	var sb strings.Builder
	root.Dump(&sb, 0)
	out := sb.String()

	if !strings.Contains(out, "ByteConst") {
		t.Errorf("dump output missing root tag: %q", out)
	}
	if !strings.Contains(out, "ByteData [42]") {
		t.Errorf("dump output missing leaf payload: %q", out)
	}
}

func TestTag_String(t *testing.T) {
	if got := TagByteConst.String(); got != "ByteConst" {
		t.Errorf("TagByteConst.String() = %q, want %q", got, "ByteConst")
	}
	if got := Tag(10000).String(); got != "Unknown" {
		t.Errorf("out-of-range tag String() = %q, want %q", got, "Unknown")
	}
}

func TestWalk_PreOrder(t *testing.T) {
	root := &Node{Tag: TagTermList}
	obj := &Node{Tag: TagDataObject}
	obj.AttachChild(&Node{Tag: TagByteData})
	root.AttachChild(obj)
	root.AttachChild(&Node{Tag: TagWordData})

	var visited []Tag
	err := Walk(root, VisitorFunc(func(n *Node, depth int) error {
		visited = append(visited, n.Tag)
		return nil
	}))
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}

	want := []Tag{TagTermList, TagDataObject, TagByteData, TagWordData}
	if len(visited) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(visited), len(want))
	}
	for i, tag := range want {
		if visited[i] != tag {
			t.Errorf("visited[%d] = %s, want %s", i, visited[i], tag)
		}
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	root := &Node{Tag: TagTermList}
	root.AttachChild(&Node{Tag: TagByteData})
	root.AttachChild(&Node{Tag: TagWordData})

	count := 0
	err := Walk(root, VisitorFunc(func(n *Node, depth int) error {
		count++
		if n.Tag == TagByteData {
			return ErrAllocFailed // any error stops the walk
		}
		return nil
	}))
	if err == nil {
		t.Fatal("Walk() should propagate the visitor error")
	}
	if count != 2 {
		t.Errorf("visited %d nodes before stopping, want 2", count)
	}
}
