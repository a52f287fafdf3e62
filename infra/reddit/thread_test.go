package reddit

import (
	"encoding/json"
	"testing"

	"github.com/Jervi-sir/reddit-to-llm/domain"
)

func intPtr(v int) *int { return &v }

func comment(id string, score *int, children ...node) node {
	return node{
		Kind: kindComment,
		Data: thing{
			ID:      id,
			Author:  "user_" + id,
			Body:    "body " + id,
			Score:   score,
			Replies: replyTree{children: children},
		},
	}
}

func TestFlattenComments_DepthAndOrder(t *testing.T) {
	//  a
	//  ├─ b
	//  │  └─ c
	//  └─ d
	//  e
	tree := []node{
		comment("a", intPtr(1),
			comment("b", intPtr(2),
				comment("c", intPtr(3)),
			),
			comment("d", intPtr(4)),
		),
		comment("e", intPtr(5)),
	}

	got := flattenComments(tree, 0)

	wantOrder := []string{"a", "b", "c", "d", "e"}
	wantDepth := []int{0, 1, 2, 1, 0}
	if len(got) != len(wantOrder) {
		t.Fatalf("record count mismatch: got %d want %d", len(got), len(wantOrder))
	}
	for i := range got {
		if got[i].ID != wantOrder[i] {
			t.Fatalf("pre-order violated at %d: got %q want %q", i, got[i].ID, wantOrder[i])
		}
		if got[i].Depth != wantDepth[i] {
			t.Fatalf("depth mismatch for %q: got %d want %d", got[i].ID, got[i].Depth, wantDepth[i])
		}
	}
}

func TestFlattenComments_SeedDepth(t *testing.T) {
	tree := []node{comment("a", nil, comment("b", nil))}

	got := flattenComments(tree, 3)

	if got[0].Depth != 3 || got[1].Depth != 4 {
		t.Fatalf("seed depth must offset the whole walk: %+v", got)
	}
}

func TestFlattenComments_SkipsNonCommentSubtrees(t *testing.T) {
	more := node{
		Kind: "more",
		Data: thing{
			ID:      "m1",
			Replies: replyTree{children: []node{comment("hidden", intPtr(9))}},
		},
	}
	tree := []node{comment("a", intPtr(1)), more, comment("b", intPtr(2))}

	got := flattenComments(tree, 0)

	if len(got) != 2 {
		t.Fatalf("non-comment nodes and their subtrees must contribute nothing: %+v", got)
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestFlattenComments_CountsEveryCommentOnce(t *testing.T) {
	// 1 root with 3 children, each with 2 children of its own: 10 nodes.
	var level2 []node
	root := comment("root", nil)
	for _, c := range []string{"x", "y", "z"} {
		child := comment(c, nil, comment(c+"1", nil), comment(c+"2", nil))
		level2 = append(level2, child)
	}
	root.Data.Replies = replyTree{children: level2}

	got := flattenComments([]node{root}, 0)

	if len(got) != 10 {
		t.Fatalf("expected one record per comment node, got %d", len(got))
	}
}

func TestFlattenComments_DeepNesting(t *testing.T) {
	const levels = 50_000
	leaf := comment("n", nil)
	for i := 1; i < levels; i++ {
		leaf = comment("n", nil, leaf)
	}

	got := flattenComments([]node{leaf}, 0)

	if len(got) != levels {
		t.Fatalf("record count mismatch: got %d want %d", len(got), levels)
	}
	if got[levels-1].Depth != levels-1 {
		t.Fatalf("deepest record depth mismatch: %d", got[levels-1].Depth)
	}
}

func TestFlattenComments_SubstitutesDeletedAuthor(t *testing.T) {
	tree := []node{{Kind: kindComment, Data: thing{ID: "a"}}}

	got := flattenComments(tree, 0)

	if got[0].Author != domain.DeletedAuthor {
		t.Fatalf("missing author must read %q, got %q", domain.DeletedAuthor, got[0].Author)
	}
	if got[0].Body != "" {
		t.Fatalf("missing body must stay empty, got %q", got[0].Body)
	}
	if got[0].Score != nil {
		t.Fatalf("missing score must stay nil")
	}
}

func TestReplyTree_UnmarshalQuirks(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		children int
		wantErr  bool
	}{
		{name: "empty string for leaves", payload: `{"id":"a","replies":""}`, children: 0},
		{name: "null", payload: `{"id":"a","replies":null}`, children: 0},
		{name: "absent", payload: `{"id":"a"}`, children: 0},
		{
			name:     "nested listing",
			payload:  `{"id":"a","replies":{"kind":"Listing","data":{"children":[{"kind":"t1","data":{"id":"b","replies":""}}]}}}`,
			children: 1,
		},
		{name: "malformed listing", payload: `{"id":"a","replies":42}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d thing
			err := json.Unmarshal([]byte(tc.payload), &d)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected unmarshal error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if len(d.Replies.children) != tc.children {
				t.Fatalf("children mismatch: got %d want %d", len(d.Replies.children), tc.children)
			}
		})
	}
}

func TestFlattenComments_ParentIDPassesThrough(t *testing.T) {
	payload := `{"kind":"Listing","data":{"children":[
		{"kind":"t1","data":{"id":"c1","author":"bob","body":"hi","score":5,"parent_id":"t3_abc","replies":""}}
	]}}`
	var l listing
	if err := json.Unmarshal([]byte(payload), &l); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	got := flattenComments(l.Data.Children, 0)

	if len(got) != 1 || got[0].ParentID != "t3_abc" {
		t.Fatalf("parent id must pass through untouched: %+v", got)
	}
}
