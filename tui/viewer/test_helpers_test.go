package viewer

import (
	"context"

	"github.com/Jervi-sir/reddit-to-llm/domain"
)

func intPtr(v int) *int { return &v }

type stubThreadService struct {
	thread domain.Thread
	err    error
	calls  int
	lastID string
}

func (s *stubThreadService) FetchThread(_ context.Context, id string) (domain.Thread, error) {
	s.calls++
	s.lastID = id
	return s.thread, s.err
}

type stubClipboard struct {
	err    error
	copied []string
}

func (c *stubClipboard) Copy(text string) error {
	c.copied = append(c.copied, text)
	return c.err
}

func makeThread() domain.Thread {
	return domain.Thread{
		Post: domain.Post{
			Title:     "Go generics in practice",
			Subreddit: "golang",
			Author:    "gopher",
			SelfText:  "What changed for you since 1.18?",
			Score:     321,
		},
		Comments: []domain.Comment{
			{ID: "c1", Author: "alice", Body: "Constraints clicked for me.", Score: intPtr(40), ParentID: "t3_abc123", Depth: 0},
			{ID: "c2", Author: "bob", Body: "Still writing interfaces.", Score: intPtr(7), ParentID: "t1_c1", Depth: 1},
			{ID: "c3", Author: domain.DeletedAuthor, Body: "", Score: nil, ParentID: "t3_abc123", Depth: 0},
		},
	}
}

// sized returns a model that has seen a WindowSizeMsg, so the viewport
// exists and View renders the full layout.
func sized(m Model) Model {
	m.width = 100
	m.height = 40
	m.resizeViewport()
	m.refreshViewport()
	return m
}
