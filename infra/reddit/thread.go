package reddit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/google/uuid"

	"github.com/Jervi-sir/reddit-to-llm/domain"
)

// kindComment tags comment nodes in Reddit's listing envelope. Only these
// become records; every other kind ("more" placeholders in particular) is
// skipped along with its subtree.
const kindComment = "t1"

// listing is Reddit's generic envelope around a sequence of kind-tagged
// things.
type listing struct {
	Data struct {
		Children []node `json:"children"`
	} `json:"data"`
}

// node is one kind-tagged element of a listing.
type node struct {
	Kind string `json:"kind"`
	Data thing  `json:"data"`
}

// thing carries the union of post and comment fields we read. Reddit
// sends one payload shape per kind; fields for the other kind stay zero.
type thing struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subreddit string    `json:"subreddit"`
	Author    string    `json:"author"`
	SelfText  string    `json:"selftext"`
	Body      string    `json:"body"`
	Score     *int      `json:"score"`
	ParentID  string    `json:"parent_id"`
	Replies   replyTree `json:"replies"`
}

// replyTree absorbs Reddit's quirk of sending the empty string instead of
// a listing object when a comment has no replies.
type replyTree struct {
	children []node
}

func (r *replyTree) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte(`""`)) || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var l listing
	if err := json.Unmarshal(trimmed, &l); err != nil {
		return fmt.Errorf("parsing replies: %w", err)
	}
	r.children = l.Data.Children
	return nil
}

// threadService implements app.ThreadService using Reddit's JSON API.
type threadService struct {
	client *Client
}

// NewThreadService creates a ThreadService backed by Reddit.
func NewThreadService(client *Client) *threadService {
	return &threadService{client: client}
}

// FetchThread retrieves one thread endpoint and maps its two-listing
// envelope (the post, then the comment tree) into the domain model.
func (s *threadService) FetchThread(ctx context.Context, id string) (domain.Thread, error) {
	fetchID := uuid.NewString()
	path := fmt.Sprintf("/comments/%s.json?raw_json=1", url.PathEscape(id))
	slog.Debug("fetching thread", "fetch_id", fetchID, "thread_id", id)

	data, err := s.client.Get(ctx, path)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("fetching thread %s: %w", id, err)
	}

	var envelope []listing
	if err := json.Unmarshal(data, &envelope); err != nil {
		return domain.Thread{}, fmt.Errorf("parsing thread: %w", err)
	}
	if len(envelope) < 2 {
		return domain.Thread{}, fmt.Errorf("parsing thread: expected post and comment listings, got %d", len(envelope))
	}

	post, err := extractPost(envelope[0])
	if err != nil {
		return domain.Thread{}, err
	}
	comments := flattenComments(envelope[1].Data.Children, 0)
	slog.Debug("thread fetched", "fetch_id", fetchID, "comments", len(comments))

	return domain.Thread{Post: post, Comments: comments}, nil
}

func extractPost(l listing) (domain.Post, error) {
	if len(l.Data.Children) == 0 {
		return domain.Post{}, fmt.Errorf("parsing thread: post listing is empty")
	}
	d := l.Data.Children[0].Data
	return domain.Post{
		Title:     d.Title,
		Subreddit: d.Subreddit,
		Author:    d.Author,
		SelfText:  d.SelfText,
		Score:     scoreOrZero(d.Score),
	}, nil
}

func scoreOrZero(s *int) int {
	if s == nil {
		return 0
	}
	return *s
}

// flattenComments linearizes a nested reply listing depth-first,
// pre-order, children in source order. depth seeds the top level (0 for
// a thread's top-level comments); each nesting level adds one. The walk
// keeps its own stack, so nesting depth is bounded by memory rather than
// the call stack.
func flattenComments(nodes []node, depth int) []domain.Comment {
	type frame struct {
		node  node
		depth int
	}

	stack := make([]frame, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, frame{nodes[i], depth})
	}

	var comments []domain.Comment
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.Kind != kindComment {
			continue
		}

		comments = append(comments, newComment(f.node.Data, f.depth))

		children := f.node.Data.Replies.children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], f.depth + 1})
		}
	}
	return comments
}

func newComment(d thing, depth int) domain.Comment {
	author := d.Author
	if author == "" {
		author = domain.DeletedAuthor
	}
	return domain.Comment{
		ID:       d.ID,
		Author:   author,
		Body:     d.Body,
		Score:    d.Score,
		ParentID: d.ParentID,
		Depth:    depth,
	}
}
