package render

import (
	"encoding/json"

	"github.com/Jervi-sir/reddit-to-llm/domain"
)

// jsonDocument fixes the field order and presence of the structured
// encoding. Consumers may parse this programmatically, so the shape is a
// compatibility contract even though the indentation is not.
type jsonDocument struct {
	Title      string        `json:"title"`
	Subreddit  string        `json:"subreddit"`
	PostAuthor string        `json:"postAuthor"`
	Body       string        `json:"body"`
	Stats      domain.Stats  `json:"stats"`
	Comments   []jsonComment `json:"comments"`
}

type jsonComment struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Body     string `json:"body"`
	Score    *int   `json:"score"` // null when the source withheld it
	Depth    int    `json:"depth"`
	ParentID string `json:"parentId"`
}

// renderJSON emits the machine-readable encoding with two-space indents.
// Comment bodies stay raw here; only the text encodings trim them.
func renderJSON(post domain.Post, author, body string, stats domain.Stats, comments []domain.Comment) string {
	doc := jsonDocument{
		Title:      post.Title,
		Subreddit:  post.Subreddit,
		PostAuthor: author,
		Body:       body,
		Stats:      stats,
		Comments:   make([]jsonComment, 0, len(comments)),
	}
	for _, c := range comments {
		doc.Comments = append(doc.Comments, jsonComment{
			ID:       c.ID,
			Author:   c.Author,
			Body:     c.Body,
			Score:    c.Score,
			Depth:    c.Depth,
			ParentID: c.ParentID,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		// Plain strings and ints cannot fail to marshal; keep the renderer total.
		return "{}"
	}
	return string(data)
}
