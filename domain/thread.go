package domain

// Sentinel display values for author data the API omits.
const (
	DeletedAuthor = "[deleted]"
	UnknownAuthor = "[unknown]"
)

// Post is the submission at the root of a thread.
type Post struct {
	Title     string
	Subreddit string // Bare name, without the "r/" prefix
	Author    string // Empty when the API omits it; display layers substitute UnknownAuthor
	SelfText  string // Raw self-text; may be empty for link posts
	Score     int
}

// Comment is one reply, flattened out of the reply tree. Depth counts
// comment ancestors only: 0 for direct replies to the post, +1 per
// nesting level. Depth is assigned by the flattening walk, never read
// from the payload.
type Comment struct {
	ID       string
	Author   string // DeletedAuthor when the API omits it
	Body     string // Empty when the API omits it
	Score    *int   // nil when the API withholds it (e.g. score hiding)
	ParentID string // Fullname of the immediate parent, as sent; not validated
	Depth    int
}

// ScoreValue returns the score with a withheld score coerced to 0.
// Rendering keeps the nil; aggregation and sorting use this.
func (c Comment) ScoreValue() int {
	if c.Score == nil {
		return 0
	}
	return *c.Score
}

// Thread bundles a post with its flattened comments in API order.
type Thread struct {
	Post     Post
	Comments []Comment
}
