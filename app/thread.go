package app

import (
	"context"

	"github.com/Jervi-sir/reddit-to-llm/domain"
)

// ThreadService fetches one public thread.
type ThreadService interface {
	// FetchThread returns the post and its full reply tree, flattened
	// depth-first with depth annotations, in API order.
	FetchThread(ctx context.Context, id string) (domain.Thread, error)
}
