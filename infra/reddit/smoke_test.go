//go:build smoke

package reddit

import (
	"context"
	"os"
	"strings"
	"testing"
)

// Live API checks, opt-in: go test -tags smoke ./infra/reddit with
// REDDIT2LLM_SMOKE_THREAD set to a real thread ID.
func smokeService(t *testing.T) *threadService {
	t.Helper()
	base := strings.TrimSpace(os.Getenv("REDDIT2LLM_BASE_URL"))
	if base == "" {
		base = "https://www.reddit.com"
	}
	if strings.TrimSpace(os.Getenv("REDDIT2LLM_SMOKE_THREAD")) == "" {
		t.Skip("REDDIT2LLM_SMOKE_THREAD not set")
	}
	client := NewClient(base, "reddit-to-llm-smoke/1.0", 0)
	return NewThreadService(client)
}

func TestSmoke_FetchPublicThread(t *testing.T) {
	svc := smokeService(t)
	id := strings.TrimSpace(os.Getenv("REDDIT2LLM_SMOKE_THREAD"))

	thread, err := svc.FetchThread(context.Background(), id)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if thread.Post.Title == "" {
		t.Fatalf("live thread must have a title: %+v", thread.Post)
	}
	for i, c := range thread.Comments {
		if c.ID == "" {
			t.Fatalf("comment %d has no id", i)
		}
		if c.Depth < 0 {
			t.Fatalf("comment %d has negative depth", i)
		}
	}
}
