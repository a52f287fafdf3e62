// Package render turns one fetched thread into its three interchangeable
// encodings: a verbose text for pasting into an LLM prompt, a compact
// one-line-per-comment text, and pretty-printed JSON. All three are built
// in a single pass over the same sorted view and never recomputed until
// the next fetch replaces them.
package render

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Jervi-sir/reddit-to-llm/domain"
)

// Mode selects one of the three encodings.
type Mode int

const (
	ModeLLMText Mode = iota
	ModeCompactText
	ModeJSON
)

func (m Mode) String() string {
	switch m {
	case ModeLLMText:
		return "llm"
	case ModeCompactText:
		return "compact"
	case ModeJSON:
		return "json"
	}
	return "unknown"
}

// Next cycles llm → compact → json → llm.
func (m Mode) Next() Mode { return (m + 1) % 3 }

// Prev cycles in the other direction.
func (m Mode) Prev() Mode { return (m + 2) % 3 }

// Outputs holds everything one successful fetch produces. The three
// strings are derived from the same sorted comments, so switching modes
// is a lookup, not a recomputation.
type Outputs struct {
	Stats   domain.Stats
	LLMText string
	Compact string
	JSON    string
}

// For returns the rendered string for a mode.
func (o Outputs) For(m Mode) string {
	switch m {
	case ModeCompactText:
		return o.Compact
	case ModeJSON:
		return o.JSON
	default:
		return o.LLMText
	}
}

// BuildOutputs runs the shared pipeline: resolve the post author display
// string, trim the self-text, sort comments by score once, aggregate
// stats once, then feed the identical inputs to all three renderers.
func BuildOutputs(post domain.Post, comments []domain.Comment) Outputs {
	sorted := sortByScore(comments)
	stats := domain.ComputeStats(post, sorted)
	author := postAuthorDisplay(post.Author)
	body := strings.TrimSpace(post.SelfText)

	return Outputs{
		Stats:   stats,
		LLMText: renderLLMText(post, author, body, sorted),
		Compact: renderCompact(post, author, body, sorted),
		JSON:    renderJSON(post, author, body, stats, sorted),
	}
}

// sortByScore returns a copy sorted by score descending, withheld scores
// reading as zero. The sort is stable, so equal scores keep their
// flattened pre-order position.
func sortByScore(comments []domain.Comment) []domain.Comment {
	sorted := slices.Clone(comments)
	slices.SortStableFunc(sorted, func(a, b domain.Comment) int {
		return cmp.Compare(b.ScoreValue(), a.ScoreValue())
	})
	return sorted
}

func postAuthorDisplay(author string) string {
	author = strings.TrimSpace(author)
	if author == "" {
		return domain.UnknownAuthor
	}
	return "u/" + author
}
