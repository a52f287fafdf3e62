package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Jervi-sir/reddit-to-llm/domain"
)

const noBody = "(no body)"

var newlineRuns = regexp.MustCompile(`\n{2,}`)

// collapseNewlines squeezes every run of two or more newlines down to one.
// Applied once to the assembled document, not per comment.
func collapseNewlines(s string) string {
	return newlineRuns.ReplaceAllString(s, "\n")
}

// collapseSpaces folds all whitespace runs, newlines included, into single
// spaces and trims the ends.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// writeHeader emits the section shared by both text encodings: the labeled
// title, subreddit and author lines, then the post body or its sentinel.
func writeHeader(b *strings.Builder, post domain.Post, author, body string) {
	fmt.Fprintf(b, "TITLE: %s\n", post.Title)
	fmt.Fprintf(b, "SUBREDDIT: r/%s\n", post.Subreddit)
	fmt.Fprintf(b, "POST_AUTHOR: %s\n\n", author)

	b.WriteString("POST_BODY:\n")
	if body == "" {
		body = noBody
	}
	b.WriteString(body)
	b.WriteString("\n\nCOMMENTS:\n")
}

// renderLLMText emits the verbose encoding: one block per comment with a
// depth label so a language model can see the reply structure without the
// original nesting.
func renderLLMText(post domain.Post, author, body string, comments []domain.Comment) string {
	var b strings.Builder
	writeHeader(&b, post, author, body)

	for _, c := range comments {
		text := strings.TrimSpace(c.Body)
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "[d%d] %s:\n%s\n\n", c.Depth, c.Author, text)
	}

	return strings.TrimSpace(collapseNewlines(b.String()))
}

// renderCompact emits the dense encoding: the same header, then exactly
// one line per comment with all inner whitespace folded away.
func renderCompact(post domain.Post, author, body string, comments []domain.Comment) string {
	var b strings.Builder
	writeHeader(&b, post, author, body)

	for _, c := range comments {
		text := collapseSpaces(c.Body)
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "d%d · %s: %s\n", c.Depth, c.Author, text)
	}

	return strings.TrimSpace(collapseNewlines(b.String()))
}
