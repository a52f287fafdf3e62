package domain

import (
	"errors"
	"testing"
)

func TestParseThreadID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		err   error
	}{
		{name: "bare id", input: "abc123", want: "abc123"},
		{name: "bare id padded", input: "  abc123\n", want: "abc123"},
		{name: "full thread url", input: "https://www.reddit.com/r/golang/comments/abc123/some_title/", want: "abc123"},
		{name: "url without trailing slug", input: "https://www.reddit.com/r/golang/comments/abc123", want: "abc123"},
		{name: "short domain url", input: "https://reddit.com/comments/xyz9", want: "xyz9"},
		{name: "url with query and fragment", input: "https://www.reddit.com/r/golang/comments/abc123/title/?sort=top#body", want: "abc123"},
		{name: "comments is last segment", input: "https://www.reddit.com/r/golang/comments/", err: ErrInvalidInput},
		{name: "no comments segment", input: "https://www.reddit.com/r/golang/hot/", err: ErrInvalidInput},
		{name: "uppercase segment does not match", input: "https://www.reddit.com/r/golang/Comments/abc123/", err: ErrInvalidInput},
		{name: "relative url", input: "/r/golang/comments/abc123/", err: ErrInvalidInput},
		{name: "scheme only", input: "https:///comments/abc123", err: ErrInvalidInput},
		{name: "inner whitespace", input: "abc 123", err: ErrInvalidInput},
		{name: "empty", input: "", err: ErrEmptyInput},
		{name: "whitespace only", input: "  \t\n", err: ErrEmptyInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseThreadID(tc.input)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("error mismatch: got %v want %v", err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("id mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}
