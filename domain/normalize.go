package domain

import (
	"net/url"
	"strings"
	"unicode"
)

// ParseThreadID extracts the canonical thread identifier from free-form
// input: either a bare ID, which passes through unchanged, or an absolute
// thread URL, where the identifier is the path segment following the
// literal "comments" segment. Query strings and fragments never reach the
// segment scan.
func ParseThreadID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyInput
	}

	// No slash and no inner whitespace means the input already is an ID.
	if !strings.Contains(trimmed, "/") && !strings.ContainsFunc(trimmed, unicode.IsSpace) {
		return trimmed, nil
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", ErrInvalidInput
	}

	segments := strings.FieldsFunc(parsed.Path, func(r rune) bool { return r == '/' })
	for i, segment := range segments {
		if segment != "comments" {
			continue
		}
		if i+1 >= len(segments) {
			break
		}
		return segments[i+1], nil
	}
	return "", ErrInvalidInput
}
