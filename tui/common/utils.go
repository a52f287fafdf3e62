package common

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// ClampWidth cuts every line of text to at most width terminal cells,
// counting display width rather than bytes so styled and wide characters
// survive intact.
func ClampWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Cut(ln, 0, width)
	}
	return strings.Join(lines, "\n")
}

// ApproxTokens estimates the LLM token count of text with the usual
// four-characters-per-token rule of thumb, rounded up.
func ApproxTokens(text string) int {
	runes := utf8.RuneCountInString(text)
	if runes == 0 {
		return 0
	}
	return (runes + 3) / 4
}
