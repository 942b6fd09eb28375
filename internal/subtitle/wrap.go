package subtitle

import (
	"strings"
	"unicode/utf8"
)

// Wrap reflows text into lines of at most maxLength characters using greedy
// whitespace wrapping. Lengths count code points, not bytes. A single word
// longer than maxLength is emitted on its own line unsplit. Text with no
// words yields no lines.
func Wrap(text string, maxLength int) []string {
	var lines []string
	var current string

	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= maxLength:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return lines
}
