package ingestors

import (
	"regexp"
)

var lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

// SplitLines splits text on CRLF, CR or LF. Trailing empty lines are dropped, so "a\nb\n",
// "a\nb\n\n" and "a\nb" all give ["a", "b"]. Blank lines between text are kept.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := lineBreak.Split(text, -1)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
