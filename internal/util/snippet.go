package util

import (
	"strings"
)

// ExtractSnippet returns up to maxLines lines of context around line (1-based).
func ExtractSnippet(lines []string, line, maxLines int) string {
	if maxLines <= 0 {
		maxLines = 4
	}
	if len(lines) == 0 {
		return ""
	}
	i := line - 1
	if i < 0 {
		i = 0
	}
	if i >= len(lines) {
		i = len(lines) - 1
	}
	s := max(0, i-maxLines/2)
	e := min(len(lines)-1, i+maxLines/2)
	var out []string
	for _, l := range lines[s : e+1] {
		out = append(out, strings.TrimRight(l, " \t"))
	}
	return strings.Join(out, "\n")
}
