package jobpost

import (
	"regexp"
	"strings"
)

var (
	innerSpace  = regexp.MustCompile(`[ \t\f\v]+`)
	blankStreak = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes line endings, collapses runs of spaces and keeps at most
// one blank line between paragraphs.
func CleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = innerSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	}
	return strings.TrimSpace(blankStreak.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}
