// Package reply turns raw model output into text that is safe to hand to a
// text-to-speech client.
package reply

import (
	"regexp"
	"strings"
)

var (
	reDoubleStar       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	reDoubleUnderscore = regexp.MustCompile(`__(.*?)__`)
	reSingleStar       = regexp.MustCompile(`\*(.*?)\*`)
	reSingleUnderscore = regexp.MustCompile(`_(.*?)_`)
	reHeading          = regexp.MustCompile(`(?m)^\s*#+\s?`)
	reLink             = regexp.MustCompile(`\[(.*?)\]\(.*?\)`)
	reBlankLines       = regexp.MustCompile(`\n{2,}`)
)

// Sanitize strips markdown emphasis, headings and links and collapses blank
// lines. Headings and links go before the blank-line pass because removing
// them can leave empty lines behind. The pass repeats until the text stops
// changing, so nested markup such as "# # Title" is fully removed.
func Sanitize(text string) string {
	text = sanitizePass(text)
	// Every pass that changes the text makes it shorter.
	for i := len(text); i > 0; i-- {
		next := sanitizePass(text)
		if next == text {
			break
		}
		text = next
	}
	return text
}

func sanitizePass(text string) string {
	text = reDoubleStar.ReplaceAllString(text, "$1")
	text = reDoubleUnderscore.ReplaceAllString(text, "$1")
	text = reSingleStar.ReplaceAllString(text, "$1")
	text = reSingleUnderscore.ReplaceAllString(text, "$1")
	text = reHeading.ReplaceAllString(text, "")
	text = reLink.ReplaceAllString(text, "$1")
	text = reBlankLines.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
