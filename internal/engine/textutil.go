package engine

import (
	"regexp"
	"strings"
)

// User-Agent sent on API calls that don't need to look like a browser.
const UserAgentBot = "go_vidpost/1.0"

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanHTML strips HTML tags and trims whitespace.
func CleanHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

// CollapseSpaces replaces every whitespace run with a single space.
func CollapseSpaces(s string) string {
	return whitespaceRe.ReplaceAllString(s, " ")
}

// TruncateAtSentence caps s at limit runes. When the cut lands past 80% of the
// limit on a period, it ends there (period kept); otherwise it hard-cuts and
// appends "...".
func TruncateAtSentence(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	head := r[:limit]
	lastPeriod := -1
	for i := len(head) - 1; i >= 0; i-- {
		if head[i] == '.' {
			lastPeriod = i
			break
		}
	}
	if float64(lastPeriod) > float64(limit)*0.8 {
		return string(head[:lastPeriod+1])
	}
	return string(head) + "..."
}

// Preview returns the first n runes of s followed by "..." when s is longer.
func Preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// LastRunes returns the last n runes of s (all of s when shorter).
func LastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
