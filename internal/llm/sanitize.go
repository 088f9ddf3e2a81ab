package llm

import (
	"regexp"
	"strings"
)

// The service wraps JSON in markdown fences often enough that stripping is
// unconditional, regardless of what the prompt asked for.
var reCodeFence = regexp.MustCompile("```json\n?|\n?```")

// StripCodeFence removes surrounding triple-backtick markup (with an optional
// json tag) and trims whitespace. Text without fences passes through
// unchanged apart from trimming.
func StripCodeFence(s string) string {
	return strings.TrimSpace(reCodeFence.ReplaceAllString(s, ""))
}
