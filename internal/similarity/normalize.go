package similarity

import "strings"

// terminalPunctuation is the set of characters stripped from the end of a
// phrase before comparison. Interior punctuation is kept: "co to jest?" and
// "co, to jest" are different answers.
const terminalPunctuation = ".,!?;:…"

// Normalize prepares text for comparison: lowercase, trim, collapse internal
// whitespace to single spaces, and strip terminal punctuation.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimRight(s, terminalPunctuation)
	return strings.TrimSpace(s)
}
