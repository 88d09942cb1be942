package newsdesk

import "strings"

// NormalizeText collapses the irregular whitespace left behind by HTML
// markup into ordinary prose spacing. Each line is trimmed and split on
// whitespace runs; the non-empty chunks of all lines are joined with
// single spaces. NormalizeText(NormalizeText(s)) == NormalizeText(s).
func NormalizeText(s string) string {
	var chunks []string
	for _, line := range strings.Split(s, "\n") {
		chunks = append(chunks, strings.Fields(strings.TrimSpace(line))...)
	}
	return strings.Join(chunks, " ")
}
