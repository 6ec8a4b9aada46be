package domain

import "strings"

// AnswersMatch is the exact-match grading policy: case-insensitive equality after
// trimming surrounding whitespace. Inner whitespace is significant.
func AnswersMatch(userAnswer, canonical string) bool {
	return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(canonical))
}

// NormalizeTags trims tags, drops empty ones and removes duplicates (first wins).
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
