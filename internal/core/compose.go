// ABOUTME: Text helpers for answer composition: bullets, key sentences, excerpts
// ABOUTME: Heuristic extraction shared by the summarize and general answer paths
package core

import "strings"

const (
	minBulletLineLen   = 6
	maxHeadingLen      = 70
	minHeadingLen      = 10
	minKeySentenceLen  = 25
	maxKeySentenceLen  = 220
	pageExcerptMaxLen  = 900
)

// ExtractBulletLines collects up to max lines that read like list items
// or headings: bullet markers, or short lines with no sentence periods.
func ExtractBulletLines(text string, max int) []string {
	var result []string
	if strings.TrimSpace(text) == "" || max <= 0 {
		return result
	}

	for _, raw := range strings.FieldsFunc(text, func(r rune) bool { return r == '\r' || r == '\n' }) {
		line := strings.TrimSpace(raw)
		if len(line) < minBulletLineLen {
			continue
		}

		if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") ||
			strings.HasPrefix(line, "*") || looksLikeHeading(line) {
			result = append(result, cleanLine(line))
			if len(result) >= max {
				break
			}
		}
	}
	return result
}

// looksLikeHeading treats short period-free lines as headings.
func looksLikeHeading(line string) bool {
	if len(line) > maxHeadingLen {
		return false
	}
	return !strings.Contains(line, ".") && len(line) >= minHeadingLen
}

func cleanLine(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "  ", " ")
	return strings.TrimSpace(s)
}

// ExtractKeySentences returns up to max sentences between 25 and 220
// characters, truncating longer ones, each re-terminated with a period.
func ExtractKeySentences(text string, max int) []string {
	var result []string
	if strings.TrimSpace(text) == "" || max <= 0 {
		return result
	}

	flat := strings.ReplaceAll(strings.ReplaceAll(text, "\r", " "), "\n", " ")
	for _, part := range strings.FieldsFunc(flat, func(r rune) bool {
		return r == '.' || r == '?' || r == '!'
	}) {
		sentence := strings.TrimSpace(part)
		if len(sentence) < minKeySentenceLen {
			continue
		}
		if len(sentence) > maxKeySentenceLen {
			sentence = strings.TrimSpace(sentence[:maxKeySentenceLen])
		}

		result = append(result, sentence+".")
		if len(result) >= max {
			break
		}
	}
	return result
}

// PageExcerpt flattens a chunk's text to a single line of at most
// maxChars characters, with " ..." marking truncation.
func PageExcerpt(text string, maxChars int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	flat := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(text, "\r", " "), "\n", " "))
	if len(flat) <= maxChars {
		return flat
	}
	return strings.TrimSpace(flat[:maxChars]) + " ..."
}
