// ABOUTME: Intent classifier mapping raw input text to a tagged query intent
// ABOUTME: Deterministic rule order; pure function, no session state consulted
package core

import (
	"strconv"
	"strings"

	"github.com/harper/docchat/internal/models"
)

// findPrefix marks explicit keyword searches.
const findPrefix = "find:"

// DetectIntent classifies one user turn. Rules apply in order: exact help
// forms, the "find:" prefix, summary keywords (optionally page-scoped),
// page-extraction phrasing, then General.
func DetectIntent(text string) models.QueryIntent {
	lower := strings.ToLower(strings.TrimSpace(text))

	switch lower {
	case "help", "/help", "?", "commands":
		return models.QueryIntent{Kind: models.IntentHelp}
	}

	if strings.HasPrefix(lower, findPrefix) {
		keyword := strings.TrimSpace(strings.TrimSpace(text)[len(findPrefix):])
		return models.QueryIntent{Kind: models.IntentFind, FindKeyword: keyword}
	}

	page := pageNumberIn(lower)

	if strings.Contains(lower, "summary") || strings.Contains(lower, "summarize") ||
		strings.Contains(lower, "gist") || strings.Contains(lower, "overview") {
		if page > 0 {
			return models.QueryIntent{Kind: models.IntentSummarizePage, PageNumber: page}
		}
		return models.QueryIntent{Kind: models.IntentSummarizeDocument}
	}

	if page > 0 && (strings.HasPrefix(lower, "page ") ||
		strings.Contains(lower, "show page") ||
		strings.Contains(lower, "open page") ||
		strings.Contains(lower, "what is on page")) {
		return models.QueryIntent{Kind: models.IntentExtractPage, PageNumber: page}
	}

	return models.QueryIntent{Kind: models.IntentGeneral}
}

// pageNumberIn scans lower-cased text for a "page N" pattern and returns
// N, or -1 when absent. The digit run ends at the first non-digit.
func pageNumberIn(lower string) int {
	idx := strings.Index(lower, "page ")
	if idx < 0 {
		return -1
	}

	idx += len("page ")
	var digits strings.Builder
	for idx < len(lower) {
		c := lower[idx]
		if c < '0' || c > '9' {
			break
		}
		digits.WriteByte(c)
		idx++
	}

	page, err := strconv.Atoi(digits.String())
	if err != nil {
		return -1
	}
	return page
}

// IsFollowUp reports whether lower-cased input is a known follow-up
// phrase referring back to the previous question.
func IsFollowUp(lower string) bool {
	switch lower {
	case "explain more", "tell me more", "more":
		return true
	}
	return strings.Contains(lower, "explain that") ||
		strings.Contains(lower, "what about that") ||
		strings.Contains(lower, "what do you mean") ||
		strings.Contains(lower, "elaborate")
}
