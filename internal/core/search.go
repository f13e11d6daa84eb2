// ABOUTME: Keyword search engine scoring chunks by distinct query-term overlap
// ABOUTME: Produces ranked snippets ordered by (score desc, page asc)
package core

import (
	"sort"
	"strings"

	"github.com/harper/docchat/internal/models"
)

const (
	// snippetBefore is how far before the first term hit a snippet starts.
	snippetBefore = 80

	// snippetLength caps the snippet size.
	snippetLength = 240
)

// SearchChunks scores every chunk by how many distinct query terms occur
// as substrings of its lower-cased text. Chunks scoring zero are dropped;
// survivors are ranked by (score desc, page asc) and truncated to top.
func SearchChunks(chunks []models.Chunk, query string, top int) []models.SearchHit {
	query = strings.TrimSpace(query)
	if query == "" || top <= 0 {
		return nil
	}

	var terms []string
	seen := make(map[string]struct{})
	for _, f := range strings.Fields(query) {
		t := strings.ToLower(strings.TrimSpace(f))
		if len(t) <= 1 {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}
	if len(terms) == 0 {
		return nil
	}

	var hits []models.SearchHit
	for _, c := range chunks {
		lower := strings.ToLower(c.Text)
		if lower == "" {
			continue
		}

		score := 0
		for _, t := range terms {
			if strings.Contains(lower, t) {
				score++
			}
		}
		if score == 0 {
			continue
		}

		hits = append(hits, models.SearchHit{
			PageNumber: c.PageNumber,
			Score:      score,
			Snippet:    makeSnippet(c.Text, terms),
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].PageNumber < hits[j].PageNumber
	})

	if len(hits) > top {
		hits = hits[:top]
	}
	return hits
}

// makeSnippet extracts up to snippetLength characters around the first
// occurrence of the first matching term, collapsing newlines to spaces.
// A trailing " ..." marks snippets that stop before the chunk's end.
func makeSnippet(text string, terms []string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	lower := strings.ToLower(text)
	idx := -1
	for _, t := range terms {
		if i := strings.Index(lower, t); i >= 0 {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = 0
	}

	start := idx - snippetBefore
	if start < 0 {
		start = 0
	}
	length := len(text) - start
	if length > snippetLength {
		length = snippetLength
	}

	snippet := text[start : start+length]
	snippet = strings.ReplaceAll(snippet, "\r", " ")
	snippet = strings.ReplaceAll(snippet, "\n", " ")

	if start+length < len(text) {
		snippet += " ..."
	}
	return snippet
}
