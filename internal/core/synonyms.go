// ABOUTME: Synonym expander backed by an external thesaurus capability
// ABOUTME: Caches per (word, max) for the session; failures cached as empty
package core

import (
	"context"
	"strconv"
	"strings"
)

// SynonymProvider is the external thesaurus capability.
type SynonymProvider interface {
	Synonyms(ctx context.Context, word string, max int) ([]string, error)
}

// SynonymExpander wraps a SynonymProvider with a session-scoped cache.
// A failed lookup is cached as an empty list so a flaky network is hit
// at most once per (word, max) within a session.
type SynonymExpander struct {
	provider SynonymProvider
	cache    map[string][]string
}

// NewSynonymExpander creates an expander; provider may be nil, in which
// case every lookup degrades to no synonyms.
func NewSynonymExpander(provider SynonymProvider) *SynonymExpander {
	return &SynonymExpander{
		provider: provider,
		cache:    make(map[string][]string),
	}
}

// Expand returns up to max synonyms for word: lower-cased, deduplicated,
// excluding the word itself. Never returns an error; external failure
// yields an empty list.
func (e *SynonymExpander) Expand(ctx context.Context, word string, max int) []string {
	word = strings.TrimSpace(word)
	if len(word) < 2 {
		return nil
	}

	key := strings.ToLower(word) + "|" + strconv.Itoa(max)
	if cached, ok := e.cache[key]; ok {
		return cached
	}

	var result []string
	if e.provider != nil {
		raw, err := e.provider.Synonyms(ctx, word, max)
		if err == nil {
			seen := make(map[string]struct{})
			for _, s := range raw {
				s = strings.ToLower(strings.TrimSpace(s))
				if s == "" || strings.EqualFold(s, word) {
					continue
				}
				if _, ok := seen[s]; ok {
					continue
				}
				seen[s] = struct{}{}
				result = append(result, s)
			}
		}
	}

	e.cache[key] = result
	return result
}
