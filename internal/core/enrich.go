// ABOUTME: Query enrichment: vocabulary typo correction plus synonym expansion
// ABOUTME: Produces a corrected query for display and an expanded query for retrieval
package core

import (
	"context"
	"strings"
	"unicode"
)

// maxSynonymsPerTerm limits expansion so search stays stable.
const maxSynonymsPerTerm = 3

// SpellChecker is the optional external spell-check capability. Failure
// must degrade to the original text, never to an error the user sees.
type SpellChecker interface {
	CorrectText(ctx context.Context, text string) (string, error)
}

// EnrichedQuery holds the two probe strings built from a raw query.
// Corrected is shown to the user; Expanded is only ever a retrieval probe.
type EnrichedQuery struct {
	Corrected string
	Expanded  string
}

// Enricher ties the vocabulary corrector and synonym expander together.
type Enricher struct {
	vocab    *Vocabulary
	synonyms *SynonymExpander
	spell    SpellChecker // optional pre-pass, nil to disable
}

// NewEnricher creates an enricher over the given vocabulary. spell may be nil.
func NewEnricher(vocab *Vocabulary, synonyms *SynonymExpander, spell SpellChecker) *Enricher {
	return &Enricher{vocab: vocab, synonyms: synonyms, spell: spell}
}

// Enrich tokenizes the query, corrects each distinct token against the
// vocabulary, and expands non-stop-word tokens with up to three synonyms.
// Both strings are always produced; degraded external services fall back
// to identity.
func (e *Enricher) Enrich(ctx context.Context, query string) EnrichedQuery {
	query = strings.TrimSpace(query)
	if query == "" {
		return EnrichedQuery{}
	}

	if e.spell != nil {
		if fixed, err := e.spell.CorrectText(ctx, query); err == nil && strings.TrimSpace(fixed) != "" {
			query = fixed
		}
	}

	terms := Tokenize(query)
	corrected := make([]string, 0, len(terms))
	for _, t := range terms {
		corrected = append(corrected, e.vocab.Correct(t))
	}

	seen := make(map[string]struct{})
	var expanded []string
	add := func(w string) {
		w = strings.ToLower(w)
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		expanded = append(expanded, w)
	}

	for _, t := range corrected {
		add(t)
		if isStopWord(t) {
			continue
		}
		for _, s := range e.synonyms.Expand(ctx, t, maxSynonymsPerTerm) {
			add(s)
		}
	}

	return EnrichedQuery{
		Corrected: strings.Join(corrected, " "),
		Expanded:  strings.Join(expanded, " "),
	}
}

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "to": {},
	"of": {}, "in": {}, "on": {}, "for": {}, "with": {}, "by": {}, "as": {},
	"at": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "this": {}, "that": {}, "these": {}, "those": {}, "it": {},
	"its": {}, "from": {}, "into": {}, "about": {},
}

// isStopWord reports whether w should be passed through unexpanded:
// common function words, very short terms, and digit-leading terms.
func isStopWord(w string) bool {
	if strings.TrimSpace(w) == "" {
		return true
	}
	runes := []rune(w)
	if len(runes) <= 2 {
		return true
	}
	if unicode.IsDigit(runes[0]) {
		return true
	}
	_, ok := stopWords[strings.ToLower(w)]
	return ok
}
