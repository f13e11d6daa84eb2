// ABOUTME: Vocabulary index of known tokens from the currently loaded chunks
// ABOUTME: Correction target for fuzzy matching; rebuilt fully on every load
package core

import (
	"unicode"

	"github.com/harper/docchat/internal/models"
)

// Tokenize scans text into lower-cased alphanumeric tokens. Runs of
// letters/digits form a token; everything else is a separator. Tokens of
// length 1 are dropped. The result keeps first-occurrence order with
// duplicates removed.
func Tokenize(text string) []string {
	var terms []string
	seen := make(map[string]struct{})
	var run []rune

	flush := func() {
		if len(run) > 1 {
			t := string(run)
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				terms = append(terms, t)
			}
		}
		run = run[:0]
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			run = append(run, unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return terms
}

// Vocabulary is the set of known tokens derived from the current chunk set.
// Iteration order is fixed at build time so correction ties resolve
// deterministically.
type Vocabulary struct {
	words map[string]struct{}
	order []string
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{words: make(map[string]struct{})}
}

// BuildVocabulary tokenizes every chunk's text into a fresh vocabulary.
func BuildVocabulary(chunks []models.Chunk) *Vocabulary {
	v := NewVocabulary()
	for _, c := range chunks {
		for _, w := range Tokenize(c.Text) {
			v.add(w)
		}
	}
	return v
}

func (v *Vocabulary) add(word string) {
	if _, ok := v.words[word]; ok {
		return
	}
	v.words[word] = struct{}{}
	v.order = append(v.order, word)
}

// Contains reports whether word is a known token.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.words[word]
	return ok
}

// Len returns the number of known tokens.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Words returns the tokens in build order.
func (v *Vocabulary) Words() []string {
	return v.order
}
