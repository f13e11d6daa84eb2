// ABOUTME: Tests for the cached synonym expander
// ABOUTME: Verifies dedup, self-exclusion, and one-lookup-per-key caching

package core

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// stubSynonyms counts provider calls so cache behavior is observable.
type stubSynonyms struct {
	results map[string][]string
	err     error
	calls   int
}

func (s *stubSynonyms) Synonyms(ctx context.Context, word string, max int) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.results[word], nil
}

func TestExpand_ReturnsCleanedSynonyms(t *testing.T) {
	provider := &stubSynonyms{results: map[string][]string{
		"refund": {"Repayment", "rebate", "  rebate ", "refund", ""},
	}}
	e := NewSynonymExpander(provider)

	got := e.Expand(context.Background(), "refund", 3)
	want := []string{"repayment", "rebate"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
}

func TestExpand_ShortWordSkipped(t *testing.T) {
	provider := &stubSynonyms{}
	e := NewSynonymExpander(provider)

	if got := e.Expand(context.Background(), "a", 3); got != nil {
		t.Errorf("Expand(\"a\") = %v, want nil", got)
	}
	if provider.calls != 0 {
		t.Errorf("Provider called %d times for short word, want 0", provider.calls)
	}
}

func TestExpand_CachesResults(t *testing.T) {
	provider := &stubSynonyms{results: map[string][]string{
		"refund": {"repayment"},
	}}
	e := NewSynonymExpander(provider)

	first := e.Expand(context.Background(), "refund", 3)
	second := e.Expand(context.Background(), "Refund", 3) // case folds to same key

	if provider.calls != 1 {
		t.Errorf("Provider called %d times, want 1", provider.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Cached result %v differs from first %v", second, first)
	}
}

func TestExpand_DifferentMaxIsSeparateKey(t *testing.T) {
	provider := &stubSynonyms{results: map[string][]string{
		"refund": {"repayment"},
	}}
	e := NewSynonymExpander(provider)

	e.Expand(context.Background(), "refund", 3)
	e.Expand(context.Background(), "refund", 5)

	if provider.calls != 2 {
		t.Errorf("Provider called %d times for two max values, want 2", provider.calls)
	}
}

func TestExpand_FailureCachedAsEmpty(t *testing.T) {
	provider := &stubSynonyms{err: errors.New("network down")}
	e := NewSynonymExpander(provider)

	if got := e.Expand(context.Background(), "refund", 3); len(got) != 0 {
		t.Errorf("Expand() after failure = %v, want empty", got)
	}
	e.Expand(context.Background(), "refund", 3)

	if provider.calls != 1 {
		t.Errorf("Provider called %d times after cached failure, want 1", provider.calls)
	}
}

func TestExpand_NilProvider(t *testing.T) {
	e := NewSynonymExpander(nil)
	if got := e.Expand(context.Background(), "refund", 3); len(got) != 0 {
		t.Errorf("Expand() with nil provider = %v, want empty", got)
	}
}
