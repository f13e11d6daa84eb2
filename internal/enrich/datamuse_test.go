// ABOUTME: Tests for the Datamuse synonym client
// ABOUTME: Uses a stub HTTP server to verify query shape and decoding

package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestDatamuseSynonyms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/words" {
			t.Errorf("Path = %q, want /words", r.URL.Path)
		}
		if got := r.URL.Query().Get("rel_syn"); got != "refund" {
			t.Errorf("rel_syn = %q, want refund", got)
		}
		if got := r.URL.Query().Get("max"); got != "3" {
			t.Errorf("max = %q, want 3", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"word":"repayment","score":100},{"word":"rebate","score":90},{"word":"  ","score":1}]`))
	}))
	defer server.Close()

	client := NewDatamuseClientWithURL(server.URL)
	got, err := client.Synonyms(context.Background(), "refund", 3)
	if err != nil {
		t.Fatalf("Synonyms() error = %v", err)
	}

	want := []string{"repayment", "rebate"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Synonyms() = %v, want %v", got, want)
	}
}

func TestDatamuseSynonyms_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewDatamuseClientWithURL(server.URL)
	got, err := client.Synonyms(context.Background(), "xyzzy", 3)
	if err != nil {
		t.Fatalf("Synonyms() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Synonyms() = %v, want empty", got)
	}
}

func TestDatamuseSynonyms_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewDatamuseClientWithURL(server.URL)
	if _, err := client.Synonyms(context.Background(), "refund", 3); err == nil {
		t.Error("Expected error for 500 response")
	}
}

func TestDatamuseSynonyms_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewDatamuseClientWithURL(server.URL)
	if _, err := client.Synonyms(context.Background(), "refund", 3); err == nil {
		t.Error("Expected error for malformed response")
	}
}

func TestDatamuseSynonyms_Unreachable(t *testing.T) {
	client := NewDatamuseClientWithURL("http://127.0.0.1:1")
	if _, err := client.Synonyms(context.Background(), "refund", 3); err == nil {
		t.Error("Expected error for unreachable server")
	}
}
