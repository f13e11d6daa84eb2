// ABOUTME: Datamuse-backed synonym capability for query expansion
// ABOUTME: Best effort; callers cache results and treat failure as no synonyms
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultDatamuseURL is the public Datamuse endpoint.
const DefaultDatamuseURL = "https://api.datamuse.com"

// DatamuseClient looks up synonyms via the Datamuse /words endpoint.
type DatamuseClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewDatamuseClient creates a client against the public API.
func NewDatamuseClient() *DatamuseClient {
	return NewDatamuseClientWithURL(DefaultDatamuseURL)
}

// NewDatamuseClientWithURL creates a client against a custom base URL,
// used by tests to point at a stub server.
func NewDatamuseClientWithURL(baseURL string) *DatamuseClient {
	return &DatamuseClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type datamuseWord struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Synonyms returns up to max replacement words for word.
func (c *DatamuseClient) Synonyms(ctx context.Context, word string, max int) ([]string, error) {
	endpoint := c.baseURL + "/words?rel_syn=" + url.QueryEscape(word) + "&max=" + strconv.Itoa(max)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building synonym request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synonym lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("synonym lookup: unexpected status %d", resp.StatusCode)
	}

	var words []datamuseWord
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return nil, fmt.Errorf("decoding synonym response: %w", err)
	}

	var result []string
	for _, w := range words {
		if s := strings.TrimSpace(w.Word); s != "" {
			result = append(result, s)
		}
	}
	return result, nil
}
