// ABOUTME: LanguageTool-backed spell-check capability for query pre-correction
// ABOUTME: Failures degrade to the original text and are cached for the session
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultLanguageToolURL is the public LanguageTool endpoint.
const DefaultLanguageToolURL = "https://api.languagetool.org"

// LanguageToolClient corrects whole query strings via the /v2/check
// endpoint. Results, including failed lookups, are cached per input text
// for the lifetime of the client.
type LanguageToolClient struct {
	httpClient *http.Client
	baseURL    string

	mu    sync.Mutex
	cache map[string]string
}

// NewLanguageToolClient creates a client against the public API.
func NewLanguageToolClient() *LanguageToolClient {
	return NewLanguageToolClientWithURL(DefaultLanguageToolURL)
}

// NewLanguageToolClientWithURL creates a client against a custom base URL.
func NewLanguageToolClientWithURL(baseURL string) *LanguageToolClient {
	return &LanguageToolClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		cache:      make(map[string]string),
	}
}

type ltResponse struct {
	Matches []ltMatch `json:"matches"`
}

type ltMatch struct {
	Offset       int             `json:"offset"`
	Length       int             `json:"length"`
	Replacements []ltReplacement `json:"replacements"`
}

type ltReplacement struct {
	Value string `json:"value"`
}

// CorrectText applies the first replacement of each match, from the end
// of the text towards the start so offsets stay valid. Any failure
// returns the original text along with the error; the identity result
// is cached either way.
func (c *LanguageToolClient) CorrectText(ctx context.Context, text string) (string, error) {
	c.mu.Lock()
	if cached, ok := c.cache[text]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	corrected, err := c.check(ctx, text)
	if err != nil {
		corrected = text
	}

	c.mu.Lock()
	c.cache[text] = corrected
	c.mu.Unlock()

	return corrected, err
}

func (c *LanguageToolClient) check(ctx context.Context, text string) (string, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", "en-US")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building spell-check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("spell check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("spell check: unexpected status %d", resp.StatusCode)
	}

	var parsed ltResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding spell-check response: %w", err)
	}

	return applyReplacements(text, parsed.Matches), nil
}

// applyReplacements splices the first replacement of each match into the
// text, highest offset first. Offsets are in characters, not bytes.
func applyReplacements(text string, matches []ltMatch) string {
	var usable []ltMatch
	for _, m := range matches {
		if len(m.Replacements) == 0 || strings.TrimSpace(m.Replacements[0].Value) == "" {
			continue
		}
		usable = append(usable, m)
	}
	sort.Slice(usable, func(i, j int) bool { return usable[i].Offset > usable[j].Offset })

	runes := []rune(text)
	for _, m := range usable {
		if m.Offset < 0 || m.Offset+m.Length > len(runes) {
			continue
		}
		replacement := []rune(m.Replacements[0].Value)
		updated := make([]rune, 0, len(runes)-m.Length+len(replacement))
		updated = append(updated, runes[:m.Offset]...)
		updated = append(updated, replacement...)
		updated = append(updated, runes[m.Offset+m.Length:]...)
		runes = updated
	}
	return string(runes)
}
