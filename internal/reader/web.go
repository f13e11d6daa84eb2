// ABOUTME: Web reader fetching a URL and stripping HTML down to plain text
// ABOUTME: Lightweight tag stripping; scripts, styles and entities handled inline
package reader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/harper/docchat/internal/core"
	"github.com/harper/docchat/internal/models"
)

// WebReader fetches a web page over HTTP.
type WebReader struct {
	httpClient    *http.Client
	maxChunkChars int
}

// NewWebReader creates a web reader with the given chunk size.
func NewWebReader(maxChunkChars int) *WebReader {
	return &WebReader{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		maxChunkChars: maxChunkChars,
	}
}

// Read validates the URL, fetches the page, strips it to text and chunks it.
func (r *WebReader) Read(ctx context.Context, rawURL string) ([]models.Chunk, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("URL is empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("URL is invalid: %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", u.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", u.Host, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return core.SplitChunks(HTMLToText(string(body)), r.maxChunkChars), nil
}

var (
	scriptRe  = regexp.MustCompile(`(?i)<script[\s\S]*?</script>`)
	styleRe   = regexp.MustCompile(`(?i)<style[\s\S]*?</style>`)
	brRe      = regexp.MustCompile(`(?i)<br\s*/?>`)
	pCloseRe  = regexp.MustCompile(`(?i)</p>`)
	tagRe     = regexp.MustCompile(`<[^>]+>`)
	spaceRe   = regexp.MustCompile(`[ \t]+`)
	newlineRe = regexp.MustCompile(`\n{3,}`)
)

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// HTMLToText strips markup from an HTML document: scripts and styles are
// removed, <br> and </p> become newlines, remaining tags become spaces,
// a few common entities are decoded, and whitespace is normalized.
func HTMLToText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	html = scriptRe.ReplaceAllString(html, "")
	html = styleRe.ReplaceAllString(html, "")
	html = brRe.ReplaceAllString(html, "\n")
	html = pCloseRe.ReplaceAllString(html, "\n")

	text := tagRe.ReplaceAllString(html, " ")
	text = decodeEntities(text)

	text = spaceRe.ReplaceAllString(text, " ")
	text = newlineRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

func decodeEntities(s string) string {
	return entityReplacer.Replace(s)
}
