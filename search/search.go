// Package search discovers the wiki article for a character name.
// It queries a DuckDuckGo HTML result page restricted to the wiki domain and
// returns the first result that looks like an article.
package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/charsheet/core"
)

// DefaultEndpoint is the HTML-only DuckDuckGo result page.
const (
	DefaultEndpoint = "https://html.duckduckgo.com/html/"
	defaultTimeout  = 15 * time.Second
)

// Client searches for articles over HTTP.
type Client struct {
	endpoint  string
	userAgent string
	client    *http.Client
}

// New creates a Client for endpoint (DefaultEndpoint when empty).
func New(endpoint, userAgent string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:  endpoint,
		userAgent: userAgent,
		client:    &http.Client{Timeout: defaultTimeout},
	}
}

// Search returns the first wiki article URL found for name, or a
// core.NotFoundError when the result page lists none.
func (c *Client) Search(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf("%s site:%s", name, wikiDomain)
	page, err := c.results(ctx, query)
	if err != nil {
		return "", err
	}

	candidates, err := extractArticles(page, c.endpoint)
	if err != nil {
		return "", err
	}
	if candidates.Len() == 0 {
		return "", &core.NotFoundError{Query: name}
	}
	return candidates.First(), nil
}

// results fetches the raw result page for query.
func (c *Client) results(ctx context.Context, query string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing search endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("searching %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading search results: %w", err)
	}
	return string(body), nil
}

// extractArticles collects article links from a result page in order,
// resolving relative URLs and redirect wrappers.
func extractArticles(page string, baseURL string) (*Candidates, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing search results: %w", err)
	}

	base, _ := url.Parse(baseURL)
	candidates := NewCandidates()

	links := doc.Find("a.result__a[href]")
	if links.Length() == 0 {
		links = doc.Find("a[href]")
	}
	links.Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved := unwrapRedirect(resolveURL(href, base))
		if resolved != "" && IsArticle(resolved) {
			candidates.Add(NormalizeURL(resolved))
		}
	})

	return candidates, nil
}

// unwrapRedirect returns the target of a result redirect link
// (".../l/?uddg=<target>"), or rawURL unchanged.
func unwrapRedirect(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	return rawURL
}

// resolveURL resolves a potentially relative URL against a base.
func resolveURL(href string, base *url.URL) string {
	// Skip mailto, javascript, etc.
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base == nil {
		return parsed.String()
	}

	resolved := base.ResolveReference(parsed)
	// Strip fragments.
	resolved.Fragment = ""
	return resolved.String()
}
