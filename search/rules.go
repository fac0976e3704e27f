// Package search: URL filtering rules.
// Provides helpers to filter and normalize candidate article URLs.
package search

import (
	"net/url"
	"path"
	"strings"
)

// wikiDomain is the host suffix every accepted article lives under.
const wikiDomain = "fandom.com"

// staticExtensions are file extensions that never point at an article.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true,
	".css": true, ".js": true, ".pdf": true,
}

// IsWikiHost checks if the URL's host is domain or one of its subdomains.
func IsWikiHost(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// IsStaticAsset checks if a URL points to a static asset (image, CSS, JS, etc.).
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return staticExtensions[ext]
}

// IsArticle reports whether rawURL looks like a wiki article page: an
// http(s) URL on a wiki host whose path sits under /wiki/.
func IsArticle(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return false
	}
	return IsWikiHost(rawURL, wikiDomain) &&
		strings.Contains(parsed.Path, "/wiki/") &&
		!IsStaticAsset(rawURL)
}

// NormalizeURL strips fragments and trailing slashes for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	// Remove fragment.
	parsed.Fragment = ""

	// Remove trailing slash (but keep root "/").
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}
