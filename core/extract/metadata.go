package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/charsheet/core"
)

const (
	titleSelector = `meta[property="og:title"]`
	imageSelector = `meta[property="og:image"]`

	// defaultWikiName is used when the page title does not name a wiki.
	defaultWikiName = "output"
)

// ExtractMetadata returns the Open Graph title and image of the page, each
// defaulting to core.Unknown. Both meta tags are removed from the document
// when present, whether or not they carried content.
func ExtractMetadata(doc *goquery.Document) (name, image string) {
	return takeMeta(doc, titleSelector), takeMeta(doc, imageSelector)
}

func takeMeta(doc *goquery.Document, selector string) string {
	tag := doc.Find(selector).First()
	if tag.Length() == 0 {
		return core.Unknown
	}
	content, ok := tag.Attr("content")
	tag.Remove()
	if !ok {
		return core.Unknown
	}
	return content
}

// ExtractWikiName derives the wiki name from the page <title>, which Fandom
// formats as "Page | Series Wiki | Fandom". The title element is left in place.
func ExtractWikiName(doc *goquery.Document) string {
	title := doc.Find("title").First()
	if title.Length() == 0 {
		return defaultWikiName
	}
	return WikiNameFromTitle(strings.TrimSpace(title.Text()))
}

// WikiNameFromTitle returns the second " | " separated part of title with
// the " Wiki" marker dropped.
func WikiNameFromTitle(title string) string {
	parts := strings.Split(title, " | ")
	if len(parts) < 2 {
		return defaultWikiName
	}
	return strings.TrimSpace(strings.ReplaceAll(parts[1], " Wiki", ""))
}
