package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// aliasSources are the infobox data-source values holding aliases, lowercased.
var aliasSources = map[string]bool{
	"epithet":   true,
	"nick_name": true,
}

// ExtractAliases collects the values of epithet/nickname infobox items in
// document order. Every matching item is removed from the document, even
// when it yielded nothing.
func ExtractAliases(doc *goquery.Document) []string {
	var aliases []string
	doc.Find("div.pi-item[data-source]").Each(func(_ int, item *goquery.Selection) {
		source, _ := item.Attr("data-source")
		if !aliasSources[strings.ToLower(source)] {
			return
		}
		value := item.Find("div.pi-data-value").First()
		for _, n := range value.Nodes {
			aliases = appendStrings(aliases, n)
		}
		item.Remove()
	})
	return aliases
}

// appendStrings appends every non-blank text run below n, trimmed.
func appendStrings(out []string, n *html.Node) []string {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			out = append(out, s)
		}
		return out
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = appendStrings(out, c)
	}
	return out
}
