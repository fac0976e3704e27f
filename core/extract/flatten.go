package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// paragraphNoise are descendants dropped before a paragraph is flattened.
const paragraphNoise = "sup, span, img, figure"

// FlattenParagraph reduces a paragraph-like element to a single line of text.
// Embedded media and inline spans are removed from the tree first; <br>
// becomes a newline which is then collapsed with all other whitespace, so the
// result never contains a line break.
func FlattenParagraph(p *goquery.Selection) string {
	p.Find(paragraphNoise).Remove()

	var b strings.Builder
	for _, n := range p.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(&b, c)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func writeText(b *strings.Builder, n *html.Node) {
	switch {
	case n.Type == html.TextNode:
		b.WriteString(n.Data)
	case n.Type == html.ElementNode && n.Data == "br":
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}
