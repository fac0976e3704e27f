package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// headingTags stop a section walk. Any level counts, so a sub-heading inside
// a section ends it early.
var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// ExtractSections harvests each named section of the article. A section is
// the run of siblings after the header whose mw-headline id equals the key,
// up to the next heading. Its paragraphs are flattened and joined with blank
// lines; the header and every visited sibling are then removed. Keys without
// a matching header map to "" and leave the document untouched.
func ExtractSections(doc *goquery.Document, keys ...string) map[string]string {
	results := make(map[string]string, len(keys))
	for _, key := range keys {
		results[key] = extractSection(doc, key)
	}
	return results
}

func extractSection(doc *goquery.Document, key string) string {
	headline := doc.Find("span.mw-headline").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")
		return id == key
	}).First()
	if headline.Length() == 0 {
		return ""
	}

	header := headline.Parent()
	visited := []*goquery.Selection{header}
	var paragraphs []string

	for current := header.Next(); current.Length() > 0; current = current.Next() {
		if headingTags[goquery.NodeName(current)] {
			break
		}
		visited = append(visited, current)
		if goquery.NodeName(current) == "p" {
			if text := FlattenParagraph(current); text != "" {
				paragraphs = append(paragraphs, text)
			}
		}
	}

	for _, sel := range visited {
		sel.Remove()
	}
	return strings.Join(paragraphs, "\n\n")
}
