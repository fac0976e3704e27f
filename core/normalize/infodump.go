package normalize

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/charsheet/core/sanitize"
)

const (
	contentSelector = "div#mw-content-text"
	infoboxSelector = "aside.portable-infobox"
)

// blockMarkers are line prefixes that already read as markdown blocks.
const blockMarkers = "#->*"

// InfoDump renders the remaining article content as markdown. The infobox,
// if any, is detached first and emitted as a "# Infobox" bullet list; the rest
// of the content container follows under "# Content". Empty parts are
// omitted. Both parts are sanitized before conversion.
func (n *MarkdownNormalizer) InfoDump(doc *goquery.Document) (string, error) {
	content := doc.Find(contentSelector).First()
	if content.Length() == 0 {
		return "", nil
	}

	var infobox string
	if box := content.Find(infoboxSelector).First(); box.Length() > 0 {
		box.Remove()
		md, err := n.renderSelection(sanitize.Sanitize(box))
		if err != nil {
			return "", fmt.Errorf("rendering infobox: %w", err)
		}
		infobox = BulletizeLines(md)
	}

	body, err := n.renderSelection(sanitize.Sanitize(content))
	if err != nil {
		return "", fmt.Errorf("rendering content: %w", err)
	}

	var b strings.Builder
	if s := strings.TrimSpace(infobox); s != "" {
		b.WriteString("# Infobox\n\n")
		b.WriteString(s)
		b.WriteString("\n\n")
	}
	if s := strings.TrimSpace(body); s != "" {
		b.WriteString("# Content\n\n")
		b.WriteString(s)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (n *MarkdownNormalizer) renderSelection(sel *goquery.Selection) (string, error) {
	fragment, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", fmt.Errorf("serializing HTML: %w", err)
	}
	return n.Normalize(fragment)
}

// BulletizeLines forces markdown into list form: blank lines are dropped,
// lines already starting with a block marker (#, -, >, *) are kept trimmed,
// and every other line gets a "- " prefix.
func BulletizeLines(md string) string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(md), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.ContainsRune(blockMarkers, rune(line[0])) {
			out = append(out, line)
			continue
		}
		out = append(out, "- "+line)
	}
	return strings.Join(out, "\n")
}
