// Package normalize converts what is left of an article after extraction into
// markdown. The infobox is rendered on its own and forced into list form; the
// rest of the content container becomes the body.
package normalize

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"golang.org/x/net/html"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
// Link targets are dropped (only the link text is kept), images are kept and
// lines are never wrapped.
type MarkdownNormalizer struct {
	conv *converter.Converter
}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	// PriorityEarly runs before the commonmark renderers.
	conv.Register.RendererFor("a", converter.TagTypeInline, renderLinkText, converter.PriorityEarly)
	conv.Register.RendererFor("img", converter.TagTypeInline, renderLazyImage, converter.PriorityEarly)
	return &MarkdownNormalizer{conv: conv}
}

// Normalize converts an HTML fragment into Markdown.
func (n *MarkdownNormalizer) Normalize(fragment string) (string, error) {
	markdown, err := n.conv.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}

func renderLinkText(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	ctx.RenderChildNodes(ctx, w, n)
	return converter.RenderSuccess
}

// renderLazyImage handles Fandom's lazy-loaded images, whose src is a data URI
// placeholder and whose real URL sits in data-src.
func renderLazyImage(_ converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
	src := dom.GetAttributeOr(n, "src", "")
	if !strings.HasPrefix(src, "data:") {
		return converter.RenderTryNext
	}

	alt := strings.TrimSpace(dom.GetAttributeOr(n, "alt", ""))
	lazy := strings.TrimSpace(dom.GetAttributeOr(n, "data-src", ""))
	if lazy == "" || strings.HasPrefix(lazy, "data:") {
		w.WriteString(alt)
		return converter.RenderSuccess
	}
	w.WriteString("![" + alt + "](" + lazy + ")")
	return converter.RenderSuccess
}
