// Package extract harvests character fields from a parsed wiki article.
//
// Every extractor is destructive: the nodes it reads are removed from the
// document before it returns, so later passes and the markdown dump never see
// them again. Run them in order: metadata, aliases, sections.
package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/charsheet/core"
)

// Extract runs the metadata, alias and section passes over doc and returns a
// Character with those fields filled. InfoDump is left for the renderer,
// which works on what the passes left behind.
func Extract(doc *goquery.Document) *core.Character {
	name, image := ExtractMetadata(doc)
	aliases := ExtractAliases(doc)
	sections := ExtractSections(doc, core.SectionKeys...)

	return &core.Character{
		Name:     name,
		Image:    image,
		Aliases:  aliases,
		Sections: sections,
		WikiName: ExtractWikiName(doc),
	}
}
