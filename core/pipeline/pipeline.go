// Package pipeline wires the extraction core together:
// parse → metadata → aliases → sections → markdown dump → template.
//
// Build is the pure entry point (HTML and template in, document out). Runner
// adds the external collaborators around it: search, fetch and template
// storage.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/charsheet/core"
	"github.com/gaurav-prasanna/charsheet/core/assemble"
	"github.com/gaurav-prasanna/charsheet/core/extract"
	"github.com/gaurav-prasanna/charsheet/core/normalize"
)

// Builder turns one article's HTML into a character sheet. It holds no
// per-article state; every call parses a fresh document tree.
type Builder struct {
	normalizer *normalize.MarkdownNormalizer
}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{normalizer: normalize.New()}
}

// Extract parses rawHTML and harvests every Character field, including the
// markdown dump of whatever the field extractors left in the tree.
func (b *Builder) Extract(rawHTML string) (*core.Character, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	character := extract.Extract(doc)

	dump, err := b.normalizer.InfoDump(doc)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	character.InfoDump = dump
	return character, nil
}

// Build extracts the character from rawHTML and fills template with it.
// On a template error the extracted record is discarded.
func (b *Builder) Build(rawHTML, template string) (string, *core.Character, error) {
	character, err := b.Extract(rawHTML)
	if err != nil {
		return "", nil, err
	}
	document, err := assemble.Format(template, character)
	if err != nil {
		return "", nil, err
	}
	return document, character, nil
}

// Build is a convenience for NewBuilder().Build.
func Build(rawHTML, template string) (string, *core.Character, error) {
	return NewBuilder().Build(rawHTML, template)
}
