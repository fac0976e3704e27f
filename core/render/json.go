// Package render: JSON renderer.
// Emits the extracted Character together with the assembled document, its
// front matter (when the template has one) and a heading outline of the
// markdown body parsed with goldmark.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/gaurav-prasanna/charsheet/core"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading represents a single heading found in the document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// SheetJSON is the complete JSON output for one character.
type SheetJSON struct {
	Character   *core.Character `json:"character"`
	FrontMatter map[string]any  `json:"front_matter,omitempty"`
	Outline     []Heading       `json:"outline"`
	Document    string          `json:"document"`
}

// JSONRenderer produces structured JSON output.
type JSONRenderer struct {
	md goldmark.Markdown
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{md: goldmark.New()}
}

// Render marshals the character, the document and its outline.
func (r *JSONRenderer) Render(document string, character *core.Character) ([]byte, error) {
	meta, body := splitFrontMatter([]byte(document))

	sheet := SheetJSON{
		Character:   character,
		FrontMatter: meta,
		Outline:     r.outline(body),
		Document:    document,
	}

	data, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// splitFrontMatter separates a leading front matter block from the markdown
// body. A block that does not parse is treated as part of the body.
func splitFrontMatter(src []byte) (map[string]any, []byte) {
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return nil, src
	}
	if len(meta) == 0 {
		return nil, body
	}
	for k, v := range meta {
		meta[k] = stringKeys(v)
	}
	return meta, body
}

// stringKeys rewrites the map[any]any values produced by the YAML decoder
// into map[string]any so encoding/json can marshal them.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case []any:
		for i := range t {
			t[i] = stringKeys(t[i])
		}
		return t
	default:
		return v
	}
}

// outline lists every top-level heading of src in document order.
func (r *JSONRenderer) outline(src []byte) []Heading {
	doc := r.md.Parser().Parse(text.NewReader(src))

	headings := []Heading{}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		headings = append(headings, Heading{
			Level: h.Level,
			Text:  string(h.Text(src)),
		})
	}
	return headings
}
