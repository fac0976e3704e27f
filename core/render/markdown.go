// Package render provides output renderers for the final character sheet.
// This file implements the Markdown renderer, which is a simple passthrough.
package render

import (
	"github.com/gaurav-prasanna/charsheet/core"
)

// MarkdownRenderer writes the assembled document as-is. It's the simplest
// renderer since the template already produced Markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the document as bytes (passthrough).
func (r *MarkdownRenderer) Render(document string, _ *core.Character) ([]byte, error) {
	return []byte(document), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// ForFormat returns the renderer registered under name: "markdown", "json"
// or "pdf".
func ForFormat(name string) (core.Renderer, error) {
	switch name {
	case "", "markdown", "md":
		return NewMarkdownRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "pdf":
		return NewPDFRenderer(), nil
	default:
		return nil, &UnknownFormatError{Format: name}
	}
}

// UnknownFormatError reports an unsupported output format name.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return "unknown output format: " + e.Format
}
