// Package render: PDF renderer.
// Converts the assembled Markdown sheet into a styled PDF using gofpdf.
// Handles headings (variable font sizes), paragraphs, code blocks and lists;
// front matter is rendered as a key/value table and images are not embedded.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/charsheet/core"
	"github.com/jung-kurt/gofpdf"
)

var (
	numberedItem = regexp.MustCompile(`^\d+\.\s`)
	imageSyntax  = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	italicSyntax = regexp.MustCompile(`(?:^|\s)[*_]([^*_]+)[*_](?:\s|$)`)
	inlineCode   = regexp.MustCompile("`([^`]+)`")
	linkSyntax   = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// PDFRenderer renders a character sheet as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the document into PDF bytes.
func (r *PDFRenderer) Render(document string, character *core.Character) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if character != nil {
		if character.Name != "" {
			pdf.SetFont("Helvetica", "B", 18)
			pdf.MultiCell(0, 8, tr(character.Name), "", "L", false)
			pdf.Ln(2)
		}
		if character.WikiName != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(100, 100, 100)
			pdf.MultiCell(0, 5, tr("Wiki: "+character.WikiName), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(6)
	}

	lines := strings.Split(document, "\n")
	start := renderFrontMatter(pdf, tr, lines)
	inCodeBlock := false

	for _, line := range lines[start:] {
		// Toggle code block state.
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		// Skip empty lines (add spacing instead).
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			pdf.Ln(3)
			continue
		}

		// Headings.
		if strings.HasPrefix(trimmed, "#") {
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			renderHeading(pdf, tr, strings.TrimSpace(trimmed[level:]), level)
			continue
		}

		pdf.SetFont("Helvetica", "", 10)
		switch {
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			text := cleanInlineMarkdown(strings.TrimSpace(trimmed[2:]))
			if text == "" {
				continue
			}
			pdf.MultiCell(0, 5, tr("• "+text), "", "L", false)
		case numberedItem.MatchString(trimmed):
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
		default:
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderFrontMatter writes a leading "---" delimited block as plain
// key/value lines and returns the index of the first body line.
func renderFrontMatter(pdf *gofpdf.Fpdf, tr func(string) string, lines []string) int {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return 0
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			pdf.SetFont("Courier", "", 9)
			for _, fm := range lines[1:i] {
				if strings.TrimSpace(fm) == "" {
					continue
				}
				pdf.MultiCell(0, 4.5, tr(fm), "", "L", false)
			}
			pdf.Ln(4)
			return i + 1
		}
	}
	return 0
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, tr func(string) string, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, tr(cleanInlineMarkdown(text)), "", "L", false)
	pdf.Ln(2)
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
// Images collapse to their alt text.
func cleanInlineMarkdown(text string) string {
	text = imageSyntax.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicSyntax.ReplaceAllString(text, " $1 ")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = linkSyntax.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
