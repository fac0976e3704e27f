// Package sanitize strips citation and presentation noise from an HTML
// subtree. It only removes decoration (footnote markers, reference links,
// side widgets); block-level structure is never touched.
package sanitize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// spanClasses are span classes that always mark a span as noise.
var spanClasses = []string{"noprint", "plainlinksneverexpand"}

// Sanitize removes footnote markers, reference links and decorative spans
// from the descendants of sel, unwrapping ordinary links to their text.
// It mutates sel in place and returns it.
func Sanitize(sel *goquery.Selection) *goquery.Selection {
	sel.Find("sup").Remove()

	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		if isReferenceLink(a) {
			a.Remove()
			return
		}
		a.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: a.Text()})
	})

	sel.Find("span").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return isNoiseSpan(s)
	}).Remove()

	return sel
}

func isReferenceLink(a *goquery.Selection) bool {
	href, _ := a.Attr("href")
	if strings.Contains(href, "cite_note") {
		return true
	}
	for _, class := range classes(a) {
		if class == "reference" {
			return true
		}
	}
	return false
}

func isNoiseSpan(s *goquery.Selection) bool {
	for _, class := range classes(s) {
		if strings.Contains(class, "reference") {
			return true
		}
		for _, noise := range spanClasses {
			if class == noise {
				return true
			}
		}
	}
	style, _ := s.Attr("style")
	return floatsLeft(style)
}

// floatsLeft reports whether an inline style asks for a left float,
// ignoring case and whitespace around the colon.
func floatsLeft(style string) bool {
	if style == "" {
		return false
	}
	compact := strings.Join(strings.Fields(strings.ToLower(style)), "")
	return strings.Contains(compact, "float:left")
}

func classes(s *goquery.Selection) []string {
	class, ok := s.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(class)
}
