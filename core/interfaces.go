// Package core defines the pipeline interfaces and shared types for charsheet.
// Each external collaborator (search, page fetch, template storage) is a
// narrow interface so the extraction core stays pure and testable.
package core

import "context"

// Section keys harvested from the article body, in extraction order.
const (
	SectionPersonality = "Personality"
	SectionAppearance  = "Appearance"
	SectionBackground  = "Background"
)

// SectionKeys lists the narrative sections the extractor looks for.
var SectionKeys = []string{SectionPersonality, SectionAppearance, SectionBackground}

// Unknown is the placeholder used when a metadata tag is absent.
const Unknown = "Unknown"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Character is the aggregate output of one extraction run.
type Character struct {
	Name     string            `json:"name"`
	Image    string            `json:"image"`
	Aliases  []string          `json:"aliases"`
	Sections map[string]string `json:"sections"`
	WikiName string            `json:"wiki_name"`
	InfoDump string            `json:"info_dump"`
}

// Section returns the harvested text for key, or "" when the article had no
// such section.
func (c *Character) Section(key string) string {
	if c.Sections == nil {
		return ""
	}
	return c.Sections[key]
}

// Searcher discovers the article URL for a character name.
type Searcher interface {
	Search(ctx context.Context, name string) (string, error)
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// TemplateStore reads template markdown by an opaque identifier.
type TemplateStore interface {
	Template(ctx context.Context, id string) (string, error)
}

// Renderer converts the final markdown document (and the record it was built
// from) into an output format.
type Renderer interface {
	Render(document string, character *Character) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
