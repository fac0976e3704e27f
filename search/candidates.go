// Package search: ordered candidate set with deduplication.
// Search result pages often list the same article several times (with
// different fragments or tracking wrappers); only the first sighting counts.
package search

// Candidates is an insertion-ordered set of article URLs.
type Candidates struct {
	items []string
	seen  map[string]bool
}

// NewCandidates creates an empty Candidates set.
func NewCandidates() *Candidates {
	return &Candidates{
		seen: make(map[string]bool),
	}
}

// Add records a URL if it hasn't been seen before.
func (c *Candidates) Add(url string) {
	if c.seen[url] {
		return
	}
	c.seen[url] = true
	c.items = append(c.items, url)
}

// Len returns the number of unique URLs recorded.
func (c *Candidates) Len() int {
	return len(c.items)
}

// First returns the earliest recorded URL, or "" when empty.
func (c *Candidates) First() string {
	if len(c.items) == 0 {
		return ""
	}
	return c.items[0]
}

// All returns all recorded URLs in discovery order.
func (c *Candidates) All() []string {
	return c.items
}
