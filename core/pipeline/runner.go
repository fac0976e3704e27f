package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gaurav-prasanna/charsheet/core"
)

// ErrNoInput is returned when a Request names neither a character nor a URL.
var ErrNoInput = errors.New("a character name or article URL is required")

// Request describes one extraction run.
type Request struct {
	// Query is the character name used for article search.
	Query string
	// URL is a direct article link; when set, search is skipped.
	URL string
	// TemplateID identifies the template in the TemplateStore.
	TemplateID string
}

// Result is the output of a successful run.
type Result struct {
	URL       string
	Document  string
	Character *core.Character
}

// Runner resolves, fetches and builds one article per Run call. The
// collaborators are constructed once by the caller and reused.
type Runner struct {
	searcher  core.Searcher
	fetcher   core.Fetcher
	templates core.TemplateStore
	builder   *Builder
	log       *slog.Logger
}

// NewRunner creates a Runner. searcher may be nil when every request carries
// a URL.
func NewRunner(searcher core.Searcher, fetcher core.Fetcher, templates core.TemplateStore, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		searcher:  searcher,
		fetcher:   fetcher,
		templates: templates,
		builder:   NewBuilder(),
		log:       log,
	}
}

// Run executes the full pipeline for req. Every failure is terminal; nothing
// is retried and no partial document is returned.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	// 1. Resolve the article URL
	url, err := r.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	r.log.Debug("resolved article", "query", req.Query, "url", url)

	// 2. Fetch
	page, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	r.log.Debug("fetched article", "url", url, "bytes", len(page.HTML))

	// 3. Load the template
	template, err := r.templates.Template(ctx, req.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}

	// 4. Extract and assemble
	document, character, err := r.builder.Build(page.HTML, template)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	r.log.Debug("built character sheet",
		"name", character.Name,
		"aliases", len(character.Aliases),
		"wiki", character.WikiName,
	)

	return &Result{URL: url, Document: document, Character: character}, nil
}

func (r *Runner) resolve(ctx context.Context, req Request) (string, error) {
	if url := strings.TrimSpace(req.URL); url != "" {
		return url, nil
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return "", ErrNoInput
	}
	if r.searcher == nil {
		return "", &core.NotFoundError{Query: query}
	}
	url, err := r.searcher.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("search: %w", err)
	}
	if url == "" {
		return "", &core.NotFoundError{Query: query}
	}
	return url, nil
}
