package pipeline

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/charsheet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheetTemplate = `---
name: {name}
series: {wiki_name}
aliases:
{aliases}
---
![]({image})

## Personality
{Personality}

## Appearance
{Appearance}

## Background
{Background}

{info_dump}`

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(data)
}

func TestBuildSectionNotRepeatedInContent(t *testing.T) {
	html := `<html><head><meta property="og:title" content="Bob"></head><body>
		<div id="mw-content-text">
			<p>Bob lives in Town.</p>
			<h2><span class="mw-headline" id="Personality">Personality</span></h2>
			<p>Bob is kind.</p>
		</div></body></html>`

	doc, c, err := Build(html, "{Personality}\n---\n{info_dump}")
	require.NoError(t, err)

	assert.Equal(t, "Bob", c.Name)
	assert.Equal(t, "Bob is kind.", c.Section(core.SectionPersonality))

	personality, dump, ok := strings.Cut(doc, "\n---\n")
	require.True(t, ok)
	assert.Equal(t, "Bob is kind.", personality)
	assert.True(t, strings.HasPrefix(dump, "# Content\n\n"), dump)
	assert.NotContains(t, dump, "# Infobox")
	assert.NotContains(t, dump, "Bob is kind.")
	assert.NotContains(t, dump, "Personality")
	assert.Contains(t, dump, "Bob lives in Town.")
}

func TestBuildFixture(t *testing.T) {
	doc, c, err := Build(readFixture(t, "character.html"), sheetTemplate)
	require.NoError(t, err)

	assert.Equal(t, "Bob", c.Name)
	assert.Equal(t, "https://static.wikia.nocookie.net/example/images/bob.png", c.Image)
	assert.Equal(t, []string{"The Kind", "Gentle Bob"}, c.Aliases)
	assert.Equal(t, "Bob is kind.\n\nHe shares his bread.", c.Section(core.SectionPersonality))
	assert.Equal(t, "Bob wears an apron.", c.Section(core.SectionAppearance))
	assert.Equal(t, "", c.Section(core.SectionBackground))
	assert.Equal(t, "Example", c.WikiName)

	assert.Contains(t, doc, "name: Bob\nseries: Example\naliases:\n  - _The Kind_\n  - _Gentle Bob_\n---")

	infobox, content, ok := strings.Cut(c.InfoDump, "# Content\n\n")
	require.True(t, ok, c.InfoDump)
	assert.True(t, strings.HasPrefix(infobox, "# Infobox\n\n"))
	assert.Contains(t, infobox, "## Bob")
	assert.Contains(t, infobox, "- ![Bob](https://static.wikia.nocookie.net/example/images/bob-infobox.png)")
	assert.Contains(t, infobox, "- 30")
	// Aliases were harvested before the dump.
	assert.NotContains(t, infobox, "The Kind")

	assert.Contains(t, content, "is a baker in Town.")
	assert.Contains(t, content, "Expert bread maker.")
	assert.NotContains(t, content, "/wiki/")
	assert.NotContains(t, content, "[1]")
	assert.NotContains(t, content, "hide")
	assert.NotContains(t, content, "Bob is kind.")
	assert.NotContains(t, content, "apron")
}

func TestBuildTemplateError(t *testing.T) {
	doc, c, err := Build(readFixture(t, "character.html"), "{name} {unknown}")
	assert.ErrorIs(t, err, core.ErrFormat)
	assert.Empty(t, doc)
	assert.Nil(t, c)
}

type fakeSearcher struct {
	url   string
	err   error
	calls int
}

func (f *fakeSearcher) Search(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.url, f.err
}

type fakeFetcher struct {
	html  string
	err   error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	f.calls = append(f.calls, url)
	if f.err != nil {
		return nil, f.err
	}
	return &core.FetchResult{URL: url, StatusCode: 200, HTML: f.html}, nil
}

type fakeTemplates map[string]string

func (f fakeTemplates) Template(_ context.Context, id string) (string, error) {
	t, ok := f[id]
	if !ok {
		return "", &core.StorageError{ID: id, Err: errors.New("missing")}
	}
	return t, nil
}

func TestRunnerRun(t *testing.T) {
	searcher := &fakeSearcher{url: "https://example.fandom.com/wiki/Bob"}
	fetcher := &fakeFetcher{html: readFixture(t, "character.html")}
	runner := NewRunner(searcher, fetcher, fakeTemplates{"sheet": "# {name} ({series})"}, nil)

	res, err := runner.Run(context.Background(), Request{Query: "Bob", TemplateID: "sheet"})
	require.NoError(t, err)

	assert.Equal(t, "https://example.fandom.com/wiki/Bob", res.URL)
	assert.Equal(t, "# Bob (Example)", res.Document)
	assert.Equal(t, []string{"https://example.fandom.com/wiki/Bob"}, fetcher.calls)
}

func TestRunnerManualURLSkipsSearch(t *testing.T) {
	searcher := &fakeSearcher{url: "https://other.fandom.com/wiki/X"}
	fetcher := &fakeFetcher{html: "<p>x</p>"}
	runner := NewRunner(searcher, fetcher, fakeTemplates{"t": "{name}"}, nil)

	res, err := runner.Run(context.Background(), Request{Query: "Bob", URL: " https://example.fandom.com/wiki/Bob ", TemplateID: "t"})
	require.NoError(t, err)

	assert.Equal(t, 0, searcher.calls)
	assert.Equal(t, core.Unknown, res.Document)
	assert.Equal(t, []string{"https://example.fandom.com/wiki/Bob"}, fetcher.calls)
}

func TestRunnerErrors(t *testing.T) {
	html := readFixture(t, "character.html")
	tests := []struct {
		name      string
		searcher  core.Searcher
		fetcher   *fakeFetcher
		req       Request
		wantErr   error
		wantFetch int
	}{
		{
			name:     "no input",
			searcher: &fakeSearcher{},
			fetcher:  &fakeFetcher{html: html},
			req:      Request{TemplateID: "t"},
			wantErr:  ErrNoInput,
		},
		{
			name:     "search finds nothing",
			searcher: &fakeSearcher{},
			fetcher:  &fakeFetcher{html: html},
			req:      Request{Query: "Nobody", TemplateID: "t"},
			wantErr:  core.ErrNotFound,
		},
		{
			name:     "no searcher configured",
			fetcher:  &fakeFetcher{html: html},
			req:      Request{Query: "Bob", TemplateID: "t"},
			wantErr:  core.ErrNotFound,
		},
		{
			name:      "fetch fails",
			searcher:  &fakeSearcher{url: "https://x.fandom.com/wiki/Bob"},
			fetcher:   &fakeFetcher{err: &core.FetchError{URL: "https://x.fandom.com/wiki/Bob", StatusCode: 404}},
			req:       Request{Query: "Bob", TemplateID: "t"},
			wantErr:   core.ErrFetch,
			wantFetch: 1,
		},
		{
			name:      "template missing",
			searcher:  &fakeSearcher{url: "https://x.fandom.com/wiki/Bob"},
			fetcher:   &fakeFetcher{html: html},
			req:       Request{Query: "Bob", TemplateID: "missing"},
			wantErr:   core.ErrStorage,
			wantFetch: 1,
		},
		{
			name:      "template references unknown field",
			searcher:  &fakeSearcher{url: "https://x.fandom.com/wiki/Bob"},
			fetcher:   &fakeFetcher{html: html},
			req:       Request{Query: "Bob", TemplateID: "bad"},
			wantErr:   core.ErrFormat,
			wantFetch: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(tt.searcher, tt.fetcher, fakeTemplates{"t": "{name}", "bad": "{nope}"}, nil)

			res, err := runner.Run(context.Background(), tt.req)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, tt.fetcher.calls, tt.wantFetch)
		})
	}
}
