package normalize

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestBulletizeLines(t *testing.T) {
	got := BulletizeLines("# Title\nName: Bob\n- already\n")
	assert.Equal(t, []string{"# Title", "- Name: Bob", "- already"}, strings.Split(got, "\n"))
}

func TestBulletizeLinesKeepsMarkers(t *testing.T) {
	in := "\n  > quoted  \n* starred\n\n![img](https://x/y.png)\n   plain   \n"
	want := "> quoted\n* starred\n- ![img](https://x/y.png)\n- plain"
	assert.Equal(t, want, BulletizeLines(in))
	assert.Equal(t, "", BulletizeLines("\n \n"))
}

func TestNormalizeDropsLinkTargets(t *testing.T) {
	md, err := New().Normalize(`<p>See <a href="https://example.com/wiki/Alice">Alice</a> now.</p>`)
	require.NoError(t, err)
	assert.Equal(t, "See Alice now.", strings.TrimSpace(md))
}

func TestNormalizeImages(t *testing.T) {
	n := New()

	md, err := n.Normalize(`<p><img src="https://img.example/a.png" alt="A"></p>`)
	require.NoError(t, err)
	assert.Contains(t, md, "![A](https://img.example/a.png)")

	md, err = n.Normalize(`<p><img src="data:image/gif;base64,R0lGOD" data-src="https://img.example/lazy.png" alt="Lazy"></p>`)
	require.NoError(t, err)
	assert.Contains(t, md, "![Lazy](https://img.example/lazy.png)")
	assert.NotContains(t, md, "data:")

	md, err = n.Normalize(`<p><img src="data:image/gif;base64,R0lGOD" alt="Placeholder"></p>`)
	require.NoError(t, err)
	assert.Equal(t, "Placeholder", strings.TrimSpace(md))
}

func TestNormalizeDoesNotWrap(t *testing.T) {
	long := strings.Repeat("word ", 60)
	md, err := New().Normalize("<p>" + long + "</p>")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(long), strings.TrimSpace(md))
}

func TestInfoDump(t *testing.T) {
	doc := parse(t, `<html><body><div id="mw-content-text">
		<aside class="portable-infobox">
			<h2 class="pi-title">Bob</h2>
			<div class="pi-item"><h3 class="pi-data-label">Age</h3><div class="pi-data-value">30<sup>[1]</sup></div></div>
		</aside>
		<p>Body <a href="/wiki/X">link</a><sup>[2]</sup>.</p>
	</div></body></html>`)

	md, err := New().InfoDump(doc)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(md, "# Infobox\n\n"), md)
	infobox, content, ok := strings.Cut(md, "# Content\n\n")
	require.True(t, ok, md)

	assert.Contains(t, infobox, "## Bob")
	assert.Contains(t, infobox, "\n- 30")
	assert.NotContains(t, infobox, "[1]")
	assert.True(t, strings.HasSuffix(infobox, "\n\n"))

	assert.Equal(t, "Body link.\n", content)
	assert.Equal(t, 0, doc.Find("aside").Length())
}

func TestInfoDumpWithoutInfobox(t *testing.T) {
	doc := parse(t, `<div id="mw-content-text"><p>Only body.</p></div>`)

	md, err := New().InfoDump(doc)
	require.NoError(t, err)
	assert.Equal(t, "# Content\n\nOnly body.\n", md)
}

func TestInfoDumpOnlyInfobox(t *testing.T) {
	doc := parse(t, `<div id="mw-content-text"><aside class="portable-infobox"><div>Name: Bob</div></aside></div>`)

	md, err := New().InfoDump(doc)
	require.NoError(t, err)
	assert.Equal(t, "# Infobox\n\n- Name: Bob\n\n", md)
}

func TestInfoDumpEmpty(t *testing.T) {
	n := New()

	md, err := n.InfoDump(parse(t, `<div id="other"><p>outside</p></div>`))
	require.NoError(t, err)
	assert.Equal(t, "", md)

	md, err = n.InfoDump(parse(t, `<div id="mw-content-text">  </div>`))
	require.NoError(t, err)
	assert.Equal(t, "", md)
}
