package drive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/charsheet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestStore(t *testing.T, h http.HandlerFunc) *Store {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	store, err := New(context.Background(),
		option.WithEndpoint(ts.URL+"/"),
		option.WithHTTPClient(ts.Client()),
	)
	require.NoError(t, err)
	return store
}

func TestStoreTemplate(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/files/tmpl1") || r.URL.Query().Get("alt") != "media" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("# {name}\n"))
	})

	got, err := store.Template(context.Background(), "tmpl1")
	require.NoError(t, err)
	assert.Equal(t, "# {name}\n", got)
}

func TestStoreTemplateNotFound(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":404,"message":"File not found"}}`))
	})

	_, err := store.Template(context.Background(), "nope")
	assert.ErrorIs(t, err, core.ErrStorage)
}

func TestStoreRevision(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"version":"42"}`))
	})

	rev, err := store.Revision(context.Background(), "tmpl1")
	require.NoError(t, err)
	assert.Equal(t, "42", rev)
}

func TestStoreListFolder(t *testing.T) {
	var gotQuery string
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"files":[
			{"id":"a1","name":"character.md","mimeType":"text/markdown"},
			{"id":"f2","name":"drafts","mimeType":"application/vnd.google-apps.folder"}
		]}`))
	})

	files, err := store.ListFolder(context.Background(), "folder9")
	require.NoError(t, err)

	assert.Equal(t, "'folder9' in parents and trashed = false", gotQuery)
	assert.Equal(t, []File{
		{ID: "a1", Name: "character.md", MimeType: "text/markdown"},
		{ID: "f2", Name: "drafts", MimeType: "application/vnd.google-apps.folder"},
	}, files)
}

func TestStoreTemplateAcceptsShareLink(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/files/AbC123") {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("{name}"))
	})

	got, err := store.Template(context.Background(), "https://drive.google.com/file/d/AbC123/view?usp=sharing")
	require.NoError(t, err)
	assert.Equal(t, "{name}", got)

	_, err = store.Template(context.Background(), "https://example.com/nothing")
	assert.ErrorIs(t, err, core.ErrStorage)
}
