package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/charsheet/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sheet.md"), []byte("# {name}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain"), []byte("{name}"), 0o644))
	store := New(dir)
	ctx := context.Background()

	got, err := store.Template(ctx, "sheet")
	require.NoError(t, err)
	assert.Equal(t, "# {name}", got)

	got, err = store.Template(ctx, "sheet.md")
	require.NoError(t, err)
	assert.Equal(t, "# {name}", got)

	got, err = store.Template(ctx, "plain")
	require.NoError(t, err)
	assert.Equal(t, "{name}", got)
}

func TestStoreTemplateErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder"), 0o755))
	store := New(dir)

	for _, id := range []string{"", "missing", "../etc/passwd", ".hidden", "folder"} {
		_, err := store.Template(context.Background(), id)
		assert.ErrorIs(t, err, core.ErrStorage, id)
	}
}

func TestStoreRevisionChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.md")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))
	store := New(dir)

	first, err := store.Revision(context.Background(), "sheet")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("longer"), 0o644))
	second, err := store.Revision(context.Background(), "sheet")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
