package codebase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/skel/sketch/parser"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanAll(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "app.sketch", "ns App\nc User\ns name\n")
	bad := writeFile(t, dir, "broken.sketch", "s orphan\n")
	writeFile(t, dir, "notes.txt", "not notation")

	cb := New(dir)
	require.NoError(t, cb.ScanAll())

	files := cb.Files()
	require.Len(t, files, 2)
	assert.Equal(t, good, files[0].Path)
	assert.Equal(t, bad, files[1].Path)

	require.NotNil(t, files[0].Model)
	assert.NoError(t, files[0].ParseErr)
	assert.Len(t, files[0].Model.Namespaces, 1)

	assert.Nil(t, files[1].Model)
	assert.ErrorIs(t, files[1].ParseErr, parser.ErrMissingContainer)
}

func TestScanAllNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	writeFile(t, sub, "deep.sketch", "ns Deep\n")

	cb := New(dir)
	require.NoError(t, cb.ScanAll())
	require.Len(t, cb.Files(), 1)
}

func TestUpdateFileReplacesModel(t *testing.T) {
	cb := New(".")

	cb.UpdateFile("mem.sketch", []byte("ns One\n"))
	info := cb.GetFile("mem.sketch")
	require.NotNil(t, info)
	require.NotNil(t, info.Model)
	assert.Equal(t, "One", info.Model.Namespaces[0].Name)

	cb.UpdateFile("mem.sketch", []byte("s orphan\n"))
	info = cb.GetFile("mem.sketch")
	require.NotNil(t, info)
	assert.Nil(t, info.Model)
	assert.ErrorIs(t, info.ParseErr, parser.ErrMissingContainer)
}

func TestRemoveFile(t *testing.T) {
	cb := New(".")
	cb.UpdateFile("mem.sketch", []byte("ns One\n"))
	cb.RemoveFile("mem.sketch")
	assert.Nil(t, cb.GetFile("mem.sketch"))
	assert.Empty(t, cb.Files())
}
