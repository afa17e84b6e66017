package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazytree/pkg/types"
)

func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.pdf"), make([]byte, 2048), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "draft.bak"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "photos"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photos", "beach.png"), []byte("x"), 0644))
	return dir
}

func TestDirSourceLists(t *testing.T) {
	dir := setupDir(t)
	src, err := NewDirSource(dir)
	require.NoError(t, err)

	children, err := src.LoadChildren(context.Background(), dir)
	require.NoError(t, err)

	names := make(map[string]types.Node)
	for _, c := range children {
		names[c.Name] = c
	}
	require.Len(t, children, 3, "hidden entries are skipped by default")

	assert.Equal(t, types.KindFile, names["report.pdf"].Kind)
	assert.EqualValues(t, 2, names["report.pdf"].SizeKB)
	assert.Equal(t, types.KindFolder, names["photos"].Kind)
	assert.Equal(t, filepath.Join(dir, "photos"), names["photos"].ID)
}

func TestDirSourceShowHidden(t *testing.T) {
	dir := setupDir(t)
	src, err := NewDirSource(dir, WithHidden(true))
	require.NoError(t, err)

	children, err := src.LoadChildren(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, children, 4)
}

func TestDirSourceIgnoreGlobs(t *testing.T) {
	dir := setupDir(t)
	ignore, err := WithIgnoreGlobs([]string{"*.bak", "photos"})
	require.NoError(t, err)

	src, err := NewDirSource(dir, ignore)
	require.NoError(t, err)

	children, err := src.LoadChildren(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "report.pdf", children[0].Name)
}

func TestDirSourceInvalidIgnorePattern(t *testing.T) {
	_, err := WithIgnoreGlobs([]string{"[unclosed"})
	assert.Error(t, err)
}

func TestDirSourceBadRoot(t *testing.T) {
	_, err := NewDirSource(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = NewDirSource(file)
	assert.Error(t, err)
}

func TestDirSourceTreeIsLazy(t *testing.T) {
	dir := setupDir(t)
	src, err := NewDirSource(dir)
	require.NoError(t, err)

	root := src.Tree()
	assert.Equal(t, filepath.Base(dir), root.Name)
	require.True(t, root.HasLoader())

	children, err := root.Loader(context.Background())
	require.NoError(t, err)

	for _, c := range children {
		if c.IsFolder() {
			assert.True(t, c.HasLoader(), "subfolders load lazily too")
		}
	}
}

func TestDirSourceReadFailure(t *testing.T) {
	dir := setupDir(t)
	src, err := NewDirSource(dir)
	require.NoError(t, err)

	_, err = src.LoadChildren(context.Background(), filepath.Join(dir, "gone"))
	assert.Error(t, err)
}
