package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoRatings = `age,gender,occupation,genres,year,rating,title
25,M,engineer,Action,1999,4,The Matrix
32,F,artist,Drama,1994,5,Forrest Gump
`

const threeRatings = `age,gender,occupation,genres,year,rating,title
25,M,engineer,Action,1999,4,The Matrix
32,F,artist,Drama,1994,5,Forrest Gump
40,F,teacher,Comedy,2001,3,Amelie
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestGetCachesByPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie_ratings.csv")
	writeFile(t, path, twoRatings)

	c := New()
	first, err := c.Get(path)
	require.NoError(t, err)

	second, err := c.Get(path)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())
}

func TestGetReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie_ratings.csv")
	writeFile(t, path, twoRatings)

	c := New()
	first, err := c.Get(path)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Frame.Nrow())

	writeFile(t, path, threeRatings)

	second, err := c.Get(path)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 3, second.Frame.Nrow())
}

func TestGetKeepsFrameWhenOnlyTouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie_ratings.csv")
	writeFile(t, path, twoRatings)

	c := New()
	first, err := c.Get(path)
	require.NoError(t, err)

	// Same bytes, new mtime: the content hash short-circuits the reload.
	writeFile(t, path, twoRatings)

	second, err := c.Get(path)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestInvalidateForcesReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movie_ratings.csv")
	writeFile(t, path, twoRatings)

	c := New()
	first, err := c.Get(path)
	require.NoError(t, err)

	c.Invalidate(path)
	assert.Equal(t, 0, c.Len())

	second, err := c.Get(path)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestGetMissingFile(t *testing.T) {
	c := New()
	_, err := c.Get(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
