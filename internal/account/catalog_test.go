package account

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	t.Run("Missing File Falls Back To Seed", func(t *testing.T) {
		catalog, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
		require.NoError(t, err)

		courses := catalog.Courses()
		require.Len(t, courses, 1)
		assert.Equal(t, "lvl_01", courses[0].ID)
		assert.Equal(t, "Training Zone", courses[0].Title)
	})

	t.Run("File Contents Replace Seed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "courses.json")
		data := `[
			{"id": "lvl_01", "title": "Training Zone", "videoUrl": "http://mysite.com/intro.mp4"},
			{"id": "lvl_02", "title": "Fractions Lab", "videoUrl": "http://mysite.com/fractions.mp4"}
		]`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		catalog, err := LoadCatalog(path)
		require.NoError(t, err)

		courses := catalog.Courses()
		require.Len(t, courses, 2)
		assert.Equal(t, "lvl_02", courses[1].ID)
		assert.Equal(t, "http://mysite.com/fractions.mp4", courses[1].VideoURL)
	})

	t.Run("Malformed File Is Error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "courses.json")
		require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

		_, err := LoadCatalog(path)
		assert.Error(t, err)
	})

	t.Run("Courses Returns A Copy", func(t *testing.T) {
		catalog, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
		require.NoError(t, err)

		first := catalog.Courses()
		first[0].Title = "mutated"

		assert.Equal(t, "Training Zone", catalog.Courses()[0].Title)
	})
}
