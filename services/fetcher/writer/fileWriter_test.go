package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("should create the file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := NewFileWriter(dir)
		require.False(t, w.IsInterfaceNil())

		path, err := w.Write("snapshot.json", []byte(`{"a":1}`))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "snapshot.json"), path)

		contents, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(contents))
	})
	t.Run("should truncate an existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := NewFileWriter(dir)

		_, err := w.Write("snapshot.json", []byte(`{"a":"a much longer previous payload"}`))
		require.NoError(t, err)

		path, err := w.Write("snapshot.json", []byte(`{"b":2}`))
		require.NoError(t, err)

		contents, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `{"b":2}`, string(contents))
	})
	t.Run("should create a missing output directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "metrics")
		w := NewFileWriter(dir)

		path, err := w.Write("snapshot.json", []byte(`[]`))
		require.NoError(t, err)
		assert.FileExists(t, path)
	})
	t.Run("unwritable location should error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		w := NewFileWriter(blocker)
		path, err := w.Write("snapshot.json", []byte(`{}`))
		assert.Empty(t, path)
		assert.Error(t, err)
	})
}
