package loader

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromDisk(t *testing.T) {
	t.Run("absolute path", func(t *testing.T) {
		tempDir := t.TempDir()
		path := filepath.Join(tempDir, "test.story")

		l, err := NewFromDisk(path)
		require.NoError(t, err)
		require.Equal(t, path, l.absPath)
		require.Equal(t, "file", l.sourceURL.Scheme)
	})

	t.Run("file scheme prefix", func(t *testing.T) {
		tempDir := t.TempDir()
		path := filepath.Join(tempDir, "test.story")

		l, err := NewFromDisk("file://" + path)
		require.NoError(t, err)
		require.Equal(t, path, l.absPath)
	})

	t.Run("relative path resolved to absolute", func(t *testing.T) {
		l, err := NewFromDisk("demo.story")
		require.NoError(t, err)
		require.True(t, filepath.IsAbs(l.absPath))
	})

	t.Run("invalid schemes", func(t *testing.T) {
		for _, path := range []string{"http://example.com/a.story", "https://example.com/a.story"} {
			l, err := NewFromDisk(path)
			require.ErrorIs(t, err, ErrSchemeUnsupported)
			require.Nil(t, l)
		}
	})

	t.Run("empty or invalid paths", func(t *testing.T) {
		for _, path := range []string{"", ".", "/"} {
			l, err := NewFromDisk(path)
			require.ErrorIs(t, err, ErrStoryNotAvailable)
			require.Nil(t, l)
		}
	})
}

func TestFromDiskGetReader(t *testing.T) {
	t.Run("reads file content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.story")
		require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

		l, err := NewFromDisk(path)
		require.NoError(t, err)

		reader, err := l.GetReader()
		require.NoError(t, err)
		defer reader.Close()

		content, err := io.ReadAll(reader)
		require.NoError(t, err)
		require.Equal(t, "a = 1\n", string(content))
	})

	t.Run("missing file reports the absolute path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.story")

		l, err := NewFromDisk(path)
		require.NoError(t, err)

		reader, err := l.GetReader()
		require.ErrorIs(t, err, ErrStoryNotFound)
		require.Contains(t, err.Error(), path)
		require.Nil(t, reader)
	})
}

func TestFromDiskString(t *testing.T) {
	t.Run("includes checksum when readable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.story")
		require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

		l, err := NewFromDisk(path)
		require.NoError(t, err)
		require.Contains(t, l.String(), "SHA256:")
	})

	t.Run("omits checksum when unreadable", func(t *testing.T) {
		l, err := NewFromDisk(filepath.Join(t.TempDir(), "missing.story"))
		require.NoError(t, err)
		require.Contains(t, l.String(), "loader.FromDisk{Path:")
		require.NotContains(t, l.String(), "SHA256:")
	})
}
