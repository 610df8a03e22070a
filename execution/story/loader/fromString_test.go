package loader

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromString(t *testing.T) {
	t.Run("empty content", func(t *testing.T) {
		for _, content := range []string{"", "   ", "\n\t\n"} {
			l, err := NewFromString(content)
			require.ErrorIs(t, err, ErrStoryNotAvailable)
			require.Nil(t, l)
		}
	})

	t.Run("content stored verbatim", func(t *testing.T) {
		// Leading blank lines must survive so diagnostics keep their line
		// numbers.
		source := "\n\na = 1\n"
		l, err := NewFromString(source)
		require.NoError(t, err)

		reader, err := l.GetReader()
		require.NoError(t, err)
		content, err := io.ReadAll(reader)
		require.NoError(t, err)
		require.Equal(t, source, string(content))
	})

	t.Run("repeated readers return the same content", func(t *testing.T) {
		l, err := NewFromString("a = 1")
		require.NoError(t, err)

		for range 2 {
			reader, err := l.GetReader()
			require.NoError(t, err)
			content, err := io.ReadAll(reader)
			require.NoError(t, err)
			require.Equal(t, "a = 1", string(content))
		}
	})

	t.Run("source URL is content addressed", func(t *testing.T) {
		l, err := NewFromString("a = 1")
		require.NoError(t, err)
		require.Equal(t, "string", l.GetSourceURL().Scheme)

		other, err := NewFromString("b = 2")
		require.NoError(t, err)
		require.NotEqual(t, l.GetSourceURL().String(), other.GetSourceURL().String())
	})
}
