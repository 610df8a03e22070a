package story

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanSource(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "empty source",
			source: "",
			want:   "",
		},
		{
			name:   "no markers is identity",
			source: "a = 1\ngreet say text:\"hello\"\n",
			want:   "a = 1\ngreet say text:\"hello\"\n",
		},
		{
			name:   "block comment removed with markers",
			source: "foo ### hidden ### bar",
			want:   "foo  bar",
		},
		{
			name:   "line comment removed to end of line",
			source: "foo # trailing comment",
			want:   "foo ",
		},
		{
			name:   "line comment keeps following line",
			source: "a = 1 # one\nb = 2\n",
			want:   "a = 1 \nb = 2\n",
		},
		{
			name:   "multi-line block keeps its newlines",
			source: "a ### x\ny ### b",
			want:   "a \n b",
		},
		{
			name:   "block followed by line comment",
			source: "foo ### hidden ### bar # tail",
			want:   "foo  bar ",
		},
		{
			name:   "unterminated block falls back to line comment",
			source: "foo ### open",
			want:   "foo ",
		},
		{
			name:   "hash inside string still starts a comment",
			source: `greet say text:"hello # world"`,
			want:   `greet say text:"hello `,
		},
		{
			name:   "comment-only source",
			source: "# a\n# b\n",
			want:   "\n\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanSource(tc.source)
			require.Equal(t, tc.want, got)
		})
	}

	t.Run("idempotence", func(t *testing.T) {
		for _, tc := range cases {
			once := CleanSource(tc.source)
			require.Equal(t, once, CleanSource(once), "case %q", tc.name)
		}
	})
}
