package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storylang/storyc/execution/story"
)

func newParser(t *testing.T) *Parser {
	t.Helper()
	p, err := New()
	require.NoError(t, err)
	return p
}

func parseTree(t *testing.T, source string) *Tree {
	t.Helper()
	tree, err := newParser(t).Parse(context.Background(), source)
	require.NoError(t, err)
	return tree.(*Tree)
}

func TestParse(t *testing.T) {
	t.Run("full story", func(t *testing.T) {
		tree := parseTree(t, "import \"lib/alerts\"\nname = \"world\"\ngreet say text:\"hello\" who:name\n")
		program := tree.Program()
		require.Len(t, program.Statements, 3)

		require.NotNil(t, program.Statements[0].Import)
		require.Equal(t, `"lib/alerts"`, program.Statements[0].Import.Path.Value)

		assign := program.Statements[1].Assign
		require.NotNil(t, assign)
		require.Equal(t, "name", assign.Name)
		require.Equal(t, []string{`"world"`}, assign.Expr)

		command := program.Statements[2].Command
		require.NotNil(t, command)
		require.Equal(t, "greet", command.Service)
		require.Equal(t, "say", command.Action)
		require.Len(t, command.Args, 2)
		require.Equal(t, "text", command.Args[0].Name)
		require.NotNil(t, command.Args[0].Value.String)
		require.Equal(t, "who", command.Args[1].Name)
		require.NotNil(t, command.Args[1].Value.Ident)
	})

	t.Run("empty source", func(t *testing.T) {
		tree := parseTree(t, "")
		require.Empty(t, tree.Program().Statements)
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		tree := parseTree(t, "\n\na = 1\n\nb = 2\n")
		require.Len(t, tree.Program().Statements, 2)
	})

	t.Run("expression captured as raw tokens", func(t *testing.T) {
		tree := parseTree(t, "x = 1 + 2 * y\n")
		assign := tree.Program().Statements[0].Assign
		require.NotNil(t, assign)
		require.Equal(t, []string{"1", "+", "2", "*", "y"}, assign.Expr)
	})

	t.Run("syntax failure is a uniform SyntaxError", func(t *testing.T) {
		cases := []struct {
			name   string
			source string
		}{
			{name: "import without string", source: "import 123\n"},
			{name: "dangling operator token", source: "greet say )\n"},
			{name: "lone punctuation", source: "= 1\n"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := newParser(t).Parse(context.Background(), tc.source)
				require.Error(t, err)

				var syntaxErr *story.SyntaxError
				require.ErrorAs(t, err, &syntaxErr)
				require.GreaterOrEqual(t, syntaxErr.Line, 0)
				require.GreaterOrEqual(t, syntaxErr.Column, 0)
				require.NotEmpty(t, syntaxErr.Msg)
			})
		}
	})

	t.Run("positions are zero-based", func(t *testing.T) {
		_, err := newParser(t).Parse(context.Background(), "import 123\n")

		var syntaxErr *story.SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		require.Equal(t, 0, syntaxErr.Line)
	})
}

func TestTreeFindAll(t *testing.T) {
	t.Run("imports in traversal order with duplicates", func(t *testing.T) {
		tree := parseTree(t, "import \"a\"\nx = 1\nimport \"b\"\nimport \"a\"\n")

		imports := tree.FindAll("imports")
		require.Len(t, imports, 3)
		require.Equal(t, `"a"`, imports[0].Child(0).Value())
		require.Equal(t, `"b"`, imports[1].Child(0).Value())
		require.Equal(t, `"a"`, imports[2].Child(0).Value())
	})

	t.Run("import nodes carry a nested string", func(t *testing.T) {
		tree := parseTree(t, "import \"lib/a\"\n")

		node := tree.FindAll("imports")[0]
		str := node.Child(0)
		require.NotNil(t, str)
		require.Equal(t, "string", str.Tag())
		require.Equal(t, `"lib/a"`, str.Value())
		require.Nil(t, node.Child(1))
		require.Nil(t, node.Child(-1))
		require.Equal(t, 1, node.NumChildren())
	})

	t.Run("module resolution over a real tree", func(t *testing.T) {
		tree := parseTree(t, "import \"lib/a\"\nimport \"b.story\"\n")

		modules, err := story.ResolveModules(tree)
		require.NoError(t, err)
		require.Equal(t, []string{"lib/a.story", "b.story"}, modules)
	})

	t.Run("unknown tag finds nothing", func(t *testing.T) {
		tree := parseTree(t, "a = 1\n")
		require.Empty(t, tree.FindAll("imports"))
	})

	t.Run("command and value nodes are tagged", func(t *testing.T) {
		tree := parseTree(t, "debug = true\nhttp fetch url:\"x\" retries:3 verbose:debug flag:true\n")

		commands := tree.FindAll("command")
		require.Len(t, commands, 1)
		require.Equal(t, "http", commands[0].Value())
		require.Equal(t, "action", commands[0].Child(0).Tag())

		require.Len(t, tree.FindAll("argument"), 4)
		require.Len(t, tree.FindAll("number"), 1)
		require.Len(t, tree.FindAll("boolean"), 1)
		require.Len(t, tree.FindAll("variable"), 1)
	})
}

func TestTokens(t *testing.T) {
	t.Run("token stream with zero-based positions", func(t *testing.T) {
		var tokens []story.Token
		for token, err := range newParser(t).Tokens("a = 1\n") {
			require.NoError(t, err)
			tokens = append(tokens, token)
		}

		require.Len(t, tokens, 4)
		require.Equal(t, story.Token{Type: "Ident", Value: "a", Line: 0, Column: 0}, tokens[0])
		require.Equal(t, story.Token{Type: "Punct", Value: "=", Line: 0, Column: 2}, tokens[1])
		require.Equal(t, story.Token{Type: "Number", Value: "1", Line: 0, Column: 4}, tokens[2])
		require.Equal(t, "EOL", tokens[3].Type)
	})

	t.Run("early break stops the stream", func(t *testing.T) {
		count := 0
		for range newParser(t).Tokens("a = 1\nb = 2\n") {
			count++
			if count == 2 {
				break
			}
		}
		require.Equal(t, 2, count)
	})
}
