package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The story grammar is line-oriented: each non-empty line is one statement.
// Comments never reach this layer; the pipeline strips them first.

var storyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"\\])*"|'(\\.|[^'\\])*'`},
	{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_./-]*`},
	{Name: "Punct", Pattern: `[-+*/%=<>!:(),\[\]{}]`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var storyParser = participle.MustBuild[Program](
	participle.Lexer(storyLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Program is the root of a parsed story.
type Program struct {
	Pos lexer.Position

	Statements []*Statement `parser:"EOL* ( @@ ( EOL+ | EOF ) )*"`
}

type Statement struct {
	Pos lexer.Position

	Import  *ImportDecl `parser:"( @@"`
	Assign  *Assignment `parser:"| @@"`
	Command *Command    `parser:"| @@ )"`
}

// ImportDecl references another story by a quoted path.
type ImportDecl struct {
	Pos lexer.Position

	Path *StringLit `parser:"'import' @@"`
}

// StringLit keeps the raw token text, quote delimiters included. The module
// resolver strips them.
type StringLit struct {
	Pos lexer.Position

	Value string `parser:"@String"`
}

// Assignment binds a name to an expression. The expression is captured as
// raw tokens up to the end of the line; the compiler backend validates it.
type Assignment struct {
	Pos lexer.Position

	Name string   `parser:"@Ident '='"`
	Expr []string `parser:"@( ~(EOL | EOF) )+"`
}

// Command invokes an action on a service, e.g. `http fetch url:"..."`.
type Command struct {
	Pos lexer.Position

	Service string `parser:"@Ident"`
	Action  string `parser:"@Ident"`
	Args    []*Arg `parser:"@@*"`
}

type Arg struct {
	Pos lexer.Position

	Name  string `parser:"@Ident ':'"`
	Value *Value `parser:"@@"`
}

type Value struct {
	Pos lexer.Position

	String *string `parser:"( @String"`
	Number *string `parser:"| @Number"`
	Ident  *string `parser:"| @Ident )"`
}
