package story

import (
	"context"
	"iter"
)

// Tree is the minimal capability the pipeline requires from a parsed story.
// The concrete structure belongs to the parser adapter; the pipeline only
// ever queries nodes by tag.
type Tree interface {
	// FindAll returns every node carrying the given tag, in tree traversal
	// order. Duplicates are preserved.
	FindAll(tag string) []Node
}

// Node is a single tagged node of a syntax tree.
type Node interface {
	Tag() string

	// Value returns the literal text of the node, verbatim from the source.
	Value() string

	// Child returns the nth child, or nil when out of range.
	Child(i int) Node

	NumChildren() int
}

// Token is a single lexical token, produced only on the tooling path.
// Positions are 0-based.
type Token struct {
	Type   string
	Value  string
	Line   int
	Column int
}

// Parser converts cleaned story text into a syntax tree, or fails with a
// *SyntaxError. Tokens exists purely for diagnostics and tooling; it is
// never invoked while compiling.
type Parser interface {
	Parse(ctx context.Context, source string) (Tree, error)
	Tokens(source string) iter.Seq2[Token, error]
}

// Compiler converts a syntax tree into a compiled artifact, or fails with a
// *SemanticError.
type Compiler interface {
	Compile(ctx context.Context, tree Tree, debug bool) (Artifact, error)
}

// Artifact is the opaque compiled output of a story. Its internal structure
// belongs to the compiler backend.
type Artifact interface {
	// GetSource returns the cleaned source the artifact was compiled from.
	GetSource() string

	// GetProgram returns the backend-specific compiled representation.
	GetProgram() any
}
