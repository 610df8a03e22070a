package parser

import (
	"strings"

	"github.com/storylang/storyc/execution/story"
)

// Tree adapts a parsed Program to the narrow capability interface the
// pipeline consumes. The compiler backend reaches through Program() for the
// typed representation instead.
type Tree struct {
	program *Program
	source  string
	root    *node
}

func newTree(program *Program, source string) *Tree {
	return &Tree{
		program: program,
		source:  source,
		root:    buildNodes(program),
	}
}

// Program returns the typed grammar representation.
func (t *Tree) Program() *Program {
	return t.program
}

// Source returns the cleaned text the tree was parsed from.
func (t *Tree) Source() string {
	return t.source
}

// FindAll returns every node carrying the tag, in preorder traversal order.
func (t *Tree) FindAll(tag string) []story.Node {
	var found []story.Node
	var walk func(n *node)
	walk = func(n *node) {
		if n.tag == tag {
			found = append(found, n)
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(t.root)
	return found
}

type node struct {
	tag      string
	value    string
	children []*node
}

func (n *node) Tag() string {
	return n.tag
}

func (n *node) Value() string {
	return n.value
}

func (n *node) Child(i int) story.Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *node) NumChildren() int {
	return len(n.children)
}

func buildNodes(program *Program) *node {
	root := &node{tag: "story"}
	for _, stmt := range program.Statements {
		switch {
		case stmt.Import != nil:
			root.children = append(root.children, &node{
				tag:   "imports",
				value: "import",
				children: []*node{
					{tag: "string", value: stmt.Import.Path.Value},
				},
			})
		case stmt.Assign != nil:
			root.children = append(root.children, &node{
				tag:   "assign",
				value: stmt.Assign.Name,
				children: []*node{
					{tag: "expression", value: strings.Join(stmt.Assign.Expr, " ")},
				},
			})
		case stmt.Command != nil:
			cmd := &node{
				tag:   "command",
				value: stmt.Command.Service,
				children: []*node{
					{tag: "action", value: stmt.Command.Action},
				},
			}
			for _, arg := range stmt.Command.Args {
				cmd.children = append(cmd.children, &node{
					tag:      "argument",
					value:    arg.Name,
					children: []*node{valueNode(arg.Value)},
				})
			}
			root.children = append(root.children, cmd)
		}
	}
	return root
}

func valueNode(v *Value) *node {
	switch {
	case v.String != nil:
		return &node{tag: "string", value: *v.String}
	case v.Number != nil:
		return &node{tag: "number", value: *v.Number}
	case v.Ident != nil:
		if *v.Ident == "true" || *v.Ident == "false" {
			return &node{tag: "boolean", value: *v.Ident}
		}
		return &node{tag: "variable", value: *v.Ident}
	default:
		return &node{tag: "value"}
	}
}
