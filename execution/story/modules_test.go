package story

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	tag      string
	value    string
	children []*fakeNode
}

func (n *fakeNode) Tag() string    { return n.tag }
func (n *fakeNode) Value() string  { return n.value }
func (n *fakeNode) NumChildren() int { return len(n.children) }

func (n *fakeNode) Child(i int) Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

type fakeTree struct {
	nodes []*fakeNode
}

func (t *fakeTree) FindAll(tag string) []Node {
	var found []Node
	for _, n := range t.nodes {
		if n.tag == tag {
			found = append(found, n)
		}
	}
	return found
}

func importNode(literal string) *fakeNode {
	return &fakeNode{
		tag:      "imports",
		children: []*fakeNode{{tag: "string", value: literal}},
	}
}

func TestNormalizeImport(t *testing.T) {
	cases := []struct {
		name string
		path string
		want string
	}{
		{name: "suffix appended", path: "a/b", want: "a/b.story"},
		{name: "suffix not doubled", path: "a/b.story", want: "a/b.story"},
		{name: "empty path gains suffix", path: "", want: ".story"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NormalizeImport(tc.path))
		})
	}
}

func TestResolveModules(t *testing.T) {
	t.Run("nil tree", func(t *testing.T) {
		modules, err := ResolveModules(nil)
		require.ErrorIs(t, err, ErrNoTree)
		require.Nil(t, modules)
	})

	t.Run("no imports", func(t *testing.T) {
		modules, err := ResolveModules(&fakeTree{})
		require.NoError(t, err)
		require.Empty(t, modules)
	})

	t.Run("quotes stripped and suffix appended", func(t *testing.T) {
		tree := &fakeTree{nodes: []*fakeNode{
			importNode(`"lib/alerts"`),
			importNode(`'billing.story'`),
		}}
		modules, err := ResolveModules(tree)
		require.NoError(t, err)
		require.Equal(t, []string{"lib/alerts.story", "billing.story"}, modules)
	})

	t.Run("duplicates preserved in order", func(t *testing.T) {
		tree := &fakeTree{nodes: []*fakeNode{
			importNode(`"a"`),
			importNode(`"b"`),
			importNode(`"a"`),
		}}
		modules, err := ResolveModules(tree)
		require.NoError(t, err)
		require.Equal(t, []string{"a.story", "b.story", "a.story"}, modules)
	})

	t.Run("malformed imports", func(t *testing.T) {
		cases := []struct {
			name string
			node *fakeNode
		}{
			{
				name: "no children",
				node: &fakeNode{tag: "imports"},
			},
			{
				name: "wrong child tag",
				node: &fakeNode{tag: "imports", children: []*fakeNode{{tag: "number", value: "1"}}},
			},
			{
				name: "literal too short for quotes",
				node: &fakeNode{tag: "imports", children: []*fakeNode{{tag: "string", value: `"`}}},
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				modules, err := ResolveModules(&fakeTree{nodes: []*fakeNode{tc.node}})
				require.ErrorIs(t, err, ErrMalformedImport)
				require.Nil(t, modules)
			})
		}
	})

	t.Run("error identifies offending node", func(t *testing.T) {
		tree := &fakeTree{nodes: []*fakeNode{
			importNode(`"ok"`),
			{tag: "imports"},
		}}
		_, err := ResolveModules(tree)
		require.ErrorIs(t, err, ErrMalformedImport)
		require.Contains(t, err.Error(), "import node 1")
	})
}
