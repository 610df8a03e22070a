package story

import (
	"fmt"
	"strings"
)

// ModuleSuffix is appended to any imported path that does not already
// carry it.
const ModuleSuffix = ".story"

const (
	importTag = "imports"
	stringTag = "string"
)

// NormalizeImport appends ModuleSuffix to a module path when absent. Paths
// already ending in the suffix are returned unchanged.
func NormalizeImport(path string) string {
	if strings.HasSuffix(path, ModuleSuffix) {
		return path
	}
	return path + ModuleSuffix
}

// ResolveModules walks the tree and returns the normalized paths of every
// imported module, in traversal order and with duplicates preserved. Each
// import node must carry a nested string literal whose first and last
// characters are the quote delimiters; anything else fails with
// ErrMalformedImport identifying the offending node.
func ResolveModules(tree Tree) ([]string, error) {
	if tree == nil {
		return nil, ErrNoTree
	}

	var modules []string
	for i, node := range tree.FindAll(importTag) {
		str := node.Child(0)
		if str == nil || str.Tag() != stringTag {
			return nil, fmt.Errorf(
				"%w: import node %d has no nested string literal",
				ErrMalformedImport, i)
		}
		raw := str.Value()
		if len(raw) < 2 {
			return nil, fmt.Errorf(
				"%w: import node %d literal %q is missing quote delimiters",
				ErrMalformedImport, i, raw)
		}
		modules = append(modules, NormalizeImport(raw[1:len(raw)-1]))
	}
	return modules, nil
}
