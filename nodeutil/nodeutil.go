package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// NamedChildrenOf returns the named children of a node, or nothing for a nil node
func NamedChildrenOf(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}

// UnnamedChildrenOf returns the anonymous children of a node, such as keywords
// and punctuation
func UnnamedChildrenOf(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	var children []*sitter.Node
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if !child.IsNamed() {
			children = append(children, child)
		}
	}
	return children
}

// FirstChildOfType returns the first named child with one of the given types
func FirstChildOfType(node *sitter.Node, types ...string) *sitter.Node {
	for _, child := range NamedChildrenOf(node) {
		for _, typ := range types {
			if child.Type() == typ {
				return child
			}
		}
	}
	return nil
}

// HasModifier reports whether a declaration's `modifiers` child contains the
// given keyword
func HasModifier(decl *sitter.Node, keyword string) bool {
	modifiers := FirstChildOfType(decl, "modifiers")
	for _, modifier := range UnnamedChildrenOf(modifiers) {
		if modifier.Type() == keyword {
			return true
		}
	}
	return false
}

// AssertTypeIs panics if the node is not of the expected type. The grammar
// guarantees these shapes, so a mismatch is a bug rather than bad input.
func AssertTypeIs(node *sitter.Node, expectedType string) {
	if node == nil {
		panic(fmt.Errorf("expected node of type %s, got nil", expectedType))
	}
	if node.Type() != expectedType {
		panic(fmt.Errorf("expected node of type %s, got %s", expectedType, node.Type()))
	}
}
