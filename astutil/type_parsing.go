package astutil

import (
	"strings"
	"unicode"

	"github.com/NickyBoy89/sigfind/nodeutil"
	sitter "github.com/smacker/go-tree-sitter"
)

// IsTypeNode reports whether a node is one of the grammar's type productions
func IsTypeNode(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Type() {
	case "integral_type", "floating_point_type", "void_type", "boolean_type",
		"generic_type", "array_type", "type_identifier", "scoped_type_identifier",
		"annotated_type":
		return true
	default:
		return false
	}
}

// TypeName renders a Java type node as compact source text: generic arguments
// are kept, annotations and whitespace are dropped.
// Ex: `Map< String , List<int[]> >` -> `Map<String,List<int[]>>`
func TypeName(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}

	switch node.Type() {
	case "integral_type", "floating_point_type", "boolean_type", "void_type":
		// Single keyword such as `int` or `double`
		return node.Content(source)
	case "type_identifier":
		return node.Content(source)
	case "scoped_type_identifier":
		// Qualified names like java.util.List or Map.Entry
		var parts []string
		for _, child := range nodeutil.NamedChildrenOf(node) {
			if child.Type() == "annotation" || child.Type() == "marker_annotation" {
				continue
			}
			parts = append(parts, TypeName(child, source))
		}
		return strings.Join(parts, ".")
	case "generic_type":
		// A generic type is any type that is of the form GenericType<T>
		var base string
		var args []string
		for _, child := range nodeutil.NamedChildrenOf(node) {
			if child.Type() == "type_arguments" {
				for _, arg := range nodeutil.NamedChildrenOf(child) {
					args = append(args, TypeName(arg, source))
				}
				continue
			}
			if base == "" {
				base = TypeName(child, source)
			}
		}
		return base + "<" + strings.Join(args, ",") + ">"
	case "array_type":
		element := TypeName(node.ChildByFieldName("element"), source)
		dims := node.ChildByFieldName("dimensions")
		if dims == nil {
			return element + "[]"
		}
		return element + strings.Repeat("[]", strings.Count(dims.Content(source), "["))
	case "wildcard":
		return strings.Join(strings.Fields(node.Content(source)), " ")
	case "annotated_type":
		// `@NonNull String` keeps only the type
		for _, child := range nodeutil.NamedChildrenOf(node) {
			if IsTypeNode(child) {
				return TypeName(child, source)
			}
		}
	}
	return stripSpace(node.Content(source))
}

func stripSpace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}
