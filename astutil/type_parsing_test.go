package astutil

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// parseJava parses a Java source file and returns the root of its tree
func parseJava(t *testing.T, source string) *sitter.Node {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(source))
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}
	return tree.RootNode()
}

// findNode recursively searches for a node of a given type
func findNode(node *sitter.Node, typeName string) *sitter.Node {
	if node.Type() == typeName {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		found := findNode(node.Child(i), typeName)
		if found != nil {
			return found
		}
	}
	return nil
}

// fieldType returns the type node of the first field declared in source
func fieldType(t *testing.T, source string) *sitter.Node {
	field := findNode(parseJava(t, source), "field_declaration")
	if field == nil {
		t.Fatal("Could not find field_declaration node")
	}
	return field.ChildByFieldName("type")
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "primitive int",
			source: "class C { int field; }",
			want:   "int",
		},
		{
			name:   "primitive double",
			source: "class C { double field; }",
			want:   "double",
		},
		{
			name:   "boolean",
			source: "class C { boolean field; }",
			want:   "boolean",
		},
		{
			name:   "simple reference",
			source: "class C { String field; }",
			want:   "String",
		},
		{
			name:   "qualified reference",
			source: "class C { java.util.List field; }",
			want:   "java.util.List",
		},
		{
			name:   "nested class reference",
			source: "class C { Map.Entry field; }",
			want:   "Map.Entry",
		},
		{
			name:   "generic with spacing",
			source: "class C { Map< String ,  Integer > field; }",
			want:   "Map<String,Integer>",
		},
		{
			name:   "nested generics",
			source: "class C { Map<String, List<Integer>> field; }",
			want:   "Map<String,List<Integer>>",
		},
		{
			name:   "array of primitives",
			source: "class C { int[] field; }",
			want:   "int[]",
		},
		{
			name:   "two dimensional array",
			source: "class C { String[][] field; }",
			want:   "String[][]",
		},
		{
			name:   "array of generics",
			source: "class C { List<String>[] field; }",
			want:   "List<String>[]",
		},
		{
			name:   "wildcard argument",
			source: "class C { List<? extends Number> field; }",
			want:   "List<? extends Number>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typeNode := fieldType(t, tt.source)
			if typeNode == nil {
				t.Fatal("Field has no type node")
			}
			if got := TypeName(typeNode, []byte(tt.source)); got != tt.want {
				t.Errorf("Expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}

func TestTypeName_Nil(t *testing.T) {
	if got := TypeName(nil, nil); got != "" {
		t.Errorf("Expected empty name for nil node, got '%s'", got)
	}
}

func TestIsTypeNode(t *testing.T) {
	source := "class C { List<String> field; }"
	root := parseJava(t, source)

	if !IsTypeNode(findNode(root, "generic_type")) {
		t.Error("Expected generic_type to be a type node")
	}
	if !IsTypeNode(findNode(root, "type_identifier")) {
		t.Error("Expected type_identifier to be a type node")
	}
	if IsTypeNode(findNode(root, "variable_declarator")) {
		t.Error("Did not expect variable_declarator to be a type node")
	}
	if IsTypeNode(nil) {
		t.Error("Did not expect nil to be a type node")
	}
}
