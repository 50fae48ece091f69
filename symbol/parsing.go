package symbol

import (
	"strings"

	"github.com/NickyBoy89/sigfind/astutil"
	"github.com/NickyBoy89/sigfind/nodeutil"
	sitter "github.com/smacker/go-tree-sitter"
)

func extractTypeParameterBounds(param *sitter.Node, source []byte) []JavaType {
	bound := nodeutil.FirstChildOfType(param, "type_bound")
	if bound == nil {
		return nil
	}

	var bounds []JavaType
	for _, child := range nodeutil.NamedChildrenOf(bound) {
		if astutil.IsTypeNode(child) {
			bounds = append(bounds, JavaType{Original: astutil.TypeName(child, source)})
		}
	}
	return bounds
}

func extractTypeParameters(node *sitter.Node, source []byte) []TypeParam {
	if node == nil {
		return nil
	}

	var params []TypeParam
	for _, param := range nodeutil.NamedChildrenOf(node) {
		if param.Type() != "type_parameter" {
			continue
		}
		// Annotations may come before the name
		nameNode := nodeutil.FirstChildOfType(param, "type_identifier", "identifier")
		if nameNode == nil {
			continue
		}
		params = append(params, TypeParam{
			Name:   nameNode.Content(source),
			Bounds: extractTypeParameterBounds(param, source),
		})
	}
	return params
}

func parseImport(node *sitter.Node, source []byte) (Import, bool) {
	nameNode := nodeutil.FirstChildOfType(node, "scoped_identifier", "identifier")
	if nameNode == nil {
		return Import{}, false
	}

	imp := Import{Path: nameNode.Content(source)}
	if nodeutil.FirstChildOfType(node, "asterisk") != nil {
		imp.Path += ".*"
	}
	for _, keyword := range nodeutil.UnnamedChildrenOf(node) {
		if keyword.Type() == "static" {
			imp.Static = true
		}
	}
	return imp, true
}

// ParseSymbols generates a symbol table for a single source file.
func ParseSymbols(root *sitter.Node, source []byte) *FileScope {
	scope := &FileScope{}

	var topLevelNodes []*sitter.Node
	for _, node := range nodeutil.NamedChildrenOf(root) {
		switch node.Type() {
		case "package_declaration":
			if name := nodeutil.FirstChildOfType(node, "scoped_identifier", "identifier"); name != nil {
				scope.Package = name.Content(source)
			}
		case "import_declaration":
			if imp, ok := parseImport(node, source); ok {
				scope.Imports = append(scope.Imports, imp)
			}
		case "class_declaration", "interface_declaration", "enum_declaration",
			"annotation_type_declaration", "record_declaration":
			topLevelNodes = append(topLevelNodes, node)
		}
	}

	for _, decl := range topLevelNodes {
		scope.TopLevelClasses = append(scope.TopLevelClasses, parseClassScope(decl, source, ""))
	}

	return scope
}

func position(node *sitter.Node) (line, column int) {
	start := node.StartPoint()
	return int(start.Row) + 1, int(start.Column) + 1
}

// parseClassScope parses a class-like declaration. Its binary name is prefix
// followed by the declared name.
func parseClassScope(root *sitter.Node, source []byte, prefix string) *ClassScope {
	nodeutil.AssertTypeIs(root.ChildByFieldName("name"), "identifier")

	className := root.ChildByFieldName("name").Content(source)
	line, column := position(root)
	scope := &ClassScope{
		Class: &Definition{
			OriginalName: className,
			Name:         className,
			Kind:         KindClass,
			IsStatic:     nodeutil.HasModifier(root, "static"),
			Line:         line,
			Column:       column,
		},
		IsEnum:         root.Type() == "enum_declaration",
		TypeParameters: extractTypeParameters(root.ChildByFieldName("type_parameters"), source),
	}
	if prefix != "" {
		scope.Class.Rename(prefix + className)
	}
	if root.Type() == "record_declaration" {
		scope.recordComponents = parseParameters(root.ChildByFieldName("parameters"), source)
	}

	for _, node := range nodeutil.NamedChildrenOf(root.ChildByFieldName("body")) {
		if node.Type() == "enum_body_declarations" {
			// The methods and constructors that follow an enum's constants
			for _, declNode := range nodeutil.NamedChildrenOf(node) {
				parseClassMember(scope, declNode, source)
			}
			continue
		}
		parseClassMember(scope, node, source)
	}

	return scope
}

// parseAnonymousClass parses the body of `new T() { ... }` or of an enum
// constant. Anonymous classes are numbered within their enclosing class.
func parseAnonymousClass(outer *ClassScope, body *sitter.Node, source []byte) *ClassScope {
	line, column := position(body)
	scope := &ClassScope{
		Class: &Definition{
			Name:   outer.nextLocalName(),
			Kind:   KindClass,
			Line:   line,
			Column: column,
		},
	}
	for _, node := range nodeutil.NamedChildrenOf(body) {
		parseClassMember(scope, node, source)
	}
	return scope
}

// parseLocalClasses adds every class declared inside node to scope: local
// classes in blocks and anonymous class bodies. Classes nested in those are
// left to their own scope.
func parseLocalClasses(scope *ClassScope, node *sitter.Node, source []byte) {
	for _, child := range nodeutil.NamedChildrenOf(node) {
		switch child.Type() {
		case "class_declaration", "interface_declaration", "enum_declaration",
			"annotation_type_declaration", "record_declaration":
			local := parseClassScope(child, source, scope.nextLocalName())
			scope.Subclasses = append(scope.Subclasses, local)
		case "class_body":
			// Only anonymous classes reach here, named declarations are cut off above
			scope.Subclasses = append(scope.Subclasses, parseAnonymousClass(scope, child, source))
		default:
			parseLocalClasses(scope, child, source)
		}
	}
}

// parseClassMember parses a single class member (field, method, constructor, or nested class)
func parseClassMember(scope *ClassScope, node *sitter.Node, source []byte) {
	switch node.Type() {
	case "field_declaration", "constant_declaration":
		typeNode := node.ChildByFieldName("type")
		isStatic := nodeutil.HasModifier(node, "static") || node.Type() == "constant_declaration"

		// A single declaration can declare several fields: int a, b[];
		for _, declarator := range nodeutil.NamedChildrenOf(node) {
			if declarator.Type() != "variable_declarator" {
				continue
			}
			nameNode := declarator.ChildByFieldName("name")
			nodeutil.AssertTypeIs(nameNode, "identifier")

			line, column := position(declarator)
			fieldName := nameNode.Content(source)
			scope.Fields = append(scope.Fields, &Definition{
				OriginalName: fieldName,
				Name:         fieldName,
				Kind:         KindField,
				IsStatic:     isStatic,
				OriginalType: typeNode.Content(source),
				Type:         astutil.TypeName(typeNode, source) + extraDimensions(declarator, source),
				Line:         line,
				Column:       column,
			})
			parseLocalClasses(scope, declarator.ChildByFieldName("value"), source)
		}
	case "method_declaration", "constructor_declaration":
		nodeutil.AssertTypeIs(node.ChildByFieldName("name"), "identifier")

		name := node.ChildByFieldName("name").Content(source)
		line, column := position(node)
		declaration := &Definition{
			OriginalName:   name,
			Name:           name,
			Kind:           KindMethod,
			Parameters:     parseParameters(node.ChildByFieldName("parameters"), source),
			TypeParameters: extractTypeParameters(node.ChildByFieldName("type_parameters"), source),
			IsStatic:       nodeutil.HasModifier(node, "static"),
			Line:           line,
			Column:         column,
		}

		if node.Type() == "method_declaration" {
			typeNode := node.ChildByFieldName("type")
			declaration.OriginalType = typeNode.Content(source)
			declaration.Type = astutil.TypeName(typeNode, source) + extraDimensions(node, source)
		} else {
			scope.markConstructor(declaration)
		}

		scope.Methods = append(scope.Methods, declaration)
		parseLocalClasses(scope, node.ChildByFieldName("body"), source)
	case "compact_constructor_declaration":
		// record Point(int x, int y) { Point { ... } } takes the record's components
		name := node.ChildByFieldName("name").Content(source)
		line, column := position(node)
		declaration := &Definition{
			OriginalName: name,
			Name:         name,
			Parameters:   append([]*Definition{}, scope.recordComponents...),
			Line:         line,
			Column:       column,
		}
		scope.markConstructor(declaration)

		scope.Methods = append(scope.Methods, declaration)
		parseLocalClasses(scope, node.ChildByFieldName("body"), source)
	case "annotation_type_element_declaration":
		// An annotation element is a method without parameters: String value();
		typeNode := node.ChildByFieldName("type")
		name := node.ChildByFieldName("name").Content(source)
		line, column := position(node)
		scope.Methods = append(scope.Methods, &Definition{
			OriginalName: name,
			Name:         name,
			Kind:         KindMethod,
			OriginalType: typeNode.Content(source),
			Type:         astutil.TypeName(typeNode, source) + extraDimensions(node, source),
			Parameters:   []*Definition{},
			Line:         line,
			Column:       column,
		})
	case "enum_constant", "block", "static_initializer":
		parseLocalClasses(scope, node, source)
	case "class_declaration", "interface_declaration", "enum_declaration",
		"annotation_type_declaration", "record_declaration":
		scope.Subclasses = append(scope.Subclasses, parseClassScope(node, source, scope.Class.Name+"$"))
	}
}

// parseParameters reads a formal parameter list, or a record header
func parseParameters(node *sitter.Node, source []byte) []*Definition {
	params := []*Definition{}
	for _, parameter := range nodeutil.NamedChildrenOf(node) {
		if param := parseParameter(parameter, source); param != nil {
			params = append(params, param)
		}
	}
	return params
}

// parseParameter reads one formal parameter. Receiver parameters (`Foo this`)
// are not real parameters and yield nil.
func parseParameter(parameter *sitter.Node, source []byte) *Definition {
	var paramName string
	var paramType *sitter.Node
	var suffix string

	switch parameter.Type() {
	case "formal_parameter":
		paramName = parameter.ChildByFieldName("name").Content(source)
		paramType = parameter.ChildByFieldName("type")
		// C-style array parameters: String args[]
		suffix = extraDimensions(parameter, source)
	case "spread_parameter":
		// In the format: (modifiers)? (type) ... (variable_declarator name: (name))
		for _, child := range nodeutil.NamedChildrenOf(parameter) {
			switch {
			case paramType == nil && astutil.IsTypeNode(child):
				paramType = child
			case child.Type() == "variable_declarator":
				paramName = child.ChildByFieldName("name").Content(source)
			}
		}
		suffix = "..."
	default:
		return nil
	}

	if paramType == nil {
		return nil
	}

	line, column := position(parameter)
	return &Definition{
		OriginalName: paramName,
		Name:         paramName,
		Kind:         KindParameter,
		OriginalType: paramType.Content(source),
		Type:         astutil.TypeName(paramType, source) + suffix,
		Line:         line,
		Column:       column,
	}
}

// extraDimensions returns the `[]` groups written after a declarator's name
func extraDimensions(node *sitter.Node, source []byte) string {
	dims := node.ChildByFieldName("dimensions")
	if dims == nil {
		return ""
	}
	return strings.Repeat("[]", strings.Count(dims.Content(source), "["))
}
