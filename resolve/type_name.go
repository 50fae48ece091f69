package resolve

import (
	"strings"
	"unicode"
)

// TypeName is a source-level type name split into its element name and array
// dimensions, with generic arguments removed.
// Ex: `List<String>[][]` -> {Element: List, Dimensions: 2}
type TypeName struct {
	Element    string
	Dimensions int
}

// ParseTypeName normalises a type name as written in source. Whitespace is
// dropped, the first top-level `<...>` span is removed, and each trailing `[]`
// (or a varargs `...`) counts as one array dimension.
func ParseTypeName(text string) TypeName {
	name := stripGenerics(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text))

	var tn TypeName
	if strings.HasSuffix(name, "...") {
		name = strings.TrimSuffix(name, "...")
		tn.Dimensions++
	}
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
		tn.Dimensions++
	}
	tn.Element = name
	return tn
}

// stripGenerics removes the first balanced `<...>` span
func stripGenerics(name string) string {
	start := strings.IndexByte(name, '<')
	if start == -1 {
		return name
	}
	depth := 0
	for i := start; i < len(name); i++ {
		switch name[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return name[:start] + name[i+1:]
			}
		}
	}
	// Unbalanced, drop everything from the bracket on
	return name[:start]
}

// String renders the name back with its dimensions
func (tn TypeName) String() string {
	return tn.Element + strings.Repeat("[]", tn.Dimensions)
}

// WithElement swaps the element name, keeping the dimensions
func (tn TypeName) WithElement(element string) TypeName {
	inner := ParseTypeName(element)
	return TypeName{Element: inner.Element, Dimensions: tn.Dimensions + inner.Dimensions}
}
