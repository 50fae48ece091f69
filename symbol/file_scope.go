package symbol

import (
	"cmp"
	"strings"

	"golang.org/x/exp/slices"
)

// Import is a single import declaration, in the textual form the compiler
// reports it: `java.util.List` or `java.util.*`
type Import struct {
	Path   string
	Static bool
}

// IsWildcard reports whether this is an on-demand (`.*`) import
func (imp Import) IsWildcard() bool {
	return strings.HasSuffix(imp.Path, "*")
}

// FileScope represents the scope in a single source file, that can contain one
// or more source classes
type FileScope struct {
	// Where the file came from, for diagnostics only
	Name string
	// The package that the file is located in, empty for the default package
	Package string
	// Every import declaration, in the order it was declared
	Imports []Import
	// Top-level classes/interfaces/enums declared in this file, in source order
	TopLevelClasses []*ClassScope
	// Read from a class file. Every type name is then already fully
	// qualified, and the package and imports play no part in resolving it.
	Compiled bool
}

// Definitions lists every class, field, method, and constructor in the file,
// ordered by where it was declared
func (fs *FileScope) Definitions() []*Definition {
	var defs []*Definition
	for _, top := range fs.TopLevelClasses {
		defs = append(defs, top.definitions()...)
	}
	slices.SortStableFunc(defs, func(a, b *Definition) int {
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		return cmp.Compare(a.Column, b.Column)
	})
	return defs
}
