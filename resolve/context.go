// Package resolve decides whether a short type name written in a Java source
// file could denote a given fully-qualified JVM type, using only the file's
// package, its imports, and the implicit java.lang import.
package resolve

import (
	"strings"

	"github.com/NickyBoy89/sigfind/symbol"
)

// ImportKind distinguishes on-demand imports from single-type imports
type ImportKind int

const (
	Single ImportKind = iota
	Wildcard
)

// Import is a classified import declaration
type Import struct {
	Kind ImportKind
	// Text every candidate name starts with, ending in `.` (`java.util.`)
	Prefix string
	// Imported simple name for Single imports (`List`), empty for Wildcard
	SimpleName string
	Static     bool
}

// ClassifyImport splits the textual target of an import declaration.
// `java.util.*` is a Wildcard with prefix `java.util.`; `java.util.List` is a
// Single with prefix `java.util.` and simple name `List`.
func ClassifyImport(path string) Import {
	if star := strings.IndexByte(path, '*'); star != -1 {
		return Import{Kind: Wildcard, Prefix: path[:star]}
	}
	dot := strings.LastIndexByte(path, '.')
	return Import{
		Kind:       Single,
		Prefix:     path[:dot+1],
		SimpleName: path[dot+1:],
	}
}

// Context is everything name resolution needs to know about one source file.
// It is never modified after it is built.
type Context struct {
	// Empty for the default package
	Package string
	Imports []Import
	// Every name is already fully qualified, as in a class file, so only the
	// name itself is a candidate
	Qualified bool
}

// NewContext classifies the imports of a file, keeping their order
func NewContext(pkg string, importPaths []string) *Context {
	ctx := &Context{Package: pkg, Imports: make([]Import, 0, len(importPaths))}
	for _, path := range importPaths {
		ctx.Imports = append(ctx.Imports, ClassifyImport(path))
	}
	return ctx
}

// ContextOf builds the context for a parsed file
func ContextOf(unit *symbol.FileScope) *Context {
	if unit.Compiled {
		return &Context{Package: unit.Package, Qualified: true}
	}

	ctx := &Context{Package: unit.Package, Imports: make([]Import, 0, len(unit.Imports))}
	for _, imp := range unit.Imports {
		var classified Import
		if imp.IsWildcard() {
			classified = Import{Kind: Wildcard, Prefix: strings.TrimSuffix(imp.Path, "*")}
		} else {
			classified = ClassifyImport(imp.Path)
		}
		classified.Static = imp.Static
		ctx.Imports = append(ctx.Imports, classified)
	}
	return ctx
}

// packagePrefix is the package name ready to have a simple name appended
func (ctx *Context) packagePrefix() string {
	if ctx.Package == "" {
		return ""
	}
	return ctx.Package + "."
}
