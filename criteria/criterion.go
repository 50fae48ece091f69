// Package criteria holds the predicates an annotation inserter evaluates at
// each declaration to decide where an annotation belongs.
package criteria

import (
	"github.com/NickyBoy89/sigfind/symbol"
)

// Kind labels a criterion for diagnostics
type Kind string

const (
	KindInClass    Kind = "in-class"
	KindInMethod   Kind = "in-method"
	KindField      Kind = "field"
	KindParam      Kind = "param"
	KindSigMethod  Kind = "sig-method"
	KindReturnType Kind = "return-type"
)

// Path is a position in a compilation unit: the unit itself and the
// declaration found there
type Path struct {
	// Identity of the unit is what resolution contexts are cached by
	Unit *symbol.FileScope
	// Nil when the position is not a declaration
	Leaf *symbol.Definition
}

// PathsOf lists a path for every declaration in unit, in source order
func PathsOf(unit *symbol.FileScope) []*Path {
	defs := unit.Definitions()
	paths := make([]*Path, len(defs))
	for i, def := range defs {
		paths[i] = &Path{Unit: unit, Leaf: def}
	}
	return paths
}

// Criterion is a single yes/no question about a position. Implementations never
// fail: anything they cannot make sense of is simply not satisfied.
type Criterion interface {
	IsSatisfiedBy(path *Path) bool
	Kind() Kind
	String() string
}
