package symbol

// JavaType is a lightweight representation of a Java type as it appears in source.
type JavaType struct {
	Original string
}

// TypeParam represents a declared type parameter (class or method), including
// any upper bounds (e.g. `T extends Number & Comparable<T>`).
type TypeParam struct {
	Name   string
	Bounds []JavaType
}

// DefaultBound is the implicit upper bound of an unbounded type parameter
const DefaultBound = "Object"

// FirstBound returns the first declared bound, or Object when there is none.
// Only the first bound of an intersection is ever considered.
func (p TypeParam) FirstBound() string {
	if len(p.Bounds) == 0 || p.Bounds[0].Original == "" {
		return DefaultBound
	}
	return p.Bounds[0].Original
}
