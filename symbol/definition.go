package symbol

// Kind classifies what a definition declares
type Kind int

const (
	KindClass Kind = iota
	KindField
	KindMethod
	KindConstructor
	KindParameter
)

var kindNames = map[Kind]string{
	KindClass:       "class",
	KindField:       "field",
	KindMethod:      "method",
	KindConstructor: "constructor",
	KindParameter:   "parameter",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ConstructorName is the name every constructor is looked up by, matching the
// name the JVM gives it
const ConstructorName = "<init>"

// Definition represents the name and type of a single symbol
type Definition struct {
	// The original Java name
	OriginalName string
	// The name the definition is looked up by. Constructors are renamed to
	// <init>, nested classes are prefixed with their enclosing class.
	Name string
	// Type exactly as it was written in the source
	OriginalType string
	// Type with whitespace and annotations removed, generics kept
	Type string
	Kind Kind
	// Type parameters declared on this definition (methods/constructors)
	TypeParameters []TypeParam
	// Whether this definition is static (applies to methods/fields)
	IsStatic bool
	// If the object is a function, it has parameters
	Parameters []*Definition
	// 1-based position of the declaration. Zero for definitions read from
	// class files.
	Line   int
	Column int
}

// Rename changes the display name of a definition
func (d *Definition) Rename(name string) {
	d.Name = name
}

// IsMethodLike reports whether the definition is a method or a constructor
func (d *Definition) IsMethodLike() bool {
	return d != nil && (d.Kind == KindMethod || d.Kind == KindConstructor)
}

// ParameterTypes returns the compact source types of every parameter, in
// declaration order
func (d *Definition) ParameterTypes() []string {
	names := make([]string, len(d.Parameters))
	for ind, param := range d.Parameters {
		names[ind] = param.Type
	}
	return names
}
