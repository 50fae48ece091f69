package symbol

import "fmt"

// ClassScope represents a single defined class, and the declarations in it
type ClassScope struct {
	// The definition for the class defined within the class
	Class *Definition
	// Every class that is nested within the base class, including local and
	// anonymous classes
	Subclasses []*ClassScope
	// Any normal and static fields associated with the class
	Fields []*Definition
	// Methods and constructors
	Methods []*Definition
	// Whether this class is an enum
	IsEnum bool
	// Type parameters for generic classes (e.g., T and U for class Foo<T, U>)
	TypeParameters []TypeParam

	// Header parameters of a record, which a compact constructor takes
	recordComponents []*Definition
	// How many local and anonymous classes have been named so far
	localClasses int
}

// nextLocalName returns the binary name prefix of the next local or anonymous
// class: Outer$1, Outer$2, and so on
func (cs *ClassScope) nextLocalName() string {
	cs.localClasses++
	return fmt.Sprintf("%s$%d", cs.Class.Name, cs.localClasses)
}

// markConstructor turns a method declaration into a constructor of this class.
// A constructor returns the type being constructed, and is looked up by the
// same name the JVM uses for it.
func (cs *ClassScope) markConstructor(declaration *Definition) {
	declaration.Kind = KindConstructor
	declaration.Rename(ConstructorName)
	declaration.OriginalName = cs.Class.OriginalName
	declaration.OriginalType = cs.Class.OriginalName
	declaration.Type = cs.Class.OriginalName
}

// definitions collects the class, its members, and every nested class's
// definitions
func (cs *ClassScope) definitions() []*Definition {
	defs := []*Definition{cs.Class}
	defs = append(defs, cs.Fields...)
	defs = append(defs, cs.Methods...)
	for _, subclass := range cs.Subclasses {
		defs = append(defs, subclass.definitions()...)
	}
	return defs
}
