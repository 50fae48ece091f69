// Package descriptor parses JVM field descriptors, the fully-qualified type
// strings found inside method signatures such as `foo(Ljava/util/List;I)`.
package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDescriptor is wrapped by every error returned from this package
var ErrMalformedDescriptor = errors.New("malformed descriptor")

// SyntaxError records where a descriptor stopped making sense
type SyntaxError struct {
	// The full input that was being parsed
	Input string
	// Byte offset of the descriptor that failed
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d of %q: %s (remaining %q)",
		ErrMalformedDescriptor, e.Offset, e.Input, e.Reason, e.Input[e.Offset:])
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformedDescriptor
}

// Kind is the shape of a parsed descriptor
type Kind int

const (
	Primitive Kind = iota
	Array
	ClassRef
)

// Descriptor is a single parsed field descriptor. The zero value is not
// meaningful; use Parse or one of the constructors.
type Descriptor struct {
	kind Kind
	// Primitive letter, only set for Primitive
	code byte
	// Element of an Array
	inner *Descriptor
	// Slash-separated binary name of a ClassRef, without `L` and `;`
	binaryName string
}

var primitiveNames = map[byte]string{
	'Z': "boolean",
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
}

var primitiveCodes = map[string]byte{
	"boolean": 'Z',
	"byte":    'B',
	"char":    'C',
	"double":  'D',
	"float":   'F',
	"int":     'I',
	"long":    'J',
	"short":   'S',
}

// IsPrimitiveCode reports whether c is one of the eight primitive letters
func IsPrimitiveCode(c byte) bool {
	_, ok := primitiveNames[c]
	return ok
}

// PrimitiveCode returns the descriptor letter for a Java primitive keyword,
// e.g. "int" -> 'I'
func PrimitiveCode(keyword string) (byte, bool) {
	code, ok := primitiveCodes[keyword]
	return code, ok
}

// NewPrimitive builds a primitive descriptor from its letter
func NewPrimitive(code byte) (Descriptor, error) {
	if !IsPrimitiveCode(code) {
		return Descriptor{}, fmt.Errorf("%w: %q is not a primitive code", ErrMalformedDescriptor, code)
	}
	return Descriptor{kind: Primitive, code: code}, nil
}

// NewArray wraps inner in one array dimension
func NewArray(inner Descriptor) Descriptor {
	return Descriptor{kind: Array, inner: &inner}
}

// NewClassRef builds a class reference from a binary name such as
// `java/util/List`
func NewClassRef(binaryName string) Descriptor {
	return Descriptor{kind: ClassRef, binaryName: binaryName}
}

func (d Descriptor) Kind() Kind {
	return d.kind
}

// Code is the primitive letter, or 0 for non-primitives
func (d Descriptor) Code() byte {
	return d.code
}

// BinaryName is the slash-separated class name of a ClassRef
func (d Descriptor) BinaryName() string {
	return d.binaryName
}

// Dimensions counts how many arrays wrap the innermost element
func (d Descriptor) Dimensions() int {
	dims := 0
	for cur := d; cur.kind == Array; cur = *cur.inner {
		dims++
	}
	return dims
}

// Element returns the innermost non-array descriptor
func (d Descriptor) Element() Descriptor {
	cur := d
	for cur.kind == Array {
		cur = *cur.inner
	}
	return cur
}

// String renders the descriptor back into JVM form, which is byte-identical to
// the text it was parsed from
func (d Descriptor) String() string {
	var sb strings.Builder
	d.writeTo(&sb)
	return sb.String()
}

func (d Descriptor) writeTo(sb *strings.Builder) {
	switch d.kind {
	case Primitive:
		sb.WriteByte(d.code)
	case Array:
		sb.WriteByte('[')
		d.inner.writeTo(sb)
	case ClassRef:
		sb.WriteByte('L')
		sb.WriteString(d.binaryName)
		sb.WriteByte(';')
	}
}

// SourceName renders the descriptor the way it would be written in Java source
// with every name fully qualified. Ex: [Ljava/lang/String; -> java.lang.String[]
func (d Descriptor) SourceName() string {
	elem := d.Element()
	var name string
	switch elem.kind {
	case Primitive:
		name = primitiveNames[elem.code]
	case ClassRef:
		name = strings.ReplaceAll(elem.binaryName, "/", ".")
	}
	return name + strings.Repeat("[]", d.Dimensions())
}
