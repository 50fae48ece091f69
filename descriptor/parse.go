package descriptor

import (
	"strings"
)

// Parse reads a run of concatenated field descriptors, as found between the
// parentheses of a method descriptor, into an ordered list.
// Ex: `Ljava/util/List;I[[J` -> [Ljava/util/List;, I, [[J]
func Parse(params string) ([]Descriptor, error) {
	var descs []Descriptor
	offset := 0
	for offset < len(params) {
		desc, consumed, err := readNext(params, offset)
		if err != nil {
			return nil, err
		}
		descs = append(descs, desc)
		offset += consumed
	}
	return descs, nil
}

// ParseOne parses exactly one field descriptor, failing if anything is left over
func ParseOne(text string) (Descriptor, error) {
	desc, consumed, err := readNext(text, 0)
	if err != nil {
		return Descriptor{}, err
	}
	if consumed != len(text) {
		return Descriptor{}, &SyntaxError{Input: text, Offset: consumed, Reason: "trailing characters after descriptor"}
	}
	return desc, nil
}

// ParseReturn parses a method return descriptor. A `V` return reports
// isVoid with a zero Descriptor.
func ParseReturn(text string) (desc Descriptor, isVoid bool, err error) {
	if text == "V" {
		return Descriptor{}, true, nil
	}
	desc, err = ParseOne(text)
	return desc, false, err
}

// readNext parses the descriptor starting at offset and returns how many bytes
// it consumed
func readNext(input string, offset int) (Descriptor, int, error) {
	if offset >= len(input) {
		return Descriptor{}, 0, &SyntaxError{Input: input, Offset: offset, Reason: "unexpected end of descriptor"}
	}

	switch c := input[offset]; {
	case IsPrimitiveCode(c):
		return Descriptor{kind: Primitive, code: c}, 1, nil
	case c == '[':
		inner, consumed, err := readNext(input, offset+1)
		if err != nil {
			return Descriptor{}, 0, err
		}
		return NewArray(inner), consumed + 1, nil
	case c == 'L':
		semicolon := strings.IndexByte(input[offset:], ';')
		if semicolon == -1 {
			return Descriptor{}, 0, &SyntaxError{Input: input, Offset: offset, Reason: "class reference is missing ';'"}
		}
		if semicolon == 1 {
			return Descriptor{}, 0, &SyntaxError{Input: input, Offset: offset, Reason: "class reference has an empty name"}
		}
		return NewClassRef(input[offset+1 : offset+semicolon]), semicolon + 1, nil
	default:
		return Descriptor{}, 0, &SyntaxError{Input: input, Offset: offset, Reason: "unknown descriptor character " + string(c)}
	}
}
