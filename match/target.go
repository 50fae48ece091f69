// Package match decides whether a method declaration is the one named by a
// JVM-style signature such as `foo(Ljava/util/List;I)`.
package match

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/NickyBoy89/sigfind/descriptor"
)

// ErrMalformedTargetSignature is wrapped by every error from ParseTarget
var ErrMalformedTargetSignature = errors.New("malformed target signature")

// Target is a parsed method signature
type Target struct {
	// Simple method name, <init> for constructors
	Name   string
	Params []descriptor.Descriptor
	// Return type, only meaningful when HasReturn is set and IsVoid is not
	Return    descriptor.Descriptor
	HasReturn bool
	IsVoid    bool

	// The signature text up to and including `)`
	text string
}

// ParseTarget parses `name(params)` with an optional trailing return
// descriptor, e.g. `foo(Ljava/util/List;I)` or `<init>([B)V`
func ParseTarget(signature string) (*Target, error) {
	open := strings.IndexByte(signature, '(')
	if open == -1 {
		return nil, fmt.Errorf("%w: %q has no '('", ErrMalformedTargetSignature, signature)
	}
	closing := strings.IndexByte(signature, ')')
	if closing == -1 {
		return nil, fmt.Errorf("%w: %q has no ')'", ErrMalformedTargetSignature, signature)
	}
	if closing < open {
		return nil, fmt.Errorf("%w: %q closes before it opens", ErrMalformedTargetSignature, signature)
	}

	name := signature[:open]
	if !isMethodName(name) {
		return nil, fmt.Errorf("%w: %q does not start with a method name", ErrMalformedTargetSignature, signature)
	}

	params, err := descriptor.Parse(signature[open+1 : closing])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformedTargetSignature, signature, err)
	}

	target := &Target{
		Name:   name,
		Params: params,
		text:   signature[:closing+1],
	}

	if rest := signature[closing+1:]; rest != "" {
		ret, isVoid, err := descriptor.ParseReturn(rest)
		if err != nil {
			return nil, fmt.Errorf("%w: %q has a bad return type: %w", ErrMalformedTargetSignature, signature, err)
		}
		target.Return, target.IsVoid, target.HasReturn = ret, isVoid, true
	}

	return target, nil
}

// isMethodName accepts Java identifiers plus the two special JVM names
func isMethodName(name string) bool {
	if name == "<init>" || name == "<clinit>" {
		return true
	}
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// String is the name and parameter list, without any return type
func (t *Target) String() string {
	return t.text
}
