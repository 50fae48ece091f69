package symbol

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/sigfind/classfile"
	"github.com/NickyBoy89/sigfind/descriptor"
)

// FromClassFile builds a symbol table from a compiled class. Parameter types
// are written fully qualified (java.util.List, int[]) so they resolve without
// any imports. Erasure has already removed every type parameter.
func FromClassFile(cf *classfile.ClassFile) (*FileScope, error) {
	simpleName := cf.SimpleName()
	scope := &ClassScope{
		Class: &Definition{
			OriginalName: simpleName[strings.LastIndexByte(simpleName, '$')+1:],
			Name:         simpleName,
			Kind:         KindClass,
		},
		IsEnum: cf.AccessFlags.Has(classfile.AccEnum),
	}

	for i := range cf.Fields {
		field := &cf.Fields[i]
		if field.IsSynthetic() {
			continue
		}
		desc, err := descriptor.ParseOne(field.Descriptor)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		scope.Fields = append(scope.Fields, &Definition{
			OriginalName: field.Name,
			Name:         field.Name,
			Kind:         KindField,
			IsStatic:     field.IsStatic(),
			OriginalType: desc.String(),
			Type:         desc.SourceName(),
		})
	}

	for i := range cf.Methods {
		method := &cf.Methods[i]
		if method.IsSynthetic() || method.IsBridge() || method.Name == "<clinit>" {
			continue
		}
		def, err := methodFromDescriptor(method)
		if err != nil {
			return nil, fmt.Errorf("method %s%s: %w", method.Name, method.Descriptor, err)
		}
		if def.Name == ConstructorName {
			scope.markConstructor(def)
		}
		scope.Methods = append(scope.Methods, def)
	}

	return &FileScope{
		Name:            cf.ClassName() + ".class",
		Package:         cf.PackageName(),
		TopLevelClasses: []*ClassScope{scope},
		Compiled:        true,
	}, nil
}

func methodFromDescriptor(method *classfile.MemberInfo) (*Definition, error) {
	desc := method.Descriptor
	closing := strings.IndexByte(desc, ')')
	if !strings.HasPrefix(desc, "(") || closing == -1 {
		return nil, fmt.Errorf("%w: method descriptor %q", descriptor.ErrMalformedDescriptor, desc)
	}

	params, err := descriptor.Parse(desc[1:closing])
	if err != nil {
		return nil, err
	}
	ret, isVoid, err := descriptor.ParseReturn(desc[closing+1:])
	if err != nil {
		return nil, err
	}

	def := &Definition{
		OriginalName: method.Name,
		Name:         method.Name,
		Kind:         KindMethod,
		IsStatic:     method.IsStatic(),
		OriginalType: "V",
		Type:         "void",
		Parameters:   make([]*Definition, 0, len(params)),
	}
	if !isVoid {
		def.OriginalType = ret.String()
		def.Type = ret.SourceName()
	}
	for i, param := range params {
		name := fmt.Sprintf("arg%d", i)
		def.Parameters = append(def.Parameters, &Definition{
			OriginalName: name,
			Name:         name,
			Kind:         KindParameter,
			OriginalType: param.String(),
			Type:         param.SourceName(),
		})
	}
	return def, nil
}
