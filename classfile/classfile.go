// Package classfile reads the parts of a compiled `.class` file needed to
// locate declarations: the class name, its fields, and its methods with their
// descriptors. Code, annotations, and every other attribute are skipped.
package classfile

import "strings"

const Magic = 0xCAFEBABE

type AccessFlags uint16

const (
	AccPublic    AccessFlags = 0x0001
	AccPrivate   AccessFlags = 0x0002
	AccProtected AccessFlags = 0x0004
	AccStatic    AccessFlags = 0x0008
	AccFinal     AccessFlags = 0x0010
	AccBridge    AccessFlags = 0x0040
	AccVarargs   AccessFlags = 0x0080
	AccInterface AccessFlags = 0x0200
	AccAbstract  AccessFlags = 0x0400
	AccSynthetic AccessFlags = 0x1000
	AccEnum      AccessFlags = 0x4000
)

func (f AccessFlags) Has(flag AccessFlags) bool {
	return f&flag != 0
}

// MemberInfo is a field or a method
type MemberInfo struct {
	AccessFlags AccessFlags
	Name        string
	Descriptor  string
}

func (m *MemberInfo) IsSynthetic() bool {
	return m.AccessFlags.Has(AccSynthetic)
}

func (m *MemberInfo) IsBridge() bool {
	return m.AccessFlags.Has(AccBridge)
}

func (m *MemberInfo) IsStatic() bool {
	return m.AccessFlags.Has(AccStatic)
}

// ClassFile is the decoded header and member tables of a class file
type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	ConstantPool ConstantPool
	AccessFlags  AccessFlags
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Fields       []MemberInfo
	Methods      []MemberInfo
}

// ClassName is the binary name of the class, e.g. `java/util/Map$Entry`
func (cf *ClassFile) ClassName() string {
	return cf.ConstantPool.ClassName(cf.ThisClass)
}

// SuperClassName is empty for java/lang/Object and module-info
func (cf *ClassFile) SuperClassName() string {
	if cf.SuperClass == 0 {
		return ""
	}
	return cf.ConstantPool.ClassName(cf.SuperClass)
}

func (cf *ClassFile) InterfaceNames() []string {
	names := make([]string, len(cf.Interfaces))
	for i, idx := range cf.Interfaces {
		names[i] = cf.ConstantPool.ClassName(idx)
	}
	return names
}

func (cf *ClassFile) IsInterface() bool {
	return cf.AccessFlags.Has(AccInterface)
}

// PackageName returns the dotted package of the class, empty for the default
// package
func (cf *ClassFile) PackageName() string {
	name := cf.ClassName()
	slash := strings.LastIndexByte(name, '/')
	if slash == -1 {
		return ""
	}
	return strings.ReplaceAll(name[:slash], "/", ".")
}

// SimpleName is the class name without its package, nested classes keep their
// `$` separators
func (cf *ClassFile) SimpleName() string {
	name := cf.ClassName()
	return name[strings.LastIndexByte(name, '/')+1:]
}
