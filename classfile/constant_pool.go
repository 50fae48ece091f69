package classfile

type ConstantTag uint8

const (
	ConstantUtf8               ConstantTag = 1
	ConstantInteger            ConstantTag = 3
	ConstantFloat              ConstantTag = 4
	ConstantLong               ConstantTag = 5
	ConstantDouble             ConstantTag = 6
	ConstantClass              ConstantTag = 7
	ConstantString             ConstantTag = 8
	ConstantFieldref           ConstantTag = 9
	ConstantMethodref          ConstantTag = 10
	ConstantInterfaceMethodref ConstantTag = 11
	ConstantNameAndType        ConstantTag = 12
	ConstantMethodHandle       ConstantTag = 15
	ConstantMethodType         ConstantTag = 16
	ConstantDynamic            ConstantTag = 17
	ConstantInvokeDynamic      ConstantTag = 18
	ConstantModule             ConstantTag = 19
	ConstantPackage            ConstantTag = 20
)

// payloadSize is the number of bytes following the tag for every fixed-size
// constant. Utf8 is variable-length and handled separately.
var payloadSize = map[ConstantTag]int{
	ConstantInteger:            4,
	ConstantFloat:              4,
	ConstantLong:               8,
	ConstantDouble:             8,
	ConstantClass:              2,
	ConstantString:             2,
	ConstantFieldref:           4,
	ConstantMethodref:          4,
	ConstantInterfaceMethodref: 4,
	ConstantNameAndType:        4,
	ConstantMethodHandle:       3,
	ConstantMethodType:         2,
	ConstantDynamic:            4,
	ConstantInvokeDynamic:      4,
	ConstantModule:             2,
	ConstantPackage:            2,
}

// ConstantPoolEntry keeps just enough of each constant to resolve names.
// Only Utf8 values and Class name indices are decoded.
type ConstantPoolEntry struct {
	Tag ConstantTag
	// Decoded text of a Utf8 constant
	Value string
	// Utf8 index holding the name of a Class constant
	NameIndex uint16
}

// ConstantPool is indexed from 1 like the JVM's; slot 0 and the second slot of
// long and double constants are nil
type ConstantPool []*ConstantPoolEntry

func (cp ConstantPool) entry(index uint16) *ConstantPoolEntry {
	if int(index) >= len(cp) {
		return nil
	}
	return cp[index]
}

// Utf8 returns the text of a Utf8 constant, or "" for a bad index
func (cp ConstantPool) Utf8(index uint16) string {
	e := cp.entry(index)
	if e == nil || e.Tag != ConstantUtf8 {
		return ""
	}
	return e.Value
}

// ClassName returns the binary name referenced by a Class constant
func (cp ConstantPool) ClassName(index uint16) string {
	e := cp.entry(index)
	if e == nil || e.Tag != ConstantClass {
		return ""
	}
	return cp.Utf8(e.NameIndex)
}
