package classfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

type reader struct {
	r   io.Reader
	err error
}

func (r *reader) readU1() uint8 {
	if r.err != nil {
		return 0
	}
	var buf [1]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return buf[0]
}

func (r *reader) readU2() uint16 {
	if r.err != nil {
		return 0
	}
	var buf [2]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint16(buf[:])
}

func (r *reader) readU4() uint32 {
	if r.err != nil {
		return 0
	}
	var buf [4]byte
	_, r.err = io.ReadFull(r.r, buf[:])
	return binary.BigEndian.Uint32(buf[:])
}

func (r *reader) readBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	_, r.err = io.ReadFull(r.r, buf)
	return buf
}

func (r *reader) skip(n int64) {
	if r.err != nil {
		return
	}
	_, r.err = io.CopyN(io.Discard, r.r, n)
}

func ParseFile(path string) (*ClassFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open class file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(rd io.Reader) (*ClassFile, error) {
	r := &reader{r: rd}

	magic := r.readU4()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", r.err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("invalid magic number: 0x%X (expected 0xCAFEBABE)", magic)
	}

	cf := &ClassFile{
		MinorVersion: r.readU2(),
		MajorVersion: r.readU2(),
	}
	if r.err != nil {
		return nil, fmt.Errorf("failed to read version: %w", r.err)
	}

	constantPoolCount := r.readU2()
	if r.err != nil {
		return nil, fmt.Errorf("failed to read constant pool count: %w", r.err)
	}

	cf.ConstantPool = make(ConstantPool, constantPoolCount)
	// An int index, so skipping the second slot of a long at the end of a full
	// pool cannot wrap around
	for i := 1; i < int(constantPoolCount); i++ {
		entry, err := readConstantPoolEntry(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read constant pool entry %d: %w", i, err)
		}
		cf.ConstantPool[i] = entry
		// Longs and doubles take up two slots
		if entry.Tag == ConstantLong || entry.Tag == ConstantDouble {
			i++
		}
	}

	cf.AccessFlags = AccessFlags(r.readU2())
	cf.ThisClass = r.readU2()
	cf.SuperClass = r.readU2()

	interfacesCount := r.readU2()
	cf.Interfaces = make([]uint16, interfacesCount)
	for i := range cf.Interfaces {
		cf.Interfaces[i] = r.readU2()
	}
	if r.err != nil {
		return nil, fmt.Errorf("failed to read class info: %w", r.err)
	}

	var err error
	if cf.Fields, err = readMembers(r, cf.ConstantPool); err != nil {
		return nil, fmt.Errorf("failed to read fields: %w", err)
	}
	if cf.Methods, err = readMembers(r, cf.ConstantPool); err != nil {
		return nil, fmt.Errorf("failed to read methods: %w", err)
	}

	return cf, nil
}

func readConstantPoolEntry(r *reader) (*ConstantPoolEntry, error) {
	tag := ConstantTag(r.readU1())
	if r.err != nil {
		return nil, r.err
	}

	entry := &ConstantPoolEntry{Tag: tag}
	switch tag {
	case ConstantUtf8:
		length := r.readU2()
		entry.Value = string(r.readBytes(int(length)))
	case ConstantClass:
		entry.NameIndex = r.readU2()
	default:
		size, ok := payloadSize[tag]
		if !ok {
			return nil, fmt.Errorf("unknown constant pool tag: %d", tag)
		}
		r.skip(int64(size))
	}
	return entry, r.err
}

func readMembers(r *reader, cp ConstantPool) ([]MemberInfo, error) {
	count := r.readU2()
	if r.err != nil {
		return nil, r.err
	}

	members := make([]MemberInfo, count)
	for i := range members {
		members[i] = MemberInfo{
			AccessFlags: AccessFlags(r.readU2()),
			Name:        cp.Utf8(r.readU2()),
			Descriptor:  cp.Utf8(r.readU2()),
		}
		if err := skipAttributes(r); err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
	}
	return members, nil
}

func skipAttributes(r *reader) error {
	count := r.readU2()
	for i := uint16(0); i < count; i++ {
		r.readU2() // name index
		length := r.readU4()
		r.skip(int64(length))
	}
	return r.err
}
