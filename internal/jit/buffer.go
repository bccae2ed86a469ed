// Completion: 100% - Module complete
package jit

import (
	"encoding/binary"
	"fmt"
)

const defaultBufferSize = 1024

// Buffer accumulates emitted machine code. Capacity doubles whenever an append
// would overflow it, and existing bytes are preserved across growth.
// Once committed the contents are final and further writes panic.
type Buffer struct {
	code      []byte
	committed bool
	name      string // For debugging
}

// NewBuffer creates an empty buffer with the given initial capacity
func NewBuffer(name string, capacity int) *Buffer {
	if capacity <= 0 {
		capacity = defaultBufferSize
	}
	return &Buffer{
		code: make([]byte, 0, capacity),
		name: name,
	}
}

func (b *Buffer) grow(n int) {
	if len(b.code)+n <= cap(b.code) {
		return
	}
	newCap := cap(b.code) * 2
	if newCap == 0 {
		newCap = 1
	}
	for newCap < len(b.code)+n {
		newCap *= 2
	}
	grown := make([]byte, len(b.code), newCap)
	copy(grown, b.code)
	b.code = grown
}

func (b *Buffer) mustNotBeCommitted() {
	if b.committed {
		panic(fmt.Sprintf("Buffer(%s): Cannot write to committed buffer", b.name))
	}
}

// AppendByte appends a single byte
func (b *Buffer) AppendByte(v byte) {
	b.mustNotBeCommitted()
	b.grow(1)
	b.code = append(b.code, v)
}

// AppendBytes appends raw bytes
func (b *Buffer) AppendBytes(bs ...byte) {
	b.mustNotBeCommitted()
	b.grow(len(bs))
	b.code = append(b.code, bs...)
}

// AppendU32 appends v in little-endian order
func (b *Buffer) AppendU32(v uint32) {
	b.mustNotBeCommitted()
	b.grow(4)
	b.code = binary.LittleEndian.AppendUint32(b.code, v)
}

// AppendU64 appends v in little-endian order
func (b *Buffer) AppendU64(v uint64) {
	b.mustNotBeCommitted()
	b.grow(8)
	b.code = binary.LittleEndian.AppendUint64(b.code, v)
}

// PatchU32 overwrites four bytes at offset with v in little-endian order
func (b *Buffer) PatchU32(offset int, v uint32) {
	b.mustNotBeCommitted()
	if offset < 0 || offset+4 > len(b.code) {
		panic(fmt.Sprintf("Buffer(%s): patch at %d out of bounds (len %d)", b.name, offset, len(b.code)))
	}
	binary.LittleEndian.PutUint32(b.code[offset:], v)
}

// Len returns the number of bytes written so far
func (b *Buffer) Len() int {
	return len(b.code)
}

// Cap returns the current capacity
func (b *Buffer) Cap() int {
	return cap(b.code)
}

// Bytes returns the buffer contents. The slice must not be modified.
func (b *Buffer) Bytes() []byte {
	return b.code
}

// Commit marks the buffer as complete
func (b *Buffer) Commit() {
	b.committed = true
}

// IsCommitted returns true if the buffer has been committed
func (b *Buffer) IsCommitted() bool {
	return b.committed
}
