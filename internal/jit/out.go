// Completion: 100% - Instruction emitter core complete
package jit

import (
	"fmt"
	"io"
)

// Out emits x86_64 instructions into a Buffer. Each instruction family lives
// in its own file (mov.go, push.go, add.go, ...).
type Out struct {
	buf   *Buffer
	trace io.Writer // nil unless verbose
	stack *StackValidator
}

func NewOut(buf *Buffer, trace io.Writer) *Out {
	return &Out{
		buf:   buf,
		trace: trace,
		stack: NewStackValidator(trace),
	}
}

// Buffer returns the buffer being written to
func (o *Out) Buffer() *Buffer {
	return o.buf
}

// Stack returns the push/pop validator
func (o *Out) Stack() *StackValidator {
	return o.stack
}

// Pos returns the current offset in the buffer
func (o *Out) Pos() int {
	return o.buf.Len()
}

// emit writes the bytes of one instruction and, in verbose mode, a trace line
func (o *Out) emit(mnemonic string, bs ...byte) {
	start := o.buf.Len()
	o.buf.AppendBytes(bs...)
	o.traceFrom(start, mnemonic)
}

func (o *Out) traceFrom(start int, mnemonic string) {
	if o.trace == nil {
		return
	}
	fmt.Fprintf(o.trace, "%04x  %-22s %x\n", start, mnemonic+":", o.buf.Bytes()[start:])
}

func (o *Out) reg(name string) Register {
	r, ok := GetRegister(name)
	if !ok {
		panic(fmt.Sprintf("unknown register %q", name))
	}
	return r
}

// rexW returns a REX prefix with W set, extended by the reg and r/m fields
func rexW(reg, rm uint8) byte {
	rex := byte(0x48)
	if reg&8 != 0 {
		rex |= 0x04 // REX.R
	}
	if rm&8 != 0 {
		rex |= 0x01 // REX.B
	}
	return rex
}

// modrm builds a register-direct ModR/M byte: 11 | reg | r/m
func modrm(reg, rm uint8) byte {
	return 0xC0 | (reg&7)<<3 | rm&7
}
