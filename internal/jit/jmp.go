// Completion: 100% - Instruction implementation complete
package jit

import "fmt"

// Conditional and unconditional near jumps with 32-bit displacements.
// Targets are Labels: a jump to a label that is not yet placed records a
// fixup which is patched when the label is bound.

// Condition codes for jumps
type JumpCondition int

const (
	JumpEqual    JumpCondition = iota // JE/JZ - equal/zero
	JumpNotEqual                      // JNE/JNZ - not equal/not zero
)

// Label is a position in the generated code
type Label struct {
	name   string
	pos    int   // -1 until bound
	fixups []int // Offsets of rel32 fields waiting for this label
}

// NewLabel creates an unbound label
func (o *Out) NewLabel(name string) *Label {
	return &Label{name: name, pos: -1}
}

// Bind places the label at the current position and patches pending jumps
func (o *Out) Bind(l *Label) {
	if l.pos >= 0 {
		panic(fmt.Sprintf("label %s bound twice", l.name))
	}
	l.pos = o.Pos()
	for _, at := range l.fixups {
		o.buf.PatchU32(at, uint32(int32(l.pos-(at+4))))
	}
	l.fixups = nil
	if o.trace != nil {
		fmt.Fprintf(o.trace, "%04x  %s:\n", l.pos, l.name)
	}
}

// Bound reports whether every jump to l has been resolved
func (l *Label) Bound() bool {
	return l.pos >= 0
}

// rel32 writes the displacement to l, or a placeholder plus a fixup
func (o *Out) rel32(l *Label) {
	at := o.Pos()
	if l.pos >= 0 {
		o.buf.AppendU32(uint32(int32(l.pos - (at + 4))))
		return
	}
	o.buf.AppendU32(0)
	l.fixups = append(l.fixups, at)
}

// JumpConditional generates Jcc rel32 (0F 8x cd)
func (o *Out) JumpConditional(condition JumpCondition, l *Label) {
	var opcode byte
	var name string
	switch condition {
	case JumpEqual:
		opcode, name = 0x84, "je"
	case JumpNotEqual:
		opcode, name = 0x85, "jne"
	default:
		panic(fmt.Sprintf("unknown jump condition %d", condition))
	}

	start := o.Pos()
	o.buf.AppendBytes(0x0F, opcode)
	o.rel32(l)
	o.traceFrom(start, fmt.Sprintf("%s %s", name, l.name))
}

// JumpUnconditional generates JMP rel32 (E9 cd)
func (o *Out) JumpUnconditional(l *Label) {
	start := o.Pos()
	o.buf.AppendByte(0xE9)
	o.rel32(l)
	o.traceFrom(start, fmt.Sprintf("jmp %s", l.name))
}
