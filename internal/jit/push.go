// Completion: 100% - Instruction implementation complete
package jit

import "fmt"

// PUSH/POP instructions for the spill discipline:
//   - The left operand of every binary node is pushed before the right
//     operand is evaluated, and popped right after
//   - Frame setup and teardown (rbp)

// PushReg pushes a register onto the stack and records it
func (o *Out) PushReg(reg string) {
	o.pushX86Reg(reg)
	o.stack.Push(reg)
}

// PopReg pops the top of the stack into a register. It fails if the pop has
// no matching push.
func (o *Out) PopReg(reg string) error {
	if err := o.stack.Pop(reg); err != nil {
		return err
	}
	o.popX86Reg(reg)
	return nil
}

// x86-64 PUSH reg
func (o *Out) pushX86Reg(reg string) {
	r := o.reg(reg)
	// PUSH uses compact encoding: 0x50 + reg, REX.B for r8-r15
	if r.Encoding >= 8 {
		o.emit(fmt.Sprintf("push %s", reg), 0x41, 0x50+r.Encoding&7)
		return
	}
	o.emit(fmt.Sprintf("push %s", reg), 0x50+r.Encoding)
}

// x86-64 POP reg
func (o *Out) popX86Reg(reg string) {
	r := o.reg(reg)
	// POP uses compact encoding: 0x58 + reg
	if r.Encoding >= 8 {
		o.emit(fmt.Sprintf("pop %s", reg), 0x41, 0x58+r.Encoding&7)
		return
	}
	o.emit(fmt.Sprintf("pop %s", reg), 0x58+r.Encoding)
}
