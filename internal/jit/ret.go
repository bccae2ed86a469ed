// Completion: 100% - Instruction implementation complete
package jit

// Ret generates a near return (opcode 0xC3)
func (o *Out) Ret() {
	o.emit("ret", 0xC3)
}
