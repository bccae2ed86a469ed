// Completion: 100% - Instruction implementation complete
package jit

import "fmt"

// CmpRegToImm generates CMP reg, imm8 (sign-extended). Only immediates in
// the signed 8-bit range are needed by the code generator.
func (o *Out) CmpRegToImm(reg string, imm int8) {
	r := o.reg(reg)
	// CMP r/m64, imm8 (REX.W 83 /7 ib)
	o.emit(fmt.Sprintf("cmp %s, %d", reg, imm), rexW(0, r.Encoding), 0x83, modrm(7, r.Encoding), byte(imm))
}
