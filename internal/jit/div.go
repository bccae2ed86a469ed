// Completion: 100% - Instruction implementation complete
package jit

import "fmt"

// Signed division. IDIV divides rdx:rax by its operand, leaving the quotient
// in rax and the remainder in rdx, so CQO must sign-extend rax first.

// Cqo sign-extends rax into rdx:rax
func (o *Out) Cqo() {
	o.emit("cqo", 0x48, 0x99)
}

// IdivReg generates IDIV src (rax = rdx:rax / src, rdx = remainder)
func (o *Out) IdivReg(src string) {
	s := o.reg(src)
	// IDIV r/m64 (REX.W F7 /7)
	o.emit(fmt.Sprintf("idiv %s", src), rexW(0, s.Encoding), 0xF7, modrm(7, s.Encoding))
}
