// Completion: 100% - Instruction implementation complete
package jit

import "fmt"

// NegReg generates NEG dst (dst = -dst, wrapping for the most negative value)
func (o *Out) NegReg(dst string) {
	d := o.reg(dst)
	// NEG r/m64 (REX.W F7 /3)
	o.emit(fmt.Sprintf("neg %s", dst), rexW(0, d.Encoding), 0xF7, modrm(3, d.Encoding))
}
