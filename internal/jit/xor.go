// Completion: 100% - Instruction implementation complete
package jit

import "fmt"

// XorRegWithReg generates XOR dst, src. XOR reg, reg is the usual way to
// clear a register.
func (o *Out) XorRegWithReg(dst, src string) {
	d, s := o.reg(dst), o.reg(src)
	// XOR r/m64, r64 (REX.W 31 /r)
	o.emit(fmt.Sprintf("xor %s, %s", dst, src), rexW(s.Encoding, d.Encoding), 0x31, modrm(s.Encoding, d.Encoding))
}
