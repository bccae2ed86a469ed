// Completion: 100% - Instruction implementation complete
package jit

import "fmt"

// SubRegFromReg generates SUB dst, src (dst = dst - src). Operand order
// matters: the left operand must be in dst.
func (o *Out) SubRegFromReg(dst, src string) {
	d, s := o.reg(dst), o.reg(src)
	// SUB r/m64, r64 (REX.W 29 /r): reg = src, r/m = dst
	o.emit(fmt.Sprintf("sub %s, %s", dst, src), rexW(s.Encoding, d.Encoding), 0x29, modrm(s.Encoding, d.Encoding))
}
