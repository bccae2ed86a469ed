// Completion: 100% - Instruction implementation complete
package jit

import "fmt"

// AddRegToReg generates ADD dst, src (dst = dst + src), wrapping on overflow
func (o *Out) AddRegToReg(dst, src string) {
	d, s := o.reg(dst), o.reg(src)
	// ADD r/m64, r64 (REX.W 01 /r): reg = src, r/m = dst
	o.emit(fmt.Sprintf("add %s, %s", dst, src), rexW(s.Encoding, d.Encoding), 0x01, modrm(s.Encoding, d.Encoding))
}
