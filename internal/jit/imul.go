// Completion: 100% - Instruction implementation complete
package jit

import "fmt"

// ImulRegWithReg generates IMUL dst, src (dst = dst * src). The product is
// truncated to 64 bits.
func (o *Out) ImulRegWithReg(dst, src string) {
	d, s := o.reg(dst), o.reg(src)
	// IMUL r64, r/m64 (REX.W 0F AF /r): reg = dst, r/m = src
	o.emit(fmt.Sprintf("imul %s, %s", dst, src), rexW(d.Encoding, s.Encoding), 0x0F, 0xAF, modrm(d.Encoding, s.Encoding))
}
