// Completion: 100% - Instruction implementation complete
package jit

import "fmt"

// TestRegWithReg generates TEST dst, src (sets flags from dst & src).
// TEST rcx, rcx is the shortest zero check for a divisor.
func (o *Out) TestRegWithReg(dst, src string) {
	d, s := o.reg(dst), o.reg(src)
	// TEST r/m64, r64 (REX.W 85 /r)
	o.emit(fmt.Sprintf("test %s, %s", dst, src), rexW(s.Encoding, d.Encoding), 0x85, modrm(s.Encoding, d.Encoding))
}
