// Completion: 100% - Instruction implementation complete
package jit

import "fmt"

// MOV instructions
// Used for:
//   - Loading number literals into the primary register
//   - Moving the right operand into the secondary register
//   - Restoring the stack pointer from the frame pointer

// MovImmToReg loads an unsigned immediate into a 64-bit register. Values that
// fit in 32 bits use the short zero-extending form, larger ones use movabs.
func (o *Out) MovImmToReg(dst string, imm uint64) {
	r := o.reg(dst)
	start := o.Pos()

	if imm <= 0xFFFFFFFF {
		// MOV r32, imm32 (B8+rd id), upper 32 bits are cleared
		if r.Encoding >= 8 {
			o.buf.AppendByte(0x41) // REX.B
		}
		o.buf.AppendByte(0xB8 + r.Encoding&7)
		o.buf.AppendU32(uint32(imm))
		o.traceFrom(start, fmt.Sprintf("mov %s, %d", dst, imm))
		return
	}

	// MOVABS r64, imm64 (REX.W B8+rd io)
	o.buf.AppendByte(rexW(0, r.Encoding))
	o.buf.AppendByte(0xB8 + r.Encoding&7)
	o.buf.AppendU64(imm)
	o.traceFrom(start, fmt.Sprintf("movabs %s, %d", dst, imm))
}

// MovRegToReg generates MOV dst, src for 64-bit registers
func (o *Out) MovRegToReg(dst, src string) {
	d, s := o.reg(dst), o.reg(src)
	// MOV r/m64, r64 (REX.W 89 /r): reg = src, r/m = dst
	o.emit(fmt.Sprintf("mov %s, %s", dst, src), rexW(s.Encoding, d.Encoding), 0x89, modrm(s.Encoding, d.Encoding))
}
