package jit

// Routine frame. The generated routine is called with the System V ABI:
//
//	push rbp
//	mov rbp, rsp
//	...body, result in rax...
//	xor rdx, rdx        ; status 0
//	mov rsp, rbp
//	pop rbp
//	ret
//
// A fault (division by zero) jumps to a stub that leaves its status in rdx
// and unwinds through rbp, so spilled operands never leak.

// Prologue saves the caller's frame pointer
func (o *Out) Prologue() {
	o.pushX86Reg("rbp")
	o.MovRegToReg("rbp", "rsp")
}

// Epilogue clears the status register, restores the frame and returns
func (o *Out) Epilogue() {
	o.XorRegWithReg(StatusReg, StatusReg)
	o.leave()
}

func (o *Out) leave() {
	o.MovRegToReg("rsp", "rbp")
	o.popX86Reg("rbp")
	o.Ret()
}
