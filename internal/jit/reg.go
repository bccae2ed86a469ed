// Completion: 100% - Utility module complete
package jit

// x86_64 general purpose register definitions

type Register struct {
	Name     string
	Size     int   // Size in bits
	Encoding uint8 // Encoding for instruction generation
}

var x86_64Registers = map[string]Register{
	"rax": {Name: "rax", Size: 64, Encoding: 0},
	"rcx": {Name: "rcx", Size: 64, Encoding: 1},
	"rdx": {Name: "rdx", Size: 64, Encoding: 2},
	"rbx": {Name: "rbx", Size: 64, Encoding: 3},
	"rsp": {Name: "rsp", Size: 64, Encoding: 4},
	"rbp": {Name: "rbp", Size: 64, Encoding: 5},
	"rsi": {Name: "rsi", Size: 64, Encoding: 6},
	"rdi": {Name: "rdi", Size: 64, Encoding: 7},
	"r8":  {Name: "r8", Size: 64, Encoding: 8},
	"r9":  {Name: "r9", Size: 64, Encoding: 9},
	"r10": {Name: "r10", Size: 64, Encoding: 10},
	"r11": {Name: "r11", Size: 64, Encoding: 11},
	"r12": {Name: "r12", Size: 64, Encoding: 12},
	"r13": {Name: "r13", Size: 64, Encoding: 13},
	"r14": {Name: "r14", Size: 64, Encoding: 14},
	"r15": {Name: "r15", Size: 64, Encoding: 15},

	// 32-bit registers, writes zero-extend into the full register
	"eax": {Name: "eax", Size: 32, Encoding: 0},
	"ecx": {Name: "ecx", Size: 32, Encoding: 1},
	"edx": {Name: "edx", Size: 32, Encoding: 2},
	"ebx": {Name: "ebx", Size: 32, Encoding: 3},
}

// The two working registers of the generated code. The secondary register is
// caller-saved in the System V ABI, so routines never need to preserve it.
const (
	PrimaryReg   = "rax"
	SecondaryReg = "rcx"
	// StatusReg carries the fault status out of the routine, next to the result
	StatusReg = "rdx"
)

// GetRegister looks up a register by name
func GetRegister(name string) (Register, bool) {
	r, ok := x86_64Registers[name]
	return r, ok
}
