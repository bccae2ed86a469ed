// Completion: 100% - Host detection complete
package engine

import (
	"fmt"
	"runtime"
)

// Architecture type
type Arch int

const (
	ArchUnknown Arch = iota
	ArchX86_64
	ArchARM64
	ArchRiscv64
)

func (a Arch) String() string {
	switch a {
	case ArchX86_64:
		return "x86_64"
	case ArchARM64:
		return "aarch64"
	case ArchRiscv64:
		return "riscv64"
	default:
		return "unknown"
	}
}

// OS type
type OS int

const (
	OSUnknown OS = iota
	OSLinux
	OSDarwin
	OSFreeBSD
	OSWindows
)

func (o OS) String() string {
	switch o {
	case OSLinux:
		return "linux"
	case OSDarwin:
		return "darwin"
	case OSFreeBSD:
		return "freebsd"
	case OSWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// Platform represents a host platform (architecture + OS)
type Platform struct {
	Arch Arch
	OS   OS
}

// String returns a human-readable platform string
func (p Platform) String() string {
	return fmt.Sprintf("%s-%s", p.Arch, p.OS)
}

// CanExecute reports whether machine code generated for x86_64 can be mapped
// and called in-process on this platform.
func (p Platform) CanExecute() bool {
	if p.Arch != ArchX86_64 {
		return false
	}
	switch p.OS {
	case OSLinux, OSDarwin, OSFreeBSD:
		return true
	}
	return false
}

// HostPlatform returns the platform of the running process
func HostPlatform() Platform {
	return platformFor(runtime.GOARCH, runtime.GOOS)
}

func platformFor(goarch, goos string) Platform {
	var p Platform
	switch goarch {
	case "amd64":
		p.Arch = ArchX86_64
	case "arm64":
		p.Arch = ArchARM64
	case "riscv64":
		p.Arch = ArchRiscv64
	}
	switch goos {
	case "linux":
		p.OS = OSLinux
	case "darwin":
		p.OS = OSDarwin
	case "freebsd":
		p.OS = OSFreeBSD
	case "windows":
		p.OS = OSWindows
	}
	return p
}
