//go:build amd64 && (linux || darwin || freebsd)

package jit

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Invoke calls the sealed routine with no arguments and returns rax as the
// result and rdx as the fault status. The call goes through purego, which
// switches to the system stack and uses the System V calling convention.
func (page *CodePage) Invoke() (int64, uintptr, error) {
	if !page.Sealed() {
		return 0, 0, fmt.Errorf("%w: code page is not sealed", ErrResource)
	}
	r1, r2, _ := purego.SyscallN(page.Address())
	return int64(r1), r2, nil
}
