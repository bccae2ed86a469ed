// Completion: 100% - Platform-specific module complete
//go:build linux || darwin || freebsd

package jit

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// CodePage is an anonymous memory mapping holding one generated routine.
// It is mapped read+write, filled, then sealed read+execute before it can be
// called, so it is never writable and executable at the same time.
type CodePage struct {
	mem    []byte
	size   int
	sealed bool
}

// NewCodePage maps a read+write region large enough for size bytes
func NewCodePage(size int) (*CodePage, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: invalid code size %d", ErrResource, size)
	}
	pageSize := unix.Getpagesize()
	allocSize := ((size + pageSize - 1) / pageSize) * pageSize

	mem, err := unix.Mmap(-1, 0, allocSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrResource, allocSize, err)
	}
	return &CodePage{mem: mem, size: allocSize}, nil
}

// CopyCode copies the routine to the start of the page
func (page *CodePage) CopyCode(code []byte) error {
	if page.mem == nil {
		return fmt.Errorf("%w: code page already freed", ErrResource)
	}
	if page.sealed {
		return fmt.Errorf("%w: code page is sealed", ErrResource)
	}
	if len(code) > page.size {
		return fmt.Errorf("%w: code size %d exceeds page size %d", ErrResource, len(code), page.size)
	}
	copy(page.mem, code)
	return nil
}

// Seal drops write permission and grants execute permission
func (page *CodePage) Seal() error {
	if page.mem == nil {
		return fmt.Errorf("%w: code page already freed", ErrResource)
	}
	if err := unix.Mprotect(page.mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return fmt.Errorf("%w: mprotect: %v", ErrResource, err)
	}
	page.sealed = true
	return nil
}

// Sealed reports whether the page is executable
func (page *CodePage) Sealed() bool {
	return page.sealed
}

// Size returns the mapped size in bytes
func (page *CodePage) Size() int {
	return page.size
}

// Address returns the entry address of the routine
func (page *CodePage) Address() uintptr {
	if page.mem == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(&page.mem[0]))
}

// Free unmaps the page. Calling Free more than once is harmless.
func (page *CodePage) Free() error {
	if page.mem == nil {
		return nil
	}
	err := unix.Munmap(page.mem)
	page.mem = nil
	page.sealed = false
	if err != nil {
		return fmt.Errorf("%w: munmap: %v", ErrResource, err)
	}
	return nil
}
