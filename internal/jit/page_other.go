//go:build !(linux || darwin || freebsd)

package jit

// CodePage is unavailable on this platform
type CodePage struct{}

func NewCodePage(size int) (*CodePage, error) {
	return nil, ErrUnsupportedPlatform
}

func (page *CodePage) CopyCode(code []byte) error { return ErrUnsupportedPlatform }
func (page *CodePage) Seal() error                { return ErrUnsupportedPlatform }
func (page *CodePage) Sealed() bool               { return false }
func (page *CodePage) Size() int                  { return 0 }
func (page *CodePage) Address() uintptr           { return 0 }
func (page *CodePage) Free() error                { return nil }
