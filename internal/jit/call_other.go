//go:build !(amd64 && (linux || darwin || freebsd))

package jit

// Invoke is unavailable: the code generator only targets x86_64
func (page *CodePage) Invoke() (int64, uintptr, error) {
	return 0, 0, ErrUnsupportedPlatform
}
