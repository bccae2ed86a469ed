package engine

import "testing"

func TestPlatformFor(t *testing.T) {
	tests := []struct {
		goarch, goos string
		want         Platform
		canExecute   bool
	}{
		{"amd64", "linux", Platform{ArchX86_64, OSLinux}, true},
		{"amd64", "darwin", Platform{ArchX86_64, OSDarwin}, true},
		{"amd64", "freebsd", Platform{ArchX86_64, OSFreeBSD}, true},
		{"amd64", "windows", Platform{ArchX86_64, OSWindows}, false},
		{"arm64", "linux", Platform{ArchARM64, OSLinux}, false},
		{"riscv64", "linux", Platform{ArchRiscv64, OSLinux}, false},
		{"mips", "plan9", Platform{ArchUnknown, OSUnknown}, false},
	}

	for _, tt := range tests {
		got := platformFor(tt.goarch, tt.goos)
		if got != tt.want {
			t.Errorf("platformFor(%q, %q) = %v, want %v", tt.goarch, tt.goos, got, tt.want)
		}
		if got.CanExecute() != tt.canExecute {
			t.Errorf("%v.CanExecute() = %v, want %v", got, got.CanExecute(), tt.canExecute)
		}
	}
}

func TestPlatformString(t *testing.T) {
	p := Platform{Arch: ArchX86_64, OS: OSLinux}
	if p.String() != "x86_64-linux" {
		t.Errorf("Expected x86_64-linux, got %s", p.String())
	}
}
