package jit

import (
	"errors"
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string) Node {
	t.Helper()
	n, err := Parse(src, Options{})
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	return n
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"5", "5"},
		{"5 + 10", "(5 + 10)"},
		{"10 + 5 * 2", "(10 + (5 * 2))"},
		{"(5 + 10) * 2", "((5 + 10) * 2)"},
		{"2 * 3 + 4 * 5", "((2 * 3) + (4 * 5))"},
		{"8 / 4 * 2", "((8 / 4) * 2)"},
		{"((7))", "7"},
	}
	for _, tt := range tests {
		if got := mustParse(t, tt.src).String(); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.src, got, tt.want)
		}
	}
}

// A run of same-precedence operators builds a left-leaning chain
func TestParseLeftAssociative(t *testing.T) {
	for _, src := range []string{"100 - 50 - 25", "1 + 2 - 3 + 4 - 5", "2 * 3 * 4 / 5 * 6"} {
		n := mustParse(t, src)
		ops := 0
		for {
			b, ok := n.(*BinaryOp)
			if !ok {
				break
			}
			if _, ok := b.Right.(*NumberLiteral); !ok {
				t.Errorf("%q: right child of %c is %s, expected a literal", src, b.Op, b.Right)
			}
			ops++
			n = b.Left
		}
		if want := strings.Count(src, " ") / 2; ops != want {
			t.Errorf("%q: expected chain of %d operators, got %d", src, want, ops)
		}
	}
}

func TestParseOperatorOffsets(t *testing.T) {
	b, ok := mustParse(t, "12 -  3").(*BinaryOp)
	if !ok {
		t.Fatal("Expected a binary node")
	}
	if b.Op != '-' || b.Offset != 3 {
		t.Errorf("Expected '-' at 3, got %c at %d", b.Op, b.Offset)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src    string
		kind   error
		offset int
	}{
		{"", ErrParse, 0},
		{"   ", ErrParse, 3},
		{"5 +", ErrParse, 3},
		{"* 5", ErrParse, 0},
		{"()", ErrParse, 1},
		{"(5 + 10", ErrParse, 7},
		{"5 + 3 4", ErrParse, 6},
		{"5 )", ErrParse, 2},
		{"5 + x", ErrLex, 4},
		{"5 + 3 garbage", ErrLex, 6},
		{"$", ErrLex, 0},
	}
	for _, tt := range tests {
		_, err := Parse(tt.src, Options{})
		if !errors.Is(err, tt.kind) {
			t.Errorf("Parse(%q): expected %v, got %v", tt.src, tt.kind, err)
			continue
		}
		var cerr *CompileError
		if !errors.As(err, &cerr) {
			t.Errorf("Parse(%q): expected *CompileError, got %T", tt.src, err)
			continue
		}
		if cerr.Offset != tt.offset {
			t.Errorf("Parse(%q): expected offset %d, got %d", tt.src, tt.offset, cerr.Offset)
		}
	}
}

func TestParseLenient(t *testing.T) {
	lenient := Options{Lenient: true}
	tests := []struct {
		src  string
		want string
	}{
		{"(5 + 10", "(5 + 10)"},
		{"(5 + 10)", "(5 + 10)"},
		{"5 + 3 garbage", "(5 + 3)"},
		{"5 + 3 )", "(5 + 3)"},
	}
	for _, tt := range tests {
		n, err := Parse(tt.src, lenient)
		if err != nil {
			t.Errorf("Parse(%q) lenient failed: %v", tt.src, err)
			continue
		}
		if n.String() != tt.want {
			t.Errorf("Parse(%q) lenient = %s, want %s", tt.src, n, tt.want)
		}
	}

	// A missing primary is still an error
	if _, err := Parse("5 +", lenient); !errors.Is(err, ErrParse) {
		t.Errorf("Expected parse error for dangling operator, got %v", err)
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("(", 10) + "1" + strings.Repeat(")", 10)
	if _, err := Parse(deep, Options{MaxDepth: 10}); err != nil {
		t.Errorf("Depth 10 should parse with MaxDepth 10: %v", err)
	}
	if _, err := Parse("("+deep+")", Options{MaxDepth: 10}); !errors.Is(err, ErrParse) {
		t.Errorf("Expected parse error for depth 11, got %v", err)
	}
}

func TestDepthAndDump(t *testing.T) {
	n := mustParse(t, "1 + 2 * 3")
	if d := Depth(n); d != 3 {
		t.Errorf("Expected depth 3, got %d", d)
	}
	want := "+\n  1\n  *\n    2\n    3\n"
	if got := Dump(n); got != want {
		t.Errorf("Dump = %q, want %q", got, want)
	}
}
