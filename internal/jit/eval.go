package jit

import "fmt"

// Eval computes the value of the tree directly, with the same 64-bit
// wraparound semantics as the generated code. Division truncates toward
// zero and math.MinInt64 / -1 wraps to math.MinInt64.
func Eval(n Node) (int64, error) {
	switch n := n.(type) {
	case *NumberLiteral:
		return n.Value, nil
	case *BinaryOp:
		left, err := Eval(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := Eval(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return left + right, nil
		case '-':
			return left - right, nil
		case '*':
			return left * right, nil
		case '/':
			if right == 0 {
				return 0, &CompileError{Kind: KindRuntime, Message: "division by zero", Offset: n.Offset, Length: 1}
			}
			return left / right, nil
		}
		return 0, &CompileError{Kind: KindUnsupported, Message: fmt.Sprintf("unknown operator %q", n.Op), Offset: n.Offset, Length: 1}
	default:
		return 0, fmt.Errorf("%w: unexpected node %T", ErrParse, n)
	}
}
