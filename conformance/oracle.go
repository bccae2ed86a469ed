package conformance

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Oracle evaluates expressions with the Starlark interpreter, independently
// of the JIT. Starlark integers have arbitrary precision, so whenever the
// exact result fits in 64 bits it must equal the wrapped native result.
type Oracle struct {
	thread *starlark.Thread
}

func NewOracle() *Oracle {
	return &Oracle{thread: &starlark.Thread{Name: "oracle"}}
}

// Eval returns the value of expr. ok is false when the oracle cannot judge
// the expression: it divides (Starlark's / is float division), it does not
// parse as Starlark, or its exact value does not fit in an int64.
func (o *Oracle) Eval(expr string) (value int64, ok bool) {
	if strings.ContainsAny(expr, "/\n\r") || strings.TrimLeft(expr, "0123456789+-*() \t") != "" {
		return 0, false
	}

	v, err := starlark.EvalOptions(&syntax.FileOptions{}, o.thread, "expr", expr, nil)
	if err != nil {
		return 0, false
	}
	i, isInt := v.(starlark.Int)
	if !isInt {
		return 0, false
	}
	value, ok = i.Int64()
	if !ok {
		return 0, false
	}
	return value, true
}
