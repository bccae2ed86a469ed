package conformance

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/xyproto/jitcalc/internal/jit"
)

// Result is the outcome of one case
type Result struct {
	Suite   string
	Case    Case
	Got     int64
	Err     error
	Passed  bool
	Skipped bool
	Reason  string // Why the case failed or was skipped
	Oracle  bool   // True when the Starlark oracle agreed with the result
}

// Runner executes suites through jit.Compiler
type Runner struct {
	Options jit.Options  // Base options, extended by each suite's options
	Oracle  *Oracle      // Optional cross-check, nil to disable
	Logger  *slog.Logger // Optional
}

func parseKind(name string) (jit.ErrorKind, bool) {
	for _, k := range []jit.ErrorKind{jit.KindLex, jit.KindParse, jit.KindUnsupported, jit.KindResource, jit.KindRuntime} {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// RunSuite runs every case of s in order
func (r *Runner) RunSuite(s *Suite) []Result {
	opts := r.Options
	opts.Division = opts.Division || s.Options.Division
	opts.Lenient = opts.Lenient || s.Options.Lenient
	compiler := jit.NewCompiler(opts)

	results := make([]Result, 0, len(s.Cases))
	for _, c := range s.Cases {
		res := r.runCase(compiler, c)
		res.Suite = s.Name
		if r.Logger != nil {
			r.Logger.Debug("case", "suite", s.Name, "case", c.Title(), "passed", res.Passed, "skipped", res.Skipped, "reason", res.Reason)
		}
		results = append(results, res)
	}
	return results
}

func (r *Runner) runCase(compiler *jit.Compiler, c Case) Result {
	res := Result{Case: c}
	if c.Skip != "" {
		res.Skipped = true
		res.Reason = c.Skip
		return res
	}

	res.Got, res.Err = compiler.CompileAndRun(c.Expr)
	if errors.Is(res.Err, jit.ErrUnsupportedPlatform) {
		res.Skipped = true
		res.Reason = res.Err.Error()
		return res
	}

	switch {
	case c.Error != "":
		want, _ := parseKind(c.Error)
		got, ok := jit.KindOf(res.Err)
		switch {
		case res.Err == nil:
			res.Reason = fmt.Sprintf("expected %s error, got %d", c.Error, res.Got)
		case !ok || got != want:
			res.Reason = fmt.Sprintf("expected %s error, got %v", c.Error, res.Err)
		default:
			res.Passed = true
		}
	case res.Err != nil:
		res.Reason = fmt.Sprintf("expected %d, got error: %v", *c.Expect, res.Err)
	case res.Got != *c.Expect:
		res.Reason = fmt.Sprintf("expected %d, got %d", *c.Expect, res.Got)
	default:
		res.Passed = true
	}

	if res.Passed && res.Err == nil && r.Oracle != nil && !compiler.Options().Lenient {
		if want, ok := r.Oracle.Eval(c.Expr); ok {
			if want != res.Got {
				res.Passed = false
				res.Reason = fmt.Sprintf("oracle computed %d, native code returned %d", want, res.Got)
			} else {
				res.Oracle = true
			}
		}
	}
	return res
}

// Summary counts passed, failed and skipped results
func Summary(results []Result) (passed, failed, skipped int) {
	for _, res := range results {
		switch {
		case res.Skipped:
			skipped++
		case res.Passed:
			passed++
		default:
			failed++
		}
	}
	return
}
