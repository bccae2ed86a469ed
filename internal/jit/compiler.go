// Completion: 100% - Compile and run pipeline complete
package jit

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/xyproto/jitcalc/internal/engine"
)

// Compiler runs the pipeline: parse, generate, map, call, unmap. A Compiler
// holds only options; every call owns its own tree, buffer and code page, so
// one Compiler may be used from several goroutines.
type Compiler struct {
	opts   Options
	logger *slog.Logger
}

func NewCompiler(opts Options) *Compiler {
	return &Compiler{opts: opts, logger: opts.logger()}
}

// Options returns the compiler's options
func (c *Compiler) Options() Options {
	return c.opts
}

// Compile parses source and generates a complete routine
func (c *Compiler) Compile(source string) (*Program, error) {
	tree, err := Parse(source, c.opts)
	if err != nil {
		return nil, err
	}

	cg := NewCodeGen(source, c.opts)
	if err := cg.Generate(tree); err != nil {
		return nil, err
	}
	prog, err := cg.Finish()
	if err != nil {
		return nil, err
	}
	prog.Tree = tree

	if spill := prog.SpillDepth * 8; spill > maxSpillBytes {
		return nil, &CompileError{
			Kind:    KindResource,
			Message: fmt.Sprintf("expression needs %d bytes of stack, the limit is %d", spill, maxSpillBytes),
			Source:  source,
			Length:  len(source),
		}
	}

	c.logger.Debug("compiled",
		"source", source,
		"bytes", len(prog.Code),
		"depth", Depth(tree),
		"spill_depth", prog.SpillDepth,
	)
	return prog, nil
}

// Run maps the program, calls it once and unmaps it again
func (c *Compiler) Run(prog *Program) (result int64, err error) {
	if !engine.HostPlatform().CanExecute() {
		return 0, fmt.Errorf("%w (host is %s)", ErrUnsupportedPlatform, engine.HostPlatform())
	}

	page, err := NewCodePage(len(prog.Code))
	if err != nil {
		return 0, err
	}
	defer func() {
		if freeErr := page.Free(); freeErr != nil && err == nil {
			err = freeErr
		}
	}()

	if err := page.CopyCode(prog.Code); err != nil {
		return 0, err
	}
	if err := page.Seal(); err != nil {
		return 0, err
	}

	value, status, err := page.Invoke()
	if err != nil {
		return 0, err
	}
	if status != 0 {
		cerr := &CompileError{Kind: KindRuntime, Message: "division by zero", Source: prog.Source, Length: 1}
		if offset, ok := prog.FaultOffset(status); ok {
			cerr.Offset = offset
		}
		return 0, cerr
	}

	c.logger.Debug("executed", "source", prog.Source, "result", value, "page_size", page.Size())
	return value, nil
}

// CompileAndRun compiles source to native code, runs it and returns the result
func (c *Compiler) CompileAndRun(source string) (int64, error) {
	prog, err := c.Compile(source)
	if err != nil {
		return 0, err
	}
	return c.Run(prog)
}

// CompileAndRun compiles and runs source with options taken from the environment
func CompileAndRun(source string) (int64, error) {
	return NewCompiler(DefaultOptions()).CompileAndRun(source)
}

// KindOf returns the kind of an error returned by this package
func KindOf(err error) (ErrorKind, bool) {
	var cerr *CompileError
	if errors.As(err, &cerr) {
		return cerr.Kind, true
	}
	switch {
	case errors.Is(err, ErrLex):
		return KindLex, true
	case errors.Is(err, ErrParse):
		return KindParse, true
	case errors.Is(err, ErrUnsupported):
		return KindUnsupported, true
	case errors.Is(err, ErrResource):
		return KindResource, true
	case errors.Is(err, ErrDivisionByZero):
		return KindRuntime, true
	}
	return 0, false
}
