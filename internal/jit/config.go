package jit

import (
	"io"
	"log/slog"
	"os"

	"github.com/xyproto/env/v2"
)

const (
	defaultMaxDepth = 1000
	// maxDepthCeiling caps MaxDepth whatever the caller or environment asks for
	maxDepthCeiling = 4096
	// maxSpillBytes is the most stack a routine may use for spilled operands.
	// The routine runs on the stack of the calling thread.
	maxSpillBytes = 32 << 10
)

// Options controls how expressions are parsed, compiled and run
type Options struct {
	// Division enables native signed division. When false, '/' is rejected
	// with ErrUnsupported.
	Division bool
	// Lenient accepts a missing closing parenthesis and ignores tokens that
	// follow a complete expression.
	Lenient bool
	// Verbose writes every emitted instruction to Trace
	Verbose bool
	Trace   io.Writer
	// BufferSize is the initial capacity of the instruction buffer
	BufferSize int
	// MaxDepth bounds parenthesis nesting, up to a fixed ceiling of 4096
	MaxDepth int
	// Logger receives debug events; nil discards them
	Logger *slog.Logger
}

// DefaultOptions returns options populated from the environment:
// JIT_DIVISION, JIT_LENIENT, JIT_VERBOSE, JIT_BUFFER_SIZE and JIT_MAX_DEPTH
func DefaultOptions() Options {
	return Options{
		Division:   env.Bool("JIT_DIVISION"),
		Lenient:    env.Bool("JIT_LENIENT"),
		Verbose:    env.Bool("JIT_VERBOSE"),
		Trace:      os.Stderr,
		BufferSize: env.Int("JIT_BUFFER_SIZE", defaultBufferSize),
		MaxDepth:   env.Int("JIT_MAX_DEPTH", defaultMaxDepth),
	}
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return defaultMaxDepth
	}
	return min(o.MaxDepth, maxDepthCeiling)
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

func (o Options) trace() io.Writer {
	if !o.Verbose {
		return nil
	}
	if o.Trace == nil {
		return os.Stderr
	}
	return o.Trace
}
