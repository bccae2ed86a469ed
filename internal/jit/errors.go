// Completion: 100% - Error handling complete, clear and helpful messages
package jit

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per error kind. Errors caused by the input match
// exactly one of them with errors.Is.
var (
	ErrLex                 = errors.New("lex error")
	ErrParse               = errors.New("parse error")
	ErrUnsupported         = errors.New("unsupported operation")
	ErrResource            = errors.New("resource error")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrUnsupportedPlatform = fmt.Errorf("%w: native execution requires x86_64 on linux, darwin or freebsd", ErrResource)
)

// ErrorKind classifies a CompileError
type ErrorKind int

const (
	KindLex ErrorKind = iota
	KindParse
	KindUnsupported
	KindResource
	KindRuntime
)

func (k ErrorKind) String() string {
	switch k {
	case KindLex:
		return "lex"
	case KindParse:
		return "parse"
	case KindUnsupported:
		return "unsupported"
	case KindResource:
		return "resource"
	case KindRuntime:
		return "runtime"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindLex:
		return ErrLex
	case KindParse:
		return ErrParse
	case KindUnsupported:
		return ErrUnsupported
	case KindResource:
		return ErrResource
	case KindRuntime:
		return ErrDivisionByZero
	default:
		return nil
	}
}

// CompileError is a failure located in the source text
type CompileError struct {
	Kind    ErrorKind
	Message string
	Source  string // The full source text
	Offset  int    // Byte offset of the problem
	Length  int    // Length of the problematic token
}

func newError(kind ErrorKind, src string, tok Token, format string, args ...any) *CompileError {
	return &CompileError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Source:  src,
		Offset:  tok.Offset,
		Length:  tok.Length(),
	}
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("%s error at offset %d: %s", e.Kind, e.Offset, e.Message)
}

// Unwrap returns the sentinel error for the kind
func (e *CompileError) Unwrap() error {
	return e.Kind.sentinel()
}

// Format returns a nicely formatted error message with the source line and
// a caret under the problem
func (e *CompileError) Format(useColor bool) string {
	var sb strings.Builder

	if useColor {
		sb.WriteString("\033[1;31m") // Bold red
	}
	sb.WriteString(e.Kind.String())
	sb.WriteString(" error: ")
	if useColor {
		sb.WriteString("\033[0m")
	}
	sb.WriteString(e.Message)
	sb.WriteString("\n")

	if e.Source == "" {
		return sb.String()
	}

	// Expressions may span lines; show the line holding the offset
	lineStart := strings.LastIndexByte(e.Source[:min(e.Offset, len(e.Source))], '\n') + 1
	lineEnd := strings.IndexByte(e.Source[lineStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(e.Source)
	} else {
		lineEnd += lineStart
	}

	sb.WriteString("  | ")
	sb.WriteString(e.Source[lineStart:lineEnd])
	sb.WriteString("\n  | ")
	sb.WriteString(strings.Repeat(" ", e.Offset-lineStart))
	if useColor {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString(strings.Repeat("^", max(e.Length, 1)))
	if useColor {
		sb.WriteString("\033[0m")
	}
	sb.WriteString("\n")

	return sb.String()
}
