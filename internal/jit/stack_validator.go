// stack_validator.go - Track stack operations to prove push/pop balance
package jit

import (
	"fmt"
	"io"
)

// StackValidator records every push and pop emitted for a routine so that
// code generation can prove the spill discipline is balanced
type StackValidator struct {
	depth      int      // Current stack depth (in 8-byte words)
	maxDepth   int      // Deepest point reached
	pushes     int      // Total pushes
	pops       int      // Total pops
	operations []string // History of operations for debugging
	trace      io.Writer
}

func NewStackValidator(trace io.Writer) *StackValidator {
	return &StackValidator{
		operations: make([]string, 0, 64),
		trace:      trace,
	}
}

func (sv *StackValidator) Push(reg string) {
	sv.depth++
	sv.pushes++
	sv.maxDepth = max(sv.maxDepth, sv.depth)
	sv.operations = append(sv.operations, fmt.Sprintf("push %s (depth=%d)", reg, sv.depth))
	if sv.trace != nil {
		fmt.Fprintf(sv.trace, "STACK: push %s, depth now %d\n", reg, sv.depth)
	}
}

// Pop records a pop. A pop below the starting depth is an internal error.
func (sv *StackValidator) Pop(reg string) error {
	if sv.depth <= 0 {
		return fmt.Errorf("stack underflow: pop %s with depth %d (after %s)", reg, sv.depth, sv.recent(10))
	}
	sv.depth--
	sv.pops++
	sv.operations = append(sv.operations, fmt.Sprintf("pop %s (depth=%d)", reg, sv.depth))
	if sv.trace != nil {
		fmt.Fprintf(sv.trace, "STACK: pop %s, depth now %d\n", reg, sv.depth)
	}
	return nil
}

// Checkpoint returns the current depth so a caller can validate it later
func (sv *StackValidator) Checkpoint(label string) int {
	sv.operations = append(sv.operations, fmt.Sprintf("checkpoint %s (depth=%d)", label, sv.depth))
	return sv.depth
}

// Validate checks that the depth matches an earlier checkpoint
func (sv *StackValidator) Validate(checkpointDepth int, label string) error {
	if sv.depth != checkpointDepth {
		return fmt.Errorf("stack imbalance at %s: expected depth %d, got %d (after %s)",
			label, checkpointDepth, sv.depth, sv.recent(20))
	}
	return nil
}

func (sv *StackValidator) recent(n int) []string {
	start := max(len(sv.operations)-n, 0)
	return sv.operations[start:]
}

// Depth returns the current depth
func (sv *StackValidator) Depth() int { return sv.depth }

// MaxDepth returns the deepest point reached
func (sv *StackValidator) MaxDepth() int { return sv.maxDepth }

// Counts returns the total number of pushes and pops
func (sv *StackValidator) Counts() (pushes, pops int) { return sv.pushes, sv.pops }
