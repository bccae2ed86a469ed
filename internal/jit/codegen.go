// Completion: 100% - Code generator complete
package jit

import "fmt"

// Program is a finished routine ready to be mapped and called
type Program struct {
	Code       []byte
	Source     string
	Tree       Node
	SpillDepth int // Deepest stack spill, in 8-byte words
	Pushes     int
	Pops       int
	faults     []int // Source offsets of division sites, indexed by status-1
}

// FaultOffset returns the source offset of the division that produced a
// fault status
func (p *Program) FaultOffset(status uintptr) (int, bool) {
	if status == 0 || status > uintptr(len(p.faults)) {
		return 0, false
	}
	return p.faults[status-1], true
}

// CodeGen turns an expression tree into x86_64 machine code using two
// registers: every subtree leaves its value in PrimaryReg. For a binary node
// the left value is spilled with one push before the right subtree runs and
// restored with one pop afterwards, so the stack is balanced at every node.
type CodeGen struct {
	out      *Out
	opts     Options
	source   string
	fault    *Label
	faults   []int
	finished bool
}

// NewCodeGen creates a generator writing into a fresh buffer and emits the
// routine prologue
func NewCodeGen(source string, opts Options) *CodeGen {
	size := opts.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	out := NewOut(NewBuffer("text", size), opts.trace())
	cg := &CodeGen{
		out:    out,
		opts:   opts,
		source: source,
		fault:  out.NewLabel("fault"),
	}
	out.Prologue()
	return cg
}

// Out returns the underlying emitter
func (cg *CodeGen) Out() *Out {
	return cg.out
}

// Generate emits code that leaves the value of n in PrimaryReg
func (cg *CodeGen) Generate(n Node) error {
	switch n := n.(type) {
	case *NumberLiteral:
		cg.out.MovImmToReg(PrimaryReg, uint64(n.Value))
		return nil
	case *BinaryOp:
		return cg.generateBinary(n)
	default:
		return fmt.Errorf("%w: unexpected node %T", ErrParse, n)
	}
}

func (cg *CodeGen) generateBinary(n *BinaryOp) error {
	if n.Op == '/' && !cg.opts.Division {
		return &CompileError{
			Kind:    KindUnsupported,
			Message: "division is not enabled",
			Source:  cg.source,
			Offset:  n.Offset,
			Length:  1,
		}
	}

	checkpoint := cg.out.Stack().Checkpoint(fmt.Sprintf("%c at %d", n.Op, n.Offset))

	if err := cg.Generate(n.Left); err != nil {
		return err
	}
	cg.out.PushReg(PrimaryReg)

	if err := cg.Generate(n.Right); err != nil {
		return err
	}
	cg.out.MovRegToReg(SecondaryReg, PrimaryReg)
	if err := cg.out.PopReg(PrimaryReg); err != nil {
		return err
	}

	if err := cg.out.Stack().Validate(checkpoint, fmt.Sprintf("%c at %d", n.Op, n.Offset)); err != nil {
		return err
	}

	// PrimaryReg = left, SecondaryReg = right
	switch n.Op {
	case '+':
		cg.out.AddRegToReg(PrimaryReg, SecondaryReg)
	case '-':
		cg.out.SubRegFromReg(PrimaryReg, SecondaryReg)
	case '*':
		cg.out.ImulRegWithReg(PrimaryReg, SecondaryReg)
	case '/':
		cg.generateDivision(n)
	default:
		return &CompileError{
			Kind:    KindUnsupported,
			Message: fmt.Sprintf("unknown operator %q", n.Op),
			Source:  cg.source,
			Offset:  n.Offset,
			Length:  1,
		}
	}
	return nil
}

// generateDivision emits a truncating signed division of PrimaryReg by
// SecondaryReg. A zero divisor exits through the fault stub with a status
// identifying this site, and a divisor of -1 is handled with NEG because IDIV
// traps on math.MinInt64 / -1.
func (cg *CodeGen) generateDivision(n *BinaryOp) {
	cg.faults = append(cg.faults, n.Offset)
	status := uint64(len(cg.faults))

	o := cg.out
	nonzero := o.NewLabel(fmt.Sprintf("div%d.nonzero", status))
	divide := o.NewLabel(fmt.Sprintf("div%d.idiv", status))
	done := o.NewLabel(fmt.Sprintf("div%d.done", status))

	o.TestRegWithReg(SecondaryReg, SecondaryReg)
	o.JumpConditional(JumpNotEqual, nonzero)
	o.MovImmToReg("edx", status)
	o.JumpUnconditional(cg.fault)

	o.Bind(nonzero)
	o.CmpRegToImm(SecondaryReg, -1)
	o.JumpConditional(JumpNotEqual, divide)
	o.NegReg(PrimaryReg)
	o.JumpUnconditional(done)

	o.Bind(divide)
	o.Cqo()
	o.IdivReg(SecondaryReg)

	o.Bind(done)
}

// Finish appends the epilogue and return instruction, plus the fault stub when
// any division was emitted, and commits the buffer
func (cg *CodeGen) Finish() (*Program, error) {
	if cg.finished {
		return nil, fmt.Errorf("code generator already finished")
	}
	cg.finished = true

	stack := cg.out.Stack()
	if err := stack.Validate(0, "end of routine"); err != nil {
		return nil, err
	}

	cg.out.Epilogue()
	if len(cg.faults) > 0 {
		cg.out.Bind(cg.fault)
		cg.out.leave()
	}

	buf := cg.out.Buffer()
	buf.Commit()

	pushes, pops := stack.Counts()
	return &Program{
		Code:       buf.Bytes(),
		Source:     cg.source,
		SpillDepth: stack.MaxDepth(),
		Pushes:     pushes,
		Pops:       pops,
		faults:     cg.faults,
	}, nil
}
