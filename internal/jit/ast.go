package jit

import (
	"fmt"
	"strings"
)

// Node is an expression tree node: either a *NumberLiteral leaf or a
// *BinaryOp with exactly two children
type Node interface {
	String() string
	node()
}

// NumberLiteral is a leaf holding an integer constant
type NumberLiteral struct {
	Value int64
}

func (n *NumberLiteral) String() string {
	return fmt.Sprintf("%d", n.Value)
}

func (n *NumberLiteral) node() {}

// BinaryOp applies Op to the values of Left and Right
type BinaryOp struct {
	Op     byte // One of + - * /
	Left   Node
	Right  Node
	Offset int // Source offset of the operator
}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %c %s)", b.Left, b.Op, b.Right)
}

func (b *BinaryOp) node() {}

// Depth returns the height of the tree; a single literal has depth 1
func Depth(n Node) int {
	switch n := n.(type) {
	case *BinaryOp:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	default:
		return 1
	}
}

// Dump returns an indented, one-node-per-line rendering of the tree
func Dump(n Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n Node, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	switch n := n.(type) {
	case *NumberLiteral:
		fmt.Fprintf(sb, "%d\n", n.Value)
	case *BinaryOp:
		fmt.Fprintf(sb, "%c\n", n.Op)
		dump(sb, n.Left, indent+1)
		dump(sb, n.Right, indent+1)
	}
}
