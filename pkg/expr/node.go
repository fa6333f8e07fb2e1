package expr

import (
	"fmt"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Kind identifies what a node in an expression tree holds: a value or an
// operator.
type Kind uint8

const (
	KindValue Kind = iota
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindPower
	KindNegate // unary
)

var kindNames = [...]string{
	KindValue:  "value",
	KindAdd:    "add",
	KindSub:    "sub",
	KindMul:    "mul",
	KindDiv:    "div",
	KindPower:  "power",
	KindNegate: "negate",
}

var kindSymbols = [...]byte{
	KindValue:  '?',
	KindAdd:    '+',
	KindSub:    '-',
	KindMul:    '*',
	KindDiv:    '/',
	KindPower:  '^',
	KindNegate: '-',
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("unknown:%d", k)
}

// SafeFormat implements redact.SafeFormatter.
func (k Kind) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(k.String()))
}

// Symbol returns the operator character for k, or '?' for values and
// unknown kinds.
func (k Kind) Symbol() byte {
	if int(k) < len(kindSymbols) {
		return kindSymbols[k]
	}
	return '?'
}

// IsBinary reports whether k is an operator with two operands.
func (k Kind) IsBinary() bool {
	switch k {
	case KindAdd, KindSub, KindMul, KindDiv, KindPower:
		return true
	}
	return false
}

// Node is a node in an expression tree. The implementations are
// *ValueNode, *UnaryNode and *BinaryNode; no other type can satisfy it.
//
// A Node has exactly one owner: the caller that constructed it, or the
// interior node it was passed to. Trees are immutable once built.
type Node interface {
	Kind() Kind
	String() string

	hdr() *header
}

// header tracks ownership of a node.
type header struct {
	owned     bool // absorbed into a parent by NewNode
	destroyed bool
}

func (h *header) hdr() *header { return h }

// ValueNode is a leaf holding a number.
type ValueNode struct {
	header
	val float64
}

// UnaryNode negates its single operand.
type UnaryNode struct {
	header
	child Node
}

// BinaryNode applies an arithmetic operator to two operands.
type BinaryNode struct {
	header
	op          Kind
	left, right Node
}

// live counts nodes that have been constructed and not yet destroyed.
var live atomic.Int64

// LiveNodes returns the number of nodes constructed by NewValue and NewNode
// that have not been released by Destroy.
func LiveNodes() int64 {
	return live.Load()
}

// NewValue returns a leaf holding v.
func NewValue(v float64) Node {
	live.Add(1)
	return &ValueNode{val: v}
}

// NewNode returns an interior node applying kind to left and, for binary
// kinds, right. For KindNegate right must be nil. The new node takes
// ownership of its children: they must not be used through any other
// handle afterwards, and must not be destroyed on their own.
//
// NewNode panics if the arguments do not describe a well-formed node.
func NewNode(kind Kind, left, right Node) Node {
	switch {
	case kind == KindNegate:
		if right != nil {
			panic(errors.AssertionFailedf("expr: %s node takes one operand", kind))
		}
		checkOperand(kind, left)
		left.hdr().owned = true
		live.Add(1)
		return &UnaryNode{child: left}
	case kind.IsBinary():
		checkOperand(kind, left)
		checkOperand(kind, right)
		if left == right {
			panic(errors.AssertionFailedf("expr: %s node given the same operand twice", kind))
		}
		left.hdr().owned = true
		right.hdr().owned = true
		live.Add(1)
		return &BinaryNode{op: kind, left: left, right: right}
	default:
		panic(errors.AssertionFailedf("expr: %s is not an operator kind", kind))
	}
}

func checkOperand(kind Kind, child Node) {
	if child == nil {
		panic(errors.AssertionFailedf("expr: nil operand for %s node", kind))
	}
	h := child.hdr()
	switch {
	case h.destroyed:
		panic(errors.AssertionFailedf("expr: operand of %s node was destroyed", kind))
	case h.owned:
		panic(errors.AssertionFailedf("expr: operand of %s node already has a parent", kind))
	}
}

// Kind implements Node.
func (v *ValueNode) Kind() Kind { return KindValue }

// Value returns the number held by the leaf.
func (v *ValueNode) Value() float64 { return v.val }

// Kind implements Node.
func (u *UnaryNode) Kind() Kind { return KindNegate }

// Operand returns the negated subtree.
func (u *UnaryNode) Operand() Node { return u.child }

// Kind implements Node.
func (b *BinaryNode) Kind() Kind { return b.op }

// Left returns the left operand.
func (b *BinaryNode) Left() Node { return b.left }

// Right returns the right operand.
func (b *BinaryNode) Right() Node { return b.right }

// Destroy releases tree and every node it owns, children before parents.
// Destroying a nil tree is a no-op. Destroy must be called once, on the
// root; destroying a subtree that has been absorbed by NewNode, or
// destroying a tree twice, panics.
func Destroy(tree Node) {
	if tree == nil {
		return
	}
	if tree.hdr().owned {
		panic(errors.AssertionFailedf("expr: destroying a %s node owned by a parent", tree.Kind()))
	}
	release(tree)
}

func release(n Node) {
	if n == nil {
		return
	}
	h := n.hdr()
	if h.destroyed {
		panic(errors.AssertionFailedf("expr: %s node destroyed twice", n.Kind()))
	}
	switch n := n.(type) {
	case *ValueNode:
	case *UnaryNode:
		release(n.child)
		n.child = nil
	case *BinaryNode:
		release(n.left)
		release(n.right)
		n.left, n.right = nil, nil
	}
	h.destroyed = true
	live.Add(-1)
}
