package expr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Tree2String renders tree as a parenthesized infix expression into buf
// and returns the length of the string stored, which is followed by a NUL
// byte. Values are printed with two decimal places, binary operators as
// "(left op right)" and negation as "-operand".
//
// len(buf) is the capacity including the terminator. If the rendering does
// not fit, the first len(buf)-1 bytes are kept and the last of them is
// replaced by '$'. An empty buf is left untouched and 0 is returned.
func Tree2String(tree Node, buf []byte) int {
	if tree == nil {
		panic(errors.AssertionFailedf("expr: rendering nil tree"))
	}
	w := boundedWriter{buf: buf}
	writeInfix(&w, tree)
	return w.finish()
}

// Format returns the rendering produced by Tree2String without a bound on
// its length.
func Format(tree Node) string {
	if tree == nil {
		panic(errors.AssertionFailedf("expr: rendering nil tree"))
	}
	var sb strings.Builder
	writeInfix(&sb, tree)
	return sb.String()
}

func (v *ValueNode) String() string  { return Format(v) }
func (u *UnaryNode) String() string  { return Format(u) }
func (b *BinaryNode) String() string { return Format(b) }

type byteWriter interface {
	io.Writer
	io.ByteWriter
}

func writeInfix(w byteWriter, tree Node) {
	switch n := tree.(type) {
	case *ValueNode:
		writeValue(w, n.val)
	case *UnaryNode:
		_ = w.WriteByte(KindNegate.Symbol())
		writeInfix(w, n.child)
	case *BinaryNode:
		_ = w.WriteByte('(')
		writeInfix(w, n.left)
		_, _ = w.Write([]byte{' ', n.op.Symbol(), ' '})
		writeInfix(w, n.right)
		_ = w.WriteByte(')')
	default:
		panic(errors.AssertionFailedf("expr: unexpected node %T", tree))
	}
}

func writeValue(w io.Writer, v float64) {
	var scratch [32]byte
	_, _ = w.Write(strconv.AppendFloat(scratch[:0], v, 'f', 2, 64))
}

// LaTeX returns a LaTeX math-mode rendering of tree.
func LaTeX(tree Node) string {
	switch n := tree.(type) {
	case *ValueNode:
		return strconv.FormatFloat(n.val, 'f', 2, 64)
	case *UnaryNode:
		return fmt.Sprintf("-{%s}", LaTeX(n.child))
	case *BinaryNode:
		left := LaTeX(n.left)
		right := LaTeX(n.right)
		switch n.op {
		case KindAdd:
			return fmt.Sprintf("{%s} + {%s}", left, right)
		case KindSub:
			return fmt.Sprintf("{%s} - {%s}", left, right)
		case KindMul:
			return fmt.Sprintf("{%s} \\cdot {%s}", left, right)
		case KindDiv:
			return fmt.Sprintf("\\frac{%s}{%s}", left, right)
		case KindPower:
			return fmt.Sprintf("{%s}^{%s}", left, right)
		default:
			panic(errors.AssertionFailedf("expr: unknown binary operator %s", n.op))
		}
	case nil:
		panic(errors.AssertionFailedf("expr: rendering nil tree"))
	default:
		panic(errors.AssertionFailedf("expr: unexpected node %T", tree))
	}
}
