package expr

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Evaluate computes the value of the expression. It panics if tree is nil.
//
// Arithmetic follows IEEE-754 throughout: dividing by zero yields ±Inf or
// NaN rather than failing, and those values propagate through the rest of
// the expression.
func Evaluate(tree Node) float64 {
	if tree == nil {
		panic(errors.AssertionFailedf("expr: evaluating nil tree"))
	}
	switch n := tree.(type) {
	case *ValueNode:
		return n.val
	case *UnaryNode:
		return -Evaluate(n.child)
	case *BinaryNode:
		left := Evaluate(n.left)
		right := Evaluate(n.right)
		switch n.op {
		case KindAdd:
			return left + right
		case KindSub:
			return left - right
		case KindMul:
			return left * right
		case KindDiv:
			return left / right
		case KindPower:
			return math.Pow(left, right)
		default:
			panic(errors.AssertionFailedf("expr: unknown binary operator %s", n.op))
		}
	default:
		panic(errors.AssertionFailedf("expr: unexpected node %T", tree))
	}
}
