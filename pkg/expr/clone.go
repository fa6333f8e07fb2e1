package expr

import "github.com/cockroachdb/errors"

// Clone returns a deep copy of tree. The copy has its own owner and must be
// destroyed separately from tree. Clone(nil) is nil.
func Clone(tree Node) Node {
	switch n := tree.(type) {
	case nil:
		return nil
	case *ValueNode:
		return NewValue(n.val)
	case *UnaryNode:
		return NewNode(KindNegate, Clone(n.child), nil)
	case *BinaryNode:
		return NewNode(n.op, Clone(n.left), Clone(n.right))
	default:
		panic(errors.AssertionFailedf("expr: unexpected node %T", tree))
	}
}
