package expr

import "github.com/cockroachdb/errors"

// Count returns the number of nodes in tree. Count(nil) is 0.
func Count(tree Node) int {
	switch n := tree.(type) {
	case nil:
		return 0
	case *ValueNode:
		return 1
	case *UnaryNode:
		return 1 + Count(n.child)
	case *BinaryNode:
		return 1 + Count(n.left) + Count(n.right)
	default:
		panic(errors.AssertionFailedf("expr: unexpected node %T", tree))
	}
}

// Depth returns the number of nodes on the longest path from the root of
// tree to a leaf; a lone leaf has depth 1. It panics if tree is nil.
func Depth(tree Node) int {
	if tree == nil {
		panic(errors.AssertionFailedf("expr: depth of nil tree"))
	}
	return depth(tree)
}

func depth(tree Node) int {
	switch n := tree.(type) {
	case nil:
		return 0
	case *ValueNode:
		return 1
	case *UnaryNode:
		return 1 + depth(n.child)
	case *BinaryNode:
		return 1 + max(depth(n.left), depth(n.right))
	default:
		panic(errors.AssertionFailedf("expr: unexpected node %T", tree))
	}
}
