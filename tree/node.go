package tree

import (
	"fmt"
	"math"
)

// NoChild is the index stored in a node's Left, Right or Parent field
// when the corresponding position does not exist: the parent of the
// root, or a child that would fall past the capacity of the tree.
const NoChild = -1

/*
Node is one slot of a Tree: a position in a complete binary tree stored
as a flat array, together with the decision rule installed at that
position and the statistics of the training data that reached it.

The Index, Left, Right, Parent and IsRightChild fields are derived from
the node's position by integer arithmetic when the tree is built and
never change afterwards. The decision rule (FeatureIndex, Threshold,
Greater) and the statistics (Mean, Samples, Purity) are undefined until
Filled is true, and are only ever written through the owning Tree, so
that purity gating and bounds clamping are enforced in a single place.
*/
type Node struct {
	// Index is the position of the node in the tree array, 0 being
	// the root.
	Index int
	// Left and Right are the indices of the children of the node,
	// or NoChild if they would fall outside the tree.
	Left  int
	Right int
	// Parent is the index of the parent of the node, or NoChild for
	// the root.
	Parent int
	// IsRightChild indicates whether the node is the right child of
	// its parent. The root is not a right child.
	IsRightChild bool
	// FeatureIndex is the feature the decision rule of the node
	// compares against Threshold.
	FeatureIndex int
	// Threshold is the value the decision rule compares the feature
	// against.
	Threshold float64
	// Greater indicates the direction of the rule: when true,
	// instances with feature value strictly above Threshold are
	// routed to the right child; when false, instances with feature
	// value strictly below Threshold are routed to the left child.
	Greater bool
	// Filled indicates whether the node has ever received a rule.
	Filled bool
	// Purity is the best purity achieved by a rule installed at this
	// node so far. It starts at -Inf so any real candidate improves it.
	Purity float64
	// Mean is the aggregate label value to return when a traversal
	// stops at this node.
	Mean float64
	// Samples is the number of training instances that reached this
	// node when its rule was installed.
	Samples int
}

// newNode returns the node for the given index of a tree with the
// given capacity, with its relationship fields derived from the index
// and no rule installed.
func newNode(index, capacity int) Node {
	return Node{
		Index:        index,
		Left:         leftOf(index, capacity),
		Right:        rightOf(index, capacity),
		Parent:       parentOf(index),
		IsRightChild: index > 0 && index%2 == 0,
		Purity:       math.Inf(-1),
	}
}

func leftOf(index, capacity int) int {
	l := 2*index + 1
	if l >= capacity {
		return NoChild
	}
	return l
}

func rightOf(index, capacity int) int {
	r := 2*index + 2
	if r >= capacity {
		return NoChild
	}
	return r
}

func parentOf(index int) int {
	if index == 0 {
		return NoChild
	}
	return (index - 1) / 2
}

/*
Equal takes another node and returns true if both nodes match on every
field, including their position in the tree.
*/
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return *n == *other
}

func (n *Node) String() string {
	if !n.Filled {
		return fmt.Sprintf("[%d] empty", n.Index)
	}
	op := "<="
	if n.Greater {
		op = ">"
	}
	return fmt.Sprintf("[%d] x%d %s %g (mean %g, samples %d, purity %g)",
		n.Index, n.FeatureIndex, op, n.Threshold, n.Mean, n.Samples, n.Purity)
}
