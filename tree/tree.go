/*
Package tree implements a fixed-shape decision tree stored as a flat
array of nodes addressed by integer arithmetic: the children of node i
live at 2i+1 and 2i+2 and its parent at (i-1)/2, so the tree never
holds cross-references between nodes.

The tree does not search for splits itself. An external split finder
inspects the training data visible at a node with AtNode, computes a
candidate rule on that subset, and installs it with UpdateNode, which
only accepts candidates that strictly improve on the purity already
stored at the node. Once every node the finder could develop has its
rule, Predict and Classify traverse the installed rules for single
instances.
*/
package tree

import (
	"fmt"
	"math/bits"
	"strings"
)

// Error is the type for the errors reported by a Tree.
type Error string

func (e Error) Error() string {
	return string(e)
}

/*
ErrNodeOutOfRange is the error returned by SetNode and UpdateNode when
the given node index does not fit in the tree. It is a warning-class
condition: the tree is left untouched and the caller is expected to
log it and continue training with the shallower tree it has.
*/
const ErrNodeOutOfRange = Error("node index out of range for this tree")

/*
NoDecision is the value returned by Classify when the root of the tree
has no rule installed, so no routing decision could be made at all. It
is distinct from 0, which reports that the last decision routed left.
*/
const NoDecision = -1

/*
Tree is a complete binary tree of fixed depth whose nodes are kept in
a flat array. It is built once with New, mutated only through SetNode
and UpdateNode while an external split finder develops it, and then
used read-only through Predict, Classify and AtNode.
*/
type Tree struct {
	nodes []Node
	// Weight is a scalar multiplier for the tree as a whole. It is
	// read and written only by ensemble callers such as boosting;
	// the tree itself never uses it.
	Weight float64
}

/*
New takes a depth of at least 1 and returns a tree with capacity for
2^depth - 1 nodes, none of them filled, or an error if the depth is
invalid.
*/
func New(depth int) (*Tree, error) {
	if depth < 1 {
		return nil, fmt.Errorf("building tree: depth must be at least 1, got %d", depth)
	}
	capacity := 1<<uint(depth) - 1
	nodes := make([]Node, capacity)
	for i := range nodes {
		nodes[i] = newNode(i, capacity)
	}
	return &Tree{nodes: nodes}, nil
}

// NumNodes returns the capacity of the tree: 2^depth - 1 for the depth
// it was built with.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

// Depth returns the depth the tree was built with.
func (t *Tree) Depth() int {
	return bits.Len(uint(len(t.nodes)))
}

/*
Nodes returns a copy of the tree's node array in index order. It is
meant for serialization; mutating the copy does not affect the tree.
*/
func (t *Tree) Nodes() []Node {
	nodes := make([]Node, len(t.nodes))
	copy(nodes, t.nodes)
	return nodes
}

// Node returns a copy of the node at the given index, or an error if
// the index does not fit in the tree.
func (t *Tree) Node(index int) (Node, error) {
	if index < 0 || index >= len(t.nodes) {
		return Node{}, ErrNodeOutOfRange
	}
	return t.nodes[index], nil
}

/*
SetNode unconditionally installs a decision rule at the node with the
given index: the feature to compare, the threshold to compare it
against, the direction of the comparison, and the mean label, sample
count and purity of the training subset the rule was computed on.

If the index does not fit in the tree, SetNode returns
ErrNodeOutOfRange and leaves the tree untouched; training is expected
to go on with the shallower effective tree.
*/
func (t *Tree) SetNode(index, featureIndex int, threshold float64, greater bool, mean float64, samples int, purity float64) error {
	if index < 0 || index >= len(t.nodes) {
		return ErrNodeOutOfRange
	}
	n := &t.nodes[index]
	n.FeatureIndex = featureIndex
	n.Threshold = threshold
	n.Greater = greater
	n.Mean = mean
	n.Samples = samples
	n.Purity = purity
	n.Filled = true
	return nil
}

/*
UpdateNode installs the given candidate rule at the node with the given
index only if its purity strictly exceeds the purity already stored
there, and returns whether the candidate was installed. A rejected
candidate is the expected common case and is not an error.

The gate makes the result of applying a set of candidates independent
of the order they arrive in: only strict improvements are ever
accepted, so a worse split can never overwrite a better one.

If the index does not fit in the tree, UpdateNode returns
ErrNodeOutOfRange and leaves the tree untouched.
*/
func (t *Tree) UpdateNode(index, featureIndex int, threshold float64, greater bool, mean float64, samples int, purity float64) (bool, error) {
	if index < 0 || index >= len(t.nodes) {
		return false, ErrNodeOutOfRange
	}
	if purity <= t.nodes[index].Purity {
		return false, nil
	}
	return true, t.SetNode(index, featureIndex, threshold, greater, mean, samples, purity)
}

// CountFilled returns the number of nodes with a rule installed.
func (t *Tree) CountFilled() int {
	var count int
	for i := range t.nodes {
		if t.nodes[i].Filled {
			count++
		}
	}
	return count
}

// route reports where a node's rule sends an instance.
type route int

const (
	routedNowhere route = iota
	routedLeft
	routedRight
)

// routeAt applies the rule of node n to the instance and returns the
// direction it takes. The asymmetry between the two directions is
// deliberate: a Greater rule routes right on feature > threshold and
// left otherwise, while a non-Greater rule routes left on
// feature < threshold and right otherwise.
func routeAt(n *Node, instance []float64) route {
	v := instance[n.FeatureIndex]
	if n.Greater {
		if v > n.Threshold {
			return routedRight
		}
		return routedLeft
	}
	if v < n.Threshold {
		return routedLeft
	}
	return routedRight
}

// traverse walks the instance from the root down through the installed
// rules and returns the last filled node visited and the direction of
// the last routing decision taken, or nil and routedNowhere when even
// the root has no rule. Traversal stops at an unfilled node or a
// missing child, so an incomplete tree degrades to the aggregate of
// the last filled ancestor.
func (t *Tree) traverse(instance []float64) (*Node, route) {
	if !t.nodes[0].Filled {
		return nil, routedNowhere
	}
	n := &t.nodes[0]
	last := routedNowhere
	for {
		r := routeAt(n, instance)
		last = r
		next := n.Left
		if r == routedRight {
			next = n.Right
		}
		if next == NoChild || !t.nodes[next].Filled {
			return n, last
		}
		n = &t.nodes[next]
	}
}

/*
Predict takes a single instance and returns the mean stored at the last
node its traversal visits. An unfilled root yields 0, the zero mean of
an undeveloped tree.
*/
func (t *Tree) Predict(instance []float64) float64 {
	n, _ := t.traverse(instance)
	if n == nil {
		return 0
	}
	return n.Mean
}

/*
Classify takes a single instance and returns 1 if the last routing
decision of its traversal went right, 0 if it went left, and
NoDecision if the root has no rule so no decision could be made.
*/
func (t *Tree) Classify(instance []float64) int {
	_, r := t.traverse(instance)
	switch r {
	case routedRight:
		return 1
	case routedLeft:
		return 0
	}
	return NoDecision
}

// String returns a line per node with its index, rule and statistics,
// for diagnostics.
func (t *Tree) String() string {
	var b strings.Builder
	for i := range t.nodes {
		fmt.Fprintf(&b, "%v\n", &t.nodes[i])
	}
	return b.String()
}
