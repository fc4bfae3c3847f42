package tree

import (
	"fmt"
)

/*
AtNode takes a node index and the full training set, as a feature
matrix with one row per instance, a label vector and an optional
weight vector, and returns the subset of rows that would reach that
node by replaying the rule of every ancestor from the root down to the
node's parent.

The subset is derived purely from the rules currently installed on the
ancestors, so it is always consistent with the tree as it stands; no
per-node data is cached. An ancestor without a rule imposes no further
restriction: filtering stops there and the rows that survived so far
are returned, since nothing has been decided yet about how to split at
that point. An empty subset short-circuits the remaining ancestors.

AtNode returns an error if the index does not fit in the tree, or if
the labels or weights do not match the number of feature rows. A nil
weight vector means the set is unweighted and yields a nil weight
subset.
*/
func (t *Tree) AtNode(index int, features [][]float64, labels []float64, weights []float64) ([][]float64, []float64, []float64, error) {
	if index < 0 || index >= len(t.nodes) {
		return nil, nil, nil, ErrNodeOutOfRange
	}
	if len(features) != len(labels) {
		return nil, nil, nil, fmt.Errorf("partitioning at node %d: %d feature rows but %d labels", index, len(features), len(labels))
	}
	if weights != nil && len(weights) != len(features) {
		return nil, nil, nil, fmt.Errorf("partitioning at node %d: %d feature rows but %d weights", index, len(features), len(weights))
	}
	for _, step := range t.pathTo(index) {
		ancestor := &t.nodes[step.ancestor]
		if !ancestor.Filled {
			break
		}
		features, labels, weights = filterRows(ancestor, step.toRight, features, labels, weights)
		if len(features) == 0 {
			break
		}
	}
	return features, labels, weights, nil
}

// pathStep is one edge of the path from the root to a node: the
// ancestor the path passes through and whether it descends to the
// ancestor's right child.
type pathStep struct {
	ancestor int
	toRight  bool
}

// pathTo returns the steps from the root down to the node with the
// given index, in root-to-node order. The root itself has no steps.
func (t *Tree) pathTo(index int) []pathStep {
	var steps []pathStep
	for cur := index; cur > 0; cur = parentOf(cur) {
		steps = append(steps, pathStep{ancestor: parentOf(cur), toRight: t.nodes[cur].IsRightChild})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

// filterRows keeps the rows that the ancestor's rule routes to the
// side of the path.
func filterRows(ancestor *Node, toRight bool, features [][]float64, labels []float64, weights []float64) ([][]float64, []float64, []float64) {
	want := routedLeft
	if toRight {
		want = routedRight
	}
	keptFeatures := make([][]float64, 0, len(features))
	keptLabels := make([]float64, 0, len(labels))
	var keptWeights []float64
	if weights != nil {
		keptWeights = make([]float64, 0, len(weights))
	}
	for i, row := range features {
		if routeAt(ancestor, row) != want {
			continue
		}
		keptFeatures = append(keptFeatures, row)
		keptLabels = append(keptLabels, labels[i])
		if weights != nil {
			keptWeights = append(keptWeights, weights[i])
		}
	}
	return keptFeatures, keptLabels, keptWeights
}
