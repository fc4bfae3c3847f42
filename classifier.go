package mllab

import (
	"fmt"

	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/tree"
)

/*
TreeClassifier is a decision tree classifier for binary labels. It
develops a fixed-depth tree top-down: at every node it asks the tree
engine for the data visible there, searches the split with the best
Gini impurity reduction on that subset, and proposes it through the
engine's purity gate. Nodes that are pure or too small to split get an
orientation rule instead, routing their instances toward the side of
their majority class, since a traversal reports the side of its last
decision.
*/
type TreeClassifier struct {
	// Depth is the fixed depth the tree is built with.
	Depth int
	// MinSplit is the smallest subset a node may split further.
	MinSplit int
	// Tree is the underlying engine, available after Fit.
	Tree *tree.Tree
}

// NewTreeClassifier returns a decision tree classifier of the given
// depth with the default minimum split size of 2.
func NewTreeClassifier(depth int) *TreeClassifier {
	return &TreeClassifier{Depth: depth, MinSplit: 2}
}

/*
Fit trains the classifier on the given dataset table. It returns an
error if the table is not a valid binary classification set.
*/
func (c *TreeClassifier) Fit(t *dataset.Table) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("fitting tree classifier: %v", err)
	}
	return c.FitWeighted(t.X, t.Y, nil)
}

/*
FitWeighted trains the classifier on a feature matrix, binary labels
and optional per-instance weights. Ensemble callers such as AdaBoost
use the weights to focus the tree on the instances they currently care
about; a nil weight vector trains on the instances uniformly.
*/
func (c *TreeClassifier) FitWeighted(features [][]float64, labels, weights []float64) error {
	if len(features) == 0 {
		return fmt.Errorf("fitting tree classifier: empty training set")
	}
	for i, y := range labels {
		if y != 0 && y != 1 {
			return fmt.Errorf("fitting tree classifier: label %g of instance %d is not binary", y, i)
		}
	}
	if weights == nil {
		weights = uniformWeights(len(labels))
	}
	t, err := tree.New(c.Depth)
	if err != nil {
		return fmt.Errorf("fitting tree classifier: %v", err)
	}
	c.Tree = t
	return c.develop(0, features, labels, weights)
}

func (c *TreeClassifier) develop(index int, features [][]float64, labels, weights []float64) error {
	subsetX, subsetY, subsetW, err := c.Tree.AtNode(index, features, labels, weights)
	if err != nil {
		return fmt.Errorf("developing node %d: %v", index, err)
	}
	if len(subsetX) == 0 {
		return nil
	}
	node, err := c.Tree.Node(index)
	if err != nil {
		return fmt.Errorf("developing node %d: %v", index, err)
	}
	if node.Left != tree.NoChild && len(subsetX) >= c.MinSplit && !isPure(subsetY) {
		if sp, ok := bestSplit(subsetX, subsetY, subsetW, giniImpurity); ok {
			mean := weightedMean(subsetY, subsetW)
			if _, err := c.Tree.UpdateNode(index, sp.feature, sp.threshold, sp.greater, mean, len(subsetX), sp.purity); err != nil {
				return fmt.Errorf("developing node %d: %v", index, err)
			}
			if err := c.develop(node.Left, features, labels, weights); err != nil {
				return err
			}
			return c.develop(node.Right, features, labels, weights)
		}
	}
	label := majorityLabel(subsetY, subsetW)
	sp := orientationRule(subsetX, 0, label)
	if _, err := c.Tree.UpdateNode(index, sp.feature, sp.threshold, sp.greater, label, len(subsetX), 0); err != nil {
		return fmt.Errorf("developing node %d: %v", index, err)
	}
	return nil
}

/*
Predict returns the class, 0 or 1, the tree routes the instance to, or
tree.NoDecision if the classifier has not been fitted.
*/
func (c *TreeClassifier) Predict(instance []float64) int {
	if c.Tree == nil {
		return tree.NoDecision
	}
	return c.Tree.Classify(instance)
}
