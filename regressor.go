package mllab

import (
	"fmt"

	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/tree"
)

/*
TreeRegressor is a decision tree regressor. It develops a fixed-depth
tree top-down, splitting each node on the rule with the best variance
reduction over the subset the tree engine exposes there, and recording
the subset mean at every node it fills. A prediction is the mean of
the deepest node the instance reaches, so an undeveloped branch
degrades to the mean of its last filled ancestor.
*/
type TreeRegressor struct {
	// Depth is the fixed depth the tree is built with.
	Depth int
	// MinSplit is the smallest subset a node may split further.
	MinSplit int
	// Tree is the underlying engine, available after Fit.
	Tree *tree.Tree
}

// NewTreeRegressor returns a decision tree regressor of the given
// depth with the default minimum split size of 2.
func NewTreeRegressor(depth int) *TreeRegressor {
	return &TreeRegressor{Depth: depth, MinSplit: 2}
}

// Fit trains the regressor on the given dataset table. It returns an
// error if the table does not validate.
func (r *TreeRegressor) Fit(t *dataset.Table) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("fitting tree regressor: %v", err)
	}
	if t.Count() == 0 {
		return fmt.Errorf("fitting tree regressor: empty training set")
	}
	tr, err := tree.New(r.Depth)
	if err != nil {
		return fmt.Errorf("fitting tree regressor: %v", err)
	}
	r.Tree = tr
	return r.develop(0, t.X, t.Y, uniformWeights(t.Count()))
}

func (r *TreeRegressor) develop(index int, features [][]float64, labels, weights []float64) error {
	subsetX, subsetY, subsetW, err := r.Tree.AtNode(index, features, labels, weights)
	if err != nil {
		return fmt.Errorf("developing node %d: %v", index, err)
	}
	if len(subsetX) == 0 {
		return nil
	}
	node, err := r.Tree.Node(index)
	if err != nil {
		return fmt.Errorf("developing node %d: %v", index, err)
	}
	mean := weightedMean(subsetY, subsetW)
	if node.Left != tree.NoChild && len(subsetX) >= r.MinSplit && !isPure(subsetY) {
		if sp, ok := bestSplit(subsetX, subsetY, subsetW, varianceImpurity); ok {
			if _, err := r.Tree.UpdateNode(index, sp.feature, sp.threshold, sp.greater, mean, len(subsetX), sp.purity); err != nil {
				return fmt.Errorf("developing node %d: %v", index, err)
			}
			if err := r.develop(node.Left, features, labels, weights); err != nil {
				return err
			}
			return r.develop(node.Right, features, labels, weights)
		}
	}
	// no further split: record the mean and leave the children
	// unfilled so traversals stop here
	sp := orientationRule(subsetX, 0, 0)
	if _, err := r.Tree.UpdateNode(index, sp.feature, sp.threshold, sp.greater, mean, len(subsetX), 0); err != nil {
		return fmt.Errorf("developing node %d: %v", index, err)
	}
	return nil
}

/*
Predict returns the mean recorded at the deepest node the instance
reaches, or 0 if the regressor has not been fitted.
*/
func (r *TreeRegressor) Predict(instance []float64) float64 {
	if r.Tree == nil {
		return 0
	}
	return r.Tree.Predict(instance)
}
