package mllab

import (
	"fmt"
	"math"

	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/tree"
)

/*
AdaBoostClassifier is an AdaBoost ensemble of shallow decision trees.
Every round fits a tree on the current instance weights, stores the
round's vote weight on the tree itself, and reweights the instances so
the next round concentrates on the ones still misclassified. The
ensemble is the only writer of the trees' Weight field; the tree
engine never touches it.
*/
type AdaBoostClassifier struct {
	// Rounds is the maximum number of boosting rounds.
	Rounds int
	// Depth is the fixed depth of the per-round trees; AdaBoost
	// works best with shallow ones.
	Depth int
	// Trees holds the fitted trees after Fit, in round order, each
	// carrying its vote weight.
	Trees []*TreeClassifier
}

// NewAdaBoostClassifier returns an AdaBoost ensemble of at most the
// given number of depth-2 trees.
func NewAdaBoostClassifier(rounds int) *AdaBoostClassifier {
	return &AdaBoostClassifier{Rounds: rounds, Depth: 2}
}

/*
Fit trains the ensemble on the given dataset table. Boosting stops
early when a round's tree classifies the weighted set perfectly, since
later rounds would have nothing to correct, or when it does no better
than chance, since its vote weight would not be positive.
*/
func (b *AdaBoostClassifier) Fit(t *dataset.Table) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("fitting adaboost: %v", err)
	}
	n := t.Count()
	if n == 0 {
		return fmt.Errorf("fitting adaboost: empty training set")
	}
	if b.Rounds < 1 {
		return fmt.Errorf("fitting adaboost: at least one round required, got %d", b.Rounds)
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1 / float64(n)
	}
	b.Trees = nil
	for round := 0; round < b.Rounds; round++ {
		clf := NewTreeClassifier(b.Depth)
		if err := clf.FitWeighted(t.X, t.Y, weights); err != nil {
			return fmt.Errorf("fitting adaboost round %d: %v", round, err)
		}
		var weightedError float64
		misclassified := make([]bool, n)
		for i, row := range t.X {
			if float64(clf.Predict(row)) != t.Y[i] {
				misclassified[i] = true
				weightedError += weights[i]
			}
		}
		if weightedError >= 0.5 {
			// no better than chance, the round carries no signal
			break
		}
		if weightedError == 0 {
			// a perfect round decides on its own
			clf.Tree.Weight = 1
			b.Trees = append(b.Trees, clf)
			break
		}
		alpha := 0.5 * math.Log((1-weightedError)/weightedError)
		clf.Tree.Weight = alpha
		b.Trees = append(b.Trees, clf)

		var total float64
		for i := range weights {
			if misclassified[i] {
				weights[i] *= math.Exp(alpha)
			} else {
				weights[i] *= math.Exp(-alpha)
			}
			total += weights[i]
		}
		for i := range weights {
			weights[i] /= total
		}
	}
	if len(b.Trees) == 0 {
		return fmt.Errorf("fitting adaboost: no round improved on chance")
	}
	return nil
}

/*
Predict returns the class, 0 or 1, with the larger weighted vote among
the ensemble's trees, or tree.NoDecision if no tree could decide.
*/
func (b *AdaBoostClassifier) Predict(instance []float64) int {
	var score float64
	decided := false
	for _, clf := range b.Trees {
		switch clf.Predict(instance) {
		case 1:
			score += clf.Tree.Weight
			decided = true
		case 0:
			score -= clf.Tree.Weight
			decided = true
		}
	}
	if !decided {
		return tree.NoDecision
	}
	if score > 0 {
		return 1
	}
	return 0
}
