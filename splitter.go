package mllab

import (
	"sort"
)

/*
split is a candidate decision rule proposed by the split finder for
one tree node: the feature and threshold to compare, the direction of
the comparison, and the purity gain the rule achieves on the node's
subset. The tree itself decides whether to accept it, through its
purity gate.
*/
type split struct {
	feature   int
	threshold float64
	greater   bool
	purity    float64
}

// purityFunc scores the disorder of a set of labels with the given
// weights; lower is purer. Splits are scored by the drop in weighted
// impurity from parent to children.
type purityFunc func(labels, weights []float64) float64

// giniImpurity is the binary Gini impurity of a weighted label set:
// 1 - p0^2 - p1^2 with class probabilities from the weights.
func giniImpurity(labels, weights []float64) float64 {
	var total, positive float64
	for i, y := range labels {
		w := weights[i]
		total += w
		if y > 0.5 {
			positive += w
		}
	}
	if total == 0 {
		return 0
	}
	p1 := positive / total
	p0 := 1 - p1
	return 1 - p0*p0 - p1*p1
}

// varianceImpurity is the weighted variance of a label set.
func varianceImpurity(labels, weights []float64) float64 {
	var total, sum, sumSquares float64
	for i, y := range labels {
		w := weights[i]
		total += w
		sum += w * y
		sumSquares += w * y * y
	}
	if total == 0 {
		return 0
	}
	mean := sum / total
	return sumSquares/total - mean*mean
}

/*
bestSplit scans every feature of the subset for the threshold that
most reduces the weighted impurity of the labels, trying the midpoints
between consecutive distinct feature values, and returns the best
candidate and whether any candidate reduced impurity at all. The
returned purity is the impurity reduction, so higher is better, as the
tree's purity gate expects.
*/
func bestSplit(features [][]float64, labels, weights []float64, impurity purityFunc) (split, bool) {
	parent := impurity(labels, weights)
	best := split{greater: true}
	found := false
	var totalWeight float64
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight == 0 {
		return best, false
	}

	order := make([]int, len(labels))
	sortedLabels := make([]float64, len(labels))
	sortedWeights := make([]float64, len(labels))
	for feature := 0; feature < len(features[0]); feature++ {
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return features[order[a]][feature] < features[order[b]][feature]
		})
		for i, idx := range order {
			sortedLabels[i] = labels[idx]
			sortedWeights[i] = weights[idx]
		}
		for i := 1; i < len(order); i++ {
			prev := features[order[i-1]][feature]
			cur := features[order[i]][feature]
			if cur <= prev {
				continue
			}
			threshold := (prev + cur) / 2
			var leftWeight float64
			for _, w := range sortedWeights[:i] {
				leftWeight += w
			}
			left := impurity(sortedLabels[:i], sortedWeights[:i])
			right := impurity(sortedLabels[i:], sortedWeights[i:])
			gain := parent - (leftWeight/totalWeight)*left - ((totalWeight-leftWeight)/totalWeight)*right
			if !found || gain > best.purity {
				best = split{feature: feature, threshold: threshold, greater: true, purity: gain}
				found = true
			}
		}
	}
	return best, found && best.purity > 1e-9
}

// weightedMean returns the weighted mean of the labels, or 0 for an
// empty or zero-weight set.
func weightedMean(labels, weights []float64) float64 {
	var total, sum float64
	for i, y := range labels {
		total += weights[i]
		sum += weights[i] * y
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// majorityLabel returns 1 if the weighted majority of the binary
// labels is positive and 0 otherwise.
func majorityLabel(labels, weights []float64) float64 {
	if weightedMean(labels, weights) > 0.5 {
		return 1
	}
	return 0
}

/*
orientationRule returns a rule that routes every instance of the
subset toward the side whose class matches the given label: right for
class 1, left for class 0. Classification traversals report the side
of the last decision, so a node that cannot or need not split further
still has to route its instances toward the correct class.
*/
func orientationRule(features [][]float64, feature int, label float64) split {
	low, high := features[0][feature], features[0][feature]
	for _, row := range features {
		if row[feature] < low {
			low = row[feature]
		}
		if row[feature] > high {
			high = row[feature]
		}
	}
	if label > 0.5 {
		// v >= threshold routes right under a non-greater rule
		return split{feature: feature, threshold: low - 1, greater: false}
	}
	// v <= threshold routes left under a greater rule
	return split{feature: feature, threshold: high, greater: true}
}

// uniformWeights returns a weight of 1 for each of n instances.
func uniformWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// isPure reports whether all labels in the set are equal.
func isPure(labels []float64) bool {
	for _, y := range labels[1:] {
		if y != labels[0] {
			return false
		}
	}
	return true
}
