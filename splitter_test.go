package mllab

import (
	"math"
	"testing"
)

func TestBestSplitSeparable(t *testing.T) {
	features := [][]float64{{0.1}, {0.2}, {0.3}, {0.7}, {0.8}, {0.9}}
	labels := []float64{0, 0, 0, 1, 1, 1}
	weights := uniformWeights(len(labels))

	sp, ok := bestSplit(features, labels, weights, giniImpurity)
	if !ok {
		t.Fatal("expected a split on separable data")
	}
	if sp.feature != 0 {
		t.Errorf("expected split on feature 0, got %d", sp.feature)
	}
	if math.Abs(sp.threshold-0.5) > 1e-9 {
		t.Errorf("expected threshold at the midpoint 0.5, got %g", sp.threshold)
	}
	// parent gini is 0.5, both children are pure
	if math.Abs(sp.purity-0.5) > 1e-9 {
		t.Errorf("expected purity gain 0.5, got %g", sp.purity)
	}
}

func TestBestSplitPicksInformativeFeature(t *testing.T) {
	features := [][]float64{
		{1.0, 0.1},
		{2.0, 0.2},
		{1.5, 0.8},
		{2.5, 0.9},
	}
	labels := []float64{0, 0, 1, 1}
	weights := uniformWeights(len(labels))

	sp, ok := bestSplit(features, labels, weights, giniImpurity)
	if !ok {
		t.Fatal("expected a split")
	}
	if sp.feature != 1 {
		t.Errorf("expected split on the separating feature 1, got %d", sp.feature)
	}
	if math.Abs(sp.threshold-0.5) > 1e-9 {
		t.Errorf("expected threshold 0.5, got %g", sp.threshold)
	}
}

func TestBestSplitConstantFeature(t *testing.T) {
	features := [][]float64{{1.1}, {1.1}, {1.1}, {1.1}}
	labels := []float64{0, 0, 1, 1}
	weights := uniformWeights(len(labels))

	if _, ok := bestSplit(features, labels, weights, giniImpurity); ok {
		t.Error("expected no split on a constant feature")
	}
}

func TestBestSplitRespectsWeights(t *testing.T) {
	features := [][]float64{{0.1}, {0.3}, {0.7}, {0.9}}
	labels := []float64{0, 1, 0, 1}

	// unweighted, peeling one outer instance off is the best move, so
	// the chosen threshold hugs one end
	sp, ok := bestSplit(features, labels, uniformWeights(len(labels)), giniImpurity)
	if !ok {
		t.Fatal("expected a split")
	}
	if math.Abs(sp.threshold-0.5) < 0.1 {
		t.Errorf("expected an outer threshold, got %g", sp.threshold)
	}

	// with the weight on the middle instances the middle boundary wins
	sp, ok = bestSplit(features, labels, []float64{1, 3, 3, 1}, giniImpurity)
	if !ok {
		t.Fatal("expected a split")
	}
	if math.Abs(sp.threshold-0.5) > 1e-9 {
		t.Errorf("expected the middle threshold 0.5, got %g", sp.threshold)
	}
}

func TestBestSplitVariance(t *testing.T) {
	features := [][]float64{{0.1}, {0.2}, {0.8}, {0.9}}
	labels := []float64{1.0, 1.2, 5.0, 5.2}
	weights := uniformWeights(len(labels))

	sp, ok := bestSplit(features, labels, weights, varianceImpurity)
	if !ok {
		t.Fatal("expected a split")
	}
	if math.Abs(sp.threshold-0.5) > 1e-9 {
		t.Errorf("expected threshold 0.5 between the two level groups, got %g", sp.threshold)
	}
}

func TestGiniImpurity(t *testing.T) {
	w := uniformWeights(4)
	if got := giniImpurity([]float64{0, 0, 1, 1}, w); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("expected gini 0.5 for a balanced set, got %g", got)
	}
	if got := giniImpurity([]float64{1, 1, 1, 1}, w); got != 0 {
		t.Errorf("expected gini 0 for a pure set, got %g", got)
	}
}

func TestVarianceImpurity(t *testing.T) {
	w := uniformWeights(4)
	if got := varianceImpurity([]float64{2, 2, 2, 2}, w); math.Abs(got) > 1e-9 {
		t.Errorf("expected variance 0 for a constant set, got %g", got)
	}
	if got := varianceImpurity([]float64{1, 3, 1, 3}, w); math.Abs(got-1) > 1e-9 {
		t.Errorf("expected variance 1, got %g", got)
	}
}

func TestMajorityLabel(t *testing.T) {
	if got := majorityLabel([]float64{0, 1, 1}, uniformWeights(3)); got != 1 {
		t.Errorf("expected majority 1, got %g", got)
	}
	// the weights decide, not the counts
	if got := majorityLabel([]float64{0, 1, 1}, []float64{10, 1, 1}); got != 0 {
		t.Errorf("expected weighted majority 0, got %g", got)
	}
}

func TestOrientationRule(t *testing.T) {
	features := [][]float64{{0.2}, {0.5}, {0.8}}
	toRight := orientationRule(features, 0, 1)
	if toRight.greater || toRight.threshold >= 0.2 {
		t.Errorf("expected a rule routing every instance right, got %+v", toRight)
	}
	toLeft := orientationRule(features, 0, 0)
	if !toLeft.greater || toLeft.threshold < 0.8 {
		t.Errorf("expected a rule routing every instance left, got %+v", toLeft)
	}
}
