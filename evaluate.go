package mllab

import (
	"fmt"

	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/tree"
)

// Classifier predicts a class, 0 or 1, for a single instance, or
// tree.NoDecision when it cannot decide.
type Classifier interface {
	Predict(instance []float64) int
}

// Regressor predicts a numeric value for a single instance.
type Regressor interface {
	Predict(instance []float64) float64
}

/*
Accuracy takes a classifier and a labeled dataset table and returns
the fraction of instances the classifier labels correctly together
with the number of instances it could not decide on; undecided
instances count as wrong. It returns an error for an empty table.
*/
func Accuracy(c Classifier, t *dataset.Table) (float64, int, error) {
	if t.Count() == 0 {
		return 0, 0, fmt.Errorf("computing accuracy: empty dataset")
	}
	var correct, undecided int
	for i, row := range t.X {
		p := c.Predict(row)
		if p == tree.NoDecision {
			undecided++
			continue
		}
		if float64(p) == t.Y[i] {
			correct++
		}
	}
	return float64(correct) / float64(t.Count()), undecided, nil
}

/*
MeanSquaredError takes a regressor and a labeled dataset table and
returns the mean squared difference between its predictions and the
labels. It returns an error for an empty table.
*/
func MeanSquaredError(r Regressor, t *dataset.Table) (float64, error) {
	if t.Count() == 0 {
		return 0, fmt.Errorf("computing mean squared error: empty dataset")
	}
	var sum float64
	for i, row := range t.X {
		d := r.Predict(row) - t.Y[i]
		sum += d * d
	}
	return sum / float64(t.Count()), nil
}
