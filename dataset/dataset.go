/*
Package dataset defines the in-memory representation of a training or
test set: a table with one row of float64 feature values per instance
and a float64 label per row. Subpackages load tables from CSV files,
SQL databases and MongoDB collections.
*/
package dataset

import (
	"fmt"
	"math/rand"
)

/*
Table is a dataset held in memory: the names of the feature columns
and of the label column, a feature matrix with one row per instance,
and a label vector with one value per row.
*/
type Table struct {
	FeatureNames []string
	LabelName    string
	X            [][]float64
	Y            []float64
}

/*
New takes feature column names, a label column name, a feature matrix
and a label vector and returns a table with them, or an error if the
labels do not match the number of rows or any row does not match the
number of feature columns.
*/
func New(featureNames []string, labelName string, x [][]float64, y []float64) (*Table, error) {
	t := &Table{FeatureNames: featureNames, LabelName: labelName, X: x, Y: y}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

/*
Validate returns an error if the table is not rectangular: when the
number of labels differs from the number of feature rows, or when some
row has a number of values other than the number of feature columns.
*/
func (t *Table) Validate() error {
	if len(t.X) != len(t.Y) {
		return fmt.Errorf("validating dataset: %d feature rows but %d labels", len(t.X), len(t.Y))
	}
	for i, row := range t.X {
		if len(row) != len(t.FeatureNames) {
			return fmt.Errorf("validating dataset: row %d has %d values, expected %d", i, len(row), len(t.FeatureNames))
		}
	}
	return nil
}

// Count returns the number of instances in the table.
func (t *Table) Count() int {
	return len(t.X)
}

// NumFeatures returns the number of feature columns of the table.
func (t *Table) NumFeatures() int {
	return len(t.FeatureNames)
}

/*
Split takes a fraction in (0, 1) and a random source and returns two
tables: a training table with approximately the given fraction of the
rows, and a test table with the rest. Rows are assigned by shuffling
indices, so both tables see the same distribution.
*/
func (t *Table) Split(trainFraction float64, r *rand.Rand) (*Table, *Table, error) {
	if trainFraction <= 0 || trainFraction >= 1 {
		return nil, nil, fmt.Errorf("splitting dataset: train fraction must be in (0, 1), got %g", trainFraction)
	}
	perm := r.Perm(len(t.X))
	cut := int(trainFraction * float64(len(t.X)))
	train := &Table{FeatureNames: t.FeatureNames, LabelName: t.LabelName}
	test := &Table{FeatureNames: t.FeatureNames, LabelName: t.LabelName}
	for i, p := range perm {
		if i < cut {
			train.X = append(train.X, t.X[p])
			train.Y = append(train.Y, t.Y[p])
		} else {
			test.X = append(test.X, t.X[p])
			test.Y = append(test.Y, t.Y[p])
		}
	}
	return train, test, nil
}
