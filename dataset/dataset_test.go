package dataset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	table, err := New(
		[]string{"X", "Y"},
		"Type",
		[][]float64{{0.1, 0.2}, {0.3, 0.4}},
		[]float64{0, 1},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Count())
	assert.Equal(t, 2, table.NumFeatures())
}

func TestNewRejectsMismatchedLabels(t *testing.T) {
	_, err := New([]string{"X"}, "Y", [][]float64{{0.1}, {0.2}}, []float64{0})
	assert.Error(t, err)
}

func TestValidateRejectsRaggedRows(t *testing.T) {
	table := &Table{
		FeatureNames: []string{"X", "Y"},
		LabelName:    "Type",
		X:            [][]float64{{0.1, 0.2}, {0.3}},
		Y:            []float64{0, 1},
	}
	assert.Error(t, table.Validate())
}

func TestSplit(t *testing.T) {
	n := 100
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = []float64{float64(i)}
		y[i] = float64(i)
	}
	table, err := New([]string{"X"}, "Y", x, y)
	require.NoError(t, err)

	train, test, err := table.Split(0.8, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 80, train.Count())
	assert.Equal(t, 20, test.Count())
	assert.Equal(t, table.FeatureNames, train.FeatureNames)
	assert.Equal(t, table.LabelName, test.LabelName)

	// every row lands in exactly one side, label kept with its row
	seen := map[float64]bool{}
	for _, part := range []*Table{train, test} {
		for i, row := range part.X {
			assert.Equal(t, row[0], part.Y[i])
			assert.False(t, seen[part.Y[i]], "row %g assigned twice", part.Y[i])
			seen[part.Y[i]] = true
		}
	}
	assert.Len(t, seen, n)
}

func TestSplitRejectsBadFraction(t *testing.T) {
	table, err := New([]string{"X"}, "Y", [][]float64{{0.1}}, []float64{0})
	require.NoError(t, err)
	r := rand.New(rand.NewSource(1))
	for _, fraction := range []float64{0, 1, -0.5, 1.5} {
		_, _, err := table.Split(fraction, r)
		assert.Error(t, err, "fraction %g", fraction)
	}
}
