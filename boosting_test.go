package mllab

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalipour/MLlab/datagen"
	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/tree"
)

func TestAdaBoostSeparableStopsEarly(t *testing.T) {
	table, err := dataset.New(
		[]string{"X"},
		"Type",
		[][]float64{{0.1}, {0.2}, {0.3}, {0.7}, {0.8}, {0.9}},
		[]float64{0, 0, 0, 1, 1, 1},
	)
	require.NoError(t, err)

	b := NewAdaBoostClassifier(10)
	require.NoError(t, b.Fit(table))

	// the first round already classifies everything, later rounds
	// have nothing to correct
	require.Len(t, b.Trees, 1)
	assert.Equal(t, 1.0, b.Trees[0].Tree.Weight)
	for i, row := range table.X {
		assert.Equal(t, int(table.Y[i]), b.Predict(row), "instance %d", i)
	}
}

func TestAdaBoostShiftedDiagonal(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	table, err := datagen.Classification(datagen.ShiftedDiagonal, 400, r)
	require.NoError(t, err)

	b := NewAdaBoostClassifier(25)
	require.NoError(t, b.Fit(table))
	require.NotEmpty(t, b.Trees)

	acc, _, err := Accuracy(b, table)
	require.NoError(t, err)
	assert.Greater(t, acc, 0.85,
		"shallow trees should stack into a staircase along the diagonal")
}

func TestAdaBoostVoteWeightsArePositive(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	table, err := datagen.Classification(datagen.Circle, 300, r)
	require.NoError(t, err)

	b := NewAdaBoostClassifier(15)
	require.NoError(t, b.Fit(table))
	for i, clf := range b.Trees {
		assert.Greater(t, clf.Tree.Weight, 0.0, "round %d", i)
	}
}

func TestAdaBoostRejectsZeroRounds(t *testing.T) {
	table, err := dataset.New([]string{"X"}, "Type", [][]float64{{0.1}}, []float64{0})
	require.NoError(t, err)

	b := NewAdaBoostClassifier(0)
	assert.Error(t, b.Fit(table))
}

func TestAdaBoostUnfitted(t *testing.T) {
	b := NewAdaBoostClassifier(5)
	assert.Equal(t, tree.NoDecision, b.Predict([]float64{0.5}))
}
