package mllab

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nalipour/MLlab/datagen"
	"github.com/nalipour/MLlab/dataset"
)

func TestTreeRegressorConstant(t *testing.T) {
	table, err := dataset.New(
		[]string{"X"},
		"Y",
		[][]float64{{0.1}, {0.4}, {0.7}},
		[]float64{3.5, 3.5, 3.5},
	)
	require.NoError(t, err)

	reg := NewTreeRegressor(3)
	require.NoError(t, reg.Fit(table))
	assert.InDelta(t, 3.5, reg.Predict([]float64{0.2}), 1e-9)
	assert.InDelta(t, 3.5, reg.Predict([]float64{0.9}), 1e-9)
}

func TestTreeRegressorStep(t *testing.T) {
	table, err := dataset.New(
		[]string{"X"},
		"Y",
		[][]float64{{0.1}, {0.2}, {0.3}, {0.7}, {0.8}, {0.9}},
		[]float64{1, 1, 1, 5, 5, 5},
	)
	require.NoError(t, err)

	reg := NewTreeRegressor(2)
	require.NoError(t, reg.Fit(table))
	assert.InDelta(t, 1, reg.Predict([]float64{0.25}), 1e-9)
	assert.InDelta(t, 5, reg.Predict([]float64{0.75}), 1e-9)
}

func TestTreeRegressorLinear(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	table, err := datagen.Regression(datagen.Linear, 500, r)
	require.NoError(t, err)

	reg := NewTreeRegressor(6)
	require.NoError(t, reg.Fit(table))

	mse, err := MeanSquaredError(reg, table)
	require.NoError(t, err)
	// the noise floor is sigma squared, 0.09
	assert.Less(t, mse, 0.2)

	// the curve is y = 2x - 1, so the ends should sit far apart
	assert.Greater(t, reg.Predict([]float64{0.9})-reg.Predict([]float64{-0.9}), 1.5)
}

func TestTreeRegressorUnfitted(t *testing.T) {
	reg := NewTreeRegressor(3)
	assert.Zero(t, reg.Predict([]float64{0.5}))
}
