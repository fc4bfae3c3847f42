package datagen

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassificationShapes(t *testing.T) {
	for _, shape := range []Shape{Halfs, Quarters, Diagonal, ShiftedDiagonal, Circle, Ellipse, Circles} {
		r := rand.New(rand.NewSource(1337))
		table, err := Classification(shape, 200, r)
		require.NoError(t, err, string(shape))
		require.NoError(t, table.Validate())
		assert.Equal(t, 200, table.Count(), string(shape))
		assert.Equal(t, []string{"X", "Y"}, table.FeatureNames, string(shape))
		for i, y := range table.Y {
			assert.Contains(t, []float64{0, 1}, y, "%s row %d", shape, i)
			for _, v := range table.X[i] {
				assert.LessOrEqual(t, math.Abs(v), 1.0, "%s row %d", shape, i)
			}
		}
	}
}

func TestHalfsLabels(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	table, err := Classification(Halfs, 500, r)
	require.NoError(t, err)
	for i, row := range table.X {
		// the sign of the first feature decides the label
		if row[0] > 0 {
			assert.Equal(t, 1.0, table.Y[i], "row %d: %v", i, row)
		}
		if row[0] < 0 {
			assert.Equal(t, 0.0, table.Y[i], "row %d: %v", i, row)
		}
	}
}

func TestBernoulliFeatures(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	table, err := Classification(Bernoulli, 100, r)
	require.NoError(t, err)
	assert.Len(t, table.FeatureNames, 5)
	for i, row := range table.X {
		sum := 0.0
		for _, v := range row {
			assert.Contains(t, []float64{0, 1}, v)
			sum += v
		}
		want := 0.0
		if sum > 2 {
			want = 1.0
		}
		assert.Equal(t, want, table.Y[i], "row %d: %v", i, row)
	}
}

func TestRegressionShapes(t *testing.T) {
	for shape, nFeatures := range map[Shape]int{
		Linear:          1,
		TwoDimLinear:    2,
		MultiDimLinear:  4,
		Quadratic:       1,
		TwoDimQuadratic: 2,
		Cubic:           1,
		TwoDimCubic:     2,
	} {
		r := rand.New(rand.NewSource(1337))
		table, err := Regression(shape, 100, r)
		require.NoError(t, err, string(shape))
		require.NoError(t, table.Validate())
		assert.Equal(t, nFeatures, table.NumFeatures(), string(shape))
	}
}

func TestLinearStaysNearCurve(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	table, err := Regression(Linear, 300, r)
	require.NoError(t, err)
	for i, row := range table.X {
		noise := table.Y[i] - (2*row[0] - 1)
		// noise is gaussian with sigma 0.3; 6 sigma catches everything
		assert.LessOrEqual(t, math.Abs(noise), 1.8, "row %d", i)
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a, err := Generate(Circle, 50, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	b, err := Generate(Circle, 50, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	assert.Equal(t, a.X, b.X)
	assert.Equal(t, a.Y, b.Y)
}

func TestGenerateUnknownShape(t *testing.T) {
	_, err := Generate(Shape("spiral"), 10, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}
