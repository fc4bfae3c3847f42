/*
Package datagen generates the lab's synthetic datasets: classification
point clouds labeled by a geometric shape and regression curves with
gaussian noise. The generators are deterministic for a given random
source, so the same seed reproduces the same dataset.
*/
package datagen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/nalipour/MLlab/dataset"
)

// Shape identifies one of the synthetic dataset generators.
type Shape string

// Classification shapes: two features in [-1, 1) and a 0/1 label
// assigned by the named region, except bernoulli which draws five
// 0/1 features and labels their majority.
const (
	Halfs           Shape = "halfs"
	Quarters        Shape = "quarters"
	Diagonal        Shape = "diagonal"
	ShiftedDiagonal Shape = "shifteddiagonal"
	Circle          Shape = "circle"
	Ellipse         Shape = "ellipse"
	Circles         Shape = "circles"
	Bernoulli       Shape = "bernoulli"
)

// Regression shapes: one or more features in [-1, 1) and a numeric
// label on the named curve, with gaussian noise added.
const (
	Linear          Shape = "linear"
	TwoDimLinear    Shape = "twodimlinear"
	MultiDimLinear  Shape = "multidimlinear"
	Quadratic       Shape = "quadratic"
	TwoDimQuadratic Shape = "twodimquadratic"
	Cubic           Shape = "cubic"
	TwoDimCubic     Shape = "twodimcubic"
)

// noiseSigma is the standard deviation of the gaussian noise added to
// every regression label.
const noiseSigma = 0.3

/*
Classification takes a classification shape, a number of instances and
a random source and returns a dataset table with that many labeled
points, or an error if the shape is not a classification shape.
*/
func Classification(shape Shape, n int, r *rand.Rand) (*dataset.Table, error) {
	gen, names, err := classificationPoint(shape)
	if err != nil {
		return nil, err
	}
	t := &dataset.Table{FeatureNames: names, LabelName: "Type"}
	for i := 0; i < n; i++ {
		x, label := gen(r)
		for j := range x {
			x[j] = round(x[j], 2)
		}
		t.X = append(t.X, x)
		t.Y = append(t.Y, label)
	}
	return t, nil
}

/*
Regression takes a regression shape, a number of instances and a
random source and returns a dataset table with that many noisy points
on the shape's curve, or an error if the shape is not a regression
shape.
*/
func Regression(shape Shape, n int, r *rand.Rand) (*dataset.Table, error) {
	gen, names, err := regressionPoint(shape)
	if err != nil {
		return nil, err
	}
	t := &dataset.Table{FeatureNames: names, LabelName: "Y"}
	for i := 0; i < n; i++ {
		x, y := gen(r)
		y += r.NormFloat64() * noiseSigma
		for j := range x {
			x[j] = round(x[j], 3)
		}
		t.X = append(t.X, x)
		t.Y = append(t.Y, round(y, 3))
	}
	return t, nil
}

/*
Generate takes any shape, a number of instances and a random source
and dispatches to Classification or Regression according to the
shape's kind.
*/
func Generate(shape Shape, n int, r *rand.Rand) (*dataset.Table, error) {
	if _, _, err := classificationPoint(shape); err == nil {
		return Classification(shape, n, r)
	}
	return Regression(shape, n, r)
}

func classificationPoint(shape Shape) (func(*rand.Rand) ([]float64, float64), []string, error) {
	planeNames := []string{"X", "Y"}
	switch shape {
	case Halfs:
		return func(r *rand.Rand) ([]float64, float64) {
			label := float64(r.Intn(2))
			x0 := r.Float64()
			if label == 0 {
				x0 = -x0
			}
			return []float64{x0, unit(r)}, label
		}, planeNames, nil
	case Quarters:
		return func(r *rand.Rand) ([]float64, float64) {
			x0, x1 := unit(r), unit(r)
			label := 1.0
			if x0*x1 > 0 {
				label = 0.0
			}
			return []float64{x0, x1}, label
		}, planeNames, nil
	case Diagonal:
		return func(r *rand.Rand) ([]float64, float64) {
			x0, x1 := unit(r), unit(r)
			label := 1.0
			if x0-x1 > 0 {
				label = 0.0
			}
			return []float64{x0, x1}, label
		}, planeNames, nil
	case ShiftedDiagonal:
		return func(r *rand.Rand) ([]float64, float64) {
			x0, x1 := unit(r), unit(r)
			label := 1.0
			if x0-x1+0.5 > 0 {
				label = 0.0
			}
			return []float64{x0, x1}, label
		}, planeNames, nil
	case Circle:
		return func(r *rand.Rand) ([]float64, float64) {
			x0, x1 := unit(r), unit(r)
			label := 0.0
			if math.Hypot(x0, x1) < 0.5 {
				label = 1.0
			}
			return []float64{x0, x1}, label
		}, planeNames, nil
	case Ellipse:
		return func(r *rand.Rand) ([]float64, float64) {
			x0, x1 := unit(r), unit(r)
			label := 0.0
			if math.Hypot((x0-0.2)/0.75, (x1+0.3)/0.5) < 1 {
				label = 1.0
			}
			return []float64{x0, x1}, label
		}, planeNames, nil
	case Circles:
		return func(r *rand.Rand) ([]float64, float64) {
			x0, x1 := unit(r), unit(r)
			const d, radius = 0.5, 0.25
			label := 0.0
			if math.Hypot(x0-d, x1-d) < radius ||
				math.Hypot(x0+d, x1+d) < radius ||
				math.Hypot(x0-d, x1+d) < radius ||
				math.Hypot(x0+d, x1-d) < radius {
				label = 1.0
			}
			return []float64{x0, x1}, label
		}, planeNames, nil
	case Bernoulli:
		return func(r *rand.Rand) ([]float64, float64) {
			x := make([]float64, 5)
			sum := 0.0
			for i := range x {
				x[i] = float64(r.Intn(2))
				sum += x[i]
			}
			label := 0.0
			if sum > 2 {
				label = 1.0
			}
			return x, label
		}, indexedNames(5), nil
	}
	return nil, nil, fmt.Errorf("unknown classification shape %q", shape)
}

func regressionPoint(shape Shape) (func(*rand.Rand) ([]float64, float64), []string, error) {
	switch shape {
	case Linear:
		return func(r *rand.Rand) ([]float64, float64) {
			x := unit(r)
			return []float64{x}, 2*x - 1
		}, []string{"X"}, nil
	case TwoDimLinear:
		return func(r *rand.Rand) ([]float64, float64) {
			x0, x1 := unit(r), unit(r)
			return []float64{x0, x1}, 2*x0 + x1 - 1
		}, indexedNames(2), nil
	case MultiDimLinear:
		return func(r *rand.Rand) ([]float64, float64) {
			x0, x1, x2, x3 := unit(r), unit(r), unit(r), unit(r)
			return []float64{x0, x1, x2, x3}, 2*x0 + x1 + 10*x2 - 5*x3 - 1
		}, indexedNames(4), nil
	case Quadratic:
		return func(r *rand.Rand) ([]float64, float64) {
			x := unit(r)
			return []float64{x}, 2*x*x + x - 1
		}, []string{"X"}, nil
	case TwoDimQuadratic:
		return func(r *rand.Rand) ([]float64, float64) {
			x0, x1 := unit(r), unit(r)
			return []float64{x0, x1}, 2*x0*x0 - 3*x1*x1 + 4*x0*x1 + x0 - 2*x1 - 1
		}, indexedNames(2), nil
	case Cubic:
		return func(r *rand.Rand) ([]float64, float64) {
			x := unit(r)
			return []float64{x}, -2*x*x*x + 2*x*x + x - 1
		}, []string{"X"}, nil
	case TwoDimCubic:
		return func(r *rand.Rand) ([]float64, float64) {
			x0, x1 := unit(r), unit(r)
			y := -x0*x0*x0 + 2*x1*x1*x1 + 2*x0*x0 - 3*x1*x1 + x0 - 2*x1 - 1
			return []float64{x0, x1}, y
		}, indexedNames(2), nil
	}
	return nil, nil, fmt.Errorf("unknown regression shape %q", shape)
}

// unit draws a value uniformly from [-1, 1).
func unit(r *rand.Rand) float64 {
	return 2*r.Float64() - 1
}

func indexedNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("X%d", i)
	}
	return names
}

func round(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
