package mllab

import (
	"fmt"
	"math/rand"

	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/tree"
)

/*
ForestClassifier is a random forest of decision tree classifiers:
every tree is trained on a bootstrap resample of the training set and
predictions are decided by majority vote. The trees are independent,
each owning its private node array, so they are fitted in parallel by
a pool of workers.
*/
type ForestClassifier struct {
	// NumTrees is the number of trees in the forest.
	NumTrees int
	// Depth is the fixed depth of every tree.
	Depth int
	// MinSplit is the smallest subset a tree node may split further.
	MinSplit int
	// NumWorkers is the number of goroutines fitting trees; values
	// below 1 mean a single worker.
	NumWorkers int
	// Seed feeds the bootstrap sampling, so a fixed seed makes Fit
	// reproducible.
	Seed int64
	// Trees holds the fitted trees after Fit.
	Trees []*TreeClassifier
}

// NewForestClassifier returns a random forest of the given number of
// trees of the given depth, with the default minimum split size of 2
// and a single worker.
func NewForestClassifier(numTrees, depth int) *ForestClassifier {
	return &ForestClassifier{NumTrees: numTrees, Depth: depth, MinSplit: 2, NumWorkers: 1}
}

/*
Fit trains the forest on the given dataset table: it draws a bootstrap
resample per tree and fits the trees concurrently. It returns the
first error any tree reports.
*/
func (f *ForestClassifier) Fit(t *dataset.Table) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("fitting forest: %v", err)
	}
	if t.Count() == 0 {
		return fmt.Errorf("fitting forest: empty training set")
	}
	if f.NumTrees < 1 {
		return fmt.Errorf("fitting forest: at least one tree required, got %d", f.NumTrees)
	}
	r := rand.New(rand.NewSource(f.Seed))
	resamples := make([][]int, f.NumTrees)
	for i := range resamples {
		resamples[i] = bootstrapIndices(t.Count(), r)
	}

	f.Trees = make([]*TreeClassifier, f.NumTrees)
	workers := f.NumWorkers
	if workers < 1 {
		workers = 1
	}
	type fitResult struct {
		slot int
		clf  *TreeClassifier
		err  error
	}
	in := make(chan int)
	out := make(chan fitResult)
	for w := 0; w < workers; w++ {
		go func() {
			for slot := range in {
				x := make([][]float64, len(resamples[slot]))
				y := make([]float64, len(resamples[slot]))
				for i, idx := range resamples[slot] {
					x[i] = t.X[idx]
					y[i] = t.Y[idx]
				}
				clf := NewTreeClassifier(f.Depth)
				clf.MinSplit = f.MinSplit
				err := clf.FitWeighted(x, y, nil)
				out <- fitResult{slot: slot, clf: clf, err: err}
			}
		}()
	}
	go func() {
		for i := 0; i < f.NumTrees; i++ {
			in <- i
		}
		close(in)
	}()
	var firstErr error
	for i := 0; i < f.NumTrees; i++ {
		res := <-out
		if res.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("fitting forest tree %d: %v", res.slot, res.err)
		}
		f.Trees[res.slot] = res.clf
	}
	return firstErr
}

/*
Predict returns the majority class of the forest's trees for the
instance, or tree.NoDecision if no tree could decide.
*/
func (f *ForestClassifier) Predict(instance []float64) int {
	var votes [2]int
	for _, clf := range f.Trees {
		switch clf.Predict(instance) {
		case 0:
			votes[0]++
		case 1:
			votes[1]++
		}
	}
	if votes[0] == 0 && votes[1] == 0 {
		return tree.NoDecision
	}
	if votes[1] > votes[0] {
		return 1
	}
	return 0
}

// bootstrapIndices draws n instance indices with replacement.
func bootstrapIndices(n int, r *rand.Rand) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = r.Intn(n)
	}
	return indices
}
