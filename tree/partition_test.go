package tree

import (
	"testing"
)

func testSet() ([][]float64, []float64) {
	features := [][]float64{
		{0.1, 1.0},
		{0.4, -1.0},
		{0.5, 0.5},
		{0.6, 2.0},
		{0.9, -0.5},
	}
	labels := []float64{0, 0, 0, 1, 1}
	return features, labels
}

func TestAtNodeRootReturnsEverything(t *testing.T) {
	tr, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	features, labels := testSet()
	gotX, gotY, gotW, err := tr.AtNode(0, features, labels, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotX) != len(features) || len(gotY) != len(labels) {
		t.Fatalf("expected full set at root, got %d rows and %d labels", len(gotX), len(gotY))
	}
	for i := range features {
		if &gotX[i][0] != &features[i][0] || gotY[i] != labels[i] {
			t.Fatalf("row %d: expected the original rows unchanged", i)
		}
	}
	if len(gotW) != 0 {
		t.Errorf("expected no weights for an unweighted set, got %d", len(gotW))
	}
}

func TestAtNodeTwoLevelSplit(t *testing.T) {
	tr, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.SetNode(0, 0, 0.5, true, 0.4, 5, 0.3); err != nil {
		t.Fatal(err)
	}
	features, labels := testSet()

	leftX, leftY, _, err := tr.AtNode(1, features, labels, nil)
	if err != nil {
		t.Fatal(err)
	}
	rightX, rightY, _, err := tr.AtNode(2, features, labels, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i, row := range rightX {
		if row[0] <= 0.5 {
			t.Errorf("right row %d: feature 0 is %g, expected > 0.5", i, row[0])
		}
	}
	for i, row := range leftX {
		if row[0] > 0.5 {
			t.Errorf("left row %d: feature 0 is %g, expected <= 0.5", i, row[0])
		}
	}
	if len(leftX) != 3 || len(rightX) != 2 {
		t.Errorf("expected 3 left and 2 right rows, got %d and %d", len(leftX), len(rightX))
	}
	if len(leftX)+len(rightX) != len(features) {
		t.Errorf("subsets must cover the full set: %d + %d != %d", len(leftX), len(rightX), len(features))
	}
	if len(leftY) != len(leftX) || len(rightY) != len(rightX) {
		t.Error("labels must be filtered alongside features")
	}
}

func TestAtNodeDeepPath(t *testing.T) {
	tr, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.SetNode(0, 0, 0.5, true, 0, 5, 0.3); err != nil {
		t.Fatal(err)
	}
	if err := tr.SetNode(1, 1, 0.0, true, 0, 3, 0.2); err != nil {
		t.Fatal(err)
	}
	features, labels := testSet()

	// node 4 is the right child of node 1: feature0 <= 0.5 and feature1 > 0
	gotX, gotY, _, err := tr.AtNode(4, features, labels, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotX) != 2 {
		t.Fatalf("expected 2 rows at node 4, got %d", len(gotX))
	}
	for i, row := range gotX {
		if row[0] > 0.5 || row[1] <= 0 {
			t.Errorf("row %d (%v, label %g) does not satisfy the ancestor rules", i, row, gotY[i])
		}
	}
}

func TestAtNodeUnfilledAncestorStopsFiltering(t *testing.T) {
	tr, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.SetNode(0, 0, 0.5, true, 0, 5, 0.3); err != nil {
		t.Fatal(err)
	}
	features, labels := testSet()

	// node 1 has no rule yet, so node 3 sees everything node 1 sees
	viaParent, _, _, err := tr.AtNode(1, features, labels, nil)
	if err != nil {
		t.Fatal(err)
	}
	viaChild, _, _, err := tr.AtNode(3, features, labels, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(viaChild) != len(viaParent) {
		t.Errorf("expected node 3 to see the %d rows of its undeveloped parent, got %d", len(viaParent), len(viaChild))
	}
}

func TestAtNodeEmptySubsetShortCircuits(t *testing.T) {
	tr, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	// a rule no row satisfies on the right side
	if err := tr.SetNode(0, 0, 100.0, true, 0, 5, 0.3); err != nil {
		t.Fatal(err)
	}
	if err := tr.SetNode(2, 1, 0.0, true, 0, 0, 0.1); err != nil {
		t.Fatal(err)
	}
	features, labels := testSet()
	gotX, gotY, _, err := tr.AtNode(6, features, labels, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotX) != 0 || len(gotY) != 0 {
		t.Errorf("expected empty subset, got %d rows", len(gotX))
	}
}

func TestAtNodeWeights(t *testing.T) {
	tr, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.SetNode(0, 0, 0.5, true, 0, 5, 0.3); err != nil {
		t.Fatal(err)
	}
	features, labels := testSet()
	weights := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	_, _, gotW, err := tr.AtNode(2, features, labels, weights)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotW) != 2 || gotW[0] != 0.4 || gotW[1] != 0.5 {
		t.Errorf("expected weights of the right rows, got %v", gotW)
	}
}

func TestAtNodeLengthMismatch(t *testing.T) {
	tr, err := New(2)
	if err != nil {
		t.Fatal(err)
	}
	features, labels := testSet()
	if _, _, _, err := tr.AtNode(0, features, labels[:3], nil); err == nil {
		t.Error("expected error on label length mismatch")
	}
	if _, _, _, err := tr.AtNode(0, features, labels, []float64{1}); err == nil {
		t.Error("expected error on weight length mismatch")
	}
	if _, _, _, err := tr.AtNode(9, features, labels, nil); err != ErrNodeOutOfRange {
		t.Errorf("expected ErrNodeOutOfRange, got %v", err)
	}
}
