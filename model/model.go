/*
Package model defines the serializable form of a fitted predictor and
the interface of the stores that persist it. Subpackages provide a JSON
codec with a file-based store and a redis-backed store.
*/
package model

import (
	"context"

	"github.com/nalipour/MLlab/tree"
)

// Kinds of predictor a model can hold.
const (
	KindTree   = "tree"
	KindForest = "forest"
	KindBoost  = "boost"
)

// Tasks a model can be fitted for.
const (
	TaskClassification = "classification"
	TaskRegression     = "regression"
)

/*
Model is the serializable form of a fitted predictor: the kind of
predictor, the task it was fitted for, the depth its trees were built
with and the trees themselves. A single decision tree carries one tree,
ensembles carry one per member.
*/
type Model struct {
	Kind  string
	Task  string
	Depth int
	Trees []*tree.Tree
}

/*
EncodeDecoder is an interface for objects that allow encoding models
into slices of bytes and decoding them back to models.
*/
type EncodeDecoder interface {

	// Encode receives a *Model and returns a slice of bytes with the
	// model encoded, or an error if the encoding could not be
	// performed for some reason.
	Encode(*Model) ([]byte, error)

	// Decode receives a slice of bytes and returns a *Model decoded
	// from it, or an error if the decoding could not be performed for
	// some reason.
	Decode([]byte) (*Model, error)
}

/*
Store is an interface for repositories of fitted models addressed by
name. Load returns a nil model, and no error, when no model with the
given name is stored.
*/
type Store interface {
	Save(ctx context.Context, name string, m *Model) error
	Load(ctx context.Context, name string) (*Model, error)
	Delete(ctx context.Context, name string) error
	Close(ctx context.Context) error
}
