package mllab

import (
	"fmt"

	"github.com/nalipour/MLlab/model"
	"github.com/nalipour/MLlab/tree"
)

// Model returns the serializable form of the classifier, or an error
// if it has not been fitted.
func (c *TreeClassifier) Model() (*model.Model, error) {
	if c.Tree == nil {
		return nil, fmt.Errorf("exporting tree classifier: not fitted")
	}
	return &model.Model{
		Kind:  model.KindTree,
		Task:  model.TaskClassification,
		Depth: c.Depth,
		Trees: []*tree.Tree{c.Tree},
	}, nil
}

// Model returns the serializable form of the regressor, or an error if
// it has not been fitted.
func (r *TreeRegressor) Model() (*model.Model, error) {
	if r.Tree == nil {
		return nil, fmt.Errorf("exporting tree regressor: not fitted")
	}
	return &model.Model{
		Kind:  model.KindTree,
		Task:  model.TaskRegression,
		Depth: r.Depth,
		Trees: []*tree.Tree{r.Tree},
	}, nil
}

// Model returns the serializable form of the forest, or an error if it
// has not been fitted.
func (f *ForestClassifier) Model() (*model.Model, error) {
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("exporting forest classifier: not fitted")
	}
	m := &model.Model{
		Kind:  model.KindForest,
		Task:  model.TaskClassification,
		Depth: f.Depth,
	}
	for _, clf := range f.Trees {
		m.Trees = append(m.Trees, clf.Tree)
	}
	return m, nil
}

// Model returns the serializable form of the ensemble, or an error if
// it has not been fitted. Every tree carries its vote weight.
func (b *AdaBoostClassifier) Model() (*model.Model, error) {
	if len(b.Trees) == 0 {
		return nil, fmt.Errorf("exporting adaboost classifier: not fitted")
	}
	m := &model.Model{
		Kind:  model.KindBoost,
		Task:  model.TaskClassification,
		Depth: b.Depth,
	}
	for _, clf := range b.Trees {
		m.Trees = append(m.Trees, clf.Tree)
	}
	return m, nil
}

/*
ClassifierFromModel rebuilds a fitted classifier from its serializable
form. It returns an error if the model was fitted for another task, has
a kind no classifier matches, or carries no trees.
*/
func ClassifierFromModel(m *model.Model) (Classifier, error) {
	if m.Task != model.TaskClassification {
		return nil, fmt.Errorf("rebuilding classifier: model is fitted for task %q", m.Task)
	}
	if len(m.Trees) == 0 {
		return nil, fmt.Errorf("rebuilding classifier: model carries no trees")
	}
	wrap := func(t *tree.Tree) *TreeClassifier {
		return &TreeClassifier{Depth: m.Depth, MinSplit: 2, Tree: t}
	}
	switch m.Kind {
	case model.KindTree:
		return wrap(m.Trees[0]), nil
	case model.KindForest:
		f := NewForestClassifier(len(m.Trees), m.Depth)
		for _, t := range m.Trees {
			f.Trees = append(f.Trees, wrap(t))
		}
		return f, nil
	case model.KindBoost:
		b := NewAdaBoostClassifier(len(m.Trees))
		b.Depth = m.Depth
		for _, t := range m.Trees {
			b.Trees = append(b.Trees, wrap(t))
		}
		return b, nil
	}
	return nil, fmt.Errorf("rebuilding classifier: unknown model kind %q", m.Kind)
}

/*
RegressorFromModel rebuilds a fitted regressor from its serializable
form. It returns an error if the model was fitted for another task or
is not a single decision tree.
*/
func RegressorFromModel(m *model.Model) (Regressor, error) {
	if m.Task != model.TaskRegression {
		return nil, fmt.Errorf("rebuilding regressor: model is fitted for task %q", m.Task)
	}
	if m.Kind != model.KindTree || len(m.Trees) == 0 {
		return nil, fmt.Errorf("rebuilding regressor: model kind %q with %d trees does not describe a regression tree", m.Kind, len(m.Trees))
	}
	return &TreeRegressor{Depth: m.Depth, MinSplit: 2, Tree: m.Trees[0]}, nil
}
