package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mllab "github.com/nalipour/MLlab"
	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/model"
	"github.com/nalipour/MLlab/schema"
)

type growCmdConfig struct {
	datasetInputConfig
	output    string
	modelName string
	modelKind string
	depth     int
	trees     int
	rounds    int
	workers   int
	seed      int64
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{datasetInputConfig: datasetInputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a model from a dataset",
		Long:  `Grow a decision tree, a random forest or a boosted ensemble from a dataset and save it to a model store.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			s, err := config.Schema()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			table, err := config.Dataset(ctx, s)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Growing %s of depth %d from a set with %d samples and %d features to predict %s ...",
				config.modelKind, config.depth, table.Count(), table.NumFeatures(), s.Label)
			m, err := config.grow(s, table)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the model: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Done")
			store, err := openModelStore(config.output)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			defer store.Close(ctx)
			if err := store.Save(ctx, config.modelName, m); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
			config.Logf("Model saved as %q in %s", config.modelName, config.output)
		},
	}
	config.setFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "models", "directory or redis://host:port URL of the model store the grown model is saved to")
	cmd.PersistentFlags().StringVarP(&(config.modelName), "name", "n", "model", "name the grown model is saved under")
	cmd.PersistentFlags().StringVarP(&(config.modelKind), "model", "m", "tree", "kind of model to grow: tree, forest or boost")
	cmd.PersistentFlags().IntVarP(&(config.depth), "depth", "d", 5, "depth of the grown trees")
	cmd.PersistentFlags().IntVar(&(config.trees), "trees", 10, "number of trees in a forest")
	cmd.PersistentFlags().IntVar(&(config.rounds), "rounds", 10, "number of boosting rounds")
	cmd.PersistentFlags().IntVar(&(config.workers), "workers", 1, "number of goroutines fitting forest trees")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the forest's bootstrap sampling")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if err := gcc.datasetInputConfig.Validate(); err != nil {
		return err
	}
	switch gcc.modelKind {
	case model.KindTree, model.KindForest, model.KindBoost:
	default:
		return fmt.Errorf("unknown model kind %q, valid kinds are tree, forest and boost", gcc.modelKind)
	}
	return nil
}

func (gcc *growCmdConfig) grow(s *schema.Schema, table *dataset.Table) (*model.Model, error) {
	if s.Problem == schema.Regression {
		if gcc.modelKind != model.KindTree {
			return nil, fmt.Errorf("model kind %q cannot grow on a regression dataset", gcc.modelKind)
		}
		reg := mllab.NewTreeRegressor(gcc.depth)
		if err := reg.Fit(table); err != nil {
			return nil, err
		}
		mse, err := mllab.MeanSquaredError(reg, table)
		if err == nil {
			gcc.Logf("Mean squared error on the training set: %g", mse)
		}
		return reg.Model()
	}
	switch gcc.modelKind {
	case model.KindForest:
		f := mllab.NewForestClassifier(gcc.trees, gcc.depth)
		f.NumWorkers = gcc.workers
		f.Seed = gcc.seed
		if err := f.Fit(table); err != nil {
			return nil, err
		}
		gcc.logAccuracy(f, table)
		return f.Model()
	case model.KindBoost:
		b := mllab.NewAdaBoostClassifier(gcc.rounds)
		if err := b.Fit(table); err != nil {
			return nil, err
		}
		gcc.logAccuracy(b, table)
		return b.Model()
	}
	clf := mllab.NewTreeClassifier(gcc.depth)
	if err := clf.Fit(table); err != nil {
		return nil, err
	}
	gcc.logAccuracy(clf, table)
	return clf.Model()
}

func (gcc *growCmdConfig) logAccuracy(c mllab.Classifier, table *dataset.Table) {
	acc, undecided, err := mllab.Accuracy(c, table)
	if err == nil {
		gcc.Logf("Accuracy on the training set: %.4f (%d undecided)", acc, undecided)
	}
}
