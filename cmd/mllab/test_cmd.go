package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mllab "github.com/nalipour/MLlab"
	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/model"
)

type testCmdConfig struct {
	datasetInputConfig
	modelRefConfig
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{datasetInputConfig: datasetInputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test a model against a dataset",
		Long:  `Load a model from a model store and measure how well it predicts the labels of a dataset: the accuracy for classification models, the mean squared error for regression models.`,
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
			m, err := config.loadModel(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Testing the %s model %q against a set with %d samples...", m.Kind, config.modelName, table.Count())
			if err := testModel(m, table); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.Logf("Done")
		},
	}
	config.setFlags(cmd)
	config.setModelFlags(cmd)
	return cmd
}

func testModel(m *model.Model, table *dataset.Table) error {
	if m.Task == model.TaskRegression {
		reg, err := mllab.RegressorFromModel(m)
		if err != nil {
			return err
		}
		mse, err := mllab.MeanSquaredError(reg, table)
		if err != nil {
			return err
		}
		fmt.Printf("The model predicts with a mean squared error of %g\n", mse)
		return nil
	}
	clf, err := mllab.ClassifierFromModel(m)
	if err != nil {
		return err
	}
	acc, undecided, err := mllab.Accuracy(clf, table)
	if err != nil {
		return err
	}
	fmt.Printf("The model predicts correctly %.2f%% of the dataset (%d instances undecided)\n", 100*acc, undecided)
	return nil
}
