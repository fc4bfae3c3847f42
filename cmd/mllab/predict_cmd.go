package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	mllab "github.com/nalipour/MLlab"
	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/model"
	"github.com/nalipour/MLlab/tree"
)

type predictCmdConfig struct {
	datasetInputConfig
	modelRefConfig
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{datasetInputConfig: datasetInputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict labels for a dataset",
		Long:  `Load a model from a model store and print its prediction for every instance of a dataset, one per line. The dataset's label column is read but ignored, so test files predict as they are.`,
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
			config.Logf("Predicting %s for %d instances with the %s model %q...", s.Label, table.Count(), m.Kind, config.modelName)
			if err := predictTable(m, table); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	config.setFlags(cmd)
	config.setModelFlags(cmd)
	return cmd
}

func predictTable(m *model.Model, table *dataset.Table) error {
	if m.Task == model.TaskRegression {
		reg, err := mllab.RegressorFromModel(m)
		if err != nil {
			return err
		}
		for _, row := range table.X {
			fmt.Println(strconv.FormatFloat(reg.Predict(row), 'g', -1, 64))
		}
		return nil
	}
	clf, err := mllab.ClassifierFromModel(m)
	if err != nil {
		return err
	}
	for _, row := range table.X {
		p := clf.Predict(row)
		if p == tree.NoDecision {
			fmt.Println("?")
			continue
		}
		fmt.Println(p)
	}
	return nil
}
