package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"

	"github.com/nalipour/MLlab/datagen"
	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/dataset/csv"
	"github.com/nalipour/MLlab/dataset/mongodataset"
	"github.com/nalipour/MLlab/schema"
)

type datagenCmdConfig struct {
	*rootCmdConfig
	shape       string
	count       int
	seed        int64
	output      string
	collection  string
	indexColumn bool
}

func datagenCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &datagenCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "datagen",
		Short: "Generate a synthetic dataset",
		Long: `Generate a labeled synthetic dataset from one of the lab's shapes.
Classification shapes: halfs, quarters, diagonal, shifteddiagonal, circle, ellipse, circles, bernoulli.
Regression shapes: linear, twodimlinear, multidimlinear, quadratic, twodimquadratic, cubic, twodimcubic.`,
		Run: func(cmd *cobra.Command, args []string) {
			if config.count < 1 {
				fmt.Fprintf(os.Stderr, "count must be at least 1, got %d\n", config.count)
				os.Exit(1)
			}
			r := rand.New(rand.NewSource(config.seed))
			config.Logf("Generating %d instances of shape %s with seed %d...", config.count, config.shape, config.seed)
			table, err := datagen.Generate(datagen.Shape(config.shape), config.count, r)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			if err := config.write(table); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	cmd.PersistentFlags().StringVar(&(config.shape), "shape", "halfs", "shape to generate the dataset from")
	cmd.PersistentFlags().IntVarP(&(config.count), "count", "c", 1000, "number of instances to generate")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the random source, so runs are reproducible")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file or a MongoDB connection URL the generated dataset is written to (defaults to STDOUT)")
	cmd.PersistentFlags().StringVar(&(config.collection), "collection", "dataset", "name of the collection the dataset is inserted into, for MongoDB outputs")
	cmd.PersistentFlags().BoolVar(&(config.indexColumn), "index-column", true, "write a leading Index column")
	return cmd
}

func (dcc *datagenCmdConfig) write(table *dataset.Table) error {
	if strings.HasPrefix(dcc.output, "mongodb://") {
		dcc.Logf("Dialing %s to write the dataset...", dcc.output)
		session, err := mgo.Dial(dcc.output)
		if err != nil {
			return fmt.Errorf("dialing %s: %v", dcc.output, err)
		}
		defer session.Close()
		inserted, err := mongodataset.Write(context.Background(), session, dcc.collection, table)
		if err != nil {
			return err
		}
		dcc.Logf("Inserted %d documents into collection %s", inserted, dcc.collection)
		return nil
	}
	var f *os.File
	if dcc.output == "" {
		f = os.Stdout
	} else {
		dcc.Logf("Creating %s to write the dataset...", dcc.output)
		var err error
		f, err = os.Create(dcc.output)
		if err != nil {
			return fmt.Errorf("creating dataset file %s: %v", dcc.output, err)
		}
		defer f.Close()
	}
	s := &schema.Schema{
		Features:    table.FeatureNames,
		Label:       table.LabelName,
		IndexColumn: dcc.indexColumn,
	}
	return csv.Write(f, table, s)
}
