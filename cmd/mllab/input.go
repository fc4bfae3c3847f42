package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/redis.v5"

	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/dataset/csv"
	"github.com/nalipour/MLlab/dataset/mongodataset"
	"github.com/nalipour/MLlab/dataset/sqldataset"
	"github.com/nalipour/MLlab/dataset/sqldataset/pgadapter"
	"github.com/nalipour/MLlab/dataset/sqldataset/sqlite3adapter"
	"github.com/nalipour/MLlab/model"
	modeljson "github.com/nalipour/MLlab/model/json"
	"github.com/nalipour/MLlab/model/redisstore"
	"github.com/nalipour/MLlab/schema"
)

type datasetInputConfig struct {
	*rootCmdConfig
	dataInput   string
	schemaInput string
	dataTable   string
	maxDBConns  int
}

func (dic *datasetInputConfig) setFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(dic.dataInput), "input", "i", "", "path to a delimited text (.csv, .data) or SQLite3 (.db) file, a PostgreSQL DB connection URL or a MongoDB connection URL with the dataset (defaults to STDIN, interpreted as delimited text)")
	cmd.PersistentFlags().StringVarP(&(dic.schemaInput), "schema", "s", "", "path to a YML file describing the columns of the dataset (required)")
	cmd.PersistentFlags().StringVar(&(dic.dataTable), "table", "dataset", "name of the DB table or collection holding the dataset, for DB inputs")
	cmd.PersistentFlags().IntVar(&(dic.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
}

func (dic *datasetInputConfig) Validate() error {
	if dic.schemaInput == "" {
		return fmt.Errorf("required schema flag was not set")
	}
	return nil
}

func (dic *datasetInputConfig) Schema() (*schema.Schema, error) {
	dic.Logf("Reading schema from %s...", dic.schemaInput)
	return schema.ReadFromFile(dic.schemaInput)
}

func (dic *datasetInputConfig) Dataset(ctx context.Context, s *schema.Schema) (*dataset.Table, error) {
	switch {
	case strings.HasPrefix(dic.dataInput, "postgresql://"):
		dic.Logf("Creating PostgreSQL adapter for url %s to read dataset...", dic.dataInput)
		return sqldataset.Load(ctx, pgadapter.New(dic.dataInput), dic.dataTable, s)
	case strings.HasPrefix(dic.dataInput, "mongodb://"):
		dic.Logf("Dialing %s to read dataset...", dic.dataInput)
		session, err := mgo.Dial(dic.dataInput)
		if err != nil {
			return nil, fmt.Errorf("dialing %s: %v", dic.dataInput, err)
		}
		defer session.Close()
		return mongodataset.Load(ctx, session, dic.dataTable, s)
	case strings.HasSuffix(dic.dataInput, ".db"):
		dic.Logf("Creating SQLite3 adapter for file %s to read dataset...", dic.dataInput)
		return sqldataset.Load(ctx, sqlite3adapter.New(dic.dataInput, dic.maxDBConns), dic.dataTable, s)
	}
	if dic.dataInput == "" {
		dic.Logf("Reading dataset from STDIN...")
	} else {
		dic.Logf("Opening %s to read dataset...", dic.dataInput)
	}
	return csv.ReadFromFilePath(dic.dataInput, s)
}

type modelRefConfig struct {
	modelStore string
	modelName  string
}

func (mrc *modelRefConfig) setModelFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&(mrc.modelStore), "model-store", "models", "directory or redis://host:port URL of the model store the model is loaded from")
	cmd.PersistentFlags().StringVarP(&(mrc.modelName), "name", "n", "model", "name of the model to load")
}

func (mrc *modelRefConfig) loadModel(ctx context.Context) (*model.Model, error) {
	store, err := openModelStore(mrc.modelStore)
	if err != nil {
		return nil, err
	}
	defer store.Close(ctx)
	m, err := store.Load(ctx, mrc.modelName)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("no model named %q in %s", mrc.modelName, mrc.modelStore)
	}
	return m, nil
}

/*
openModelStore returns a model store for the given location: a
redis-backed store for redis://host:port URLs, and a directory of JSON
files for everything else.
*/
func openModelStore(location string) (model.Store, error) {
	if strings.HasPrefix(location, "redis://") {
		rc := redis.NewClient(&redis.Options{Addr: strings.TrimPrefix(location, "redis://")})
		return redisstore.New(rc, "mllab:models", modeljson.Codec{}), nil
	}
	return modeljson.NewStore(location, modeljson.Codec{})
}
