/*
Package mongodataset loads dataset tables from a MongoDB collection,
one document per instance with a numeric field per schema column.
*/
package mongodataset

import (
	"context"
	"fmt"

	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/schema"
)

/*
Load takes a context, a MongoDB session, the name of a collection on
the session's default database and a schema, and returns a dataset
table with one row per document, reading the schema's feature and
label fields. It returns an error if the collection cannot be queried,
a document misses a schema field, or a field value is not numeric.
*/
func Load(ctx context.Context, session *mgo.Session, collection string, s *schema.Schema) (*dataset.Table, error) {
	t := &dataset.Table{FeatureNames: s.Features, LabelName: s.Label}
	iter := session.DB("").C(collection).Find(nil).Iter()
	defer iter.Close()
	var doc bson.M
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		x := make([]float64, len(s.Features))
		for i, name := range s.Features {
			v, err := numericField(doc, name)
			if err != nil {
				return nil, fmt.Errorf("loading document %d of collection %s: %v", t.Count(), collection, err)
			}
			x[i] = v
		}
		y, err := numericField(doc, s.Label)
		if err != nil {
			return nil, fmt.Errorf("loading document %d of collection %s: %v", t.Count(), collection, err)
		}
		t.X = append(t.X, x)
		t.Y = append(t.Y, y)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("iterating collection %s: %v", collection, err)
	}
	return t, nil
}

/*
Write takes a context, a MongoDB session, the name of a collection on
the session's default database and a dataset table, and inserts one
document per row of the table, with a field per feature column and one
for the label. It returns the number of documents inserted and an
error if the insertion fails.
*/
func Write(ctx context.Context, session *mgo.Session, collection string, t *dataset.Table) (int, error) {
	docs := make([]interface{}, 0, t.Count())
	for i, row := range t.X {
		doc := make(bson.M, len(row)+1)
		for j, name := range t.FeatureNames {
			doc[name] = row[j]
		}
		doc[t.LabelName] = t.Y[i]
		docs = append(docs, doc)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := session.DB("").C(collection).Insert(docs...); err != nil {
		return 0, fmt.Errorf("inserting %d documents into collection %s: %v", len(docs), collection, err)
	}
	return len(docs), nil
}

func numericField(doc bson.M, name string) (float64, error) {
	v, ok := doc[name]
	if !ok {
		return 0, fmt.Errorf("document has no field %q", name)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("field %q holds a %T, expected a number", name, v)
}
