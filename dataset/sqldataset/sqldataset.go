/*
Package sqldataset loads dataset tables from SQL databases. The
database-specific details are isolated in adapters: the sqlite3adapter
and pgadapter subpackages provide them for SQLite3 files and
PostgreSQL servers.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nalipour/MLlab/dataset"
	"github.com/nalipour/MLlab/schema"
)

/*
Adapter is an interface for objects that give access to a specific SQL
database engine.

Its Open method returns a handle to the database. Its Quote method
takes an identifier and returns it quoted for use in a statement for
the engine.
*/
type Adapter interface {
	Open() (*sql.DB, error)
	Quote(identifier string) string
}

/*
Load takes a context, an adapter, the name of a table on the adapter's
database and a schema, and returns a dataset table with one row per
row of the database table, reading the schema's feature and label
columns. It returns an error if the database cannot be queried or a
value cannot be scanned as a float64.
*/
func Load(ctx context.Context, adapter Adapter, table string, s *schema.Schema) (*dataset.Table, error) {
	db, err := adapter.Open()
	if err != nil {
		return nil, fmt.Errorf("loading dataset from SQL table %s: %v", table, err)
	}
	defer db.Close()

	columns := s.Columns()
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = adapter.Quote(c)
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(quoted, ", "), adapter.Quote(table))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying SQL table %s: %v", table, err)
	}
	defer rows.Close()

	t := &dataset.Table{FeatureNames: s.Features, LabelName: s.Label}
	values := make([]float64, len(columns))
	scanTargets := make([]interface{}, len(columns))
	for i := range values {
		scanTargets[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("scanning row %d of SQL table %s: %v", t.Count(), table, err)
		}
		x := make([]float64, len(s.Features))
		copy(x, values[:len(s.Features)])
		t.X = append(t.X, x)
		t.Y = append(t.Y, values[len(values)-1])
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating SQL table %s: %v", table, err)
	}
	return t, nil
}
