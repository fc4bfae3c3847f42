/*
Package pgadapter provides a sqldataset.Adapter for PostgreSQL
databases.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	// registers the postgres driver
	_ "github.com/lib/pq"
)

// Adapter gives sqldataset access to a PostgreSQL database.
type Adapter struct {
	url string
}

/*
New takes a PostgreSQL connection URL and returns an adapter for the
database it points to.
*/
func New(url string) *Adapter {
	return &Adapter{url: url}
}

// Open returns a handle to the PostgreSQL database, or an error if it
// cannot be opened.
func (a *Adapter) Open() (*sql.DB, error) {
	db, err := sql.Open("postgres", a.url)
	if err != nil {
		return nil, fmt.Errorf("opening postgresql database: %v", err)
	}
	return db, nil
}

// Quote returns the identifier quoted with double quotes, the
// PostgreSQL identifier quoting.
func (a *Adapter) Quote(identifier string) string {
	return fmt.Sprintf("%q", identifier)
}
