/*
Package sqlite3adapter provides a sqldataset.Adapter for SQLite3
database files.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"

	// registers the sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// Adapter gives sqldataset access to an SQLite3 database file.
type Adapter struct {
	path     string
	maxConns int
}

/*
New takes a path to an SQLite3 database file and a limit to the number
of open connections (0 meaning no limit) and returns an adapter for
the file.
*/
func New(path string, maxConns int) *Adapter {
	return &Adapter{path: path, maxConns: maxConns}
}

// Open returns a handle to the SQLite3 database file, or an error if
// it cannot be opened.
func (a *Adapter) Open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", a.path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", a.path, err)
	}
	if a.maxConns > 0 {
		db.SetMaxOpenConns(a.maxConns)
	}
	return db, nil
}

// Quote returns the identifier quoted with double quotes, the SQLite3
// identifier quoting.
func (a *Adapter) Quote(identifier string) string {
	return fmt.Sprintf("%q", identifier)
}
