/*
Package sqlitelib implements a lisp.Library that reads source files from a
SQLite database.  Sources are stored in a single table.

	CREATE TABLE sources (path TEXT PRIMARY KEY, source TEXT NOT NULL)

A runtime configured with lisp.WithLibrary(lib) resolves the paths given to
load and read by looking them up in the table.
*/
package sqlitelib

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/JakobSachs/jlisp/lisp"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
)

const schema = `CREATE TABLE IF NOT EXISTS sources (
	path   TEXT PRIMARY KEY,
	source TEXT NOT NULL
)`

// Library is a lisp.Library backed by a SQLite database.
type Library struct {
	db *sql.DB
}

var _ lisp.Library = (*Library)(nil)

// Open opens the database file at path, creating it and the sources table if
// necessary.
func Open(path string) (*Library, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	lib, err := New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return lib, nil
}

// New returns a Library using db.  The sources table is created if it does
// not exist.
func New(db *sql.DB) (*Library, error) {
	_, err := db.Exec(schema)
	if err != nil {
		return nil, fmt.Errorf("sqlitelib: create schema: %w", err)
	}
	return &Library{db: db}, nil
}

// Close closes the underlying database.
func (lib *Library) Close() error {
	return lib.db.Close()
}

// ReadSource implements lisp.Library.  Paths without a stored source report
// an error wrapping fs.ErrNotExist.
func (lib *Library) ReadSource(path string) ([]byte, error) {
	var source string
	err := lib.db.QueryRow(`SELECT source FROM sources WHERE path = ?`, path).Scan(&source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if err != nil {
		return nil, err
	}
	return []byte(source), nil
}

// Store saves source under path, replacing any source previously stored
// there.
func (lib *Library) Store(path string, source []byte) error {
	_, err := lib.db.Exec(`INSERT INTO sources (path, source) VALUES (?, ?)
		ON CONFLICT(path) DO UPDATE SET source = excluded.source`, path, string(source))
	return err
}

// Remove deletes the source stored under path.  Removing a path that was
// never stored is not an error.
func (lib *Library) Remove(path string) error {
	_, err := lib.db.Exec(`DELETE FROM sources WHERE path = ?`, path)
	return err
}

// Paths returns every stored path in lexical order.
func (lib *Library) Paths() ([]string, error) {
	rows, err := lib.db.Query(`SELECT path FROM sources ORDER BY path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}
