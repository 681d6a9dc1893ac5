//go:build !cgo_sqlite

package main

import (
	"database/sql"
	_ "modernc.org/sqlite"
)

// initDB opens the dataset database with the pure-Go sqlite driver. Build
// with the cgo_sqlite tag to use mattn/go-sqlite3 instead.
func initDB(dataSource string) (*sql.DB, error) {
	return sql.Open("sqlite", dataSource)
}
