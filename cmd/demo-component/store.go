package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nstrayer/tabulator-output-binding/pkg/dataframe"
)

// DatasetStore keeps the demo dataset in a SQLite table and serves the
// per-cycle "first n rows" reads. Importing once at startup and querying
// with LIMIT stands in for whatever real query the table output would be
// backed by. The store remembers the imported schema: SQLite has no bool
// storage class, so declared types have to be reapplied on the way out.
type DatasetStore struct {
	db    *sql.DB
	table string
	types map[string]dataframe.ColumnType
}

func NewDatasetStore(db *sql.DB, table string) *DatasetStore {
	return &DatasetStore{db: db, table: table}
}

// Import (re)creates the table from the frame's schema and loads its rows.
func (st *DatasetStore) Import(ctx context.Context, frame *dataframe.Frame) error {
	if frame.NumCols() == 0 {
		return fmt.Errorf("cannot import a frame with no columns")
	}

	defs := make([]string, frame.NumCols())
	names := make([]string, frame.NumCols())
	params := make([]string, frame.NumCols())
	types := make(map[string]dataframe.ColumnType, frame.NumCols())
	for i := 0; i < frame.NumCols(); i++ {
		col := frame.Column(i)
		defs[i] = fmt.Sprintf("%q %s", col.Name, sqliteType(col.Type))
		names[i] = fmt.Sprintf("%q", col.Name)
		params[i] = "?"
		types[col.Name] = col.Type
	}

	tx, err := st.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %q", st.table)); err != nil {
		return fmt.Errorf("failed to drop old table: %w", err)
	}
	createStmt := fmt.Sprintf("CREATE TABLE %q (%s)", st.table, strings.Join(defs, ", "))
	if _, err = tx.ExecContext(ctx, createStmt); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	insertStmt := fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		st.table, strings.Join(names, ", "), strings.Join(params, ", "))
	stmt, err := tx.PrepareContext(ctx, insertStmt)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := 0; i < frame.NumRows(); i++ {
		if _, err = stmt.ExecContext(ctx, frame.Row(i)...); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	st.types = types
	return nil
}

// Head reads the first n rows back as a frame, preserving column order and
// the imported column types.
func (st *DatasetStore) Head(ctx context.Context, n int) (*dataframe.Frame, error) {
	query := fmt.Sprintf("SELECT * FROM %q LIMIT ?", st.table)
	frame, err := dataframe.ReadSQL(ctx, st.db, query, n)
	if err != nil {
		return nil, err
	}
	return st.restoreTypes(frame)
}

// restoreTypes reapplies the declared column types ReadSQL cannot see: Bool
// columns come back from SQLite as 0/1 integers, and a zero-row result
// carries no type information at all.
func (st *DatasetStore) restoreTypes(frame *dataframe.Frame) (*dataframe.Frame, error) {
	columns := make([]dataframe.Column, frame.NumCols())
	for i := 0; i < frame.NumCols(); i++ {
		col := frame.Column(i)
		declared, ok := st.types[col.Name]
		switch {
		case ok && declared == dataframe.Bool && col.Type == dataframe.Int64:
			values := make([]any, len(col.Values))
			for j, v := range col.Values {
				values[j] = v.(int64) != 0
			}
			col = dataframe.Column{Name: col.Name, Type: dataframe.Bool, Values: values}
		case ok && frame.NumRows() == 0:
			col.Type = declared
		}
		columns[i] = col
	}
	return dataframe.New(columns...)
}

func sqliteType(t dataframe.ColumnType) string {
	switch t {
	case dataframe.Int64, dataframe.Bool:
		return "INTEGER"
	case dataframe.Float64:
		return "REAL"
	default:
		return "TEXT"
	}
}
