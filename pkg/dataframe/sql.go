package dataframe

import (
	"context"
	"database/sql"
	"fmt"
)

// ReadSQL runs query against db and builds a Frame from the result set.
// Column names and order follow the result set; types are mapped from the
// values the driver returns, so a column whose every value is an integer
// becomes Int64, a column with any floating point value becomes Float64, and
// anything else (text, blobs, NULLs) becomes String. In a String column a
// SQL NULL collapses to the empty string: the frame holds scalars only, so
// NULL and "" are indistinguishable downstream.
func ReadSQL(ctx context.Context, db *sql.DB, query string, args ...any) (*Frame, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	raw := make([][]any, len(names))
	for rows.Next() {
		cells := make([]any, len(names))
		dest := make([]any, len(names))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, cell := range cells {
			raw[i] = append(raw[i], cell)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("result iteration failed: %w", err)
	}

	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = sqlColumn(name, raw[i])
	}
	return New(columns...)
}

// sqlColumn converts one column of driver values into a typed Column.
func sqlColumn(name string, cells []any) Column {
	canInt, canFloat, canBool := true, true, true
	for _, cell := range cells {
		switch cell.(type) {
		case int64:
			canBool = false
		case float64:
			canInt = false
			canBool = false
		case bool:
			canInt = false
			canFloat = false
		default:
			canInt, canFloat, canBool = false, false, false
		}
	}

	colType := String
	switch {
	case len(cells) == 0:
		colType = String
	case canInt:
		colType = Int64
	case canFloat:
		colType = Float64
	case canBool:
		colType = Bool
	}

	values := make([]any, len(cells))
	for i, cell := range cells {
		values[i] = convertSQLValue(colType, cell)
	}
	return Column{Name: name, Type: colType, Values: values}
}

func convertSQLValue(colType ColumnType, cell any) any {
	switch colType {
	case Int64:
		return cell.(int64)
	case Float64:
		if v, ok := cell.(int64); ok {
			return float64(v)
		}
		return cell.(float64)
	case Bool:
		return cell.(bool)
	default:
		switch v := cell.(type) {
		case nil:
			// NULL collapses to "" in String columns, see ReadSQL.
			return ""
		case []byte:
			return string(v)
		case string:
			return v
		default:
			return fmt.Sprintf("%v", v)
		}
	}
}
