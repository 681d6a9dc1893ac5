package dataframe

import (
	"fmt"
)

// Column is a named, homogeneously typed sequence of scalar values.
// Values holds ints as int64, floats as float64, bools as bool and text as
// string, matching the column's Type.
type Column struct {
	Name   string
	Type   ColumnType
	Values []any
}

// Frame is a rectangular dataset: ordered columns of equal length.
// A Frame with zero columns or zero rows is valid.
type Frame struct {
	columns []Column
	numRows int
}

// New builds a Frame from columns, validating that every column is named and
// that all columns have the same length.
func New(columns ...Column) (*Frame, error) {
	numRows := 0
	for i, col := range columns {
		if col.Name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if i == 0 {
			numRows = len(col.Values)
			continue
		}
		if len(col.Values) != numRows {
			return nil, fmt.Errorf("column %q has %d values, expected %d", col.Name, len(col.Values), numRows)
		}
	}
	return &Frame{columns: columns, numRows: numRows}, nil
}

// NumRows returns the row count.
func (f *Frame) NumRows() int { return f.numRows }

// NumCols returns the column count.
func (f *Frame) NumCols() int { return len(f.columns) }

// Names returns the column names in declared order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, col := range f.columns {
		names[i] = col.Name
	}
	return names
}

// Types returns the column types in declared order.
func (f *Frame) Types() []ColumnType {
	types := make([]ColumnType, len(f.columns))
	for i, col := range f.columns {
		types[i] = col.Type
	}
	return types
}

// Column returns the i-th column.
func (f *Frame) Column(i int) Column { return f.columns[i] }

// Row returns row i as a slice of cell values in column order.
func (f *Frame) Row(i int) []any {
	row := make([]any, len(f.columns))
	for c, col := range f.columns {
		row[c] = col.Values[i]
	}
	return row
}

// Head returns a new Frame holding the first n rows. If n exceeds the row
// count the whole frame is returned; a negative n is an error.
func (f *Frame) Head(n int) (*Frame, error) {
	if n < 0 {
		return nil, fmt.Errorf("head: negative row count %d", n)
	}
	if n > f.numRows {
		n = f.numRows
	}
	columns := make([]Column, len(f.columns))
	for i, col := range f.columns {
		columns[i] = Column{
			Name:   col.Name,
			Type:   col.Type,
			Values: col.Values[:n],
		}
	}
	return &Frame{columns: columns, numRows: n}, nil
}
