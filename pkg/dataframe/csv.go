package dataframe

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadCSV reads a headered CSV stream into a Frame. The first record supplies
// the column names; each column's type is inferred as the most specific of
// int64, float64, bool and string that parses every cell in the column.
// A file with only a header row yields a zero-row frame.
func ReadCSV(r io.Reader) (*Frame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv has no header row")
	}

	header := records[0]
	rows := records[1:]

	// csv.Reader has already enforced a rectangular record set.
	columns := make([]Column, len(header))
	for c, name := range header {
		cells := make([]string, len(rows))
		for r, row := range rows {
			cells[r] = row[c]
		}
		columns[c] = inferColumn(name, cells)
	}

	return New(columns...)
}

// ReadCSVFile opens path and reads it with ReadCSV.
func ReadCSVFile(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadCSV(f)
}

// inferColumn picks the narrowest ColumnType that parses every cell and
// converts the cells to that type. A zero-row column defaults to string.
func inferColumn(name string, cells []string) Column {
	canInt, canFloat, canBool := true, true, true
	for _, cell := range cells {
		if canInt {
			if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
				canInt = false
			}
		}
		if canFloat {
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				canFloat = false
			}
		}
		if canBool && !isBoolWord(cell) {
			canBool = false
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
		switch colType {
		case Int64:
			v, _ := strconv.ParseInt(cell, 10, 64)
			values[i] = v
		case Float64:
			v, _ := strconv.ParseFloat(cell, 64)
			values[i] = v
		case Bool:
			v, _ := strconv.ParseBool(cell)
			values[i] = v
		default:
			values[i] = cell
		}
	}

	return Column{Name: name, Type: colType, Values: values}
}

// isBoolWord accepts only the word forms of bool, not strconv's "0"/"1",
// so numeric columns never degrade to Bool.
func isBoolWord(cell string) bool {
	switch cell {
	case "true", "false", "True", "False", "TRUE", "FALSE":
		return true
	}
	return false
}
