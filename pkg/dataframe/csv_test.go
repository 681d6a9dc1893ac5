package dataframe

import (
	"reflect"
	"strings"
	"testing"
)

func TestReadCSVInference(t *testing.T) {
	input := strings.Join([]string{
		"model,mpg,cyl,automatic",
		"Mazda RX4,21,6,false",
		"Datsun 710,22.8,4,true",
		"Valiant,18.1,6,false",
	}, "\n")

	frame, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	if frame.NumRows() != 3 || frame.NumCols() != 4 {
		t.Fatalf("shape = %dx%d, want 3x4", frame.NumRows(), frame.NumCols())
	}

	wantTypes := []ColumnType{String, Float64, Int64, Bool}
	if got := frame.Types(); !reflect.DeepEqual(got, wantTypes) {
		t.Errorf("Types() = %v, want %v", got, wantTypes)
	}

	wantRow := []any{"Datsun 710", 22.8, int64(4), true}
	if got := frame.Row(1); !reflect.DeepEqual(got, wantRow) {
		t.Errorf("Row(1) = %v, want %v", got, wantRow)
	}
}

func TestReadCSVIntColumnStaysInt(t *testing.T) {
	// 0/1 columns must come out Int64, not Bool: strconv would happily
	// parse them as bools.
	input := "am\n0\n1\n0\n"
	frame, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if got := frame.Column(0).Type; got != Int64 {
		t.Errorf("Column(0).Type = %v, want Int64", got)
	}
}

func TestReadCSVMixedDegradesToString(t *testing.T) {
	input := "col\n1\ntrue\nhello\n"
	frame, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if got := frame.Column(0).Type; got != String {
		t.Errorf("Column(0).Type = %v, want String", got)
	}
	want := []any{"1", "true", "hello"}
	if got := frame.Column(0).Values; !reflect.DeepEqual(got, want) {
		t.Errorf("Column(0).Values = %v, want %v", got, want)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	frame, err := ReadCSV(strings.NewReader("a,b,c\n"))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if frame.NumRows() != 0 {
		t.Errorf("NumRows() = %d, want 0", frame.NumRows())
	}
	if frame.NumCols() != 3 {
		t.Errorf("NumCols() = %d, want 3", frame.NumCols())
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("ReadCSV of empty input should return an error")
	}
}

func TestReadCSVFileMissing(t *testing.T) {
	if _, err := ReadCSVFile("./testdata/does-not-exist.csv"); err == nil {
		t.Error("ReadCSVFile of a missing file should return an error")
	}
}
