package tabulator

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/nstrayer/tabulator-output-binding/pkg/dataframe"
)

func testFrame(t *testing.T) *dataframe.Frame {
	t.Helper()
	frame, err := dataframe.New(
		dataframe.Column{Name: "model", Type: dataframe.String, Values: []any{"Mazda RX4", "Datsun 710", "Valiant", "Duster 360", "Merc 240D"}},
		dataframe.Column{Name: "mpg", Type: dataframe.Float64, Values: []any{21.0, 22.8, 18.1, 14.3, 24.4}},
		dataframe.Column{Name: "cyl", Type: dataframe.Int64, Values: []any{int64(6), int64(4), int64(6), int64(8), int64(4)}},
	)
	if err != nil {
		t.Fatalf("failed to build test frame: %v", err)
	}
	return frame
}

func TestBuildPayloadShape(t *testing.T) {
	payload := BuildPayload(testFrame(t))

	if len(payload.Data) != 5 {
		t.Fatalf("len(Data) = %d, want 5", len(payload.Data))
	}
	for i, row := range payload.Data {
		if len(row) != 3 {
			t.Errorf("len(Data[%d]) = %d, want 3", i, len(row))
		}
	}
	if len(payload.Columns) != 3 {
		t.Errorf("len(Columns) = %d, want 3", len(payload.Columns))
	}
	if len(payload.TypeHints) != 3 {
		t.Errorf("len(TypeHints) = %d, want 3", len(payload.TypeHints))
	}
}

func TestBuildPayloadOrder(t *testing.T) {
	payload := BuildPayload(testFrame(t))

	wantColumns := []string{"model", "mpg", "cyl"}
	if !reflect.DeepEqual(payload.Columns, wantColumns) {
		t.Errorf("Columns = %v, want %v", payload.Columns, wantColumns)
	}
	wantHints := []string{"string", "float64", "int64"}
	if !reflect.DeepEqual(payload.TypeHints, wantHints) {
		t.Errorf("TypeHints = %v, want %v", payload.TypeHints, wantHints)
	}
	wantRow := []any{"Datsun 710", 22.8, int64(4)}
	if !reflect.DeepEqual(payload.Data[1], wantRow) {
		t.Errorf("Data[1] = %v, want %v", payload.Data[1], wantRow)
	}
}

func TestBuildPayloadEmptyFrames(t *testing.T) {
	noRows, err := dataframe.New(
		dataframe.Column{Name: "a", Type: dataframe.Int64},
		dataframe.Column{Name: "b", Type: dataframe.String},
	)
	if err != nil {
		t.Fatalf("failed to build zero-row frame: %v", err)
	}
	payload := BuildPayload(noRows)
	if len(payload.Data) != 0 {
		t.Errorf("zero-row frame: len(Data) = %d, want 0", len(payload.Data))
	}
	if len(payload.Columns) != 2 || len(payload.TypeHints) != 2 {
		t.Errorf("zero-row frame: columns/hints = %d/%d, want 2/2", len(payload.Columns), len(payload.TypeHints))
	}

	noCols, err := dataframe.New()
	if err != nil {
		t.Fatalf("failed to build zero-column frame: %v", err)
	}
	payload = BuildPayload(noCols)
	if len(payload.Data) != 0 || len(payload.Columns) != 0 || len(payload.TypeHints) != 0 {
		t.Error("zero-column frame should serialize to empty arrays")
	}
}

// TestPayloadWireFormat pins the exact JSON keys the browser-side component
// depends on.
func TestPayloadWireFormat(t *testing.T) {
	raw, err := json.Marshal(BuildPayload(testFrame(t)))
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("failed to unmarshal payload: %v", err)
	}
	for _, key := range []string{"data", "columns", "type_hints"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("payload JSON is missing key %q", key)
		}
	}
	if len(decoded) != 3 {
		t.Errorf("payload JSON has %d keys, want exactly 3", len(decoded))
	}
}
