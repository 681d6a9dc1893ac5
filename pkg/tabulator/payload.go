package tabulator

import (
	"github.com/nstrayer/tabulator-output-binding/pkg/dataframe"
)

// Payload is the JSON object the browser-side table component consumes.
// The key names are the wire contract and must not change.
type Payload struct {
	// Data holds the cell values, one inner slice per row, cells in the
	// frame's column order.
	Data [][]any `json:"data"`
	// Columns holds the column names in declared order.
	Columns []string `json:"columns"`
	// TypeHints holds one scalar type label per column, order-aligned with
	// Columns.
	TypeHints []string `json:"type_hints"`
}

// BuildPayload converts a frame into its wire payload. The conversion is
// purely structural: no filtering, coercion or validation beyond what the
// frame already guarantees. An empty frame yields empty (non-nil) slices.
func BuildPayload(frame *dataframe.Frame) *Payload {
	numRows := frame.NumRows()
	data := make([][]any, numRows)
	for i := 0; i < numRows; i++ {
		data[i] = frame.Row(i)
	}

	types := frame.Types()
	hints := make([]string, len(types))
	for i, t := range types {
		hints[i] = t.String()
	}

	return &Payload{
		Data:      data,
		Columns:   frame.Names(),
		TypeHints: hints,
	}
}
