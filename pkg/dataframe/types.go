package dataframe

// ColumnType identifies the scalar type of every value in a column.
type ColumnType int

const (
	Int64 ColumnType = iota
	Float64
	Bool
	String
)

// String returns the textual label for the type. These labels are the
// per-column type hints the rendering widget receives, so they are part of
// the wire contract and must stay stable.
func (t ColumnType) String() string {
	switch t {
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	case String:
		return "string"
	default:
		return "unknown"
	}
}
