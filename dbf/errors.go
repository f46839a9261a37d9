package dbf

import(
	"errors"
	"fmt"
)

var(
	ErrTruncated = errors.New("dbf: file truncated")
	ErrBadFormat = errors.New("dbf: not a dBASE level 5 file")
)

// SchemaError means the field list can't be written; nothing is allocated.
type SchemaError struct {
	Field   int    // index into the schema, or -1 if the problem is with the schema as a whole
	Name    string
	Reason  string
}

func (e *SchemaError)Error() string {
	if e.Field < 0 {
		return "dbf: bad schema: " + e.Reason
	}
	return fmt.Sprintf("dbf: bad field [%d]%q: %s", e.Field, e.Name, e.Reason)
}

// RowShapeError means a row didn't have one value per field.
type RowShapeError struct {
	Row       int
	Got,Want  int
}

func (e *RowShapeError)Error() string {
	return fmt.Sprintf("dbf: row %d has %d values, schema has %d fields", e.Row, e.Got, e.Want)
}

// CellOverflowError means a formatted value didn't fit in its field.
type CellOverflowError struct {
	Row     int
	Field   string
	Value   string // as formatted
	Length  int    // the field length
}

func (e *CellOverflowError)Error() string {
	return fmt.Sprintf("dbf: row %d, field %s: %q is longer than %d bytes", e.Row, e.Field,
		e.Value, e.Length)
}
