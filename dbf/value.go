package dbf

import "strconv"

// A Value is the contents of one cell; either Text or Number.
type Value interface {
	isValue()
}

// Text is a string cell. In a numeric field it is taken to be preformatted, and is written
// verbatim.
type Text string

// Number is a numeric cell; it is formatted with the field's decimal count.
type Number float64

func (Text)isValue() {}
func (Number)isValue() {}

func (t Text)String() string { return string(t) }
func (n Number)String() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }

// A Row holds one Value per field, in schema order.
type Row []Value

// A Table is a schema and the rows to go with it.
type Table struct {
	Fields []Field
	Rows   []Row
}

// {{{ format

// format renders a value into the bytes for its field, with padding. The result may be longer
// than the field.
func format(f Field, v Value) []byte {
	var str string

	switch f.Type {
	case Character:
		switch val := v.(type) {
		case Text:   str = string(val)
		case Number: str = val.String()
		}
		return padRight(str, f.Length)

	case Numeric:
		switch val := v.(type) {
		case Text:   str = string(val)
		case Number: str = ToFixed(float64(val), f.DecimalCount)
		}
		return padLeft(str, f.Length)
	}

	return nil
}

func padRight(s string, n int) []byte {
	b := []byte(s)
	for len(b) < n {
		b = append(b, ' ')
	}
	return b
}

func padLeft(s string, n int) []byte {
	b := []byte{}
	for i:=len(s); i<n; i++ {
		b = append(b, ' ')
	}
	return append(b, s...)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
