// Package dbf reads and writes dBASE Level 5 (DOS) table files, as consumed by INM and other
// tools of that vintage. Only character and numeric fields are supported.
//
// https://en.wikipedia.org/wiki/.dbf#File_format_of_Level_5_DOS_dBASE
package dbf

import(
	"fmt"
)

type FieldType byte
const(
	Character FieldType = 'C'
	Numeric   FieldType = 'N'
)

func (ft FieldType)String() string { return string(rune(ft)) }

const(
	KMaxNameLength  = 10  // an 11th byte is always left as a terminator
	KMaxFieldLength = 254 // 0xFE
)

// A Field describes one column. DecimalCount only applies to numeric fields; it is the number
// of digits written after the decimal point.
type Field struct {
	Name          string
	Type          FieldType
	Length        int
	DecimalCount  int
}

func CharField(name string, length int) Field {
	return Field{Name:name, Type:Character, Length:length}
}

func NumericField(name string, length, decimals int) Field {
	return Field{Name:name, Type:Numeric, Length:length, DecimalCount:decimals}
}

func (f Field)String() string {
	if f.Type == Numeric {
		return fmt.Sprintf("%s %s(%d.%d)", f.Name, f.Type, f.Length, f.DecimalCount)
	}
	return fmt.Sprintf("%s %s(%d)", f.Name, f.Type, f.Length)
}

// {{{ f.check

func (f Field)check() string {
	if len(f.Name) == 0 {
		return "empty name"
	} else if len(f.Name) > KMaxNameLength {
		return fmt.Sprintf("name longer than %d bytes", KMaxNameLength)
	}
	for _,c := range []byte(f.Name) {
		if c <= 0x20 || c >= 0x7f {
			return fmt.Sprintf("name has unprintable byte 0x%02x", c)
		}
	}

	if f.Length < 1 || f.Length > KMaxFieldLength {
		return fmt.Sprintf("length %d not in [1,%d]", f.Length, KMaxFieldLength)
	}

	switch f.Type {
	case Character:
		if f.DecimalCount != 0 {
			return "decimal count on a character field"
		}
	case Numeric:
		if f.DecimalCount < 0 || f.DecimalCount >= f.Length {
			return fmt.Sprintf("decimal count %d must be in [0,%d)", f.DecimalCount, f.Length)
		}
	default:
		return fmt.Sprintf("unsupported field type 0x%02x", byte(f.Type))
	}

	return ""
}

// }}}

// CheckSchema returns a *SchemaError for the first field that can't be written. An empty schema
// is fine; its records are just the deletion flag.
func CheckSchema(fields []Field) error {
	if hdr := KHeaderSize + len(fields)*KDescriptorSize + 1; hdr > 0xFFFF {
		return &SchemaError{Field:-1, Reason:fmt.Sprintf("too many fields (%d)", len(fields))}
	}
	if rl := RecordLength(fields); rl > 0xFFFF {
		return &SchemaError{Field:-1, Reason:fmt.Sprintf("record length %d too long", rl)}
	}

	for i,f := range fields {
		if reason := f.check(); reason != "" {
			return &SchemaError{Field:i, Name:f.Name, Reason:reason}
		}
	}
	return nil
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
