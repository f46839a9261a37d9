package dbf

import(
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

const(
	KVersion         = 0x03   // dBASE level 5, no memo
	KHeaderSize      = 32
	KDescriptorSize  = 32
	KFieldTerminator = 0x0D
	KRecordActive    = 0x20
	KRecordDeleted   = 0x2A
	KEndOfFile       = 0x1A
	KHeaderTrailer   = 0x01E1 // bytes 30-31 of the header; INM's own files all carry it
)

// An Encoder turns Tables into DBF files.
type Encoder struct {
	// Clock provides the 'last updated' date in the header. Defaults to time.Now.
	Clock func() time.Time

	// By default a value too wide for its field is an error. The historical exporter wrote
	// them anyway, letting the spill get overwritten by whatever came next (so in practice,
	// truncated); LegacyOverflow reproduces that, byte for byte.
	LegacyOverflow bool
}

// Encode uses the wall clock, and rejects values that overflow their fields.
func Encode(t Table) ([]byte, error) { return Encoder{}.Encode(t) }

// RecordLength is the size of one record: the deletion flag plus each field.
func RecordLength(fields []Field) int {
	n := 1
	for _,f := range fields {
		n += f.Length
	}
	return n
}

// HeaderLength covers the file header and the field descriptors, including the terminator.
func HeaderLength(fields []Field) int {
	return KHeaderSize + len(fields)*KDescriptorSize + 1
}

// Size is the exact number of bytes Encode will produce.
func Size(fields []Field, nRows int) int {
	return HeaderLength(fields) + nRows*RecordLength(fields) + 1
}

func (e Encoder)now() time.Time {
	if e.Clock == nil { return time.Now() }
	return e.Clock()
}

// {{{ e.formatRows

// Everything that can go wrong goes wrong in here, before the output buffer exists.
func (e Encoder)formatRows(t Table) ([][][]byte, error) {
	if err := CheckSchema(t.Fields); err != nil {
		return nil, err
	}
	if uint64(len(t.Rows)) > math.MaxUint32 {
		return nil, fmt.Errorf("dbf: too many rows (%d)", len(t.Rows))
	}

	for i,row := range t.Rows {
		if len(row) != len(t.Fields) {
			return nil, &RowShapeError{Row:i, Got:len(row), Want:len(t.Fields)}
		}
	}

	cells := make([][][]byte, len(t.Rows))
	for i,row := range t.Rows {
		cells[i] = make([][]byte, len(row))
		for j,v := range row {
			f := t.Fields[j]
			cells[i][j] = format(f, v)
			if len(cells[i][j]) > f.Length && !e.LegacyOverflow {
				return nil, &CellOverflowError{Row:i, Field:f.Name, Value:string(cells[i][j]),
					Length:f.Length}
			}
		}
	}

	return cells, nil
}

// }}}
// {{{ e.Encode

// Encode lays the table out as a DBF file. The size is worked out up front and the buffer
// allocated once; everything is then written at absolute offsets.
func (e Encoder)Encode(t Table) ([]byte, error) {
	cells,err := e.formatRows(t)
	if err != nil {
		return nil, err
	}

	hdrLen := HeaderLength(t.Fields)
	recLen := RecordLength(t.Fields)
	buf := make([]byte, Size(t.Fields, len(t.Rows)))

	// File header. Reserved bytes 12-29 stay zero (no transaction, no encryption, no MDX,
	// no language driver).
	date := e.now()
	buf[0] = KVersion
	buf[1] = byte(date.Year() % 100)
	buf[2] = byte(date.Month())
	buf[3] = byte(date.Day())
	binary.LittleEndian.PutUint32(buf[4:], uint32(len(t.Rows)))
	binary.LittleEndian.PutUint16(buf[8:], uint16(hdrLen))
	binary.LittleEndian.PutUint16(buf[10:], uint16(recLen))
	binary.LittleEndian.PutUint16(buf[30:], KHeaderTrailer)

	// Field descriptors
	for i,f := range t.Fields {
		d := buf[KHeaderSize + i*KDescriptorSize:]
		copy(d[0:KMaxNameLength+1], f.Name) // unused name bytes stay zero
		d[11] = byte(f.Type)
		d[16] = byte(min(KMaxFieldLength, f.Length))
		if f.Type == Numeric {
			d[17] = byte(f.DecimalCount)
		}
		d[20] = 1 // work area ID
	}
	buf[hdrLen-1] = KFieldTerminator

	// Records
	for i,row := range cells {
		off := hdrLen + i*recLen
		buf[off] = KRecordActive
		off++
		for j,cell := range row {
			copy(buf[off:], cell) // only overflows in legacy mode, and never past the end
			off += t.Fields[j].Length
		}
	}

	buf[len(buf)-1] = KEndOfFile

	return buf, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
