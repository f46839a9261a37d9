package dbf

import(
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

// Header is the decoded 32-byte file header.
type Header struct {
	Version       byte
	Updated       time.Time // date only; two-digit years are taken to be 1980-2079
	NumRecords    int
	HeaderLength  int
	RecordLength  int
}

// A Record is one decoded row. Values have their padding stripped; Raw is the record as it was
// on disk, without the deletion flag.
type Record struct {
	Deleted  bool
	Values []string
	Raw    []byte
}

// File is a decoded DBF file.
type File struct {
	Header
	Fields  []Field
	Records []Record
}

func (f File)String() string {
	str := fmt.Sprintf("dBASE v%d, updated %s, %d records of %d bytes, header %d bytes\n",
		f.Version, f.Updated.Format("2006-01-02"), f.NumRecords, f.RecordLength, f.HeaderLength)
	for i,fld := range f.Fields {
		str += fmt.Sprintf("  field[%2d] %s\n", i, fld)
	}
	return str
}

// {{{ Decode

// Decode parses a DBF file. It is strict about the header and descriptors agreeing with the
// size of the data, but doesn't insist on the trailing EOF marker.
func Decode(b []byte) (*File, error) {
	if len(b) < KHeaderSize+1 {
		return nil, ErrTruncated
	}

	f := File{}
	f.Version = b[0]
	yy := int(b[1])
	year := 2000 + yy
	if yy >= 80 { year = 1900 + yy }
	f.Updated = time.Date(year, time.Month(b[2]), int(b[3]), 0, 0, 0, 0, time.UTC)
	f.NumRecords = int(binary.LittleEndian.Uint32(b[4:]))
	f.HeaderLength = int(binary.LittleEndian.Uint16(b[8:]))
	f.RecordLength = int(binary.LittleEndian.Uint16(b[10:]))

	if f.Version & 0x07 != KVersion {
		return nil, fmt.Errorf("%w: version byte 0x%02x", ErrBadFormat, f.Version)
	}
	if f.HeaderLength < KHeaderSize+1 || f.RecordLength < 1 {
		return nil, fmt.Errorf("%w: header %d, record %d", ErrBadFormat, f.HeaderLength, f.RecordLength)
	}
	if len(b) < f.HeaderLength {
		return nil, ErrTruncated
	}

	for off := KHeaderSize; off+KDescriptorSize <= f.HeaderLength; off += KDescriptorSize {
		if b[off] == KFieldTerminator { break }
		d := b[off:off+KDescriptorSize]
		name := d[0:KMaxNameLength+1]
		if i := bytes.IndexByte(name, 0); i >= 0 {
			name = name[:i]
		}
		f.Fields = append(f.Fields, Field{
			Name: strings.TrimSpace(string(name)),
			Type: FieldType(d[11]),
			Length: int(d[16]),
			DecimalCount: int(d[17]),
		})
	}

	if RecordLength(f.Fields) != f.RecordLength {
		return nil, fmt.Errorf("%w: fields add up to %d, header says %d", ErrBadFormat,
			RecordLength(f.Fields), f.RecordLength)
	}
	if len(b) < f.HeaderLength + f.NumRecords*f.RecordLength {
		return nil, ErrTruncated
	}

	for i:=0; i<f.NumRecords; i++ {
		off := f.HeaderLength + i*f.RecordLength
		raw := b[off:off+f.RecordLength]
		rec := Record{Deleted: raw[0] == KRecordDeleted, Raw: raw[1:]}

		pos := 1
		for _,fld := range f.Fields {
			val := string(raw[pos:pos+fld.Length])
			if fld.Type == Numeric {
				val = strings.Trim(val, " ")
			} else {
				val = strings.TrimRight(val, " ")
			}
			rec.Values = append(rec.Values, val)
			pos += fld.Length
		}
		f.Records = append(f.Records, rec)
	}

	return &f, nil
}

// }}}

// Column returns the values of the named field, one per record.
func (f File)Column(name string) ([]string, bool) {
	for i,fld := range f.Fields {
		if fld.Name != name { continue }
		ret := []string{}
		for _,r := range f.Records {
			ret = append(ret, r.Values[i])
		}
		return ret, true
	}
	return nil, false
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
