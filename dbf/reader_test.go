package dbf

import(
	"errors"
	"testing"
	"time"
)

func TestDecodeRoundTrip(t *testing.T) {
	f,err := Decode(mustEncode(t, frozen, bobTable))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if f.NumRecords != 1 || f.HeaderLength != 97 || f.RecordLength != 8 {
		t.Errorf("bad header: %+v", f.Header)
	}
	if !f.Updated.Equal(time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("bad date: %s", f.Updated)
	}
	if len(f.Fields) != 2 || f.Fields[0] != bobTable.Fields[0] || f.Fields[1] != bobTable.Fields[1] {
		t.Errorf("bad fields: %v", f.Fields)
	}

	rec := f.Records[0]
	if rec.Deleted || len(rec.Values) != 2 || rec.Values[0] != "BOB" || rec.Values[1] != "30" {
		t.Errorf("bad record: %+v", rec)
	}
	if string(rec.Raw) != "BOB  30" {
		t.Errorf("bad raw record: %q", rec.Raw)
	}

	if ages,ok := f.Column("AGE"); !ok || len(ages) != 1 || ages[0] != "30" {
		t.Errorf("Column(AGE): %v, %v", ages, ok)
	}
	if _,ok := f.Column("HEIGHT"); ok {
		t.Errorf("Column(HEIGHT) found")
	}
}

func TestDecodeYears(t *testing.T) {
	for year,expected := range map[int]int{1999:1999, 2000:2000, 2079:2079, 1980:1980} {
		e := Encoder{Clock: func() time.Time { return time.Date(year, 1, 2, 0, 0, 0, 0, time.UTC) }}
		f,err := Decode(mustEncode(t, e, bobTable))
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if f.Updated.Year() != expected {
			t.Errorf("year %d came back as %d", year, f.Updated.Year())
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	good := mustEncode(t, frozen, bobTable)

	badVersion := append([]byte{}, good...)
	badVersion[0] = 0x02

	badRecLen := append([]byte{}, good...)
	badRecLen[10] = 9

	tests := []struct{
		B    []byte
		Err  error
	}{
		{nil, ErrTruncated},
		{good[:20], ErrTruncated},
		{good[:60], ErrTruncated},
		{good[:100], ErrTruncated},
		{badVersion, ErrBadFormat},
		{badRecLen, ErrBadFormat},
	}

	for i,test := range tests {
		if _,err := Decode(test.B); !errors.Is(err, test.Err) {
			t.Errorf("[%d] expected %v, got %v", i, test.Err, err)
		}
	}

	// The EOF marker is optional
	if _,err := Decode(good[:len(good)-1]); err != nil {
		t.Errorf("no EOF marker: %v", err)
	}
}
