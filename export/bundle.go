package export

import(
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/skypies/inmtrack"
	"github.com/skypies/inmtrack/ref"
	"github.com/skypies/inmtrack/sink"
)

const(
	KDBFMimeType = "application/x-dbf"
	KZipMimeType = "application/zip"

	KWaypointSnapKM = 2.0
)

type File struct {
	Name      string
	MimeType  string
	Data    []byte
}

// A Bundle is the result of an export: the DBF files, and the tracks that went into them.
type Bundle struct {
	Airport   string     // blank if no airport was configured
	Created   time.Time
	Tracks  []ExportedTrack
	Files   []File
}

func (b Bundle)File(name string) (File, bool) {
	for _,f := range b.Files {
		if f.Name == name { return f, true }
	}
	return File{}, false
}

func (b Bundle)ZipName() string {
	stem := "tracks"
	if b.Airport != "" { stem = strings.ToLower(b.Airport) }
	return fmt.Sprintf("inm-%s-%s.zip", stem, b.Created.UTC().Format("20060102-150405"))
}

// {{{ b.Zip

func (b Bundle)Zip() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _,f := range b.Files {
		hdr := &zip.FileHeader{Name:f.Name, Method:zip.Deflate, Modified:b.Created}
		w,err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, err
		}
		if _,err := w.Write(f.Data); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// }}}
// {{{ b.Listing, b.WriteCSV

// Listing is a human readable summary of the export; the segments of each track, and which
// waypoints it passes near (if we know the airport).
func (b Bundle)Listing() string {
	airport,_ := ref.Lookup(b.Airport)

	str := "INM export "
	if b.Airport != "" { str += b.Airport + ", " }
	str += fmt.Sprintf("%s: %d tracks\n", b.Created.UTC().Format("2006-01-02 15:04:05 MST"),
		len(b.Tracks))
	for _,f := range b.Files {
		str += fmt.Sprintf("  %-14s %6d bytes\n", f.Name, len(f.Data))
	}

	for _,t := range b.Tracks {
		str += fmt.Sprintf("\n%s %s %s-%d: %d points, %.1f KM", t.OpType, t.RunwayId, t.Name,
			t.SubTrack, len(t.Points), t.LengthKM())
		if airport != nil {
			if via := t.NearbyWaypoints(airport.NamedWaypoints(), KWaypointSnapKM); len(via) > 0 {
				str += ", via " + strings.Join(via, ",")
			}
		}
		str += "\n"
		for i,s := range t.Segments {
			p1,p2 := s.Params()
			str += fmt.Sprintf("  %03d %s %10.4f %10.4f\n", i+1, s.SegType(), p1, p2)
		}
	}

	return str
}

// WriteCSV writes the segment table as CSV, with a header row.
func (b Bundle)WriteCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	tbl := SegmentTable(b.Tracks)

	headers := []string{}
	for _,f := range tbl.Fields {
		headers = append(headers, f.Name)
	}
	csvWriter.Write(headers)

	for _,t := range b.Tracks {
		for i,s := range t.Segments {
			p1,p2 := s.Params()
			csvWriter.Write([]string{
				t.OpType, t.RunwayId, t.Name, fmt.Sprintf("%d", t.SubTrack), fmt.Sprintf("%d", i+1),
				s.SegType(), fmt.Sprintf("%.4f", p1), fmt.Sprintf("%.4f", p2),
			})
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// }}}
// {{{ b.ForBigQuery

func (b Bundle)ForBigQuery() []*inmtrack.TrackForBigQuery {
	ret := []*inmtrack.TrackForBigQuery{}
	for _,t := range b.Tracks {
		ret = append(ret, t.ForBigQuery(b.Airport, t.SubTrack, b.Created))
	}
	return ret
}

// }}}
// {{{ Publish

// Publish hands the files over to the sink; either as a single zip, or one by one.
func Publish(ctx context.Context, s sink.Sink, b *Bundle, asZip bool) error {
	if asZip {
		data,err := b.Zip()
		if err != nil {
			return err
		}
		return s.Put(ctx, b.ZipName(), data, KZipMimeType)
	}

	for _,f := range b.Files {
		if err := s.Put(ctx, f.Name, f.Data, f.MimeType); err != nil {
			return fmt.Errorf("publish %s: %w", f.Name, err)
		}
	}
	return nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
