// Package export turns a set of hand-drawn tracks into the DBF files that INM reads: TRACK.DBF,
// TRK_SEGS.DBF, and (if we know the airport) RWY_END.DBF.
package export

import(
	"errors"
	"fmt"
	"time"

	"github.com/skypies/geo"

	"github.com/skypies/inmtrack"
	"github.com/skypies/inmtrack/dbf"
	"github.com/skypies/inmtrack/log"
	"github.com/skypies/inmtrack/ref"
)

// Tracks can have at most ten sub-tracks for the same op, runway and name (TRK_ID2 is one digit).
const KMaxSubTracks = 10

var ErrNoTracks = errors.New("export: no usable tracks")

type Exporter struct {
	Airport         *ref.Airport  // optional
	Encoder          dbf.Encoder
	AnchorToRunway   bool          // prepend the runway end to each track; needs Airport
	Log             *log.Logger
}

// An ExportedTrack is a track as it will be written out.
type ExportedTrack struct {
	inmtrack.Track
	SubTrack   int                // INM TRK_ID2
	Segments []inmtrack.Segment
}

func (et ExportedTrack)String() string {
	return fmt.Sprintf("%s %s/%s-%d, %d segs", et.Op(), et.RunwayId, et.Name, et.SubTrack,
		len(et.Segments))
}

func (e Exporter)now() time.Time {
	if e.Encoder.Clock != nil { return e.Encoder.Clock() }
	return time.Now()
}

// {{{ e.Prepare

// Prepare fills in the blanks: names for unnamed tracks, the default op type, runway anchors if
// asked for, and sub-track numbers so that each (OP_TYPE,RWY_ID,TRK_ID1,TRK_ID2) is unique.
// Tracks with fewer than two points have no segments, and are dropped.
func (e Exporter)Prepare(tracks []inmtrack.Track) ([]ExportedTrack, error) {
	if e.AnchorToRunway && e.Airport == nil {
		return nil, errors.New("export: runway anchoring needs an airport")
	}

	ret := []ExportedTrack{}
	subTracks := map[string]int{}

	for i,t := range tracks {
		t.Points = append([]geo.Latlong{}, t.Points...)
		t.OpType = t.Op()

		if e.AnchorToRunway {
			anchor,err := e.Airport.RunwayAnchor(t.RunwayId)
			if err != nil {
				return nil, fmt.Errorf("track %d: %w", i, err)
			}
			if len(t.Points) == 0 || inmtrack.Distance(anchor, t.Points[0]) > 1.0 {
				t.Points = append([]geo.Latlong{anchor}, t.Points...)
			}
		}

		if len(t.Points) < 2 {
			e.Log.Warn("dropping track with too few points", "track", i, "points", len(t.Points))
			continue
		}

		if t.Name == "" {
			t.Name = t.InferName()
		}

		key := t.OpType + "/" + t.RunwayId + "/" + t.Name
		sub := subTracks[key]
		if sub >= KMaxSubTracks {
			return nil, fmt.Errorf("track %d: more than %d tracks named %s", i, KMaxSubTracks, key)
		}
		subTracks[key]++

		et := ExportedTrack{Track:t, SubTrack:sub, Segments:inmtrack.EncodeSegments(t)}
		e.Log.Debug("prepared track", "track", et.String())
		ret = append(ret, et)
	}

	if len(ret) == 0 {
		return nil, ErrNoTracks
	}

	return ret, nil
}

// }}}
// {{{ TrackTable, SegmentTable, RunwayEndTable

func TrackTable(tracks []ExportedTrack) dbf.Table {
	tbl := dbf.Table{Fields: TrackFields}
	for _,t := range tracks {
		tbl.Rows = append(tbl.Rows, dbf.Row{
			dbf.Text(t.OpType), dbf.Text(t.RunwayId), dbf.Text(t.Name), dbf.Number(t.SubTrack),
			dbf.Text(KTrackTypeVector),
		})
	}
	return tbl
}

func SegmentTable(tracks []ExportedTrack) dbf.Table {
	tbl := dbf.Table{Fields: SegmentFields}
	for _,t := range tracks {
		for i,s := range t.Segments {
			p1,p2 := s.Params()
			tbl.Rows = append(tbl.Rows, dbf.Row{
				dbf.Text(t.OpType), dbf.Text(t.RunwayId), dbf.Text(t.Name), dbf.Number(t.SubTrack),
				dbf.Number(i+1), dbf.Text(s.SegType()), dbf.Number(p1), dbf.Number(p2),
			})
		}
	}
	return tbl
}

func RunwayEndTable(a *ref.Airport) dbf.Table {
	tbl := dbf.Table{Fields: RunwayEndFields}
	for _,r := range a.Runways {
		tbl.Rows = append(tbl.Rows, dbf.Row{
			dbf.Text(r.Id), dbf.Number(r.X), dbf.Number(r.Y), dbf.Number(r.Elevation),
			dbf.Number(r.TakeoffDisplace), dbf.Number(r.ApproachDisplace), dbf.Number(r.GlideSlope),
			dbf.Number(r.CrossingHeight), dbf.Number(r.PercentWind), dbf.Text(r.DefCoord),
		})
	}
	return tbl
}

// }}}
// {{{ e.Export

type namedTable struct {
	Name string
	dbf.Table
}

// Export prepares the tracks, and serializes each table in one go.
func (e Exporter)Export(tracks []inmtrack.Track) (*Bundle, error) {
	prepared,err := e.Prepare(tracks)
	if err != nil {
		return nil, err
	}

	b := Bundle{Created: e.now(), Tracks: prepared}
	if e.Airport != nil {
		b.Airport = e.Airport.Code
	}

	enc := e.Encoder
	if enc.Clock == nil {
		created := b.Created
		enc.Clock = func() time.Time { return created }
	}

	tables := []namedTable{
		{KTrackFile, TrackTable(prepared)},
		{KSegmentFile, SegmentTable(prepared)},
	}
	if e.Airport != nil {
		tables = append(tables, namedTable{KRunwayEndFile, RunwayEndTable(e.Airport)})
	}

	for _,t := range tables {
		data,err := enc.Encode(t.Table)
		if err != nil {
			e.Log.Error("export failed", "file", t.Name, "err", err)
			return nil, fmt.Errorf("%s: %w", t.Name, err)
		}
		b.Files = append(b.Files, File{Name:t.Name, MimeType:KDBFMimeType, Data:data})
	}

	e.Log.Info("exported", "airport", b.Airport, "tracks", len(prepared), "segments",
		len(tables[1].Rows))

	return &b, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
