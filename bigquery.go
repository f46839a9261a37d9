package inmtrack

import (
	"fmt"
	"time"
)

// TrackForBigQuery is a denormalized representation of an exported track, with its INM
// segments alongside the drawn points. It is designed for import into BigQuery, so that
// sets of exported tracks can be compared over time.
type TrackForBigQuery struct {
	Airport      string
	RunwayId     string
	OpType       string
	Name         string
	SubTrack     int    // INM TRK_ID2

	ExportTime   time.Time
	NumPoints    int
	LengthKM     float64
	Point      []PointForBigQuery
	Segment    []SegmentForBigQuery // Not 'Segments', so that the SQL reads more naturally
}

type PointForBigQuery struct {
	Lat,Long float64
}

type SegmentForBigQuery struct {
	Num      int
	Type     string
	Param1   float64
	Param2   float64
}

func (tbq TrackForBigQuery)String() string {
	return fmt.Sprintf("%s/%s/%s-%d %s %dpts %d segs", tbq.Airport, tbq.RunwayId, tbq.Name,
		tbq.SubTrack, tbq.ExportTime.Format("2006/01/02"), tbq.NumPoints, len(tbq.Segment))
}

func (t Track)ForBigQuery(airport string, subTrack int, exported time.Time) *TrackForBigQuery {
	tbq := TrackForBigQuery{
		Airport: airport,
		RunwayId: t.RunwayId,
		OpType: t.Op(),
		Name: t.Name,
		SubTrack: subTrack,

		ExportTime: exported,
		NumPoints: len(t.Points),
		LengthKM: t.LengthKM(),
		Point: []PointForBigQuery{},
		Segment: []SegmentForBigQuery{},
	}

	for _,p := range t.Points {
		tbq.Point = append(tbq.Point, PointForBigQuery{Lat:p.Lat, Long:p.Long})
	}
	for i,s := range EncodeSegments(t) {
		p1,p2 := s.Params()
		tbq.Segment = append(tbq.Segment, SegmentForBigQuery{i+1, s.SegType(), p1, p2})
	}

	return &tbq
}
