// Package fpdf renders exported tracks as a plan view PDF, for checking them by eye before they
// go into INM.
package fpdf

import(
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jung-kurt/gofpdf"
	gogeo "github.com/paulmach/go.geo"
	"github.com/skypies/geo"

	"github.com/skypies/inmtrack"
	"github.com/skypies/inmtrack/ref"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

var ErrNothingToDraw = errors.New("fpdf: no points to draw")

// {{{ var()

var(
	// The plan is a square on the left of a landscape page; the key goes to its right.
	PlanOffsetU = 22.0
	PlanOffsetV = 15.0
	PlanSize    = 180.0
	KeyOffsetU  = 210.0

	PaddingKM = 2.0

	// http://www.perbang.dk/rgbgradient/
	TrackColors = [][]int{
		{0xDA, 0x06, 0x00}, // DA0600
		{0x00, 0x6C, 0xC2}, // 006CC2
		{0x00, 0xA0, 0x21}, // 00A021
		{0xD3, 0x9D, 0x00}, // D39D00
		{0xDB, 0x00, 0xE5}, // DB00E5
		{0x00, 0xBF, 0xA9}, // 00BFA9
		{0x6F, 0x4C, 0x00}, // 6F4C00
		{0xE1, 0x00, 0x99}, // E10099
	}
)

// }}}

// {{{ Projector

// A Projector turns lat/longs into kilometres east and north of an origin, via web mercator.
// Distances are scaled back by the mercator scale factor at the origin, so they're close to
// true near it.
type Projector struct {
	origin  *gogeo.Point
	scale   float64
}

func NewProjector(origin geo.Latlong) Projector {
	p := gogeo.NewPoint(origin.Long, origin.Lat)
	gogeo.Mercator.Project(p)
	return Projector{origin: p, scale: math.Cos(origin.Lat * math.Pi / 180.0)}
}

func (pr Projector)Project(pos geo.Latlong) (float64, float64) {
	p := gogeo.NewPoint(pos.Long, pos.Lat)
	gogeo.Mercator.Project(p)
	x := (p.X() - pr.origin.X()) * pr.scale / 1000.0
	y := (p.Y() - pr.origin.Y()) * pr.scale / 1000.0
	return x,y
}

// }}}
// {{{ PlanView

type PlanView struct {
	Projector
	BaseGrid
	Tracks   []inmtrack.Track
	Markers  []Marker
	Title      string
}

// niceStep picks a gridline spacing that gives about ten lines over the span.
func niceStep(span float64) float64 {
	for _,step := range []float64{0.5, 1, 2, 5, 10, 20, 50, 100, 200, 500} {
		if span / step <= 12 { return step }
	}
	return 1000
}

// Bounds works out a square region that covers all the track points and runway ends, with some
// padding, aligned to the gridlines.
func (pv *PlanView)Bounds() error {
	minX,minY,maxX,maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	extend := func(pos geo.Latlong) {
		x,y := pv.Project(pos)
		minX,maxX = math.Min(minX,x), math.Max(maxX,x)
		minY,maxY = math.Min(minY,y), math.Max(maxY,y)
	}

	for _,t := range pv.Tracks {
		for _,p := range t.Points { extend(p) }
	}
	if math.IsInf(minX,1) {
		return ErrNothingToDraw
	}
	for _,m := range pv.Markers {
		if m.Kind == RunwayMarker { extend(m.Latlong) }
	}

	minX,minY,maxX,maxY = minX-PaddingKM, minY-PaddingKM, maxX+PaddingKM, maxY+PaddingKM
	span := math.Max(maxX-minX, maxY-minY)
	midX,midY := (minX+maxX)/2, (minY+maxY)/2

	step := niceStep(span)
	span = math.Ceil(span/step) * step
	pv.MinX = math.Floor((midX-span/2)/step) * step
	pv.MinY = math.Floor((midY-span/2)/step) * step
	pv.MaxX = pv.MinX + span + step
	pv.MaxY = pv.MinY + span + step
	pv.GridlineEvery = step

	return nil
}

func (pv *PlanView)DrawTrack(i int, t inmtrack.Track) {
	rgb := TrackColors[i % len(TrackColors)]
	pv.SetDrawColor(rgb[0], rgb[1], rgb[2])
	pv.SetLineWidth(0.4)

	for j:=1; j<len(t.Points); j++ {
		x1,y1 := pv.Project(t.Points[j-1])
		x2,y2 := pv.Project(t.Points[j])
		pv.BaseGrid.Line(x1,y1,x2,y2)
	}

	// A dot on each drawn point
	pv.SetFillColor(rgb[0], rgb[1], rgb[2])
	for _,p := range t.Points {
		u,v,oob := pv.UV(pv.Project(p))
		if !oob { pv.Circle(u, v, 0.5, "F") }
	}
}

// DrawKey lists each track with its colour and its INM segments.
func (pv *PlanView)DrawKey() {
	u,v := KeyOffsetU, PlanOffsetV
	for i,t := range pv.Tracks {
		rgb := TrackColors[i % len(TrackColors)]
		pv.SetFillColor(rgb[0], rgb[1], rgb[2])
		pv.Rect(u, v+1, 6, 2, "F")

		pv.SetTextColor(0, 0, 0)
		pv.SetFont("Arial", "B", 8)
		pv.Fpdf.MoveTo(u+8, v)
		pv.Cell(50, 4, fmt.Sprintf("%s %s %s (%.1f KM)", t.Op(), t.RunwayId, t.Name, t.LengthKM()))
		v += 4

		pv.SetFont("Arial", "", 6)
		pv.Fpdf.MoveTo(u+8, v)
		pv.MultiCell(55, 3, strings.Join(inmtrack.SegmentStrings(inmtrack.EncodeSegments(t)), "; "),
			"", "L", false)
		_,v = pv.GetXY()
		v += 2
	}
}

func (pv *PlanView)Draw() error {
	if err := pv.Bounds(); err != nil {
		return err
	}

	pv.SetFont("Arial", "", 12)
	pv.SetTextColor(0, 0, 0)
	pv.Fpdf.MoveTo(PlanOffsetU, 5)
	pv.Cell(PlanSize, 8, pv.Title)

	pv.DrawGridlines()
	pv.DrawFrame()
	for _,m := range pv.Markers {
		pv.DrawMarker(m)
	}
	for i,t := range pv.Tracks {
		pv.DrawTrack(i, t)
	}
	pv.DrawKey()

	return pv.Error()
}

// }}}
// {{{ NewPlanView

// NewPlanView centres the plan on the airport if there is one, else on the first track point.
func NewPlanView(tracks []inmtrack.Track, airport *ref.Airport) (*PlanView, error) {
	origin := geo.Latlong{}
	markers := []Marker{}

	if airport != nil {
		origin = airport.Latlong
		for _,r := range airport.Runways {
			if pos,err := airport.RunwayAnchor(r.Id); err == nil {
				markers = append(markers, Marker{geo.NamedLatlong{Name:r.Id, Latlong:pos}, RunwayMarker})
			}
		}
		for _,wp := range airport.Waypoints {
			markers = append(markers, Marker{wp.NamedLatlong, WaypointMarker})
		}
	} else {
		found := false
		for _,t := range tracks {
			if len(t.Points) > 0 {
				origin,found = t.Points[0], true
				break
			}
		}
		if !found {
			return nil, ErrNothingToDraw
		}
	}

	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetCreator("inmtrack", false)
	pdf.AddPage()

	pv := PlanView{
		Projector: NewProjector(origin),
		BaseGrid: BaseGrid{
			Fpdf: pdf,
			OffsetU: PlanOffsetU,
			OffsetV: PlanOffsetV,
			W: PlanSize,
			H: PlanSize,
			Clip: true,
			TickFmt: "%.0fkm",
		},
		Tracks: tracks,
		Markers: markers,
		Title: fmt.Sprintf("%d INM tracks", len(tracks)),
	}
	if airport != nil {
		pv.Title = fmt.Sprintf("%s: %s", airport.Code, pv.Title)
	}

	return &pv, nil
}

// }}}

// {{{ WriteTracks

func WriteTracks(output io.Writer, tracks []inmtrack.Track, airport *ref.Airport) error {
	pv,err := NewPlanView(tracks, airport)
	if err != nil {
		return err
	}
	if err := pv.Draw(); err != nil {
		return err
	}
	return pv.Output(output)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
