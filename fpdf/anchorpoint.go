package fpdf

import(
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/skypies/geo"
)

type MarkerKind int
const(
	RunwayMarker MarkerKind = iota
	WaypointMarker
)

// A Marker is a labelled point drawn on the plan; a runway end or a waypoint.
type Marker struct {
	geo.NamedLatlong
	Kind MarkerKind
}

func (m Marker)String() string {
	kind := "waypoint"
	if m.Kind == RunwayMarker { kind = "runway" }
	return fmt.Sprintf("%s %s", kind, m.Name)
}

// DrawMarker draws a runway end as a filled square, and a waypoint as a triangle. Markers
// outside the grid are skipped.
func (pv *PlanView)DrawMarker(m Marker) {
	x,y := pv.Project(m.Latlong)
	u,v,oob := pv.UV(x,y)
	if oob { return }

	switch m.Kind {
	case RunwayMarker:
		pv.SetFillColor(0, 0, 0)
		pv.Rect(u-0.8, v-0.8, 1.6, 1.6, "F")
		pv.SetTextColor(0, 0, 0)
	case WaypointMarker:
		pv.SetDrawColor(0x40, 0x40, 0xa0)
		pv.SetLineWidth(0.2)
		pv.Polygon([]gofpdf.PointType{{u, v-1.2}, {u+1.1, v+0.8}, {u-1.1, v+0.8}}, "D")
		pv.SetTextColor(0x40, 0x40, 0xa0)
	}

	pv.SetFont("Arial", "", 6)
	pv.Text(u+1.5, v-1.0, m.Name)
}
