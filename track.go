package inmtrack

import(
	"fmt"
	"strconv"

	"github.com/skypies/geo"
)

const(
	KDefaultOpType = "D"
	KUntitledTrack = "UNTITLED"
)

// A Track is a hand-drawn flight track, anchored on a runway end. Points are ordered from the
// runway outwards; Points[0] is the runway anchor (we don't check that here).
type Track struct {
	Name      string        // INM TRK_ID1. If blank, see InferName
	RunwayId  string        // e.g. "04L"; the first two chars are the heading in tens of degrees
	OpType    string        // INM op type: [D]eparture, [A]pproach, [T]ouch-and-go, [F]lyover
	Points  []geo.Latlong
}

func (t Track)String() string {
	str := fmt.Sprintf("Track %s/%s [%s]: %d points", t.RunwayId, t.Name, t.Op(), len(t.Points))
	if len(t.Points) > 1 {
		s,e := t.Points[0], t.Points[len(t.Points)-1]
		str += fmt.Sprintf(", %.1fKM (%.0f deg)", t.LengthKM(), Bearing(s,e))
	}
	return str
}

func (t Track)Op() string {
	if t.OpType == "" { return KDefaultOpType }
	return t.OpType
}

// LengthKM is the distance flown along the track, not the start-to-end distance.
func (t Track)LengthKM() float64 {
	km := 0.0
	for i:=1; i<len(t.Points); i++ {
		km += Distance(t.Points[i-1], t.Points[i]) / 1000.0
	}
	return km
}

// {{{ RunwayHeading

// RunwayHeading returns the magnetic heading implied by a runway designator, in degrees; "04L"
// is 40, "26R" is 260. Designators that don't start with two digits give zero.
func RunwayHeading(runwayId string) float64 {
	if len(runwayId) < 2 { return 0 }
	tens,err := strconv.Atoi(runwayId[0:2])
	if err != nil || tens < 0 { return 0 }
	return float64(tens) * 10.0
}

// }}}
// {{{ Compass, t.InferName

// Compass converts a heading into the name of the closest of the eight compass points.
func Compass(heading float64) string {
	h := NormalizeHeading(heading + 22.5) // now [0,45) is north, etc...
	idx := int(h / 45.0)
	return [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}[idx%8]
}

// InferName names the track after the direction of its final leg.
func (t Track)InferName() string {
	n := len(t.Points)
	if n < 2 { return KUntitledTrack }
	return Compass(Bearing(t.Points[n-2], t.Points[n-1]))
}

// }}}
// {{{ t.NearbyWaypoints

// distToLegKM is how far p is from the leg a->b. Points beyond either end of the leg are
// measured to that end.
func distToLegKM(p, a, b geo.Latlong) float64 {
	line := a.LineTo(b)
	if line.IsDegenerate() {
		return p.DistKM(a)
	}

	switch along := line.DistAlongLine(p); {
	case along <= 0: return p.DistKM(a)
	case along >= 1: return p.DistKM(b)
	}
	return line.ClosestDistance(p)
}

// NearbyWaypoints returns the names of the waypoints that the track passes within snapKM of,
// in the order the track reaches them.
func (t Track)NearbyWaypoints(waypoints []geo.NamedLatlong, snapKM float64) []string {
	ret := []string{}
	seen := map[string]bool{}

	for i:=1; i<len(t.Points); i++ {
		for _,wp := range waypoints {
			if seen[wp.Name] { continue }
			if distToLegKM(wp.Latlong, t.Points[i-1], t.Points[i]) <= snapKM {
				seen[wp.Name] = true
				ret = append(ret, wp.Name)
			}
		}
	}

	return ret
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
